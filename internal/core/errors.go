package core

import (
	"errors"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rpmsack/internal/types"
)

// kindErrCode maps the stable ErrorKind identifiers from SPEC_FULL §6/§7
// onto errbuilder's code space, mirroring the teacher's single-error-type
// convention (internal/cli/root.go#exitCodeForError dispatches on
// errbuilder.CodeOf the same way this package produces it).
var kindErrCode = map[types.ErrorKind]errbuilder.Code{
	types.ErrBadQuery:              errbuilder.CodeInvalidArgument,
	types.ErrBadSelector:           errbuilder.CodeInvalidArgument,
	types.ErrInvalidArchitecture:   errbuilder.CodeInvalidArgument,
	types.ErrPackageNotFound:       errbuilder.CodeNotFound,
	types.ErrNoSolution:            errbuilder.CodeFailedPrecondition,
	types.ErrRemovalOfProtectedPkg: errbuilder.CodeFailedPrecondition,
	types.ErrInternal:              errbuilder.CodeInternal,
	types.ErrFileInvalid:           errbuilder.CodeInvalidArgument,
}

// newErr builds the single error type every fallible core operation
// returns. The kind is carried as a "KIND: " message prefix, the same
// prefix-encoded-detail idiom the teacher uses in
// internal/cli/root.go#exitCodeForError (it switches on
// strings.HasPrefix(message, ...) rather than a side channel).
func newErr(kind types.ErrorKind, msg string) error {
	return errbuilder.New().
		WithCode(kindErrCode[kind]).
		WithMsg(string(kind) + ": " + msg)
}

func newErrCause(kind types.ErrorKind, msg string, cause error) error {
	return errbuilder.New().
		WithCode(kindErrCode[kind]).
		WithMsg(string(kind) + ": " + msg).
		WithCause(cause)
}

// KindOf recovers the ErrorKind tagged onto an error produced by newErr,
// or ErrInternal if err was not produced by this package.
func KindOf(err error) types.ErrorKind {
	var builder *errbuilder.ErrBuilder
	if !errors.As(err, &builder) {
		return types.ErrInternal
	}
	msg := builder.Msg
	for _, kind := range []types.ErrorKind{
		types.ErrBadQuery, types.ErrBadSelector, types.ErrInvalidArchitecture,
		types.ErrPackageNotFound, types.ErrNoSolution, types.ErrRemovalOfProtectedPkg,
		types.ErrInternal, types.ErrFileInvalid,
	} {
		if strings.HasPrefix(msg, string(kind)+":") {
			return kind
		}
	}
	return types.ErrInternal
}
