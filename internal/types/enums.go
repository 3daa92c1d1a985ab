package types

// ComparisonType is a bitmask over the comparators a filter may request.
// At most one base comparator (EQ|LT|GT|SUBSTR|GLOB) may be set; NOT and
// ICASE are orthogonal modifier bits.
type ComparisonType uint16

const (
	CmpEQ     ComparisonType = 1 << iota
	CmpLT
	CmpGT
	CmpSubstr
	CmpGlob
	CmpNot
	CmpICase
)

// NEQ is not a distinct bit: it is CmpEQ|CmpNot.
const CmpNEQ = CmpEQ | CmpNot

// MatchType tags the kind of value a filter's matches slice holds.
type MatchType uint8

const (
	MatchVoid MatchType = iota
	MatchString
	MatchNumber
	MatchPackageSet
	MatchReldep
)

// ReldepFlag is a subset of {LT, EQ, GT} plus the file-dependency marker,
// carried on a single Reldep.
type ReldepFlag uint8

const (
	FlagLT ReldepFlag = 1 << iota
	FlagEQ
	FlagGT
	FlagFile
)

func (f ReldepFlag) String() string {
	switch f & (FlagLT | FlagEQ | FlagGT) {
	case FlagLT:
		return "<"
	case FlagGT:
		return ">"
	case FlagEQ:
		return "="
	case FlagLT | FlagEQ:
		return "<="
	case FlagGT | FlagEQ:
		return ">="
	default:
		return ""
	}
}

// Reason explains why a package appears in a transaction.
type Reason string

const (
	ReasonUser    Reason = "user"
	ReasonDep     Reason = "dep"
	ReasonClean   Reason = "clean"
	ReasonWeakDep Reason = "weakdep"
)

// ErrorKind is the stable identifier surfaced by every fallible core
// operation.
type ErrorKind string

const (
	ErrBadQuery              ErrorKind = "BAD_QUERY"
	ErrBadSelector           ErrorKind = "BAD_SELECTOR"
	ErrInvalidArchitecture   ErrorKind = "INVALID_ARCHITECTURE"
	ErrPackageNotFound       ErrorKind = "PACKAGE_NOT_FOUND"
	ErrNoSolution            ErrorKind = "NO_SOLUTION"
	ErrRemovalOfProtectedPkg ErrorKind = "REMOVAL_OF_PROTECTED_PKG"
	ErrInternal              ErrorKind = "INTERNAL_ERROR"
	ErrFileInvalid           ErrorKind = "FILE_INVALID"
)

// ActionKind identifies a category of goal action.
type ActionKind uint16

const (
	ActionInstall ActionKind = 1 << iota
	ActionErase
	ActionUpgrade
	ActionUpgradeAll
	ActionDowngrade
	ActionDistupgrade
	ActionDistupgradeAll
	ActionVerify
	ActionReinstall
)

// AdvisoryKind is the errata kind.
type AdvisoryKind string

const (
	AdvisoryBugfix      AdvisoryKind = "bugfix"
	AdvisorySecurity    AdvisoryKind = "security"
	AdvisoryEnhancement AdvisoryKind = "enhancement"
	AdvisoryNewpackage  AdvisoryKind = "newpackage"
)

// AdvisorySeverity is the errata severity, meaningful mainly for
// AdvisorySecurity.
type AdvisorySeverity string

const (
	SeverityNone     AdvisorySeverity = ""
	SeverityLow      AdvisorySeverity = "low"
	SeverityModerate AdvisorySeverity = "moderate"
	SeverityImportant AdvisorySeverity = "important"
	SeverityCritical AdvisorySeverity = "critical"
)
