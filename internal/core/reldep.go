package core

import (
	"strings"

	"rpmsack/internal/types"
)

// relOpTokens is the ordered list of reldep operators tried during
// parsing, longest first so ">=" is tried before ">" (same ordering
// idiom as the teacher's opTokens in internal/core/constraint.go,
// adapted from Debian/PEP440 operators to RPM's <,<=,=,>=,>).
var relOpTokens = []struct {
	token string
	flags types.ReldepFlag
}{
	{"<=", types.FlagLT | types.FlagEQ},
	{">=", types.FlagGT | types.FlagEQ},
	{"==", types.FlagEQ},
	{"=", types.FlagEQ},
	{"<", types.FlagLT},
	{">", types.FlagGT},
}

// ParseReldep parses "name", "name op evr" into a Reldep. Per SPEC_FULL
// §4.4/§7, a reldep string that fails to parse is not an error: callers
// in equality-mode filters should treat a false ok as "this filter
// matches nothing" rather than surfacing BAD_QUERY.
func ParseReldep(raw string) (types.Reldep, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.Reldep{}, false
	}
	for _, ot := range relOpTokens {
		idx := strings.Index(raw, ot.token)
		if idx < 0 {
			continue
		}
		name := strings.TrimSpace(raw[:idx])
		evrStr := strings.TrimSpace(raw[idx+len(ot.token):])
		if name == "" || evrStr == "" {
			return types.Reldep{}, false
		}
		return types.Reldep{Name: name, Flags: ot.flags, EVR: parseEVR(evrStr)}, true
	}
	// No operator: whitespace-separated "name op evr" form (subject
	// reldep-possibility parsing, SPEC_FULL §4.5) falls back to a split
	// on the first space.
	if sp := strings.IndexAny(raw, " \t"); sp >= 0 {
		name := raw[:sp]
		rest := strings.TrimSpace(raw[sp+1:])
		for _, ot := range relOpTokens {
			if strings.HasPrefix(rest, ot.token) {
				evrStr := strings.TrimSpace(rest[len(ot.token):])
				if evrStr == "" {
					return types.Reldep{}, false
				}
				return types.Reldep{Name: name, Flags: ot.flags, EVR: parseEVR(evrStr)}, true
			}
		}
		return types.Reldep{}, false
	}
	return types.Reldep{Name: raw}, true
}
