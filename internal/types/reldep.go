package types

// Reldep is a parsed dependency atom: a name plus an optional
// relational flag and EVR. A bare Reldep (Flags == 0) matches by name
// alone, the common case for Provides/Requires without a version
// constraint.
type Reldep struct {
	Name    string
	Flags   ReldepFlag
	EVR     EVR
}

// String renders "name", "name = evr", "name < evr", etc.
func (r Reldep) String() string {
	if r.Flags&(FlagLT|FlagEQ|FlagGT) == 0 {
		return r.Name
	}
	return r.Name + " " + r.Flags.String() + " " + r.EVR.String()
}

// ReldepList is an ordered, possibly-duplicated collection of Reldeps.
// Appending never deduplicates; Dedup returns a deduplicated copy on
// demand, matching the source's "ordered, deduped on demand" invariant
// (SPEC_FULL §3).
type ReldepList []Reldep

// Dedup returns a new list with exact duplicates removed, preserving
// first-seen order.
func (l ReldepList) Dedup() ReldepList {
	seen := make(map[Reldep]struct{}, len(l))
	out := make(ReldepList, 0, len(l))
	for _, r := range l {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
