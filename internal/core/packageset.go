package core

import (
	"math/bits"

	"rpmsack/internal/types"
)

// PackageSet is a dense bitmap over solvable ids (C5). No third-party
// bitset library appears anywhere in the retrieval pack, so this is one
// of the few places the implementation is plain stdlib by necessity
// (see DESIGN.md).
type PackageSet struct {
	words []uint64
}

const wordBits = 64

// NewPackageSet returns an empty set sized to hold at least n ids.
func NewPackageSet(n int) *PackageSet {
	return &PackageSet{words: make([]uint64, (n+wordBits)/wordBits)}
}

func (s *PackageSet) grow(n int) {
	need := (n + wordBits) / wordBits
	if need <= len(s.words) {
		return
	}
	grown := make([]uint64, need)
	copy(grown, s.words)
	s.words = grown
}

// Add sets id in the set, growing the backing storage if needed.
func (s *PackageSet) Add(id types.SolvableID) {
	s.grow(int(id))
	s.words[id/wordBits] |= 1 << (uint(id) % wordBits)
}

// Remove clears id in the set.
func (s *PackageSet) Remove(id types.SolvableID) {
	if int(id/wordBits) >= len(s.words) {
		return
	}
	s.words[id/wordBits] &^= 1 << (uint(id) % wordBits)
}

// Has reports whether id is a member.
func (s *PackageSet) Has(id types.SolvableID) bool {
	if id < 0 || int(id/wordBits) >= len(s.words) {
		return false
	}
	return s.words[id/wordBits]&(1<<(uint(id)%wordBits)) != 0
}

// Clone returns an independent copy.
func (s *PackageSet) Clone() *PackageSet {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return &PackageSet{words: words}
}

// Len returns the number of set bits.
func (s *PackageSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// ForEach calls fn for every member id in ascending order.
func (s *PackageSet) ForEach(fn func(types.SolvableID)) {
	for wi, w := range s.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			fn(types.SolvableID(wi*wordBits + bit))
			w &= w - 1
		}
	}
}

// Slice returns all member ids as a sorted slice.
func (s *PackageSet) Slice() []types.SolvableID {
	out := make([]types.SolvableID, 0, s.Len())
	s.ForEach(func(id types.SolvableID) { out = append(out, id) })
	return out
}

func (s *PackageSet) alignTo(o *PackageSet) {
	if len(o.words) > len(s.words) {
		s.grow(len(o.words) * wordBits)
	}
}

// And intersects in place: s = s ∧ o.
func (s *PackageSet) And(o *PackageSet) *PackageSet {
	for i := range s.words {
		if i < len(o.words) {
			s.words[i] &= o.words[i]
		} else {
			s.words[i] = 0
		}
	}
	return s
}

// Or unions in place: s = s ∨ o.
func (s *PackageSet) Or(o *PackageSet) *PackageSet {
	s.alignTo(o)
	for i, w := range o.words {
		s.words[i] |= w
	}
	return s
}

// AndNot subtracts in place: s = s \ o.
func (s *PackageSet) AndNot(o *PackageSet) *PackageSet {
	for i := range s.words {
		if i < len(o.words) {
			s.words[i] &^= o.words[i]
		}
	}
	return s
}
