package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpmsack/internal/types"
)

func TestPackageSetAddHasRemove(t *testing.T) {
	s := NewPackageSet(4)
	require.False(t, s.Has(3))
	s.Add(3)
	assert.True(t, s.Has(3))
	assert.Equal(t, 1, s.Len())
	s.Remove(3)
	assert.False(t, s.Has(3))
	assert.Equal(t, 0, s.Len())
}

func TestPackageSetGrowsBeyondInitialSize(t *testing.T) {
	s := NewPackageSet(4)
	s.Add(200)
	assert.True(t, s.Has(200))
	assert.Equal(t, 1, s.Len())
}

func TestPackageSetClone(t *testing.T) {
	s := NewPackageSet(4)
	s.Add(1)
	cp := s.Clone()
	cp.Add(2)
	assert.False(t, s.Has(2), "mutating the clone must not affect the original")
	assert.True(t, cp.Has(1))
	assert.True(t, cp.Has(2))
}

func TestPackageSetSetOps(t *testing.T) {
	a := NewPackageSet(8)
	a.Add(1)
	a.Add(2)
	b := NewPackageSet(8)
	b.Add(2)
	b.Add(3)

	and := a.Clone().And(b)
	assert.Equal(t, []types.SolvableID{2}, and.Slice())

	or := a.Clone().Or(b)
	assert.Equal(t, []types.SolvableID{1, 2, 3}, or.Slice())

	andNot := a.Clone().AndNot(b)
	assert.Equal(t, []types.SolvableID{1}, andNot.Slice())
}

func TestPackageSetForEachOrdersAscending(t *testing.T) {
	s := NewPackageSet(8)
	s.Add(70)
	s.Add(1)
	s.Add(5)

	var seen []types.SolvableID
	s.ForEach(func(id types.SolvableID) { seen = append(seen, id) })
	assert.Equal(t, []types.SolvableID{1, 5, 70}, seen)
}
