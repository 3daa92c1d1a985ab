package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpmsack/internal/types"
)

func TestNEVRAPossibilitiesFullForm(t *testing.T) {
	it := NewNEVRAPossibilities("foo-1.2-3.x86_64", nil)
	cand, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, FormNEVRA, cand.Form)
	assert.Equal(t, types.NEVRA{
		Name: "foo",
		EVR:  types.EVR{Version: "1.2", Release: "3"},
		Arch: "x86_64",
	}, cand.NEVRA)
}

func TestNEVRAPossibilitiesWithEpoch(t *testing.T) {
	it := NewNEVRAPossibilities("foo-2:1.2-3.x86_64", nil)
	cand, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 2, cand.NEVRA.EVR.Epoch)
	assert.True(t, cand.NEVRA.EVR.EpochSet)
	assert.Equal(t, "1.2", cand.NEVRA.EVR.Version)
}

func TestNEVRAPossibilitiesFallsBackToBareName(t *testing.T) {
	it := NewNEVRAPossibilities("foo", nil)
	var last NEVRACandidate
	for {
		cand, ok := it.Next()
		if !ok {
			break
		}
		last = cand
	}
	assert.Equal(t, FormNAME, last.Form)
	assert.Equal(t, "foo", last.NEVRA.Name)
}

func TestNEVRAPossibilitiesNameArchOnly(t *testing.T) {
	form := FormNA
	it := NewNEVRAPossibilities("foo.x86_64", &form)
	cand, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "foo", cand.NEVRA.Name)
	assert.Equal(t, "x86_64", cand.NEVRA.Arch)
}

func TestParseReldepPossibility(t *testing.T) {
	got := ReldepPossibilities("foo >= 1.0")
	require.Len(t, got, 1)
	assert.Equal(t, "foo", got[0].Reldep.Name)
	assert.Equal(t, types.FlagGT|types.FlagEQ, got[0].Reldep.Flags)
	assert.Equal(t, "1.0", got[0].Reldep.EVR.Version)
}

func TestReldepPossibilitiesEmptyInput(t *testing.T) {
	assert.Nil(t, ReldepPossibilities("   "))
}
