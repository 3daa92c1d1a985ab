package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpmsack/internal/adapters"
	"rpmsack/internal/types"
)

func TestGoalHasActionTracksStagedJobs(t *testing.T) {
	s := newFixtureSack(t)
	g := NewGoal(s, adapters.NewGophersatSolver())

	assert.False(t, g.HasAction(types.ActionInstall))
	assert.False(t, g.HasAction(types.ActionUpgradeAll))

	sel := NewSelector(s)
	require.NoError(t, sel.Name(types.CmpEQ, "foo"))
	require.NoError(t, g.Install(sel))
	g.UpgradeAll()

	assert.True(t, g.HasAction(types.ActionInstall))
	assert.True(t, g.HasAction(types.ActionUpgradeAll))
	assert.False(t, g.HasAction(types.ActionErase))
}

func TestGoalDescribeRendersStagedJobs(t *testing.T) {
	s := newFixtureSack(t)
	g := NewGoal(s, adapters.NewGophersatSolver())

	sel := NewSelector(s)
	require.NoError(t, sel.Name(types.CmpEQ, "foo"))
	require.NoError(t, g.Install(sel))
	g.UpgradeAll()
	g.Verify()

	desc := g.Describe()
	assert.Contains(t, desc, "install: foo")
	assert.Contains(t, desc, "upgrade-all")
	assert.Contains(t, desc, "verify")
}

func TestGoalTransactionUnsetBeforeRun(t *testing.T) {
	s := newFixtureSack(t)
	g := NewGoal(s, adapters.NewGophersatSolver())
	_, ok := g.Transaction()
	assert.False(t, ok)
}

func TestGoalProblemsEmptyBeforeRun(t *testing.T) {
	s := newFixtureSack(t)
	g := NewGoal(s, adapters.NewGophersatSolver())
	assert.Empty(t, g.Problems())
}
