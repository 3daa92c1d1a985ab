package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReldepString(t *testing.T) {
	assert.Equal(t, "foo", Reldep{Name: "foo"}.String())
	assert.Equal(t, "foo >= 1.0", Reldep{Name: "foo", Flags: FlagGT | FlagEQ, EVR: EVR{Version: "1.0"}}.String())
}

func TestReldepListDedupPreservesFirstSeenOrder(t *testing.T) {
	l := ReldepList{
		{Name: "foo"},
		{Name: "bar"},
		{Name: "foo"},
	}
	assert.Equal(t, ReldepList{{Name: "foo"}, {Name: "bar"}}, l.Dedup())
}
