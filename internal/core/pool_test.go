package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rpmsack/internal/types"
)

func TestPoolInternNameDedups(t *testing.T) {
	p := newPool()
	a := p.internName("foo")
	b := p.internName("foo")
	c := p.internName("bar")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "foo", p.name(a))
	assert.Equal(t, "bar", p.name(c))
}

func TestPoolInternArchEmptyStringIsZeroID(t *testing.T) {
	p := newPool()
	assert.Equal(t, types.ArchID(0), p.internArch(""))
	assert.Equal(t, "", p.arch(0))
	assert.Equal(t, "x86_64", p.arch(p.internArch("x86_64")))
}

func TestPoolNameAndArchOutOfRangeReturnEmpty(t *testing.T) {
	p := newPool()
	assert.Equal(t, "", p.name(types.NameID(99)))
	assert.Equal(t, "", p.arch(types.ArchID(99)))
}

func TestPoolInternReldepDedupsByValue(t *testing.T) {
	p := newPool()
	r := types.Reldep{Name: "foo", Flags: types.FlagEQ, EVR: types.EVR{Version: "1.0"}}
	a := p.internReldep(r)
	b := p.internReldep(r)
	assert.Equal(t, a, b)
	assert.Equal(t, r, p.reldep(a))
}

func TestPoolProvidersFindsSelfProvideAndExplicitProvide(t *testing.T) {
	p := newPool()
	nameFoo := p.internName("foo")
	id := p.addSolvable(solvable{
		name: nameFoo,
		evr:  newEVRValue(types.EVR{Version: "1.0", Release: "1"}),
		provides: []types.RelDepID{
			p.internReldep(types.Reldep{Name: "virtual-foo"}),
		},
	})

	self := p.providers(types.Reldep{Name: "foo"})
	assert.Contains(t, self, id)

	virtual := p.providers(types.Reldep{Name: "virtual-foo"})
	assert.Contains(t, virtual, id)

	none := p.providers(types.Reldep{Name: "does-not-exist"})
	assert.Empty(t, none)
}

func TestPoolProvidersRespectsVersionFlags(t *testing.T) {
	p := newPool()
	nameFoo := p.internName("foo")
	p.addSolvable(solvable{name: nameFoo, evr: newEVRValue(types.EVR{Version: "1.0", Release: "1"})})

	ge := types.FlagGT | types.FlagEQ
	atLeast2 := p.providers(types.Reldep{Name: "foo", Flags: ge, EVR: types.EVR{Version: "2.0"}})
	assert.Empty(t, atLeast2)

	atLeast1 := p.providers(types.Reldep{Name: "foo", Flags: ge, EVR: types.EVR{Version: "1.0"}})
	assert.NotEmpty(t, atLeast1)
}
