package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEVRString(t *testing.T) {
	tests := []struct {
		name string
		evr  EVR
		want string
	}{
		{"version only", EVR{Version: "1.0"}, "1.0"},
		{"version and release", EVR{Version: "1.0", Release: "2"}, "1.0-2"},
		{"epoch elided when zero", EVR{Epoch: 0, EpochSet: true, Version: "1.0"}, "1.0"},
		{"epoch rendered when nonzero", EVR{Epoch: 3, EpochSet: true, Version: "1.0", Release: "2"}, "3:1.0-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.evr.String())
		})
	}
}

func TestNEVRAString(t *testing.T) {
	n := NEVRA{Name: "foo", EVR: EVR{Version: "1.0", Release: "2"}, Arch: "x86_64"}
	assert.Equal(t, "foo-1.0-2.x86_64", n.String())
}

func TestNEVRAStringWithoutArch(t *testing.T) {
	n := NEVRA{Name: "foo", EVR: EVR{Version: "1.0", Release: "2"}}
	assert.Equal(t, "foo-1.0-2", n.String())
}

func TestNEVRAEqualTreatsUnsetEpochAsZero(t *testing.T) {
	a := NEVRA{Name: "foo", EVR: EVR{Version: "1.0", Release: "1"}, Arch: "x86_64"}
	b := NEVRA{Name: "foo", EVR: EVR{Epoch: 0, EpochSet: true, Version: "1.0", Release: "1"}, Arch: "x86_64"}
	assert.True(t, a.Equal(b))
}

func TestNEVRAEqualDetectsDifference(t *testing.T) {
	a := NEVRA{Name: "foo", EVR: EVR{Version: "1.0", Release: "1"}, Arch: "x86_64"}
	b := NEVRA{Name: "foo", EVR: EVR{Version: "2.0", Release: "1"}, Arch: "x86_64"}
	assert.False(t, a.Equal(b))
}
