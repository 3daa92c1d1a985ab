package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rpmsack/internal/types"
)

func TestCompareEVR(t *testing.T) {
	tests := []struct {
		name string
		a, b types.EVR
		want int // sign only
	}{
		{
			name: "equal version and release",
			a:    types.EVR{Version: "1.0", Release: "1"},
			b:    types.EVR{Version: "1.0", Release: "1"},
			want: 0,
		},
		{
			name: "higher version wins",
			a:    types.EVR{Version: "2.0", Release: "1"},
			b:    types.EVR{Version: "1.0", Release: "1"},
			want: 1,
		},
		{
			name: "higher release breaks a version tie",
			a:    types.EVR{Version: "1.0", Release: "2"},
			b:    types.EVR{Version: "1.0", Release: "1"},
			want: 1,
		},
		{
			name: "epoch dominates version",
			a:    types.EVR{Epoch: 1, EpochSet: true, Version: "1.0", Release: "1"},
			b:    types.EVR{Version: "9.0", Release: "1"},
			want: 1,
		},
		{
			name: "unset epoch compares as epoch zero",
			a:    types.EVR{EpochSet: false, Version: "1.0", Release: "1"},
			b:    types.EVR{Epoch: 0, EpochSet: true, Version: "1.0", Release: "1"},
			want: 0,
		},
	}
	p := newPool()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.compareEVR(tt.a, tt.b)
			switch {
			case tt.want > 0:
				assert.Positive(t, got)
			case tt.want < 0:
				assert.Negative(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestCompareVersionOnlyIgnoresRelease(t *testing.T) {
	p := newPool()
	assert.Zero(t, p.compareVersionOnly("1.0", "1.0"))
	assert.Positive(t, p.compareVersionOnly("2.0", "1.0"))
}

func TestParseEVR(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.EVR
	}{
		{
			name:  "version and release, no epoch",
			input: "1.2.3-4",
			want:  types.EVR{Version: "1.2.3", Release: "4"},
		},
		{
			name:  "epoch, version, and release",
			input: "2:1.2.3-4",
			want:  types.EVR{Epoch: 2, EpochSet: true, Version: "1.2.3", Release: "4"},
		},
		{
			name:  "version only",
			input: "1.2.3",
			want:  types.EVR{Version: "1.2.3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseEVR(tt.input))
		})
	}
}
