package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamePatternMatches(t *testing.T) {
	tests := []struct {
		name    string
		pattern NamePattern
		input   string
		want    bool
	}{
		{"exact match", "kernel-core", "kernel-core", true},
		{"exact mismatch", "kernel-core", "kernel-devel", false},
		{"wildcard matches everything", "*", "anything", true},
		{"prefix match", "kernel-*", "kernel-devel", true},
		{"prefix mismatch", "kernel-*", "glibc", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pattern.matches(tt.input))
		})
	}
}

func TestProtectedPolicyMatches(t *testing.T) {
	p := NewProtectedPolicy("glibc", "bash")
	assert.True(t, p.Matches("glibc"))
	assert.True(t, p.Matches("bash"))
	assert.False(t, p.Matches("vim"))
}

func TestInstallonlyPolicyMatchesAndLimit(t *testing.T) {
	p := NewInstallonlyPolicy(2, "kernel*")
	assert.True(t, p.Matches("kernel-core"))
	assert.False(t, p.Matches("glibc"))
	assert.Equal(t, 2, p.Limit())
}

func TestDefaultInstallonlyPolicy(t *testing.T) {
	p := DefaultInstallonlyPolicy()
	assert.Equal(t, 3, p.Limit())
	assert.True(t, p.Matches("kernel"))
	assert.True(t, p.Matches("kernel-devel"))
	assert.False(t, p.Matches("httpd"))
}
