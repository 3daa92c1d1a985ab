// Package policies resolves user-supplied name patterns (exact,
// prefix, or wildcard) against package names, the same precedence-
// matching idiom as the teacher's PackagingPolicy (package_policy.go),
// repurposed here from dependency-type/packaging-group resolution to
// protected-package and installonly-package name matching (SPEC_FULL
// §3 Sack, §4.7 step 5/7).
package policies

import "strings"

// NamePattern is one configured pattern: "kernel*" (prefix), "*" (match
// everything), or "kernel-core" (exact).
type NamePattern string

func (p NamePattern) matches(name string) bool {
	s := string(p)
	switch {
	case s == "*":
		return true
	case strings.HasSuffix(s, "*"):
		return strings.HasPrefix(name, strings.TrimSuffix(s, "*"))
	default:
		return s == name
	}
}

// matchesAny reports whether name satisfies any of patterns.
func matchesAny(patterns []NamePattern, name string) bool {
	for _, p := range patterns {
		if p.matches(name) {
			return true
		}
	}
	return false
}

// ProtectedPolicy decides whether a package name must never be erased
// or obsoleted by a solved goal (SPEC_FULL §4.7 step 7). The running
// kernel is always protected regardless of this policy - that rule
// lives with the sack (it needs a KernelDetector, not just a name).
type ProtectedPolicy struct {
	patterns []NamePattern
}

// NewProtectedPolicy compiles a list of raw name patterns.
func NewProtectedPolicy(patterns ...string) ProtectedPolicy {
	pp := make([]NamePattern, len(patterns))
	for i, p := range patterns {
		pp[i] = NamePattern(p)
	}
	return ProtectedPolicy{patterns: pp}
}

// Matches reports whether name is protected under this policy.
func (p ProtectedPolicy) Matches(name string) bool {
	return matchesAny(p.patterns, name)
}

// InstallonlyPolicy decides whether a package name may have multiple
// simultaneously installed versions, and how many (SPEC_FULL §3, §4.7
// step 5). The RPM convention default is the kernel family plus a
// handful of other self-parallel-installable packages; callers
// configure the actual pattern list (kernels vary by distro naming).
type InstallonlyPolicy struct {
	patterns []NamePattern
	limit    int
}

// NewInstallonlyPolicy compiles a list of raw name patterns with a
// kept-version limit (0 means unlimited).
func NewInstallonlyPolicy(limit int, patterns ...string) InstallonlyPolicy {
	pp := make([]NamePattern, len(patterns))
	for i, p := range patterns {
		pp[i] = NamePattern(p)
	}
	return InstallonlyPolicy{patterns: pp, limit: limit}
}

// Matches reports whether name is installonly under this policy.
func (p InstallonlyPolicy) Matches(name string) bool {
	return matchesAny(p.patterns, name)
}

// Limit returns the configured kept-version limit.
func (p InstallonlyPolicy) Limit() int {
	return p.limit
}

// DefaultInstallonlyPolicy mirrors dnf's stock installonlypkgs list
// (kernel, kernel modules, kernel-core family) with the conventional
// limit of 3 kept versions.
func DefaultInstallonlyPolicy() InstallonlyPolicy {
	return NewInstallonlyPolicy(3,
		"kernel", "kernel-core", "kernel-modules", "kernel-debug",
		"kernel-devel", "kernel-headers", "installonlypkg(kernel-module)",
	)
}
