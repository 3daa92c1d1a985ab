package core

import (
	"fmt"
	"strings"

	rpmversion "github.com/knqyf263/go-rpm-version"

	"rpmsack/internal/types"
)

// evrValue pairs the raw EVR with its rendered string, the form the
// solvable record keeps on hand so repeated comparisons don't re-render
// epoch:version-release on every call.
type evrValue struct {
	EVR      types.EVR
	rendered string
}

func newEVRValue(e types.EVR) evrValue {
	return evrValue{EVR: e, rendered: e.String()}
}

// evrCache memoizes the parsed go-rpm-version.Version for a rendered EVR
// string, the same amortization idiom as the teacher's versionCache in
// internal/core/version.go (parse once, compare many times).
type evrCache struct {
	parsed map[string]rpmversion.Version
}

func newEVRCache() *evrCache {
	return &evrCache{parsed: make(map[string]rpmversion.Version)}
}

func (c *evrCache) parse(rendered string) rpmversion.Version {
	if v, ok := c.parsed[rendered]; ok {
		return v
	}
	v := rpmversion.NewVersion(rendered)
	c.parsed[rendered] = v
	return v
}

// compareEVR implements SPEC_FULL §4.3: epoch compared numerically,
// then version and release compared by the RPM tilde/token algorithm,
// delegated to go-rpm-version (quay-claircore/rhel/matcher.go grounds
// this as the real third-party implementation of rpmvercmp semantics).
// The cache lives on the pool rather than behind a package-level
// variable so that two Sacks (and thus two pools) never share mutable
// state - different sacks are fully independent per SPEC_FULL §5, which
// also permits solving sacks concurrently on separate goroutines, and a
// process-global map would race under that usage. This mirrors the
// teacher's per-instance versionCache (internal/core/version.go).
func (p *pool) compareEVR(a, b types.EVR) int {
	va := p.evrCache.parse(a.String())
	vb := p.evrCache.parse(b.String())
	return va.Compare(vb)
}

// compareVersionOnly and compareReleaseOnly build synthetic EVRs so the
// same comparator can be reused for the version/release filters
// (SPEC_FULL §4.3 ¶5: "Version-only and release-only comparisons build
// synthetic EVRs").
func (p *pool) compareVersionOnly(a, b string) int {
	return p.compareEVR(
		types.EVR{Version: a, Release: "0"},
		types.EVR{Version: b, Release: "0"},
	)
}

func (p *pool) compareReleaseOnly(a, b string) int {
	return p.compareEVR(
		types.EVR{Version: "0", Release: a},
		types.EVR{Version: "0", Release: b},
	)
}

// parseEVR splits "epoch:version-release" into its parts. Missing
// epoch is represented with EpochSet=false; missing release is "".
func parseEVR(s string) types.EVR {
	var e types.EVR
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		var epoch int
		if _, err := fmt.Sscanf(s[:idx], "%d", &epoch); err == nil {
			e.Epoch = epoch
			e.EpochSet = true
		}
		s = s[idx+1:]
	}
	if idx := strings.LastIndexByte(s, '-'); idx >= 0 {
		e.Version = s[:idx]
		e.Release = s[idx+1:]
	} else {
		e.Version = s
	}
	return e
}
