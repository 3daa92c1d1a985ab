package core

import "rpmsack/internal/types"

// Advisory is a read handle onto one interned errata record (C10). The
// matching algorithm itself lives in query_matchers.go's matchAdvisory;
// this type exists so callers outside the query path (advisory CLI
// command, app layer) can enumerate and inspect advisories directly,
// mirroring hawkey's separate hy_advisory accessor surface
// (original_source/python/hawkey/advisory-py.c).
type Advisory struct {
	data types.AdvisoryData
}

func (a Advisory) ID() string                     { return a.data.ID }
func (a Advisory) Title() string                  { return a.data.Title }
func (a Advisory) Description() string            { return a.data.Description }
func (a Advisory) Rights() string                 { return a.data.Rights }
func (a Advisory) Updated() int64                 { return a.data.Updated }
func (a Advisory) Kind() types.AdvisoryKind       { return a.data.Kind }
func (a Advisory) Severity() types.AdvisorySeverity { return a.data.Severity }
func (a Advisory) Bugs() []string                 { return a.data.Bugs }
func (a Advisory) CVEs() []string                 { return a.data.CVEs }
func (a Advisory) Packages() []types.AdvisoryPackage { return a.data.Packages }

// Advisories returns every advisory interned into the sack.
func (s *Sack) Advisories() []Advisory {
	out := make([]Advisory, 0, len(s.advisories))
	for _, a := range s.advisories {
		out = append(out, Advisory{data: a.data})
	}
	return out
}
