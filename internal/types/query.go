package types

// FilterKey names the package attribute a Query filter tests (SPEC_FULL
// §4.4's "allowed (key, cmp)" table).
type FilterKey string

const (
	KeyName        FilterKey = "name"
	KeyArch        FilterKey = "arch"
	KeyEVR         FilterKey = "evr"
	KeySummary     FilterKey = "summary"
	KeyDescription FilterKey = "description"
	KeyURL         FilterKey = "url"
	KeyFile        FilterKey = "file"
	KeyReponame    FilterKey = "reponame"
	KeyNEVRA       FilterKey = "nevra"

	KeyVersion FilterKey = "version"
	KeyRelease FilterKey = "release"
	KeyEpoch   FilterKey = "epoch"

	KeyLocation  FilterKey = "location"
	KeySourceRPM FilterKey = "sourcerpm"

	KeyProvides    FilterKey = "provides"
	KeyRequires    FilterKey = "requires"
	KeyObsoletes   FilterKey = "obsoletes"
	KeyConflicts   FilterKey = "conflicts"
	KeyEnhances    FilterKey = "enhances"
	KeyRecommends  FilterKey = "recommends"
	KeySuggests    FilterKey = "suggests"
	KeySupplements FilterKey = "supplements"

	KeyPkg          FilterKey = "pkg"
	KeyObsoletesPkg FilterKey = "obsoletes_pkg"

	KeyAdvisory         FilterKey = "advisory"
	KeyAdvisoryBug      FilterKey = "advisory_bug"
	KeyAdvisoryCVE      FilterKey = "advisory_cve"
	KeyAdvisoryType     FilterKey = "advisory_type"
	KeyAdvisorySeverity FilterKey = "advisory_severity"
)
