package core

// Repo is a named set of solvables loaded from one metadata bundle
// (C2). It is owned by the Sack that created it and freed with it.
type Repo struct {
	Name      string
	Cost      int
	GPGCheck  bool
	Installed bool

	sack *Sack
}

// reservedCommandLineRepo is the synthetic repo name used for ad-hoc
// packages added directly on the command line (SPEC_FULL §4.2).
const reservedCommandLineRepo = "@commandline"

// reservedSystemRepo is the conventional name for the installed repo
// when no other name is supplied, matching the "@System" convention
// referenced by SPEC_FULL S6.
const reservedSystemRepo = "@System"
