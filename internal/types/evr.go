package types

import "fmt"

// EVR is an epoch/version/release triple. EpochSet distinguishes an
// explicit epoch of 0 from "no epoch was present in the source string",
// which matters for Subject parsing (S2) even though the two compare
// identically.
type EVR struct {
	Epoch    int
	EpochSet bool
	Version  string
	Release  string
}

// String renders the canonical epoch:version-release form, eliding the
// epoch when it is zero (SPEC_FULL §6 NEVRA canonical rendering).
func (e EVR) String() string {
	v := e.Version
	if e.Release != "" {
		v = v + "-" + e.Release
	}
	if e.Epoch != 0 {
		return fmt.Sprintf("%d:%s", e.Epoch, v)
	}
	return v
}

// NEVRA is a fully-qualified name/epoch/version/release/arch tuple, as
// produced by Subject parsing or read off a Package.
type NEVRA struct {
	Name  string
	EVR   EVR
	Arch  string
}

// String renders "name-[epoch:]version-release.arch".
func (n NEVRA) String() string {
	s := n.Name + "-" + n.EVR.String()
	if n.Arch != "" {
		s += "." + n.Arch
	}
	return s
}

// Equal compares name/epoch/version/release/arch, treating an unset
// epoch as equal to epoch zero (full NEVRA equality per §4.8).
func (n NEVRA) Equal(o NEVRA) bool {
	return n.Name == o.Name &&
		n.EVR.Epoch == o.EVR.Epoch &&
		n.EVR.Version == o.EVR.Version &&
		n.EVR.Release == o.EVR.Release &&
		n.Arch == o.Arch
}
