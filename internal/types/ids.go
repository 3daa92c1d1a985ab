package types

// SolvableID is the small interned integer identifying a package (or
// advisory, or system pseudo-solvable) within a pool. Id 0 is never a
// real package.
type SolvableID int32

// InvalidID is returned by lookups that find nothing.
const InvalidID SolvableID = 0

// SystemID is the reserved pseudo-solvable representing the running
// system; never a real installed or available package.
const SystemID SolvableID = -1

// NameID, ArchID and EVRID are interned string ids owned by the pool.
type NameID int32
type ArchID int32
type EVRID int32
type RelDepID int32

// InternedNone is the sentinel for "not interned" / "absent" across all
// interned id types (epoch absence is distinguished separately, see EVR).
const InternedNone = 0
