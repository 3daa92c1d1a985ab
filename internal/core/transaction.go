package core

import "rpmsack/internal/types"

// TransactionEntry pairs a package with why it appears in the
// transaction (SPEC_FULL §6 Reasons).
type TransactionEntry struct {
	Package Package
	Reason  types.Reason
}

// UpgradePair is an (incoming, outgoing) package pair for the
// upgrades/downgrades transaction lists.
type UpgradePair struct {
	New Package
	Old Package
}

// Transaction is the result of a successfully run Goal (SPEC_FULL §3).
// Internal ordering follows the solver's documented transaction order:
// installs before obsoletes, obsoletes before erasures (§5).
type Transaction struct {
	Installs   []TransactionEntry
	Erasures   []TransactionEntry
	Upgrades   []UpgradePair
	Downgrades []UpgradePair
	Reinstalls []TransactionEntry
	Obsoleted  []TransactionEntry
	Unneeded   []TransactionEntry
}
