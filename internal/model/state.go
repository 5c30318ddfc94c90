package model

// FinanceState is the aggregate root held by the store: the canonical
// transaction and budget collections plus the ambient currency preference.
// Loading is true only while the initial load-or-seed step runs.
type FinanceState struct {
	Transactions []Transaction
	Budgets      []Budget
	Currency     Currency
	Loading      bool
}

// Clone returns a deep copy. Snapshots handed to readers must never alias
// the store-owned slices.
func (s FinanceState) Clone() FinanceState {
	out := s
	out.Transactions = make([]Transaction, len(s.Transactions))
	copy(out.Transactions, s.Transactions)
	out.Budgets = make([]Budget, len(s.Budgets))
	copy(out.Budgets, s.Budgets)
	return out
}
