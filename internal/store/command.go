package store

import "github.com/pennyflow/pennyflow/internal/model"

// Command is a tagged mutation applied to the finance state by the pure
// transition function. Every store operation funnels through one of these,
// so the whole mutation surface is enumerable.
type Command interface {
	isCommand()
}

// SetTransactions replaces the whole transaction collection. Used only
// during load-or-seed; it also clears the loading flag.
type SetTransactions struct {
	Transactions []model.Transaction
}

// AddTransaction appends a transaction that already carries its id.
type AddTransaction struct {
	Transaction model.Transaction
}

// UpdateTransaction replaces the transaction with a matching id.
type UpdateTransaction struct {
	Transaction model.Transaction
}

// DeleteTransaction removes the transaction with a matching id.
type DeleteTransaction struct {
	ID string
}

// SetBudgets replaces the whole budget collection. Used only during
// load-or-seed.
type SetBudgets struct {
	Budgets []model.Budget
}

// AddBudget appends a budget.
type AddBudget struct {
	Budget model.Budget
}

// UpdateBudget replaces the budget with a matching category.
type UpdateBudget struct {
	Budget model.Budget
}

// DeleteBudget removes the budget with a matching category.
type DeleteBudget struct {
	Category model.Category
}

// SetCurrency replaces the ambient currency preference.
type SetCurrency struct {
	Currency model.Currency
}

func (SetTransactions) isCommand()   {}
func (AddTransaction) isCommand()    {}
func (UpdateTransaction) isCommand() {}
func (DeleteTransaction) isCommand() {}
func (SetBudgets) isCommand()        {}
func (AddBudget) isCommand()         {}
func (UpdateBudget) isCommand()      {}
func (DeleteBudget) isCommand()      {}
func (SetCurrency) isCommand()       {}

// apply is the pure transition function: next state from current state plus
// a command. It never mutates its input; unknown ids and categories leave
// the collections untouched (the store reports those as errors before
// dispatching).
func apply(state model.FinanceState, cmd Command) model.FinanceState {
	next := state.Clone()

	switch c := cmd.(type) {
	case SetTransactions:
		next.Transactions = append([]model.Transaction(nil), c.Transactions...)
		next.Loading = false
	case AddTransaction:
		next.Transactions = append(next.Transactions, c.Transaction)
	case UpdateTransaction:
		for i, txn := range next.Transactions {
			if txn.ID == c.Transaction.ID {
				next.Transactions[i] = c.Transaction
			}
		}
	case DeleteTransaction:
		kept := next.Transactions[:0]
		for _, txn := range next.Transactions {
			if txn.ID != c.ID {
				kept = append(kept, txn)
			}
		}
		next.Transactions = kept
	case SetBudgets:
		next.Budgets = append([]model.Budget(nil), c.Budgets...)
	case AddBudget:
		next.Budgets = append(next.Budgets, c.Budget)
	case UpdateBudget:
		for i, b := range next.Budgets {
			if b.Category == c.Budget.Category {
				next.Budgets[i] = c.Budget
			}
		}
	case DeleteBudget:
		kept := next.Budgets[:0]
		for _, b := range next.Budgets {
			if b.Category != c.Category {
				kept = append(kept, b)
			}
		}
		next.Budgets = kept
	case SetCurrency:
		next.Currency = c.Currency
	}

	return next
}
