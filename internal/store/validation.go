package store

import (
	"fmt"
	"strings"

	"github.com/pennyflow/pennyflow/internal/common"
	"github.com/pennyflow/pennyflow/internal/model"
)

// validateTransaction checks the fields every stored transaction must
// carry. The id is checked separately: adds generate it, updates require it.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", common.ErrMissingField)
	}
	if txn.Amount <= 0 {
		return fmt.Errorf("%w: got %v", common.ErrInvalidAmount, txn.Amount)
	}
	if strings.TrimSpace(txn.Description) == "" {
		return fmt.Errorf("%w: description", common.ErrMissingField)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: date", common.ErrMissingField)
	}
	if !txn.Category.IsValid() {
		return fmt.Errorf("%w: %q", common.ErrUnknownCategory, txn.Category)
	}
	if !txn.Type.IsValid() {
		return fmt.Errorf("%w: type %q", common.ErrMissingField, txn.Type)
	}
	return nil
}

// validateBudget checks the fields every stored budget must carry.
func validateBudget(budget *model.Budget) error {
	if budget == nil {
		return fmt.Errorf("%w: budget", common.ErrMissingField)
	}
	if !budget.Category.IsValid() {
		return fmt.Errorf("%w: %q", common.ErrUnknownCategory, budget.Category)
	}
	if budget.Amount <= 0 {
		return fmt.Errorf("%w: got %v", common.ErrInvalidAmount, budget.Amount)
	}
	return nil
}
