package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pennyflow/pennyflow/internal/common"
	"github.com/pennyflow/pennyflow/internal/model"
)

// LoadTransactions returns the persisted transaction collection. The second
// return value reports whether anything was persisted; unparsable data
// returns an error wrapping common.ErrCorruptedData so callers can fall
// back to seed data.
func (s *SQLiteStorage) LoadTransactions(ctx context.Context) ([]model.Transaction, bool, error) {
	raw, ok, err := s.get(ctx, KeyTransactions)
	if err != nil || !ok {
		return nil, false, err
	}

	var txns []model.Transaction
	if err := json.Unmarshal(raw, &txns); err != nil {
		return nil, true, fmt.Errorf("%w: %s: %v", common.ErrCorruptedData, KeyTransactions, err)
	}
	if txns == nil {
		txns = []model.Transaction{}
	}

	slog.Debug("loaded transactions", "count", len(txns))
	return txns, true, nil
}

// SaveTransactions overwrites the persisted transaction collection.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, txns []model.Transaction) error {
	if txns == nil {
		txns = []model.Transaction{}
	}
	raw, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	return s.set(ctx, KeyTransactions, raw)
}

// LoadBudgets returns the persisted budget collection.
func (s *SQLiteStorage) LoadBudgets(ctx context.Context) ([]model.Budget, bool, error) {
	raw, ok, err := s.get(ctx, KeyBudgets)
	if err != nil || !ok {
		return nil, false, err
	}

	var budgets []model.Budget
	if err := json.Unmarshal(raw, &budgets); err != nil {
		return nil, true, fmt.Errorf("%w: %s: %v", common.ErrCorruptedData, KeyBudgets, err)
	}
	if budgets == nil {
		budgets = []model.Budget{}
	}

	slog.Debug("loaded budgets", "count", len(budgets))
	return budgets, true, nil
}

// SaveBudgets overwrites the persisted budget collection.
func (s *SQLiteStorage) SaveBudgets(ctx context.Context, budgets []model.Budget) error {
	if budgets == nil {
		budgets = []model.Budget{}
	}
	raw, err := json.Marshal(budgets)
	if err != nil {
		return fmt.Errorf("failed to encode budgets: %w", err)
	}
	return s.set(ctx, KeyBudgets, raw)
}

// LoadCurrencyCode returns the persisted currency code, e.g. "USD". Only
// the code is stored; it is resolved against the supported table at load
// time.
func (s *SQLiteStorage) LoadCurrencyCode(ctx context.Context) (string, bool, error) {
	raw, ok, err := s.get(ctx, KeyCurrency)
	if err != nil || !ok {
		return "", false, err
	}
	return string(raw), true, nil
}

// SaveCurrencyCode overwrites the persisted currency code.
func (s *SQLiteStorage) SaveCurrencyCode(ctx context.Context, code string) error {
	if err := validateString(code, "code"); err != nil {
		return err
	}
	return s.set(ctx, KeyCurrency, []byte(code))
}

// LoadGoals returns the persisted goals collection. Goals evolve
// independently of the finance store and live under their own key.
func (s *SQLiteStorage) LoadGoals(ctx context.Context) ([]model.Goal, bool, error) {
	raw, ok, err := s.get(ctx, KeyGoals)
	if err != nil || !ok {
		return nil, false, err
	}

	var goals []model.Goal
	if err := json.Unmarshal(raw, &goals); err != nil {
		return nil, true, fmt.Errorf("%w: %s: %v", common.ErrCorruptedData, KeyGoals, err)
	}
	if goals == nil {
		goals = []model.Goal{}
	}
	return goals, true, nil
}

// SaveGoals overwrites the persisted goals collection.
func (s *SQLiteStorage) SaveGoals(ctx context.Context, goals []model.Goal) error {
	if goals == nil {
		goals = []model.Goal{}
	}
	raw, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("failed to encode goals: %w", err)
	}
	return s.set(ctx, KeyGoals, raw)
}
