// Package store holds the canonical finance state and mediates all
// mutation. Operations validate their input, apply a tagged command through
// the pure transition function, persist the affected collection, and only
// then commit the new state. Readers get deep-copied snapshots.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/pennyflow/pennyflow/internal/common"
	"github.com/pennyflow/pennyflow/internal/model"
)

// Persister is the durable storage the store loads from and saves to.
// Saves are whole-collection overwrites.
type Persister interface {
	LoadTransactions(ctx context.Context) ([]model.Transaction, bool, error)
	SaveTransactions(ctx context.Context, txns []model.Transaction) error
	LoadBudgets(ctx context.Context) ([]model.Budget, bool, error)
	SaveBudgets(ctx context.Context, budgets []model.Budget) error
	LoadCurrencyCode(ctx context.Context) (string, bool, error)
	SaveCurrencyCode(ctx context.Context, code string) error
}

// Store is the single source of truth for transactions, budgets, and the
// currency preference. All access is serialized behind the mutex; every
// operation runs to completion before another may start.
type Store struct {
	persister Persister
	newID     func() string
	state     model.FinanceState
	mu        sync.RWMutex
}

// New builds a store by loading persisted collections, seeding any that are
// absent or unreadable with demo data. defaultCurrency is a currency code
// used when no preference has been persisted; empty means USD.
func New(ctx context.Context, persister Persister, defaultCurrency string) (*Store, error) {
	if persister == nil {
		return nil, fmt.Errorf("%w: persister", common.ErrMissingConfig)
	}

	s := &Store{
		persister: persister,
		newID:     uuid.NewString,
		state:     model.FinanceState{Loading: true},
	}

	txns, seededTxns, err := loadOrSeed(ctx, persister.LoadTransactions, demoTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	budgets, seededBudgets, err := loadOrSeed(ctx, persister.LoadBudgets, demoBudgets)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	currency, err := resolveCurrency(ctx, persister, defaultCurrency)
	if err != nil {
		return nil, err
	}

	s.state = apply(s.state, SetTransactions{Transactions: txns})
	s.state = apply(s.state, SetBudgets{Budgets: budgets})
	s.state = apply(s.state, SetCurrency{Currency: currency})

	// First run: write the seeds out so a restart sees the same data.
	if seededTxns {
		if err := persister.SaveTransactions(ctx, s.state.Transactions); err != nil {
			return nil, fmt.Errorf("failed to persist seed transactions: %w", err)
		}
	}
	if seededBudgets {
		if err := persister.SaveBudgets(ctx, s.state.Budgets); err != nil {
			return nil, fmt.Errorf("failed to persist seed budgets: %w", err)
		}
	}

	slog.Debug("finance store ready",
		"transactions", len(s.state.Transactions),
		"budgets", len(s.state.Budgets),
		"currency", currency.Code)
	return s, nil
}

// loadOrSeed resolves one collection: persisted data is used verbatim,
// absent or corrupted data falls back to the demo seed.
func loadOrSeed[T any](ctx context.Context, load func(context.Context) ([]T, bool, error), seed func() []T) (items []T, seeded bool, err error) {
	items, ok, err := load(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrCorruptedData) {
			return nil, false, err
		}
		slog.Warn("persisted data unreadable, falling back to demo data", "error", err)
		ok = false
	}
	if !ok {
		return seed(), true, nil
	}
	return items, false, nil
}

func resolveCurrency(ctx context.Context, persister Persister, defaultCurrency string) (model.Currency, error) {
	code, ok, err := persister.LoadCurrencyCode(ctx)
	if err != nil {
		return model.Currency{}, fmt.Errorf("failed to load currency preference: %w", err)
	}
	if ok {
		if currency, found := model.LookupCurrency(code); found {
			return currency, nil
		}
		slog.Warn("persisted currency code not supported, using default", "code", code)
	}
	if defaultCurrency != "" {
		if currency, found := model.LookupCurrency(defaultCurrency); found {
			return currency, nil
		}
		slog.Warn("configured default currency not supported", "code", defaultCurrency)
	}
	return model.DefaultCurrency(), nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.FinanceState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Currency returns the current currency preference.
func (s *Store) Currency() model.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Currency
}

// AddTransaction validates the input, assigns a fresh id, appends the
// transaction, and persists the collection. The stored transaction is
// returned with its generated id.
func (s *Store) AddTransaction(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	if err := validateTransaction(&txn); err != nil {
		return model.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txn.ID = s.newID()
	next := apply(s.state, AddTransaction{Transaction: txn})
	if err := s.persister.SaveTransactions(ctx, next.Transactions); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to persist transactions: %w", err)
	}
	s.state = next

	slog.Debug("transaction added", "id", txn.ID, "category", txn.Category, "amount", txn.Amount)
	return txn, nil
}

// UpdateTransaction replaces the transaction matching the given id.
// Unknown ids are reported as ErrNotFound and leave the collection
// unchanged.
func (s *Store) UpdateTransaction(ctx context.Context, txn model.Transaction) error {
	if txn.ID == "" {
		return fmt.Errorf("%w: id", common.ErrMissingField)
	}
	if err := validateTransaction(&txn); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasTransaction(txn.ID) {
		return fmt.Errorf("%w: transaction %q", common.ErrNotFound, txn.ID)
	}

	next := apply(s.state, UpdateTransaction{Transaction: txn})
	if err := s.persister.SaveTransactions(ctx, next.Transactions); err != nil {
		return fmt.Errorf("failed to persist transactions: %w", err)
	}
	s.state = next
	return nil
}

// DeleteTransaction removes the transaction matching the given id.
// Unknown ids are reported as ErrNotFound.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id", common.ErrMissingField)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasTransaction(id) {
		return fmt.Errorf("%w: transaction %q", common.ErrNotFound, id)
	}

	next := apply(s.state, DeleteTransaction{ID: id})
	if err := s.persister.SaveTransactions(ctx, next.Transactions); err != nil {
		return fmt.Errorf("failed to persist transactions: %w", err)
	}
	s.state = next
	return nil
}

// AddBudget appends a budget for a category that has none yet. A second
// budget for the same category is rejected with ErrDuplicateCategory; the
// category is the key of the collection.
func (s *Store) AddBudget(ctx context.Context, budget model.Budget) error {
	if err := validateBudget(&budget); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasBudget(budget.Category) {
		return fmt.Errorf("%w: %s", common.ErrDuplicateCategory, budget.Category)
	}

	next := apply(s.state, AddBudget{Budget: budget})
	if err := s.persister.SaveBudgets(ctx, next.Budgets); err != nil {
		return fmt.Errorf("failed to persist budgets: %w", err)
	}
	s.state = next

	slog.Debug("budget added", "category", budget.Category, "amount", budget.Amount)
	return nil
}

// UpdateBudget replaces the amount of the budget keyed by the given
// category. The category itself is immutable; changing it means delete plus
// create. Unknown categories are reported as ErrNotFound.
func (s *Store) UpdateBudget(ctx context.Context, budget model.Budget) error {
	if err := validateBudget(&budget); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasBudget(budget.Category) {
		return fmt.Errorf("%w: budget for %s", common.ErrNotFound, budget.Category)
	}

	next := apply(s.state, UpdateBudget{Budget: budget})
	if err := s.persister.SaveBudgets(ctx, next.Budgets); err != nil {
		return fmt.Errorf("failed to persist budgets: %w", err)
	}
	s.state = next
	return nil
}

// DeleteBudget removes the budget keyed by the given category. Unknown
// categories are reported as ErrNotFound.
func (s *Store) DeleteBudget(ctx context.Context, category model.Category) error {
	if !category.IsValid() {
		return fmt.Errorf("%w: %q", common.ErrUnknownCategory, category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasBudget(category) {
		return fmt.Errorf("%w: budget for %s", common.ErrNotFound, category)
	}

	next := apply(s.state, DeleteBudget{Category: category})
	if err := s.persister.SaveBudgets(ctx, next.Budgets); err != nil {
		return fmt.Errorf("failed to persist budgets: %w", err)
	}
	s.state = next
	return nil
}

// SetCurrency switches the ambient currency preference. Only the code is
// persisted; it takes effect for all subsequent formatting and never
// rewrites stored amounts.
func (s *Store) SetCurrency(ctx context.Context, code string) (model.Currency, error) {
	currency, found := model.LookupCurrency(code)
	if !found {
		return model.Currency{}, fmt.Errorf("%w: currency %q", common.ErrNotFound, code)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := apply(s.state, SetCurrency{Currency: currency})
	if err := s.persister.SaveCurrencyCode(ctx, currency.Code); err != nil {
		return model.Currency{}, fmt.Errorf("failed to persist currency preference: %w", err)
	}
	s.state = next

	slog.Debug("currency preference changed", "code", currency.Code)
	return currency, nil
}

// callers must hold s.mu.
func (s *Store) hasTransaction(id string) bool {
	for _, txn := range s.state.Transactions {
		if txn.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) hasBudget(category model.Category) bool {
	for _, b := range s.state.Budgets {
		if b.Category == category {
			return true
		}
	}
	return false
}
