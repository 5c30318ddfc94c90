package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyflow/pennyflow/internal/common"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/storage"
)

// fakePersister is an in-memory Persister with injectable failures.
type fakePersister struct {
	txns           []model.Transaction
	budgets        []model.Budget
	code           string
	txnsPresent    bool
	budgetsPresent bool
	codePresent    bool
	corruptTxns    bool
	corruptBudgets bool
	failSaves      bool
	txnSaves       int
	budgetSaves    int
}

var errSaveFailed = errors.New("save failed")

func (f *fakePersister) LoadTransactions(_ context.Context) ([]model.Transaction, bool, error) {
	if f.corruptTxns {
		return nil, true, fmt.Errorf("%w: transactions", common.ErrCorruptedData)
	}
	return f.txns, f.txnsPresent, nil
}

func (f *fakePersister) SaveTransactions(_ context.Context, txns []model.Transaction) error {
	if f.failSaves {
		return errSaveFailed
	}
	f.txns = append([]model.Transaction(nil), txns...)
	f.txnsPresent = true
	f.txnSaves++
	return nil
}

func (f *fakePersister) LoadBudgets(_ context.Context) ([]model.Budget, bool, error) {
	if f.corruptBudgets {
		return nil, true, fmt.Errorf("%w: budgets", common.ErrCorruptedData)
	}
	return f.budgets, f.budgetsPresent, nil
}

func (f *fakePersister) SaveBudgets(_ context.Context, budgets []model.Budget) error {
	if f.failSaves {
		return errSaveFailed
	}
	f.budgets = append([]model.Budget(nil), budgets...)
	f.budgetsPresent = true
	f.budgetSaves++
	return nil
}

func (f *fakePersister) LoadCurrencyCode(_ context.Context) (string, bool, error) {
	return f.code, f.codePresent, nil
}

func (f *fakePersister) SaveCurrencyCode(_ context.Context, code string) error {
	if f.failSaves {
		return errSaveFailed
	}
	f.code = code
	f.codePresent = true
	return nil
}

func newTestStore(t *testing.T) (*Store, *fakePersister) {
	t.Helper()
	persister := &fakePersister{}
	s, err := New(context.Background(), persister, "")
	require.NoError(t, err)
	return s, persister
}

func validTransaction() model.Transaction {
	return model.Transaction{
		Amount:      12.50,
		Description: "Lunch at the cafe",
		Category:    model.CategoryFood,
		Date:        model.NewDate(2025, time.May, 2),
		Type:        model.TypeExpense,
	}
}

func TestNew_SeedsDemoDataOnFirstRun(t *testing.T) {
	s, persister := newTestStore(t)

	state := s.Snapshot()
	assert.False(t, state.Loading)
	assert.Len(t, state.Transactions, 5)
	assert.Len(t, state.Budgets, 4)
	assert.Equal(t, "USD", state.Currency.Code)

	// Seeds are written out so a restart sees the same data
	assert.True(t, persister.txnsPresent)
	assert.True(t, persister.budgetsPresent)
	assert.Equal(t, state.Transactions, persister.txns)
	assert.Equal(t, state.Budgets, persister.budgets)
}

func TestNew_UsesPersistedDataVerbatim(t *testing.T) {
	persisted := []model.Transaction{
		{
			ID:          "abc",
			Amount:      5,
			Description: "coffee",
			Category:    model.CategoryFood,
			Date:        model.NewDate(2025, time.January, 1),
			Type:        model.TypeExpense,
		},
	}
	persister := &fakePersister{
		txns:           persisted,
		txnsPresent:    true,
		budgets:        []model.Budget{},
		budgetsPresent: true,
	}

	s, err := New(context.Background(), persister, "")
	require.NoError(t, err)

	state := s.Snapshot()
	assert.Equal(t, persisted, state.Transactions)
	assert.Empty(t, state.Budgets)
	// Nothing changed, nothing rewritten
	assert.Zero(t, persister.txnSaves)
	assert.Zero(t, persister.budgetSaves)
}

func TestNew_CollectionsSeedIndependently(t *testing.T) {
	// Corrupted transactions fall back to the seed; the intact budget
	// collection loads as persisted.
	persister := &fakePersister{
		corruptTxns:    true,
		budgets:        []model.Budget{{Category: model.CategoryTravel, Amount: 999}},
		budgetsPresent: true,
	}

	s, err := New(context.Background(), persister, "")
	require.NoError(t, err)

	state := s.Snapshot()
	assert.Len(t, state.Transactions, 5)
	require.Len(t, state.Budgets, 1)
	assert.Equal(t, model.CategoryTravel, state.Budgets[0].Category)
}

func TestNew_DefaultCurrencyFromConfig(t *testing.T) {
	persister := &fakePersister{}
	s, err := New(context.Background(), persister, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "EUR", s.Currency().Code)
}

func TestNew_PersistedCurrencyWinsOverConfig(t *testing.T) {
	persister := &fakePersister{code: "INR", codePresent: true}
	s, err := New(context.Background(), persister, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "INR", s.Currency().Code)
}

func TestNew_UnsupportedPersistedCurrencyFallsBack(t *testing.T) {
	persister := &fakePersister{code: "DOGE", codePresent: true}
	s, err := New(context.Background(), persister, "")
	require.NoError(t, err)
	assert.Equal(t, "USD", s.Currency().Code)
}

func TestAddTransaction(t *testing.T) {
	s, persister := newTestStore(t)
	ctx := context.Background()
	before := s.Snapshot()

	created, err := s.AddTransaction(ctx, validTransaction())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	state := s.Snapshot()
	assert.Len(t, state.Transactions, len(before.Transactions)+1)
	assert.Equal(t, created, state.Transactions[len(state.Transactions)-1])
	// Whole collection persisted
	assert.Equal(t, state.Transactions, persister.txns)
}

func TestAddTransaction_GeneratedIDsAreUnique(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for _, txn := range s.Snapshot().Transactions {
		seen[txn.ID] = true
	}

	for i := 0; i < 100; i++ {
		created, err := s.AddTransaction(ctx, validTransaction())
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "id %s reused", created.ID)
		seen[created.ID] = true
	}
}

func TestAddTransaction_Validation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		mutate  func(*model.Transaction)
		wantErr error
		name    string
	}{
		{func(txn *model.Transaction) { txn.Amount = 0 }, common.ErrInvalidAmount, "zero amount"},
		{func(txn *model.Transaction) { txn.Amount = -5 }, common.ErrInvalidAmount, "negative amount"},
		{func(txn *model.Transaction) { txn.Description = "  " }, common.ErrMissingField, "blank description"},
		{func(txn *model.Transaction) { txn.Date = model.Date{} }, common.ErrMissingField, "zero date"},
		{func(txn *model.Transaction) { txn.Category = "snacks" }, common.ErrUnknownCategory, "unknown category"},
		{func(txn *model.Transaction) { txn.Type = "transfer" }, common.ErrMissingField, "bad type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := s.Snapshot()

			txn := validTransaction()
			tt.mutate(&txn)

			_, err := s.AddTransaction(ctx, txn)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before.Transactions, s.Snapshot().Transactions)
		})
	}
}

func TestUpdateTransaction(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, err := s.AddTransaction(ctx, validTransaction())
	require.NoError(t, err)

	created.Amount = 99.99
	created.Category = model.CategoryEntertainment
	require.NoError(t, s.UpdateTransaction(ctx, created))

	var found *model.Transaction
	for _, txn := range s.Snapshot().Transactions {
		if txn.ID == created.ID {
			t := txn
			found = &t
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 99.99, found.Amount)
	assert.Equal(t, model.CategoryEntertainment, found.Category)
}

func TestUpdateTransaction_UnknownIDLeavesStateUnchanged(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	before := s.Snapshot()

	txn := validTransaction()
	txn.ID = "no-such-id"

	err := s.UpdateTransaction(ctx, txn)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, before.Transactions, s.Snapshot().Transactions)
}

func TestDeleteTransaction(t *testing.T) {
	s, persister := newTestStore(t)
	ctx := context.Background()

	created, err := s.AddTransaction(ctx, validTransaction())
	require.NoError(t, err)
	countAfterAdd := len(s.Snapshot().Transactions)

	require.NoError(t, s.DeleteTransaction(ctx, created.ID))

	state := s.Snapshot()
	assert.Len(t, state.Transactions, countAfterAdd-1)
	for _, txn := range state.Transactions {
		assert.NotEqual(t, created.ID, txn.ID)
	}
	assert.Equal(t, state.Transactions, persister.txns)
}

func TestDeleteTransaction_UnknownID(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Snapshot()

	err := s.DeleteTransaction(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, before.Transactions, s.Snapshot().Transactions)
}

func TestAddBudget(t *testing.T) {
	s, persister := newTestStore(t)
	ctx := context.Background()

	budget := model.Budget{Category: model.CategoryTravel, Amount: 500}
	require.NoError(t, s.AddBudget(ctx, budget))

	state := s.Snapshot()
	assert.Contains(t, state.Budgets, budget)
	assert.Equal(t, state.Budgets, persister.budgets)
}

func TestAddBudget_DuplicateCategoryRejected(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// The demo seed already has a food budget
	before := s.Snapshot()

	err := s.AddBudget(ctx, model.Budget{Category: model.CategoryFood, Amount: 100})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDuplicateCategory)
	assert.Equal(t, before.Budgets, s.Snapshot().Budgets)
}

func TestAddBudget_Validation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	err := s.AddBudget(ctx, model.Budget{Category: model.CategoryTravel, Amount: 0})
	assert.ErrorIs(t, err, common.ErrInvalidAmount)

	err = s.AddBudget(ctx, model.Budget{Category: "misc", Amount: 100})
	assert.ErrorIs(t, err, common.ErrUnknownCategory)
}

func TestUpdateBudget(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpdateBudget(ctx, model.Budget{Category: model.CategoryFood, Amount: 650}))

	for _, budget := range s.Snapshot().Budgets {
		if budget.Category == model.CategoryFood {
			assert.Equal(t, 650.0, budget.Amount)
			return
		}
	}
	t.Fatal("food budget missing")
}

func TestUpdateBudget_UnknownCategoryLeavesStateUnchanged(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Snapshot()

	err := s.UpdateBudget(context.Background(), model.Budget{Category: model.CategoryGifts, Amount: 50})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, before.Budgets, s.Snapshot().Budgets)
}

func TestDeleteBudget(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteBudget(ctx, model.CategoryFood))

	for _, budget := range s.Snapshot().Budgets {
		assert.NotEqual(t, model.CategoryFood, budget.Category)
	}

	err := s.DeleteBudget(ctx, model.CategoryFood)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSetCurrency(t *testing.T) {
	s, persister := newTestStore(t)
	ctx := context.Background()

	currency, err := s.SetCurrency(ctx, "GBP")
	require.NoError(t, err)
	assert.Equal(t, "£", currency.Symbol)
	assert.Equal(t, "GBP", s.Currency().Code)
	assert.Equal(t, "GBP", persister.code)

	_, err = s.SetCurrency(ctx, "DOGE")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, "GBP", s.Currency().Code)
}

func TestMutation_NotCommittedWhenPersistFails(t *testing.T) {
	s, persister := newTestStore(t)
	ctx := context.Background()
	before := s.Snapshot()

	persister.failSaves = true

	_, err := s.AddTransaction(ctx, validTransaction())
	require.Error(t, err)
	assert.Equal(t, before.Transactions, s.Snapshot().Transactions)

	err = s.AddBudget(ctx, model.Budget{Category: model.CategoryTravel, Amount: 100})
	require.Error(t, err)
	assert.Equal(t, before.Budgets, s.Snapshot().Budgets)
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	s, _ := newTestStore(t)

	snapshot := s.Snapshot()
	snapshot.Transactions[0].Amount = -1

	assert.NotEqual(t, -1.0, s.Snapshot().Transactions[0].Amount)
}

func TestStore_SessionRestartRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pennyflow.db")
	ctx := context.Background()

	st, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Migrate(ctx))

	s, err := New(ctx, st, "")
	require.NoError(t, err)

	created, err := s.AddTransaction(ctx, validTransaction())
	require.NoError(t, err)
	require.NoError(t, s.AddBudget(ctx, model.Budget{Category: model.CategoryTravel, Amount: 800}))
	_, err = s.SetCurrency(ctx, "CAD")
	require.NoError(t, err)

	firstState := s.Snapshot()
	require.NoError(t, st.Close())

	// Simulated restart: fresh storage and store over the same file
	st2, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer st2.Close()
	require.NoError(t, st2.Migrate(ctx))

	s2, err := New(ctx, st2, "")
	require.NoError(t, err)

	secondState := s2.Snapshot()
	assert.Equal(t, firstState.Transactions, secondState.Transactions)
	assert.Equal(t, firstState.Budgets, secondState.Budgets)
	assert.Equal(t, "CAD", secondState.Currency.Code)

	// The added transaction survived with its id intact
	found := false
	for _, txn := range secondState.Transactions {
		if txn.ID == created.ID {
			found = true
			assert.Equal(t, created, txn)
		}
	}
	assert.True(t, found)
}

func TestStore_EmptyCollectionsSurviveRestart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")
	ctx := context.Background()

	st, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Migrate(ctx))

	s, err := New(ctx, st, "")
	require.NoError(t, err)

	// Delete everything the seed created
	for _, txn := range s.Snapshot().Transactions {
		require.NoError(t, s.DeleteTransaction(ctx, txn.ID))
	}
	for _, budget := range s.Snapshot().Budgets {
		require.NoError(t, s.DeleteBudget(ctx, budget.Category))
	}
	require.NoError(t, st.Close())

	st2, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer st2.Close()
	require.NoError(t, st2.Migrate(ctx))

	s2, err := New(ctx, st2, "")
	require.NoError(t, err)

	// Empty means empty: the demo seed must not come back
	state := s2.Snapshot()
	assert.Empty(t, state.Transactions)
	assert.Empty(t, state.Budgets)
}
