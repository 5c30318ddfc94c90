package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/pennyflow/pennyflow/internal/config"
	"github.com/pennyflow/pennyflow/internal/goals"
	"github.com/pennyflow/pennyflow/internal/storage"
	"github.com/pennyflow/pennyflow/internal/store"
)

// openStorage opens the local database with proper path expansion and
// ensures the schema exists.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/pennyflow/pennyflow.db"
	}
	dbPath = config.ExpandPath(dbPath)

	st, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return st, nil
}

// openStore builds the finance store on top of local storage. The caller
// closes the returned storage.
func openStore(ctx context.Context) (*store.Store, *storage.SQLiteStorage, error) {
	st, err := openStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	s, err := store.New(ctx, st, viper.GetString("currency.default"))
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}

	return s, st, nil
}

// openGoals builds the goals tracker on top of local storage.
func openGoals(ctx context.Context) (*goals.Tracker, *storage.SQLiteStorage, error) {
	st, err := openStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	tracker, err := goals.New(ctx, st)
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}

	return tracker, st, nil
}
