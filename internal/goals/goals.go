// Package goals tracks savings targets. Goals live outside the finance
// store on purpose: they are persisted under their own key and evolve
// independently of transactions and budgets.
package goals

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pennyflow/pennyflow/internal/common"
	"github.com/pennyflow/pennyflow/internal/model"
)

// Persister is the durable storage for the goals collection.
type Persister interface {
	LoadGoals(ctx context.Context) ([]model.Goal, bool, error)
	SaveGoals(ctx context.Context, goals []model.Goal) error
}

// Tracker owns the goals collection.
type Tracker struct {
	persister Persister
	newID     func() string
	goals     []model.Goal
	mu        sync.Mutex
}

// New loads the persisted goals, seeding demo goals on first run or when
// the persisted data is unreadable.
func New(ctx context.Context, persister Persister) (*Tracker, error) {
	if persister == nil {
		return nil, fmt.Errorf("%w: persister", common.ErrMissingConfig)
	}

	goals, ok, err := persister.LoadGoals(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrCorruptedData) {
			return nil, fmt.Errorf("failed to load goals: %w", err)
		}
		slog.Warn("persisted goals unreadable, falling back to demo data", "error", err)
		ok = false
	}
	if !ok {
		goals = demoGoals()
		if err := persister.SaveGoals(ctx, goals); err != nil {
			return nil, fmt.Errorf("failed to persist seed goals: %w", err)
		}
	}

	return &Tracker{
		persister: persister,
		newID:     uuid.NewString,
		goals:     goals,
	}, nil
}

// List returns a copy of all goals.
func (t *Tracker) List() []model.Goal {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]model.Goal(nil), t.goals...)
}

// Add creates a new goal with a generated id and persists the collection.
func (t *Tracker) Add(ctx context.Context, goal model.Goal) (model.Goal, error) {
	if strings.TrimSpace(goal.Name) == "" {
		return model.Goal{}, fmt.Errorf("%w: name", common.ErrMissingField)
	}
	if goal.TargetAmount <= 0 {
		return model.Goal{}, fmt.Errorf("%w: got %v", common.ErrInvalidAmount, goal.TargetAmount)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	goal.ID = t.newID()
	next := append(append([]model.Goal(nil), t.goals...), goal)
	if err := t.persister.SaveGoals(ctx, next); err != nil {
		return model.Goal{}, fmt.Errorf("failed to persist goals: %w", err)
	}
	t.goals = next
	return goal, nil
}

// Contribute adds an amount to a goal's saved total.
func (t *Tracker) Contribute(ctx context.Context, id string, amount float64) (model.Goal, error) {
	if amount <= 0 {
		return model.Goal{}, fmt.Errorf("%w: got %v", common.ErrInvalidAmount, amount)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	next := append([]model.Goal(nil), t.goals...)
	for i, goal := range next {
		if goal.ID != id {
			continue
		}
		next[i].CurrentAmount += amount
		if err := t.persister.SaveGoals(ctx, next); err != nil {
			return model.Goal{}, fmt.Errorf("failed to persist goals: %w", err)
		}
		t.goals = next
		return next[i], nil
	}
	return model.Goal{}, fmt.Errorf("%w: goal %q", common.ErrNotFound, id)
}

// Delete removes a goal by id.
func (t *Tracker) Delete(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := make([]model.Goal, 0, len(t.goals))
	found := false
	for _, goal := range t.goals {
		if goal.ID == id {
			found = true
			continue
		}
		next = append(next, goal)
	}
	if !found {
		return fmt.Errorf("%w: goal %q", common.ErrNotFound, id)
	}

	if err := t.persister.SaveGoals(ctx, next); err != nil {
		return fmt.Errorf("failed to persist goals: %w", err)
	}
	t.goals = next
	return nil
}

func demoGoals() []model.Goal {
	return []model.Goal{
		{
			ID:            "1",
			Name:          "Emergency Fund",
			Description:   "Save for unexpected expenses",
			TargetAmount:  10000,
			CurrentAmount: 3500,
			Deadline:      model.NewDate(2025, time.December, 31),
		},
		{
			ID:            "2",
			Name:          "Vacation",
			Description:   "Summer vacation fund",
			TargetAmount:  2500,
			CurrentAmount: 800,
			Deadline:      model.NewDate(2025, time.August, 31),
		},
		{
			ID:            "3",
			Name:          "New Laptop",
			Description:   "Replace aging work computer",
			TargetAmount:  1500,
			CurrentAmount: 500,
			Deadline:      model.NewDate(2025, time.September, 30),
		},
	}
}
