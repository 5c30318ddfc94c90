package store

import (
	"time"

	"github.com/pennyflow/pennyflow/internal/model"
)

// Demo data loaded on first run, when nothing has been persisted yet.

func demoTransactions() []model.Transaction {
	return []model.Transaction{
		{
			ID:          "1",
			Amount:      2500,
			Description: "Salary deposit",
			Category:    model.CategoryIncome,
			Date:        model.NewDate(2025, time.April, 25),
			Type:        model.TypeIncome,
		},
		{
			ID:          "2",
			Amount:      45.99,
			Description: "Grocery shopping",
			Category:    model.CategoryFood,
			Date:        model.NewDate(2025, time.April, 26),
			Type:        model.TypeExpense,
		},
		{
			ID:          "3",
			Amount:      9.99,
			Description: "Streaming subscription",
			Category:    model.CategoryEntertainment,
			Date:        model.NewDate(2025, time.April, 27),
			Type:        model.TypeExpense,
		},
		{
			ID:          "4",
			Amount:      35.50,
			Description: "Gas station",
			Category:    model.CategoryTransportation,
			Date:        model.NewDate(2025, time.April, 28),
			Type:        model.TypeExpense,
		},
		{
			ID:          "5",
			Amount:      75.00,
			Description: "Electricity bill",
			Category:    model.CategoryUtilities,
			Date:        model.NewDate(2025, time.April, 29),
			Type:        model.TypeExpense,
		},
	}
}

func demoBudgets() []model.Budget {
	return []model.Budget{
		{Category: model.CategoryFood, Amount: 400},
		{Category: model.CategoryTransportation, Amount: 200},
		{Category: model.CategoryEntertainment, Amount: 150},
		{Category: model.CategoryUtilities, Amount: 300},
	}
}
