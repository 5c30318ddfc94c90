package advisor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyflow/pennyflow/internal/model"
)

func expense(id string, category model.Category, amount float64) model.Transaction {
	return model.Transaction{
		ID:          id,
		Amount:      amount,
		Description: "test",
		Category:    category,
		Date:        model.NewDate(2025, time.April, 1),
		Type:        model.TypeExpense,
	}
}

func TestPredictCategory(t *testing.T) {
	tests := []struct {
		description string
		want        model.Category
	}{
		{"Grocery shopping at Walmart", model.CategoryFood},
		{"Flight to Paris", model.CategoryTravel},
		{"xyz123", model.CategoryOther},
		{"", model.CategoryOther},
		{"NETFLIX SUBSCRIPTION", model.CategoryEntertainment},
		{"Monthly rent", model.CategoryHousing},
		{"Salary deposit", model.CategoryIncome},
		// "gas" appears in both transportation and utilities keyword
		// lists; transportation wins because it comes first in
		// canonical order.
		{"Gas station", model.CategoryTransportation},
		// "coffee" matches food before "shop" could match shopping.
		{"Coffee shop", model.CategoryFood},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, PredictCategory(tt.description))
		})
	}
}

func TestPredictCategory_CaseInsensitive(t *testing.T) {
	assert.Equal(t, PredictCategory("grocery run"), PredictCategory("GROCERY RUN"))
}

func TestDetectAnomalies_ExactThresholdNotFlagged(t *testing.T) {
	// Four 10s and one 100: mean=28, population stddev=36, threshold
	// exactly 100. The comparison is strict, so the 100 sits on the
	// boundary and is not an anomaly.
	txns := []model.Transaction{
		expense("1", model.CategoryFood, 10),
		expense("2", model.CategoryFood, 10),
		expense("3", model.CategoryFood, 10),
		expense("4", model.CategoryFood, 10),
		expense("5", model.CategoryFood, 100),
	}

	assert.Empty(t, DetectAnomalies(txns))
}

func TestDetectAnomalies_FlagsOutlier(t *testing.T) {
	// Five 10s and one 200: mean=41.67, stddev=70.83, threshold=183.3.
	txns := []model.Transaction{
		expense("1", model.CategoryFood, 10),
		expense("2", model.CategoryFood, 10),
		expense("3", model.CategoryFood, 10),
		expense("4", model.CategoryFood, 10),
		expense("5", model.CategoryFood, 10),
		expense("6", model.CategoryFood, 200),
	}

	anomalies := DetectAnomalies(txns)
	require.Len(t, anomalies, 1)
	assert.Equal(t, "6", anomalies[0].ID)
}

func TestDetectAnomalies_PerCategoryStats(t *testing.T) {
	// The food outlier must not be judged against travel's numbers.
	txns := []model.Transaction{
		expense("1", model.CategoryFood, 10),
		expense("2", model.CategoryFood, 10),
		expense("3", model.CategoryFood, 10),
		expense("4", model.CategoryFood, 10),
		expense("5", model.CategoryFood, 10),
		expense("6", model.CategoryFood, 200),
		expense("7", model.CategoryTravel, 1200),
		expense("8", model.CategoryTravel, 1150),
	}

	anomalies := DetectAnomalies(txns)
	require.Len(t, anomalies, 1)
	assert.Equal(t, model.CategoryFood, anomalies[0].Category)
}

func TestDetectAnomalies_IgnoresIncomeAndSingletons(t *testing.T) {
	income := model.Transaction{
		ID:       "inc",
		Amount:   100000,
		Category: model.CategoryIncome,
		Date:     model.NewDate(2025, time.April, 1),
		Type:     model.TypeIncome,
	}
	// A category with a single expense has zero stddev; strict
	// comparison means it can never exceed its own mean.
	single := expense("one", model.CategoryHealthcare, 9999)

	assert.Empty(t, DetectAnomalies([]model.Transaction{income, single}))
}

func TestDetectAnomalies_PreservesInputOrder(t *testing.T) {
	txns := []model.Transaction{
		expense("big-early", model.CategoryFood, 500),
		expense("1", model.CategoryFood, 10),
		expense("2", model.CategoryFood, 10),
		expense("3", model.CategoryFood, 10),
		expense("4", model.CategoryFood, 10),
		expense("5", model.CategoryFood, 10),
		expense("big-late", model.CategoryShopping, 900),
		expense("s1", model.CategoryShopping, 20),
		expense("s2", model.CategoryShopping, 20),
		expense("s3", model.CategoryShopping, 20),
		expense("s4", model.CategoryShopping, 20),
		expense("s5", model.CategoryShopping, 20),
	}

	anomalies := DetectAnomalies(txns)
	require.Len(t, anomalies, 2)
	assert.Equal(t, "big-early", anomalies[0].ID)
	assert.Equal(t, "big-late", anomalies[1].ID)
}

func TestSuggestSavings_SingleCategory(t *testing.T) {
	txns := []model.Transaction{
		expense("1", model.CategoryEntertainment, 100),
	}

	suggestions := SuggestSavings(txns)
	require.Len(t, suggestions, 1)
	assert.Equal(t, model.CategoryEntertainment, suggestions[0].Category)
	assert.InDelta(t, 15.00, suggestions[0].Potential, 0.001)
}

func TestSuggestSavings_SortedByPotential(t *testing.T) {
	txns := []model.Transaction{
		expense("1", model.CategoryEntertainment, 100),
		expense("2", model.CategoryTravel, 1000),
		expense("3", model.CategoryShopping, 300),
	}

	suggestions := SuggestSavings(txns)
	require.Len(t, suggestions, 3)
	assert.Equal(t, model.CategoryTravel, suggestions[0].Category)
	assert.InDelta(t, 150.00, suggestions[0].Potential, 0.001)
	assert.Equal(t, model.CategoryShopping, suggestions[1].Category)
	assert.Equal(t, model.CategoryEntertainment, suggestions[2].Category)
}

func TestSuggestSavings_OmitsEssentialAndZeroSpend(t *testing.T) {
	txns := []model.Transaction{
		expense("1", model.CategoryHousing, 2000),
		expense("2", model.CategoryFood, 400),
		expense("3", model.CategoryHealthcare, 150),
	}

	assert.Empty(t, SuggestSavings(txns))
}

func TestSuggestSavings_RoundsToCents(t *testing.T) {
	txns := []model.Transaction{
		expense("1", model.CategoryShopping, 10.37),
	}

	suggestions := SuggestSavings(txns)
	require.Len(t, suggestions, 1)
	// 10.37 * 0.15 = 1.5555 -> 1.56
	assert.InDelta(t, 1.56, suggestions[0].Potential, 0.0001)
}
