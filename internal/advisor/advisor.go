// Package advisor implements the deterministic heuristics behind the
// "insights" features: keyword category prediction, statistical outlier
// detection, and savings suggestions. These are documented heuristics with
// exact contracts, not learned models.
package advisor

import (
	"math"
	"sort"
	"strings"

	"github.com/pennyflow/pennyflow/internal/model"
)

// PredictCategory guesses a category from a free-text description by
// substring matching. Categories are tried in canonical order and the first
// with any matching keyword wins; descriptions matching nothing fall
// through to other.
func PredictCategory(description string) model.Category {
	normalized := strings.ToLower(description)

	for _, category := range model.Categories() {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(normalized, keyword) {
				return category
			}
		}
	}
	return model.CategoryOther
}

// DetectAnomalies flags expense transactions whose amount is more than two
// population standard deviations above their category's mean, computed over
// the whole input. The comparison is strict, so a category with a single
// expense (stddev zero) never flags it. Results keep the input's relative
// order.
func DetectAnomalies(txns []model.Transaction) []model.Transaction {
	amounts := make(map[model.Category][]float64)
	for _, txn := range txns {
		if txn.Type == model.TypeExpense {
			amounts[txn.Category] = append(amounts[txn.Category], txn.Amount)
		}
	}

	type stat struct {
		mean   float64
		stdDev float64
	}
	stats := make(map[model.Category]stat, len(amounts))
	for category, values := range amounts {
		var sum float64
		for _, v := range values {
			sum += v
		}
		mean := sum / float64(len(values))

		var squaredDiffs float64
		for _, v := range values {
			squaredDiffs += (v - mean) * (v - mean)
		}
		stats[category] = stat{
			mean:   mean,
			stdDev: math.Sqrt(squaredDiffs / float64(len(values))),
		}
	}

	var anomalies []model.Transaction
	for _, txn := range txns {
		if txn.Type != model.TypeExpense {
			continue
		}
		st, ok := stats[txn.Category]
		if ok && txn.Amount > st.mean+2*st.stdDev {
			anomalies = append(anomalies, txn)
		}
	}
	return anomalies
}

// Suggestion is one savings opportunity: cut 15% of a non-essential
// category's total spend.
type Suggestion struct {
	Category  model.Category
	Potential float64
}

// SuggestSavings totals all expense spend per category and, for each
// non-essential category with anything spent, suggests saving 15% of it,
// rounded to cents. Results are sorted by descending potential.
func SuggestSavings(txns []model.Transaction) []Suggestion {
	spending := make(map[model.Category]float64)
	for _, txn := range txns {
		if txn.Type == model.TypeExpense {
			spending[txn.Category] += txn.Amount
		}
	}

	var suggestions []Suggestion
	for _, category := range nonEssential {
		if amount := spending[category]; amount > 0 {
			suggestions = append(suggestions, Suggestion{
				Category:  category,
				Potential: roundCents(amount * 0.15),
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Potential > suggestions[j].Potential
	})
	return suggestions
}

// roundCents rounds to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
