package model

// Budget is a monthly spending cap for a single category. The category is
// the key: at most one budget per category exists at any time, and the
// category is immutable once created.
type Budget struct {
	Category Category `json:"category"`
	Amount   float64  `json:"amount"`
}
