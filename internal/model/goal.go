package model

// Goal is a savings target tracked outside the finance store. Goals are
// persisted under their own key and evolve independently of transactions
// and budgets.
type Goal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      Date    `json:"deadline"`
}

// Progress returns how far along the goal is as a percentage, clamped to
// [0, 100]. A non-positive target yields 0.
func (g Goal) Progress() int {
	if g.TargetAmount <= 0 {
		return 0
	}
	pct := int(g.CurrentAmount / g.TargetAmount * 100)
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}
