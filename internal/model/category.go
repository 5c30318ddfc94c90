// Package model defines the core finance entities shared across the application.
package model

// Category is a fixed classification bucket for transactions and budgets.
// The set is closed; adding a category is a schema change, not a runtime
// operation.
type Category string

// The full category enumeration, in canonical order. Order matters: the
// advisor's keyword predictor resolves ties by taking the first match in
// this order.
const (
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryHousing        Category = "housing"
	CategoryUtilities      Category = "utilities"
	CategoryEntertainment  Category = "entertainment"
	CategoryHealthcare     Category = "healthcare"
	CategoryEducation      Category = "education"
	CategoryShopping       Category = "shopping"
	CategoryPersonal       Category = "personal"
	CategoryTravel         Category = "travel"
	CategoryGifts          Category = "gifts"
	CategoryIncome         Category = "income"
	CategoryOther          Category = "other"
)

// Categories returns all categories in canonical order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryHousing,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryEducation,
		CategoryShopping,
		CategoryPersonal,
		CategoryTravel,
		CategoryGifts,
		CategoryIncome,
		CategoryOther,
	}
}

// IsValid reports whether c is one of the fixed categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryTransportation, CategoryHousing,
		CategoryUtilities, CategoryEntertainment, CategoryHealthcare,
		CategoryEducation, CategoryShopping, CategoryPersonal,
		CategoryTravel, CategoryGifts, CategoryIncome, CategoryOther:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
