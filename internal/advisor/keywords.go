package advisor

import "github.com/pennyflow/pennyflow/internal/model"

// categoryKeywords maps each category to the substrings that suggest it.
// The lists and their category order are a fixed behavioral contract, not a
// model to tune: prediction walks categories in canonical order and takes
// the first with any match, so "gas" resolves to transportation even though
// utilities lists it too.
var categoryKeywords = map[model.Category][]string{
	model.CategoryFood:           {"grocery", "restaurant", "cafe", "coffee", "food", "meal", "lunch", "dinner", "breakfast", "takeout"},
	model.CategoryTransportation: {"gas", "fuel", "uber", "lyft", "taxi", "car", "bus", "train", "metro", "transport", "fare"},
	model.CategoryHousing:        {"rent", "mortgage", "lease", "housing", "apartment", "home", "house"},
	model.CategoryUtilities:      {"electricity", "water", "gas", "internet", "phone", "utility", "bill", "wifi"},
	model.CategoryEntertainment:  {"movie", "theater", "concert", "show", "subscription", "netflix", "spotify", "game", "entertainment"},
	model.CategoryHealthcare:     {"doctor", "medical", "health", "dental", "healthcare", "medicine", "pharmacy", "prescription", "hospital"},
	model.CategoryEducation:      {"tuition", "school", "college", "university", "course", "class", "book", "education", "learning"},
	model.CategoryShopping:       {"mall", "clothes", "clothing", "retail", "store", "shop", "purchase", "amazon", "online"},
	model.CategoryPersonal:       {"haircut", "salon", "gym", "fitness", "personal", "self-care"},
	model.CategoryTravel:         {"hotel", "flight", "airline", "vacation", "trip", "travel", "booking", "airbnb"},
	model.CategoryGifts:          {"gift", "present", "donation", "charity"},
	model.CategoryIncome:         {"salary", "deposit", "payday", "income", "paycheck", "wage", "payment", "revenue", "dividend"},
	model.CategoryOther:          {},
}

// nonEssential are the categories the savings heuristic considers cuttable.
var nonEssential = []model.Category{
	model.CategoryEntertainment,
	model.CategoryShopping,
	model.CategoryPersonal,
	model.CategoryTravel,
}
