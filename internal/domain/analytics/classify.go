package analytics

// Category is the historical profile a player is bucketed into.
type Category string

const (
	CategoryEliteConsistent   Category = "elite-consistent"
	CategoryRisingStars       Category = "rising-stars"
	CategoryBreakout          Category = "breakout-candidates"
	CategoryReliableProducers Category = "reliable-producers"
	CategoryDeclining         Category = "declining"
	CategoryVolatile          Category = "volatile"
)

var Categories = []Category{
	CategoryEliteConsistent,
	CategoryRisingStars,
	CategoryBreakout,
	CategoryReliableProducers,
	CategoryDeclining,
	CategoryVolatile,
}

func ParseCategory(v string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == v {
			return c, true
		}
	}
	return "", false
}

// Classify assigns exactly one category. Rules are evaluated in priority
// order and the first match wins; reliable-producers is the fallback.
func Classify(h History) Category {
	switch {
	case h.AvgRank <= 30 && h.Consistency < 15:
		return CategoryEliteConsistent
	case h.RankTrend > 15 && h.AvgRank <= 80:
		return CategoryRisingStars
	case h.RankTrend > 0 && h.Age != nil && *h.Age <= 26 && h.BestRank <= 60:
		return CategoryBreakout
	case h.RankTrend < -15:
		return CategoryDeclining
	case h.Consistency > 50:
		return CategoryVolatile
	default:
		return CategoryReliableProducers
	}
}

type CategoryDetails struct {
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
}

var categoryDetails = map[Category]CategoryDetails{
	CategoryEliteConsistent: {
		Title:       "Elite & Consistent",
		Description: "Top-tier players (avg rank <=30) with low volatility. Your safest high-end picks.",
		Color:       "#00c851",
	},
	CategoryRisingStars: {
		Title:       "Rising Stars",
		Description: "Players improving significantly (15+ rank improvement). Strong upward trajectory.",
		Color:       "#0066cc",
	},
	CategoryBreakout: {
		Title:       "Breakout Candidates",
		Description: "Young players (<=26) showing positive trends. High upside potential.",
		Color:       "#ff8800",
	},
	CategoryReliableProducers: {
		Title:       "Reliable Producers",
		Description: "Solid performers (avg rank <=100) with consistent output. Safe mid-round picks.",
		Color:       "#17a2b8",
	},
	CategoryDeclining: {
		Title:       "Declining",
		Description: "Players trending downward (15+ rank drop). Approach with caution.",
		Color:       "#ff4444",
	},
	CategoryVolatile: {
		Title:       "Volatile",
		Description: "Inconsistent performers with high variance. Risk/reward plays.",
		Color:       "#ffc107",
	},
}

func (c Category) Details() CategoryDetails {
	d := categoryDetails[c]
	d.Category = c
	return d
}
