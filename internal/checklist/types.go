package checklist

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

type Timeframe string

const (
	TimeframeImmediate   Timeframe = "immediate"
	TimeframeWithinWeek  Timeframe = "within_week"
	TimeframeWithinMonth Timeframe = "within_month"
)

var Timeframes = []Timeframe{TimeframeImmediate, TimeframeWithinWeek, TimeframeWithinMonth}

type Category string

const (
	CategoryDocumentation Category = "documentation"
	CategoryConsultation  Category = "consultation"
	CategoryFiling        Category = "filing"
	CategoryAction        Category = "action"
)

var Categories = []Category{CategoryDocumentation, CategoryConsultation, CategoryFiling, CategoryAction}

// Item is one legal action. Only Validate produces items.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Timeframe   Timeframe `json:"timeframe"`
	Category    Category  `json:"category"`
}

type Checklist struct {
	Items   []Item `json:"items"`
	Summary string `json:"summary"`
}

func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}

func (t Timeframe) Valid() bool {
	for _, v := range Timeframes {
		if v == t {
			return true
		}
	}
	return false
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func enumValues[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}
