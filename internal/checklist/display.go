package checklist

var priorityLabels = map[Priority]string{
	PriorityHigh:   "Urgent Priority",
	PriorityMedium: "Normal Priority",
	PriorityLow:    "Low Priority",
}

var timeframeLabels = map[Timeframe]string{
	TimeframeImmediate:   "Needs Immediate Attention",
	TimeframeWithinWeek:  "Complete Within a Week",
	TimeframeWithinMonth: "Complete Within a Month",
}

var categoryLabels = map[Category]string{
	CategoryDocumentation: "Document Preparation",
	CategoryConsultation:  "Legal Consultation",
	CategoryFiling:        "Court Filing",
	CategoryAction:        "Legal Action Required",
}

func (p Priority) Label() string  { return priorityLabels[p] }
func (t Timeframe) Label() string { return timeframeLabels[t] }
func (c Category) Label() string  { return categoryLabels[c] }

// ItemDisplay is an item plus the human-facing labels of its enums.
type ItemDisplay struct {
	Item
	PriorityLabel  string `json:"priorityLabel"`
	TimeframeLabel string `json:"timeframeLabel"`
	CategoryLabel  string `json:"categoryLabel"`
}

func Display(it Item) ItemDisplay {
	return ItemDisplay{
		Item:           it,
		PriorityLabel:  it.Priority.Label(),
		TimeframeLabel: it.Timeframe.Label(),
		CategoryLabel:  it.Category.Label(),
	}
}

type TimeframeGroup struct {
	Timeframe Timeframe     `json:"timeframe"`
	Label     string        `json:"label"`
	Items     []ItemDisplay `json:"items"`
}

// GroupByTimeframe buckets items in enum order (immediate first). Empty
// buckets are omitted and item order inside a bucket is preserved.
func GroupByTimeframe(c Checklist) []TimeframeGroup {
	var groups []TimeframeGroup
	for _, tf := range Timeframes {
		var items []ItemDisplay
		for _, it := range c.Items {
			if it.Timeframe == tf {
				items = append(items, Display(it))
			}
		}
		if len(items) == 0 {
			continue
		}
		groups = append(groups, TimeframeGroup{Timeframe: tf, Label: tf.Label(), Items: items})
	}
	return groups
}
