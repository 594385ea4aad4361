package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelsCoverEveryEnumMember(t *testing.T) {
	for _, p := range Priorities {
		assert.NotEmpty(t, p.Label(), p)
	}
	for _, tf := range Timeframes {
		assert.NotEmpty(t, tf.Label(), tf)
	}
	for _, c := range Categories {
		assert.NotEmpty(t, c.Label(), c)
	}
	assert.Empty(t, Priority("urgent").Label())
}

func TestDisplay(t *testing.T) {
	d := Display(Item{ID: "1", Priority: PriorityHigh, Timeframe: TimeframeWithinWeek, Category: CategoryFiling})

	assert.Equal(t, "1", d.ID)
	assert.Equal(t, "Urgent Priority", d.PriorityLabel)
	assert.Equal(t, "Complete Within a Week", d.TimeframeLabel)
	assert.Equal(t, "Court Filing", d.CategoryLabel)
}

func TestGroupByTimeframe(t *testing.T) {
	c := Checklist{Items: []Item{
		{ID: "a", Timeframe: TimeframeWithinMonth},
		{ID: "b", Timeframe: TimeframeImmediate},
		{ID: "c", Timeframe: TimeframeWithinMonth},
	}}

	groups := GroupByTimeframe(c)
	require.Len(t, groups, 2)

	assert.Equal(t, TimeframeImmediate, groups[0].Timeframe)
	assert.Equal(t, "Needs Immediate Attention", groups[0].Label)
	assert.Equal(t, "b", groups[0].Items[0].ID)

	assert.Equal(t, TimeframeWithinMonth, groups[1].Timeframe)
	require.Len(t, groups[1].Items, 2)
	assert.Equal(t, "a", groups[1].Items[0].ID)
	assert.Equal(t, "c", groups[1].Items[1].ID)

	assert.Empty(t, GroupByTimeframe(Checklist{}))
}
