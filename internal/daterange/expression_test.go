package daterange

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeDateRange_RoundTrip(t *testing.T) {
	for _, s := range []string{"T+10", "  we ", "", "garbage", "2024-03-15"} {
		r := NewRelativeDateRange(s)
		assert.Equal(t, s, r.String())
		assert.Equal(t, s, r.Expression())
		assert.Equal(t, s == "", r.IsEmpty())
	}
}

func TestRelativeDateRange_DateRange(t *testing.T) {
	today := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	got, ok := NewRelativeDateRange(" t+10 ").DateRange(today)
	require.True(t, ok)
	assert.Equal(t, Range{Start: today, End: today.AddDate(0, 0, 10)}, got)

	_, ok = NewRelativeDateRange("nope").DateRange(today)
	assert.False(t, ok)
}

func TestRelativeDateRange_JSON(t *testing.T) {
	data, err := json.Marshal(NewRelativeDateRange("T+10"))
	require.NoError(t, err)
	assert.JSONEq(t, `"T+10"`, string(data))

	var r RelativeDateRange
	require.NoError(t, json.Unmarshal([]byte(`" M-1 "`), &r))
	assert.Equal(t, " M-1 ", r.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &r))
	assert.True(t, r.IsEmpty())

	assert.Error(t, json.Unmarshal([]byte(`42`), &r))
}

func TestRange_String(t *testing.T) {
	r := Range{
		Start: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "2024-05-12..2024-05-18", r.String())
	assert.False(t, r.IsSingleDay())
	assert.True(t, Range{Start: r.Start, End: r.Start}.IsSingleDay())
}
