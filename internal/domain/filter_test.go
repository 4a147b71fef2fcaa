package domain

import (
	"encoding/json"
	"testing"
	"time"

	"task-filter/internal/daterange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

func TestFilterCriterion_Construction(t *testing.T) {
	c := NewFilterCriterion(OperatorIn, []int{1, 2})
	assert.True(t, c.HasValue())
	assert.Equal(t, OperatorIn, c.Operator)
	assert.Equal(t, []int{1, 2}, *c.Value)

	valueless := &IDSetCriterion{Operator: OperatorNotIn}
	assert.False(t, valueless.HasValue())

	var absent *IDSetCriterion
	assert.False(t, absent.HasValue())
}

func TestFilterCriterion_OperatorNotCheckedAgainstValue(t *testing.T) {
	c := NewFilterCriterion(OperatorGreaterThan, []int{5})
	assert.Equal(t, OperatorGreaterThan, c.Operator)
	assert.True(t, c.HasValue())
}

func TestTaskFilter_JSON(t *testing.T) {
	filter := TaskFilter{
		ID:      1,
		Name:    "Sample Filter",
		TagIDs:  NewFilterCriterion(OperatorNotEqual, []int{1, 2}),
		DueDate: NewFilterCriterion(OperatorIn, daterange.NewRelativeDateRange("T+10")),
	}

	data, err := json.Marshal(filter)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"Id": 1,
		"Name": "Sample Filter",
		"TagIds": {"Value": [1, 2], "Operator": 1},
		"DueDate": {"Value": "T+10", "Operator": 6}
	}`, string(data))

	var decoded TaskFilter
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, filter, decoded)
}

func TestTaskFilter_JSON_ValuelessCriterion(t *testing.T) {
	filter := TaskFilter{Name: "n", TaskStatusIDs: &IDSetCriterion{Operator: OperatorIn}}

	data, err := json.Marshal(filter)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Id":0,"Name":"n","TaskStatusIds":{"Value":null,"Operator":6}}`, string(data))

	var decoded TaskFilter
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.TaskStatusIDs)
	assert.False(t, decoded.TaskStatusIDs.HasValue())
}

func TestTaskFilter_JSON_NoCriteria(t *testing.T) {
	filter := NewTaskFilter("Nothing")
	assert.False(t, filter.HasCriteria())

	data, err := json.Marshal(filter)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Id":0,"Name":"Nothing"}`, string(data))

	var decoded TaskFilter
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, filter, decoded)
}

func TestTaskFilter_DueDateRange(t *testing.T) {
	filter := TaskFilter{
		Name:    "Next ten days",
		DueDate: NewFilterCriterion(OperatorIn, daterange.NewRelativeDateRange("T+10")),
	}
	assert.True(t, filter.HasCriteria())

	got, ok := filter.DueDateRange(today)
	require.True(t, ok)
	assert.Equal(t, today, got.Start)
	assert.Equal(t, today.AddDate(0, 0, 10), got.End)

	_, ok = NewTaskFilter("none").DueDateRange(today)
	assert.False(t, ok)

	valueless := TaskFilter{DueDate: &DateRangeCriterion{Operator: OperatorIn}}
	_, ok = valueless.DueDateRange(today)
	assert.False(t, ok)

	unresolvable := TaskFilter{DueDate: NewFilterCriterion(OperatorIn, daterange.NewRelativeDateRange("someday"))}
	_, ok = unresolvable.DueDateRange(today)
	assert.False(t, ok)
}

func TestTaskFilter_String(t *testing.T) {
	assert.Equal(t, "Sample Filter", NewTaskFilter("Sample Filter").String())
}
