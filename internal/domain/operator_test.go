package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterOperator_Ordinals(t *testing.T) {
	want := []string{
		"Equal", "NotEqual", "GreaterThan", "LessThan",
		"GreaterThanOrEqual", "LessThanOrEqual", "In", "NotIn",
	}

	ops := Operators()
	require.Len(t, ops, len(want))
	for i, op := range ops {
		assert.Equal(t, FilterOperator(i), op)
		assert.Equal(t, want[i], op.String())
		assert.True(t, op.IsValid())
	}
}

func TestFilterOperator_Invalid(t *testing.T) {
	for _, op := range []FilterOperator{-1, 8, 100} {
		assert.False(t, op.IsValid())
		assert.Contains(t, op.String(), "FilterOperator(")
	}
}

func TestParseFilterOperator(t *testing.T) {
	tests := map[string]FilterOperator{
		"Equal":              OperatorEqual,
		"equal":              OperatorEqual,
		"=":                  OperatorEqual,
		"==":                 OperatorEqual,
		"!=":                 OperatorNotEqual,
		"<>":                 OperatorNotEqual,
		"NotEqual":           OperatorNotEqual,
		">":                  OperatorGreaterThan,
		"gt":                 OperatorGreaterThan,
		"<":                  OperatorLessThan,
		">=":                 OperatorGreaterThanOrEqual,
		"GREATERTHANOREQUAL": OperatorGreaterThanOrEqual,
		"<=":                 OperatorLessThanOrEqual,
		"lte":                OperatorLessThanOrEqual,
		"in":                 OperatorIn,
		" In ":               OperatorIn,
		"not_in":             OperatorNotIn,
		"NotIn":              OperatorNotIn,
		"not in":             OperatorNotIn,
	}

	for in, want := range tests {
		got, err := ParseFilterOperator(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "~", "between", "6"} {
		_, err := ParseFilterOperator(in)
		assert.Error(t, err, in)
	}
}

func TestFilterOperator_JSON(t *testing.T) {
	data, err := json.Marshal(OperatorIn)
	require.NoError(t, err)
	assert.Equal(t, "6", string(data))

	var op FilterOperator
	require.NoError(t, json.Unmarshal([]byte("7"), &op))
	assert.Equal(t, OperatorNotIn, op)

	require.NoError(t, json.Unmarshal([]byte(`"LessThan"`), &op))
	assert.Equal(t, OperatorLessThan, op)

	require.NoError(t, json.Unmarshal([]byte(`">="`), &op))
	assert.Equal(t, OperatorGreaterThanOrEqual, op)

	assert.Error(t, json.Unmarshal([]byte("8"), &op))
	assert.Error(t, json.Unmarshal([]byte(`"Sometimes"`), &op))
	assert.Error(t, json.Unmarshal([]byte(`true`), &op))
}
