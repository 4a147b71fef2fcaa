package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FilterOperator is the comparison a filter criterion applies to its value.
// It is a pure tag; interpreting it is up to whoever builds queries.
type FilterOperator int

const (
	OperatorEqual FilterOperator = iota
	OperatorNotEqual
	OperatorGreaterThan
	OperatorLessThan
	OperatorGreaterThanOrEqual
	OperatorLessThanOrEqual
	OperatorIn
	OperatorNotIn
)

var operatorNames = [...]string{
	OperatorEqual:              "Equal",
	OperatorNotEqual:           "NotEqual",
	OperatorGreaterThan:        "GreaterThan",
	OperatorLessThan:           "LessThan",
	OperatorGreaterThanOrEqual: "GreaterThanOrEqual",
	OperatorLessThanOrEqual:    "LessThanOrEqual",
	OperatorIn:                 "In",
	OperatorNotIn:              "NotIn",
}

// operatorAliases maps lower-cased names and symbols to operators.
var operatorAliases = map[string]FilterOperator{
	"=":      OperatorEqual,
	"==":     OperatorEqual,
	"eq":     OperatorEqual,
	"!=":     OperatorNotEqual,
	"<>":     OperatorNotEqual,
	"ne":     OperatorNotEqual,
	">":      OperatorGreaterThan,
	"gt":     OperatorGreaterThan,
	"<":      OperatorLessThan,
	"lt":     OperatorLessThan,
	">=":     OperatorGreaterThanOrEqual,
	"gte":    OperatorGreaterThanOrEqual,
	"<=":     OperatorLessThanOrEqual,
	"lte":    OperatorLessThanOrEqual,
	"not_in": OperatorNotIn,
	"not in": OperatorNotIn,
}

func init() {
	for op, name := range operatorNames {
		operatorAliases[strings.ToLower(name)] = FilterOperator(op)
	}
}

// Operators returns every defined operator in declaration order.
func Operators() []FilterOperator {
	ops := make([]FilterOperator, len(operatorNames))
	for i := range operatorNames {
		ops[i] = FilterOperator(i)
	}
	return ops
}

// IsValid reports whether o is one of the defined operators.
func (o FilterOperator) IsValid() bool {
	return o >= OperatorEqual && o <= OperatorNotIn
}

// String returns the operator name, e.g. "GreaterThanOrEqual".
func (o FilterOperator) String() string {
	if !o.IsValid() {
		return fmt.Sprintf("FilterOperator(%d)", int(o))
	}
	return operatorNames[o]
}

// ParseFilterOperator parses an operator name or symbol, case-insensitively.
func ParseFilterOperator(s string) (FilterOperator, error) {
	if op, ok := operatorAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("unknown filter operator %q", s)
}

// UnmarshalJSON accepts either the numeric ordinal or the operator name.
// Operators are written as their ordinal (the default encoding).
func (o *FilterOperator) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		op := FilterOperator(n)
		if !op.IsValid() {
			return fmt.Errorf("filter operator out of range: %d", n)
		}
		*o = op
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("filter operator must be a number or a name: %w", err)
	}
	op, err := ParseFilterOperator(name)
	if err != nil {
		return err
	}
	*o = op
	return nil
}
