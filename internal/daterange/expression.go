// Package daterange resolves relative date expressions such as "T+10", "WE",
// "M-1" or "Y" into concrete calendar date ranges.
package daterange

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is used when printing resolved ranges.
const dateLayout = "2006-01-02"

// Range is a resolved, inclusive date interval.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// String returns the range as "start..end" using ISO dates.
func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format(dateLayout), r.End.Format(dateLayout))
}

// IsSingleDay reports whether start and end fall on the same calendar day.
func (r Range) IsSingleDay() bool {
	return r.Start.Year() == r.End.Year() && r.Start.YearDay() == r.End.YearDay()
}

// RelativeDateRange wraps a textual relative date expression.
// The expression is kept verbatim; it is only interpreted by DateRange.
type RelativeDateRange struct {
	expression string
}

// NewRelativeDateRange creates a RelativeDateRange from its text form.
func NewRelativeDateRange(expression string) RelativeDateRange {
	return RelativeDateRange{expression: expression}
}

// Expression returns the original expression text.
func (r RelativeDateRange) Expression() string {
	return r.expression
}

// String returns the original expression text.
func (r RelativeDateRange) String() string {
	return r.expression
}

// IsEmpty reports whether no expression text was supplied.
func (r RelativeDateRange) IsEmpty() bool {
	return r.expression == ""
}

// DateRange resolves the expression against today.
func (r RelativeDateRange) DateRange(today time.Time) (Range, bool) {
	return Resolve(r.expression, today)
}

// MarshalJSON encodes the expression as a plain JSON string.
func (r RelativeDateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.expression)
}

// UnmarshalJSON decodes a JSON string into the expression. JSON null yields
// an empty expression.
func (r *RelativeDateRange) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("relative date range must be a string: %w", err)
	}
	if s == nil {
		r.expression = ""
		return nil
	}
	r.expression = *s
	return nil
}
