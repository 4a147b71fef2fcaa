package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}
	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *string:
			*v = ts.data[i].(string)
		case **string:
			if ts.data[i] == nil {
				*v = nil
				continue
			}
			s := ts.data[i].(string)
			*v = &s
		}
	}
	return nil
}

// TestRows feeds a fixed set of scanners through the Rows interface
type TestRows struct {
	rows []*TestScanner
	pos  int
	err  error
}

func (tr *TestRows) Next() bool {
	if tr.pos >= len(tr.rows) {
		return false
	}
	tr.pos++
	return true
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	return tr.rows[tr.pos-1].Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func TestScanTaskFilter(t *testing.T) {
	due := `{"Value":"T+10","Operator":6}`

	filter, err := ScanTaskFilter(&TestScanner{
		data: []interface{}{int64(7), "Sample Filter", nil, nil, due},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), filter.ID)
	assert.Equal(t, "Sample Filter", filter.Name)
	assert.Nil(t, filter.TagIDs)
	assert.Nil(t, filter.TaskStatusIDs)
	require.NotNil(t, filter.DueDate)
	assert.Equal(t, due, *filter.DueDate)
}

func TestScanTaskFilter_Error(t *testing.T) {
	_, err := ScanTaskFilter(&TestScanner{err: errors.New("scan failed")})
	assert.EqualError(t, err, "scan failed")
}

func TestScanTaskFilters(t *testing.T) {
	rows := &TestRows{rows: []*TestScanner{
		{data: []interface{}{int64(1), "a", nil, nil, nil}},
		{data: []interface{}{int64(2), "b", `{"Value":[1],"Operator":6}`, nil, nil}},
	}}

	filters, err := ScanTaskFilters(rows)
	require.NoError(t, err)
	require.Len(t, filters, 2)
	assert.Equal(t, "b", filters[1].Name)
	require.NotNil(t, filters[1].TagIDs)

	_, err = ScanTaskFilters(&TestRows{err: errors.New("cursor failed")})
	assert.EqualError(t, err, "cursor failed")
}

func TestScanTaskFilters_EmptyIsNotNil(t *testing.T) {
	filters, err := ScanTaskFilters(&TestRows{})
	require.NoError(t, err)
	assert.NotNil(t, filters)
	assert.Empty(t, filters)
}
