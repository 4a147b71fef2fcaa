package sqlite

// Scanner is satisfied by both *sql.Row and *sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows is the subset of *sql.Rows used when scanning result sets
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTaskFilter scans a single task filter row. Criterion columns may be NULL.
func ScanTaskFilter(scanner Scanner) (*TaskFilter, error) {
	filter := &TaskFilter{}
	err := scanner.Scan(
		&filter.ID,
		&filter.Name,
		&filter.TagIDs,
		&filter.TaskStatusIDs,
		&filter.DueDate,
	)
	if err != nil {
		return nil, err
	}
	return filter, nil
}

// ScanTaskFilters scans every task filter row from rows
func ScanTaskFilters(rows Rows) ([]*TaskFilter, error) {
	filters := make([]*TaskFilter, 0)
	for rows.Next() {
		filter, err := ScanTaskFilter(rows)
		if err != nil {
			return nil, err
		}
		filters = append(filters, filter)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return filters, nil
}
