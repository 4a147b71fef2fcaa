package sqlite

// TaskFilter is a stored task filter row. Each criterion column holds the
// criterion's JSON document, or nil (SQL NULL) when the criterion is absent.
type TaskFilter struct {
	ID            int64
	Name          string
	TagIDs        *string
	TaskStatusIDs *string
	DueDate       *string
}
