package provider

import "time"

// ColumnType is the declared type of a RowSet column.
type ColumnType string

const (
	ColumnText      ColumnType = "text"
	ColumnNumber    ColumnType = "number"
	ColumnTimestamp ColumnType = "timestamp"
)

// Column names and types one RowSet column.
type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// RowSet is an ordered table with a fixed column schema. Each row holds one
// value per column, in column order.
type RowSet struct {
	Columns []Column `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Record is a flat key-value result.
type Record map[string]any

// ListingColumns is the schema of a listing RowSet.
var ListingColumns = []Column{
	{Name: "name", Type: ColumnText},
	{Name: "path", Type: ColumnText},
	{Name: "size", Type: ColumnNumber},
	{Name: "lastmodified", Type: ColumnTimestamp},
}

// RowSet converts the listing into the tabular host shape.
func (l Listing) RowSet() RowSet {
	rs := RowSet{
		Columns: ListingColumns,
		Rows:    make([][]any, 0, len(l)),
	}
	for _, r := range l {
		rs.Rows = append(rs.Rows, []any{r.Name, r.Path, r.Size, r.LastModified})
	}
	return rs
}

// Len returns the number of rows.
func (rs RowSet) Len() int {
	return len(rs.Rows)
}

// ObjectInfo is the size and modification time of one object.
type ObjectInfo struct {
	Size         int64
	LastModified time.Time
}

// Record converts the info into the key-value host shape.
func (i ObjectInfo) Record() Record {
	return Record{
		"size":         i.Size,
		"lastmodified": i.LastModified,
	}
}
