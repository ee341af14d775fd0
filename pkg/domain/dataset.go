package domain

import (
	"fmt"

	"github.com/opst/trackfab/pkg/utils/cmp"
)

type ColumnType string

const (
	// every value of the column parses as a boolean.
	Boolean ColumnType = "boolean"

	// every value of the column parses as a number (but not as a boolean).
	Number ColumnType = "number"

	// anything else.
	Text ColumnType = "text"
)

func (ct ColumnType) String() string {
	return string(ct)
}

func AsColumnType(s string) (ColumnType, error) {
	switch s {
	case string(Boolean):
		return Boolean, nil
	case string(Number):
		return Number, nil
	case string(Text):
		return Text, nil
	default:
		return "", fmt.Errorf("'%s' is not ColumnType", s)
	}
}

// One column of a logged dataset.
type SchemaColumn struct {
	Name string
	Type ColumnType
}

func (c SchemaColumn) Equal(o SchemaColumn) bool {
	return c.Name == o.Name && c.Type == o.Type
}

// DataSchema is the captured column layout of tabular data
// logged against a run. Captured once per logged dataset.
type DataSchema struct {
	// in dataset order.
	Columns []SchemaColumn
}

func (s *DataSchema) ColumnCount() int {
	return len(s.Columns)
}

func (s *DataSchema) Equal(o *DataSchema) bool {
	if (s == nil) || (o == nil) {
		return (s == nil) && (o == nil)
	}
	return cmp.SliceEqWith(
		s.Columns, o.Columns,
		func(a, b SchemaColumn) bool { return a.Equal(b) },
	)
}
