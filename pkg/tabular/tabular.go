// Package tabular loads delimited text into a columnar representation
// and infers a schema from it.
package tabular

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/opst/trackfab/pkg/domain"
	"github.com/opst/trackfab/pkg/utils/slices"
)

var ErrNoHeader = errors.New("tabular: input has no header row")

// Column is a single named column and its raw values, in row order.
type Column struct {
	Name   string
	Type   domain.ColumnType
	Values []string
}

// Table is a columnar view of a delimited text file.
type Table struct {
	Columns []Column
}

// Load reads CSV from r. The first record is the header; it is required.
//
// Column types are inferred over all rows of each column:
// all values boolean -> Boolean, otherwise all values numeric -> Number,
// otherwise Text. A column with no rows is Text.
//
// # Returns
//
// - *Table: The loaded table.
//
// - error: ErrNoHeader when r is empty, or the CSV parse error.
func Load(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, err
	}

	columns := slices.Map(header, func(name string) Column {
		return Column{Name: name, Values: []string{}}
	})

	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		for i, value := range record {
			columns[i].Values = append(columns[i].Values, value)
		}
	}

	for i := range columns {
		columns[i].Type = inferType(columns[i].Values)
	}

	return &Table{Columns: columns}, nil
}

func inferType(values []string) domain.ColumnType {
	if len(values) == 0 {
		return domain.Text
	}

	boolean := true
	number := true
	for _, v := range values {
		if boolean {
			if _, err := strconv.ParseBool(v); err != nil {
				boolean = false
			}
		}
		if number {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				number = false
			}
		}
		if !boolean && !number {
			return domain.Text
		}
	}

	if boolean {
		return domain.Boolean
	}
	if number {
		return domain.Number
	}
	return domain.Text
}

// Schema derives the column name/type pairs of t.
func (t *Table) Schema() domain.DataSchema {
	return domain.DataSchema{
		Columns: slices.Map(t.Columns, func(c Column) domain.SchemaColumn {
			return domain.SchemaColumn{Name: c.Name, Type: c.Type}
		}),
	}
}

// RowCount is the number of data rows (the header is not counted).
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}
