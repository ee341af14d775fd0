package data

import (
	"github.com/opst/trackfab/pkg/domain"
	"github.com/opst/trackfab/pkg/utils/cmp"
	"github.com/opst/trackfab/pkg/utils/slices"
)

type SchemaColumn struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type SchemaDetail struct {
	Columns []SchemaColumn `json:"columns"`
}

func ComposeSchemaDetail(s domain.DataSchema) SchemaDetail {
	return SchemaDetail{
		Columns: slices.Map(s.Columns, func(c domain.SchemaColumn) SchemaColumn {
			return SchemaColumn{Name: c.Name, Type: string(c.Type)}
		}),
	}
}

func (d *SchemaDetail) Equal(o *SchemaDetail) bool {
	if d == nil || o == nil {
		return d == nil && o == nil
	}
	return cmp.SliceEq(d.Columns, o.Columns)
}
