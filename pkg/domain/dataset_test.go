package domain_test

import (
	"testing"

	"github.com/opst/trackfab/pkg/domain"
)

func TestAsColumnType(t *testing.T) {
	type then struct {
		columnType domain.ColumnType
		wantError  bool
	}
	theory := func(when string, then then) func(*testing.T) {
		return func(t *testing.T) {
			actual, err := domain.AsColumnType(when)
			if then.wantError {
				if err == nil {
					t.Fatalf("no error for '%s'", when)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
			if actual != then.columnType {
				t.Errorf(
					"unmatch: (actual, expected) = (%s, %s)",
					actual, then.columnType,
				)
			}
		}
	}

	t.Run("when it is passed 'boolean', it returns Boolean", theory(
		"boolean", then{columnType: domain.Boolean},
	))
	t.Run("when it is passed 'number', it returns Number", theory(
		"number", then{columnType: domain.Number},
	))
	t.Run("when it is passed 'text', it returns Text", theory(
		"text", then{columnType: domain.Text},
	))
	t.Run("when it is passed unknown value, it causes error", theory(
		"integer", then{wantError: true},
	))
	t.Run("when it is passed empty string, it causes error", theory(
		"", then{wantError: true},
	))
}

func TestDataSchema_Equal(t *testing.T) {
	theory := func(a, b *domain.DataSchema, expected bool) func(*testing.T) {
		return func(t *testing.T) {
			if actual := a.Equal(b); actual != expected {
				t.Errorf("unmatch: (actual, expected) = (%v, %v)", actual, expected)
			}
			if actual := b.Equal(a); actual != expected {
				t.Errorf("unmatch (reversed): (actual, expected) = (%v, %v)", actual, expected)
			}
		}
	}

	base := &domain.DataSchema{
		Columns: []domain.SchemaColumn{
			{Name: "Review", Type: domain.Text},
			{Name: "Sentiment", Type: domain.Boolean},
		},
	}

	t.Run("when columns are same, it is equal", theory(
		base,
		&domain.DataSchema{
			Columns: []domain.SchemaColumn{
				{Name: "Review", Type: domain.Text},
				{Name: "Sentiment", Type: domain.Boolean},
			},
		},
		true,
	))
	t.Run("when a column type differs, it is not equal", theory(
		base,
		&domain.DataSchema{
			Columns: []domain.SchemaColumn{
				{Name: "Review", Type: domain.Text},
				{Name: "Sentiment", Type: domain.Number},
			},
		},
		false,
	))
	t.Run("when column order differs, it is not equal", theory(
		base,
		&domain.DataSchema{
			Columns: []domain.SchemaColumn{
				{Name: "Sentiment", Type: domain.Boolean},
				{Name: "Review", Type: domain.Text},
			},
		},
		false,
	))
	t.Run("when the other is nil, it is not equal", theory(
		base, nil, false,
	))
	t.Run("when both are nil, it is equal", theory(
		nil, nil, true,
	))
}
