package tabular_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/opst/trackfab/pkg/domain"
	"github.com/opst/trackfab/pkg/tabular"
	"github.com/opst/trackfab/pkg/utils/cmp"
	"github.com/opst/trackfab/pkg/utils/try"
)

func TestLoad(t *testing.T) {
	theories := map[string]struct {
		when string
		then []domain.SchemaColumn
		rows int
	}{
		"when a column holds booleans only, it should be inferred as Boolean": {
			when: "Review,Sentiment\ngreat stuff,true\nwaste of money,false\n",
			then: []domain.SchemaColumn{
				{Name: "Review", Type: domain.Text},
				{Name: "Sentiment", Type: domain.Boolean},
			},
			rows: 2,
		},
		"when a column holds numbers only, it should be inferred as Number": {
			when: "epoch,loss\n1,0.25\n2,0.118\n3,0.042\n",
			then: []domain.SchemaColumn{
				{Name: "epoch", Type: domain.Number},
				{Name: "loss", Type: domain.Number},
			},
			rows: 3,
		},
		"when a column mixes numbers and text, it should fall back to Text": {
			when: "label,score\ncat,0.9\ndog,n/a\n",
			then: []domain.SchemaColumn{
				{Name: "label", Type: domain.Text},
				{Name: "score", Type: domain.Text},
			},
			rows: 2,
		},
		"when the input has a header only, columns should be Text with no rows": {
			when: "id,note\n",
			then: []domain.SchemaColumn{
				{Name: "id", Type: domain.Text},
				{Name: "note", Type: domain.Text},
			},
			rows: 0,
		},
	}

	for name, testcase := range theories {
		t.Run(name, func(t *testing.T) {
			table := try.To(tabular.Load(strings.NewReader(testcase.when))).OrFatal(t)

			actual := table.Schema()
			if !cmp.SliceEq(actual.Columns, testcase.then) {
				t.Errorf(
					"schema columns: (actual, expected) = (%+v, %+v)",
					actual.Columns, testcase.then,
				)
			}
			if table.RowCount() != testcase.rows {
				t.Errorf(
					"row count: (actual, expected) = (%d, %d)",
					table.RowCount(), testcase.rows,
				)
			}
		})
	}

	t.Run("when the input is empty, it should fail with ErrNoHeader", func(t *testing.T) {
		if _, err := tabular.Load(strings.NewReader("")); !errors.Is(err, tabular.ErrNoHeader) {
			t.Errorf("expected ErrNoHeader, but got: %v", err)
		}
	})

	t.Run("when a record is ragged, it should fail", func(t *testing.T) {
		if _, err := tabular.Load(strings.NewReader("a,b\n1\n")); err == nil {
			t.Error("expected error, but got nil")
		}
	})
}
