package cognidb

import (
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/stretchr/testify/require"
)

func TestToArrowBatch(t *testing.T) {
	r := &QueryResult{
		ColumnNames: []string{"name", "price", "sold"},
		Rows: []Row{
			{"name": "a", "price": float64(1.5), "sold": true},
			{"name": nil, "price": float64(2), "sold": false},
		},
		Type: ResultTypeTable,
	}

	rec, err := r.ToArrowBatch()
	require.NoError(t, err)
	defer rec.Release()

	require.EqualValues(t, 2, rec.NumRows())
	require.EqualValues(t, 3, rec.NumCols())

	schema := rec.Schema()
	require.Equal(t, arrow.BinaryTypes.String, schema.Field(0).Type)
	require.Equal(t, arrow.PrimitiveTypes.Float64, schema.Field(1).Type)
	require.Equal(t, arrow.FixedWidthTypes.Boolean, schema.Field(2).Type)

	require.True(t, rec.Column(0).IsNull(1))
	require.False(t, rec.Column(1).IsNull(1))
}

func TestToArrowBatchStructuredAsJSON(t *testing.T) {
	r := &QueryResult{
		ColumnNames: []string{"payload"},
		Rows: []Row{
			{"payload": map[string]any{"k": "v"}},
		},
		Type: ResultTypeTable,
	}

	rec, err := r.ToArrowBatch()
	require.NoError(t, err)
	defer rec.Release()

	require.Equal(t, arrow.BinaryTypes.String, rec.Schema().Field(0).Type)
	require.Equal(t, `{"k":"v"}`, rec.Column(0).ValueStr(0))
}

func TestToArrowBatchRejectsNonTable(t *testing.T) {
	r := &QueryResult{Type: ResultTypeOK}
	_, err := r.ToArrowBatch()
	require.Error(t, err)
}
