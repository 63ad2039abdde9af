package cognidb

import (
	"encoding/json"
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

// ToArrowBatch converts a tabular result into an Arrow record for handoff to
// Arrow-based consumers. Column types are inferred from the first non-nil
// value of each column: JSON numbers map to float64, booleans to boolean,
// and everything else to string (structured values render as JSON text).
// Columns with no non-nil values map to string.
//
// The caller owns the returned record and must Release it.
func (r *QueryResult) ToArrowBatch() (arrow.Record, error) {
	if r.Type != ResultTypeTable {
		return nil, fmt.Errorf("cannot convert %q result to an Arrow batch", r.Type)
	}

	fields := make([]arrow.Field, 0, len(r.ColumnNames))
	for _, name := range r.ColumnNames {
		fields = append(fields, arrow.Field{
			Name:     name,
			Type:     inferArrowType(r, name),
			Nullable: true,
		})
	}
	schema := arrow.NewSchema(fields, nil)

	b := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer b.Release()

	for _, row := range r.Rows {
		for i, name := range r.ColumnNames {
			appendArrowValue(b.Field(i), row[name])
		}
	}
	return b.NewRecord(), nil
}

func inferArrowType(r *QueryResult, name string) arrow.DataType {
	for _, row := range r.Rows {
		switch row[name].(type) {
		case nil:
			continue
		case float64, json.Number:
			return arrow.PrimitiveTypes.Float64
		case bool:
			return arrow.FixedWidthTypes.Boolean
		default:
			return arrow.BinaryTypes.String
		}
	}
	return arrow.BinaryTypes.String
}

func appendArrowValue(b array.Builder, v Value) {
	if v == nil {
		b.AppendNull()
		return
	}
	switch fb := b.(type) {
	case *array.Float64Builder:
		switch x := v.(type) {
		case float64:
			fb.Append(x)
		case json.Number:
			f, err := x.Float64()
			if err != nil {
				fb.AppendNull()
				return
			}
			fb.Append(f)
		default:
			fb.AppendNull()
		}
	case *array.BooleanBuilder:
		x, ok := v.(bool)
		if !ok {
			fb.AppendNull()
			return
		}
		fb.Append(x)
	case *array.StringBuilder:
		switch x := v.(type) {
		case string:
			fb.Append(x)
		default:
			text, err := json.Marshal(x)
			if err != nil {
				fb.Append(fmt.Sprintf("%v", x))
				return
			}
			fb.Append(string(text))
		}
	default:
		b.AppendNull()
	}
}
