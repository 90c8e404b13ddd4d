package value

import (
	"bytes"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cells store scalars boxed in an interface. The typed accessors are the
// only way in or out, so the dynamic type of a stored scalar always
// matches goType(cell type).

// copyScalar isolates the reference-like kinds. BIG_INTEGER and
// BYTE_ARRAY are mutable in Go; everything else is a value or immutable.
func copyScalar(t Type, v any) any {
	switch t {
	case BigInteger:
		b, _ := v.(*big.Int)
		if b == nil {
			return new(big.Int)
		}
		return new(big.Int).Set(b)
	case ByteArray:
		b, _ := v.([]byte)
		return bytes.Clone(b)
	}
	return v
}

func copyScalars(t Type, vs []any) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = copyScalar(t, v)
	}
	return out
}

// equalScalar compares two scalars of kind t. NaN equals NaN so that
// cells holding it compare equal to their copies.
func equalScalar(t Type, a, b any) bool {
	switch t {
	case Date:
		return a.(time.Time).Equal(b.(time.Time))
	case BigInteger:
		return a.(*big.Int).Cmp(b.(*big.Int)) == 0
	case BigDecimal:
		return a.(decimal.Decimal).Equal(b.(decimal.Decimal))
	case ByteArray:
		return bytes.Equal(a.([]byte), b.([]byte))
	case Class:
		at, _ := a.(reflect.Type)
		bt, _ := b.(reflect.Type)
		return at == bt
	case Float:
		af, bf := a.(float32), b.(float32)
		return af == bf || (math.IsNaN(float64(af)) && math.IsNaN(float64(bf)))
	case Double:
		af, bf := a.(float64), b.(float64)
		return af == bf || (math.IsNaN(af) && math.IsNaN(bf))
	}
	return a == b
}

// formatScalar renders a scalar for debugging output.
func formatScalar(t Type, v any) string {
	s, err := FormatText(t, v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return s
}

func formatScalars(t Type, vs []any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatScalar(t, v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
