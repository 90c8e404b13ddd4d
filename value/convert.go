package value

import (
	"fmt"
	"math"
	"math/big"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Convert coerces a scalar of kind from into kind to. Identity
// conversions return an isolated copy. Any pair without a defined
// mapping, and any value out of range for the target, fails with
// ErrTypeConvert.
func Convert(from Type, v any, to Type) (any, error) {
	if !from.Valid() {
		return nil, unsupported(from)
	}
	if !to.Valid() {
		return nil, unsupported(to)
	}
	if from == to {
		return copyScalar(to, v), nil
	}
	if to == String {
		s, err := FormatText(from, v)
		if err != nil {
			return nil, convertErr(from, to, err)
		}
		return s, nil
	}
	if from == String {
		parsed, err := ParseText(to, v.(string))
		if err != nil {
			return nil, convertErr(from, to, err)
		}
		return parsed, nil
	}

	switch to {
	case Boolean:
		return toBool(from, v)
	case Char:
		if !from.integral() {
			return nil, convertErr(from, to, nil)
		}
		i, err := toInt64(from, v)
		if err != nil || !utf8.ValidRune(rune(i)) || i != int64(rune(i)) {
			return nil, convertErr(from, to, err)
		}
		return rune(i), nil
	case Byte:
		i, err := toInt64(from, v)
		if err != nil || i < math.MinInt8 || i > math.MaxInt8 {
			return nil, convertErr(from, to, err)
		}
		return int8(i), nil
	case Short:
		i, err := toInt64(from, v)
		if err != nil || i < math.MinInt16 || i > math.MaxInt16 {
			return nil, convertErr(from, to, err)
		}
		return int16(i), nil
	case Int:
		i, err := toInt64(from, v)
		if err != nil || i < math.MinInt32 || i > math.MaxInt32 {
			return nil, convertErr(from, to, err)
		}
		return int32(i), nil
	case Long:
		if from == Date {
			return v.(time.Time).UnixMilli(), nil
		}
		i, err := toInt64(from, v)
		if err != nil {
			return nil, convertErr(from, to, err)
		}
		return i, nil
	case Float:
		f, err := toFloat64(from, v)
		if err == nil && overflows(from, v, f, math.MaxFloat32) {
			err = fmt.Errorf("%v overflows %s", v, to)
		}
		if err != nil {
			return nil, convertErr(from, to, err)
		}
		return float32(f), nil
	case Double:
		f, err := toFloat64(from, v)
		if err == nil && overflows(from, v, f, math.MaxFloat64) {
			err = fmt.Errorf("%v overflows %s", v, to)
		}
		if err != nil {
			return nil, convertErr(from, to, err)
		}
		return f, nil
	case Date:
		if from == Int || from == Long {
			i, _ := toInt64(from, v)
			return time.UnixMilli(i).UTC(), nil
		}
	case BigInteger:
		return toBigInt(from, v)
	case BigDecimal:
		return toDecimal(from, v)
	}
	return nil, convertErr(from, to, nil)
}

// overflows reports whether a finite source became f beyond limit.
// Infinite and NaN floats convert as themselves.
func overflows(from Type, v any, f, limit float64) bool {
	if from == Float || from == Double {
		src, _ := toFloat64(from, v)
		if math.IsInf(src, 0) || math.IsNaN(src) {
			return false
		}
	}
	return math.IsInf(f, 0) || math.Abs(f) > limit
}

func convertErr(from, to Type, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %s to %s: %w", ErrTypeConvert, from, to, cause)
	}
	return fmt.Errorf("%w: %s to %s", ErrTypeConvert, from, to)
}

func toBool(from Type, v any) (any, error) {
	switch from {
	case Byte, Short, Int, Long:
		i, _ := toInt64(from, v)
		return i != 0, nil
	case Float, Double:
		f, _ := toFloat64(from, v)
		return f != 0, nil
	case BigInteger:
		return v.(*big.Int).Sign() != 0, nil
	case BigDecimal:
		return !v.(decimal.Decimal).IsZero(), nil
	}
	return nil, convertErr(from, Boolean, nil)
}

// toInt64 widens any numeric-like kind to int64. Floats are truncated
// toward zero and must fit.
func toInt64(from Type, v any) (int64, error) {
	switch from {
	case Boolean:
		if v.(bool) {
			return 1, nil
		}
		return 0, nil
	case Char:
		return int64(v.(rune)), nil
	case Byte:
		return int64(v.(int8)), nil
	case Short:
		return int64(v.(int16)), nil
	case Int:
		return int64(v.(int32)), nil
	case Long:
		return v.(int64), nil
	case Float, Double:
		f, _ := toFloat64(from, v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("non-finite value %v", f)
		}
		t := math.Trunc(f)
		if t < math.MinInt64 || t >= math.MaxInt64 {
			return 0, fmt.Errorf("value %v overflows int64", f)
		}
		return int64(t), nil
	case BigInteger:
		b := v.(*big.Int)
		if !b.IsInt64() {
			return 0, fmt.Errorf("value %s overflows int64", b)
		}
		return b.Int64(), nil
	case BigDecimal:
		b := v.(decimal.Decimal).BigInt()
		if !b.IsInt64() {
			return 0, fmt.Errorf("value %s overflows int64", b)
		}
		return b.Int64(), nil
	}
	return 0, fmt.Errorf("%s is not numeric", from)
}

func toFloat64(from Type, v any) (float64, error) {
	switch from {
	case Float:
		return float64(v.(float32)), nil
	case Double:
		return v.(float64), nil
	case BigInteger:
		f, _ := new(big.Float).SetInt(v.(*big.Int)).Float64()
		return f, nil
	case BigDecimal:
		f, _ := v.(decimal.Decimal).Float64()
		return f, nil
	case Boolean, Char, Byte, Short, Int, Long:
		i, err := toInt64(from, v)
		return float64(i), err
	}
	return 0, fmt.Errorf("%s is not numeric", from)
}

func toBigInt(from Type, v any) (any, error) {
	switch from {
	case Boolean, Char, Byte, Short, Int, Long:
		i, _ := toInt64(from, v)
		return big.NewInt(i), nil
	case Float, Double:
		f, _ := toFloat64(from, v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, convertErr(from, BigInteger, fmt.Errorf("non-finite value %v", f))
		}
		b, _ := big.NewFloat(math.Trunc(f)).Int(nil)
		return b, nil
	case BigDecimal:
		return v.(decimal.Decimal).BigInt(), nil
	}
	return nil, convertErr(from, BigInteger, nil)
}

func toDecimal(from Type, v any) (any, error) {
	switch from {
	case Boolean, Char, Byte, Short, Int, Long:
		i, _ := toInt64(from, v)
		return decimal.NewFromInt(i), nil
	case Float:
		f := v.(float32)
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return nil, convertErr(from, BigDecimal, fmt.Errorf("non-finite value %v", f))
		}
		return decimal.NewFromFloat32(f), nil
	case Double:
		f := v.(float64)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, convertErr(from, BigDecimal, fmt.Errorf("non-finite value %v", f))
		}
		return decimal.NewFromFloat(f), nil
	case BigInteger:
		return decimal.NewFromBigInt(v.(*big.Int), 0), nil
	}
	return nil, convertErr(from, BigDecimal, nil)
}
