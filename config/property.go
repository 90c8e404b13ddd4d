package config

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/lixenwraith/commons/value"
)

// Property returns the resolved value of path as a variant cell.
// Scalars map to their natural kind (integers to LONG, floats to DOUBLE);
// slices become multi-valued cells of their first element's kind. A nil
// value yields an empty STRING cell.
func (c *Config) Property(path string) (*value.MultiValues, error) {
	raw, ok := c.Get(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotRegistered, path)
	}
	mv, err := toCell(raw)
	if err != nil {
		return nil, fmt.Errorf("property %s: %w", path, err)
	}
	return mv, nil
}

// NamedProperty returns path as a named cell with ${var} references in
// STRING values substituted.
func (c *Config) NamedProperty(path string) (*value.NamedMultiValues, error) {
	mv, err := c.Property(path)
	if err != nil {
		return nil, err
	}
	if mv.Type() == value.String && !mv.IsEmpty() {
		vs, _ := mv.StringValues()
		mv.SetStringValues(lo.Map(vs, func(s string, _ int) string { return c.Substitute(s) })...)
	}
	return &value.NamedMultiValues{Name: path, MultiValues: *mv}, nil
}

// SetProperty stores a copy of mv as the highest-precedence value of path.
func (c *Config) SetProperty(path string, mv *value.MultiValues) error {
	if mv == nil {
		return c.Set(path, nil)
	}
	return c.Set(path, mv.Clone())
}

// String returns the first value of path as text with ${var} references
// substituted. A nil or empty property yields "".
func (c *Config) String(path string) (string, error) {
	mv, err := c.Property(path)
	if err != nil {
		return "", err
	}
	if mv.IsEmpty() {
		return "", nil
	}
	s, err := mv.ValueAsString()
	if err != nil {
		return "", fmt.Errorf("property %s: %w", path, err)
	}
	return c.Substitute(s), nil
}

// Strings returns every value of path as substituted text. A single
// STRING value is split on commas, matching how list values arrive from
// the environment and the command line.
func (c *Config) Strings(path string) ([]string, error) {
	mv, err := c.Property(path)
	if err != nil {
		return nil, err
	}
	vs, err := mv.ValuesAsString()
	if err != nil {
		return nil, fmt.Errorf("property %s: %w", path, err)
	}
	vs = lo.Map(vs, func(s string, _ int) string { return c.Substitute(s) })
	if mv.Type() == value.String && len(vs) == 1 {
		if vs[0] == "" {
			return []string{}, nil
		}
		return lo.Map(strings.Split(vs[0], ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		}), nil
	}
	return vs, nil
}

// Bool returns the first value of path converted to a boolean.
func (c *Config) Bool(path string) (bool, error) {
	return propertyAs(c, path, (*value.MultiValues).ValueAsBool)
}

// Int64 returns the first value of path converted to an int64.
func (c *Config) Int64(path string) (int64, error) {
	return propertyAs(c, path, (*value.MultiValues).ValueAsLong)
}

// Int returns the first value of path converted to an int.
func (c *Config) Int(path string) (int, error) {
	i, err := c.Int64(path)
	if err != nil {
		return 0, err
	}
	if i < math.MinInt || i > math.MaxInt {
		return 0, fmt.Errorf("property %s: %w: %d overflows int", path, value.ErrTypeConvert, i)
	}
	return int(i), nil
}

// Ints returns every value of path converted to int.
func (c *Config) Ints(path string) ([]int, error) {
	mv, err := c.Property(path)
	if err != nil {
		return nil, err
	}
	if mv.Type() == value.String && mv.Count() == 1 {
		parts, err := c.Strings(path)
		if err != nil {
			return nil, err
		}
		mv = value.NewStringMultiValues(parts...)
	}
	vs, err := mv.ValuesAsLong()
	if err != nil {
		return nil, fmt.Errorf("property %s: %w", path, err)
	}
	return lo.Map(vs, func(i int64, _ int) int { return int(i) }), nil
}

// Float64 returns the first value of path converted to a float64.
func (c *Config) Float64(path string) (float64, error) {
	return propertyAs(c, path, (*value.MultiValues).ValueAsDouble)
}

// Duration returns path as a time.Duration. Text uses time.ParseDuration;
// integers are nanoseconds.
func (c *Config) Duration(path string) (time.Duration, error) {
	raw, ok := c.Get(path)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrPathNotRegistered, path)
	}
	if d, ok := raw.(time.Duration); ok {
		return d, nil
	}
	mv, err := toCell(raw)
	if err != nil {
		return 0, fmt.Errorf("property %s: %w", path, err)
	}
	if mv.Type() == value.Long {
		n, err := mv.LongValue()
		return time.Duration(n), err
	}
	s, err := mv.ValueAsString()
	if err != nil {
		return 0, fmt.Errorf("property %s: %w", path, err)
	}
	d, err := time.ParseDuration(c.Substitute(strings.TrimSpace(s)))
	if err != nil {
		return 0, fmt.Errorf("property %s: %w: %w", path, value.ErrTypeConvert, err)
	}
	return d, nil
}

// Date returns the first value of path converted to a time.
func (c *Config) Date(path string) (time.Time, error) {
	return propertyAs(c, path, (*value.MultiValues).ValueAsDate)
}

// BigDecimal returns the first value of path converted to a decimal.
func (c *Config) BigDecimal(path string) (decimal.Decimal, error) {
	return propertyAs(c, path, (*value.MultiValues).ValueAsBigDecimal)
}

// Bytes returns the first value of path as bytes. Text is decoded as base64.
func (c *Config) Bytes(path string) ([]byte, error) {
	return propertyAs(c, path, (*value.MultiValues).ValueAsByteArray)
}

func propertyAs[T any](c *Config, path string, convert func(*value.MultiValues) (T, error)) (T, error) {
	var zero T
	mv, err := c.Property(path)
	if err != nil {
		return zero, err
	}
	if mv.Type() == value.String && !mv.IsEmpty() {
		// Text values may carry references.
		s, _ := mv.StringValue()
		mv = value.NewStringMultiValues(strings.TrimSpace(c.Substitute(s)))
	}
	v, err := convert(mv)
	if err != nil {
		return zero, fmt.Errorf("property %s: %w", path, err)
	}
	return v, nil
}

// toCell lifts a stored property into a variant cell.
func toCell(raw any) (*value.MultiValues, error) {
	switch v := raw.(type) {
	case nil:
		return value.NewMultiValues(), nil
	case *value.MultiValues:
		return v.Clone(), nil
	case *value.Value:
		return v.ToMultiValues(), nil
	case []byte:
		return value.NewByteArrayMultiValues(v), nil
	case []any:
		return sliceCell(v)
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Slice {
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return sliceCell(items)
	}

	t, scalar, err := liftScalar(raw)
	if err != nil {
		return nil, err
	}
	mv := value.NewMultiValues()
	if err := mv.SetScalars(t, scalar); err != nil {
		return nil, err
	}
	return mv, nil
}

func sliceCell(items []any) (*value.MultiValues, error) {
	if len(items) == 0 {
		return value.NewMultiValues(), nil
	}
	t, _, err := liftScalar(items[0])
	if err != nil {
		return nil, err
	}
	scalars := make([]any, len(items))
	for i, item := range items {
		it, s, err := liftScalar(item)
		if err != nil {
			return nil, err
		}
		if it != t {
			return nil, fmt.Errorf("%w: element %d is %s, list is %s", value.ErrTypeMismatch, i, it, t)
		}
		scalars[i] = s
	}
	mv := value.NewMultiValuesOf(t)
	if err := mv.SetScalars(t, scalars...); err != nil {
		return nil, err
	}
	return mv, nil
}

// liftScalar maps a plain Go value to a kind and its cell representation.
func liftScalar(raw any) (value.Type, any, error) {
	switch v := raw.(type) {
	case string:
		return value.String, v, nil
	case bool:
		return value.Boolean, v, nil
	case time.Duration:
		return value.String, v.String(), nil
	case time.Time:
		return value.Date, v, nil
	case decimal.Decimal:
		return value.BigDecimal, v, nil
	case *big.Int:
		if v == nil {
			return 0, nil, fmt.Errorf("%w: nil big integer", value.ErrUnsupportedType)
		}
		return value.BigInteger, v, nil
	case []byte:
		return value.ByteArray, v, nil
	case reflect.Type:
		return value.Class, v, nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return value.Long, i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, nil, fmt.Errorf("%w: %w", value.ErrTypeConvert, err)
		}
		return value.Double, f, nil
	case fmt.Stringer:
		if reflect.ValueOf(raw).Kind() == reflect.Struct || reflect.ValueOf(raw).Kind() == reflect.Ptr {
			return value.String, v.String(), nil
		}
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Long, rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return value.BigInteger, new(big.Int).SetUint64(u), nil
		}
		return value.Long, int64(u), nil
	case reflect.Float32, reflect.Float64:
		return value.Double, rv.Float(), nil
	case reflect.String:
		return value.String, rv.String(), nil
	case reflect.Bool:
		return value.Boolean, rv.Bool(), nil
	}
	return 0, nil, fmt.Errorf("%w: cannot lift %T into a cell", value.ErrUnsupportedType, raw)
}

// plainValue turns stored cells into text so they can be encoded to TOML
// or decoded by mapstructure.
func plainValue(raw any) any {
	var mv *value.MultiValues
	switch v := raw.(type) {
	case *value.MultiValues:
		mv = v
	case *value.Value:
		mv = v.ToMultiValues()
	default:
		return raw
	}
	vs, err := mv.ValuesAsString()
	if err != nil || len(vs) == 0 {
		return nil
	}
	if _, isValue := raw.(*value.Value); isValue || len(vs) == 1 {
		return vs[0]
	}
	return vs
}
