package value

import (
	"math/big"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// Typed accessors for MultiValues. For every kind K:
//
//	KValue      first value; ErrNoSuchElement if empty, ErrTypeMismatch if the type differs
//	KValues     all values; an empty cell yields an empty slice
//	SetKValue   replace the content with one value, adopting K
//	SetKValues  replace the content, adopting K; no arguments clears the cell
//	AddKValue   append one value; ErrTypeMismatch unless the cell is K or empty
//	AddKValues  append values under the same rule
//	ValueAsK    first value converted to K
//	ValuesAsK   all values converted to K
//
// BIG_INTEGER and BYTE_ARRAY values are copied on the way in and out.

// NewBoolMultiValues returns a BOOLEAN cell holding vs.
func NewBoolMultiValues(vs ...bool) *MultiValues {
	mv := NewMultiValuesOf(Boolean)
	mv.SetBoolValues(vs...)
	return mv
}

// BoolValue returns the first BOOLEAN value.
func (mv *MultiValues) BoolValue() (bool, error) {
	return getFirst[bool](mv, Boolean)
}

// BoolValues returns all BOOLEAN values.
func (mv *MultiValues) BoolValues() ([]bool, error) {
	return getAll[bool](mv, Boolean)
}

// SetBoolValue replaces the content with v.
func (mv *MultiValues) SetBoolValue(v bool) {
	setOne(mv, Boolean, v)
}

// SetBoolValues replaces the content with vs.
func (mv *MultiValues) SetBoolValues(vs ...bool) {
	setAll(mv, Boolean, vs)
}

// AddBoolValue appends v.
func (mv *MultiValues) AddBoolValue(v bool) error {
	return addAll(mv, Boolean, []bool{v})
}

// AddBoolValues appends vs.
func (mv *MultiValues) AddBoolValues(vs ...bool) error {
	return addAll(mv, Boolean, vs)
}

// ValueAsBool converts the first value to BOOLEAN.
func (mv *MultiValues) ValueAsBool() (bool, error) {
	return valueAs[bool](mv, Boolean)
}

// ValuesAsBool converts all values to BOOLEAN.
func (mv *MultiValues) ValuesAsBool() ([]bool, error) {
	return valuesAs[bool](mv, Boolean)
}

// NewCharMultiValues returns a CHAR cell holding vs.
func NewCharMultiValues(vs ...rune) *MultiValues {
	mv := NewMultiValuesOf(Char)
	mv.SetCharValues(vs...)
	return mv
}

// CharValue returns the first CHAR value.
func (mv *MultiValues) CharValue() (rune, error) {
	return getFirst[rune](mv, Char)
}

// CharValues returns all CHAR values.
func (mv *MultiValues) CharValues() ([]rune, error) {
	return getAll[rune](mv, Char)
}

// SetCharValue replaces the content with v.
func (mv *MultiValues) SetCharValue(v rune) {
	setOne(mv, Char, v)
}

// SetCharValues replaces the content with vs.
func (mv *MultiValues) SetCharValues(vs ...rune) {
	setAll(mv, Char, vs)
}

// AddCharValue appends v.
func (mv *MultiValues) AddCharValue(v rune) error {
	return addAll(mv, Char, []rune{v})
}

// AddCharValues appends vs.
func (mv *MultiValues) AddCharValues(vs ...rune) error {
	return addAll(mv, Char, vs)
}

// ValueAsChar converts the first value to CHAR.
func (mv *MultiValues) ValueAsChar() (rune, error) {
	return valueAs[rune](mv, Char)
}

// ValuesAsChar converts all values to CHAR.
func (mv *MultiValues) ValuesAsChar() ([]rune, error) {
	return valuesAs[rune](mv, Char)
}

// NewByteMultiValues returns a BYTE cell holding vs.
func NewByteMultiValues(vs ...int8) *MultiValues {
	mv := NewMultiValuesOf(Byte)
	mv.SetByteValues(vs...)
	return mv
}

// ByteValue returns the first BYTE value.
func (mv *MultiValues) ByteValue() (int8, error) {
	return getFirst[int8](mv, Byte)
}

// ByteValues returns all BYTE values.
func (mv *MultiValues) ByteValues() ([]int8, error) {
	return getAll[int8](mv, Byte)
}

// SetByteValue replaces the content with v.
func (mv *MultiValues) SetByteValue(v int8) {
	setOne(mv, Byte, v)
}

// SetByteValues replaces the content with vs.
func (mv *MultiValues) SetByteValues(vs ...int8) {
	setAll(mv, Byte, vs)
}

// AddByteValue appends v.
func (mv *MultiValues) AddByteValue(v int8) error {
	return addAll(mv, Byte, []int8{v})
}

// AddByteValues appends vs.
func (mv *MultiValues) AddByteValues(vs ...int8) error {
	return addAll(mv, Byte, vs)
}

// ValueAsByte converts the first value to BYTE.
func (mv *MultiValues) ValueAsByte() (int8, error) {
	return valueAs[int8](mv, Byte)
}

// ValuesAsByte converts all values to BYTE.
func (mv *MultiValues) ValuesAsByte() ([]int8, error) {
	return valuesAs[int8](mv, Byte)
}

// NewShortMultiValues returns a SHORT cell holding vs.
func NewShortMultiValues(vs ...int16) *MultiValues {
	mv := NewMultiValuesOf(Short)
	mv.SetShortValues(vs...)
	return mv
}

// ShortValue returns the first SHORT value.
func (mv *MultiValues) ShortValue() (int16, error) {
	return getFirst[int16](mv, Short)
}

// ShortValues returns all SHORT values.
func (mv *MultiValues) ShortValues() ([]int16, error) {
	return getAll[int16](mv, Short)
}

// SetShortValue replaces the content with v.
func (mv *MultiValues) SetShortValue(v int16) {
	setOne(mv, Short, v)
}

// SetShortValues replaces the content with vs.
func (mv *MultiValues) SetShortValues(vs ...int16) {
	setAll(mv, Short, vs)
}

// AddShortValue appends v.
func (mv *MultiValues) AddShortValue(v int16) error {
	return addAll(mv, Short, []int16{v})
}

// AddShortValues appends vs.
func (mv *MultiValues) AddShortValues(vs ...int16) error {
	return addAll(mv, Short, vs)
}

// ValueAsShort converts the first value to SHORT.
func (mv *MultiValues) ValueAsShort() (int16, error) {
	return valueAs[int16](mv, Short)
}

// ValuesAsShort converts all values to SHORT.
func (mv *MultiValues) ValuesAsShort() ([]int16, error) {
	return valuesAs[int16](mv, Short)
}

// NewIntMultiValues returns a INT cell holding vs.
func NewIntMultiValues(vs ...int32) *MultiValues {
	mv := NewMultiValuesOf(Int)
	mv.SetIntValues(vs...)
	return mv
}

// IntValue returns the first INT value.
func (mv *MultiValues) IntValue() (int32, error) {
	return getFirst[int32](mv, Int)
}

// IntValues returns all INT values.
func (mv *MultiValues) IntValues() ([]int32, error) {
	return getAll[int32](mv, Int)
}

// SetIntValue replaces the content with v.
func (mv *MultiValues) SetIntValue(v int32) {
	setOne(mv, Int, v)
}

// SetIntValues replaces the content with vs.
func (mv *MultiValues) SetIntValues(vs ...int32) {
	setAll(mv, Int, vs)
}

// AddIntValue appends v.
func (mv *MultiValues) AddIntValue(v int32) error {
	return addAll(mv, Int, []int32{v})
}

// AddIntValues appends vs.
func (mv *MultiValues) AddIntValues(vs ...int32) error {
	return addAll(mv, Int, vs)
}

// ValueAsInt converts the first value to INT.
func (mv *MultiValues) ValueAsInt() (int32, error) {
	return valueAs[int32](mv, Int)
}

// ValuesAsInt converts all values to INT.
func (mv *MultiValues) ValuesAsInt() ([]int32, error) {
	return valuesAs[int32](mv, Int)
}

// NewLongMultiValues returns a LONG cell holding vs.
func NewLongMultiValues(vs ...int64) *MultiValues {
	mv := NewMultiValuesOf(Long)
	mv.SetLongValues(vs...)
	return mv
}

// LongValue returns the first LONG value.
func (mv *MultiValues) LongValue() (int64, error) {
	return getFirst[int64](mv, Long)
}

// LongValues returns all LONG values.
func (mv *MultiValues) LongValues() ([]int64, error) {
	return getAll[int64](mv, Long)
}

// SetLongValue replaces the content with v.
func (mv *MultiValues) SetLongValue(v int64) {
	setOne(mv, Long, v)
}

// SetLongValues replaces the content with vs.
func (mv *MultiValues) SetLongValues(vs ...int64) {
	setAll(mv, Long, vs)
}

// AddLongValue appends v.
func (mv *MultiValues) AddLongValue(v int64) error {
	return addAll(mv, Long, []int64{v})
}

// AddLongValues appends vs.
func (mv *MultiValues) AddLongValues(vs ...int64) error {
	return addAll(mv, Long, vs)
}

// ValueAsLong converts the first value to LONG.
func (mv *MultiValues) ValueAsLong() (int64, error) {
	return valueAs[int64](mv, Long)
}

// ValuesAsLong converts all values to LONG.
func (mv *MultiValues) ValuesAsLong() ([]int64, error) {
	return valuesAs[int64](mv, Long)
}

// NewFloatMultiValues returns a FLOAT cell holding vs.
func NewFloatMultiValues(vs ...float32) *MultiValues {
	mv := NewMultiValuesOf(Float)
	mv.SetFloatValues(vs...)
	return mv
}

// FloatValue returns the first FLOAT value.
func (mv *MultiValues) FloatValue() (float32, error) {
	return getFirst[float32](mv, Float)
}

// FloatValues returns all FLOAT values.
func (mv *MultiValues) FloatValues() ([]float32, error) {
	return getAll[float32](mv, Float)
}

// SetFloatValue replaces the content with v.
func (mv *MultiValues) SetFloatValue(v float32) {
	setOne(mv, Float, v)
}

// SetFloatValues replaces the content with vs.
func (mv *MultiValues) SetFloatValues(vs ...float32) {
	setAll(mv, Float, vs)
}

// AddFloatValue appends v.
func (mv *MultiValues) AddFloatValue(v float32) error {
	return addAll(mv, Float, []float32{v})
}

// AddFloatValues appends vs.
func (mv *MultiValues) AddFloatValues(vs ...float32) error {
	return addAll(mv, Float, vs)
}

// ValueAsFloat converts the first value to FLOAT.
func (mv *MultiValues) ValueAsFloat() (float32, error) {
	return valueAs[float32](mv, Float)
}

// ValuesAsFloat converts all values to FLOAT.
func (mv *MultiValues) ValuesAsFloat() ([]float32, error) {
	return valuesAs[float32](mv, Float)
}

// NewDoubleMultiValues returns a DOUBLE cell holding vs.
func NewDoubleMultiValues(vs ...float64) *MultiValues {
	mv := NewMultiValuesOf(Double)
	mv.SetDoubleValues(vs...)
	return mv
}

// DoubleValue returns the first DOUBLE value.
func (mv *MultiValues) DoubleValue() (float64, error) {
	return getFirst[float64](mv, Double)
}

// DoubleValues returns all DOUBLE values.
func (mv *MultiValues) DoubleValues() ([]float64, error) {
	return getAll[float64](mv, Double)
}

// SetDoubleValue replaces the content with v.
func (mv *MultiValues) SetDoubleValue(v float64) {
	setOne(mv, Double, v)
}

// SetDoubleValues replaces the content with vs.
func (mv *MultiValues) SetDoubleValues(vs ...float64) {
	setAll(mv, Double, vs)
}

// AddDoubleValue appends v.
func (mv *MultiValues) AddDoubleValue(v float64) error {
	return addAll(mv, Double, []float64{v})
}

// AddDoubleValues appends vs.
func (mv *MultiValues) AddDoubleValues(vs ...float64) error {
	return addAll(mv, Double, vs)
}

// ValueAsDouble converts the first value to DOUBLE.
func (mv *MultiValues) ValueAsDouble() (float64, error) {
	return valueAs[float64](mv, Double)
}

// ValuesAsDouble converts all values to DOUBLE.
func (mv *MultiValues) ValuesAsDouble() ([]float64, error) {
	return valuesAs[float64](mv, Double)
}

// NewStringMultiValues returns a STRING cell holding vs.
func NewStringMultiValues(vs ...string) *MultiValues {
	mv := NewMultiValuesOf(String)
	mv.SetStringValues(vs...)
	return mv
}

// StringValue returns the first STRING value.
func (mv *MultiValues) StringValue() (string, error) {
	return getFirst[string](mv, String)
}

// StringValues returns all STRING values.
func (mv *MultiValues) StringValues() ([]string, error) {
	return getAll[string](mv, String)
}

// SetStringValue replaces the content with v.
func (mv *MultiValues) SetStringValue(v string) {
	setOne(mv, String, v)
}

// SetStringValues replaces the content with vs.
func (mv *MultiValues) SetStringValues(vs ...string) {
	setAll(mv, String, vs)
}

// AddStringValue appends v.
func (mv *MultiValues) AddStringValue(v string) error {
	return addAll(mv, String, []string{v})
}

// AddStringValues appends vs.
func (mv *MultiValues) AddStringValues(vs ...string) error {
	return addAll(mv, String, vs)
}

// ValueAsString converts the first value to STRING.
func (mv *MultiValues) ValueAsString() (string, error) {
	return valueAs[string](mv, String)
}

// ValuesAsString converts all values to STRING.
func (mv *MultiValues) ValuesAsString() ([]string, error) {
	return valuesAs[string](mv, String)
}

// NewDateMultiValues returns a DATE cell holding vs.
func NewDateMultiValues(vs ...time.Time) *MultiValues {
	mv := NewMultiValuesOf(Date)
	mv.SetDateValues(vs...)
	return mv
}

// DateValue returns the first DATE value.
func (mv *MultiValues) DateValue() (time.Time, error) {
	return getFirst[time.Time](mv, Date)
}

// DateValues returns all DATE values.
func (mv *MultiValues) DateValues() ([]time.Time, error) {
	return getAll[time.Time](mv, Date)
}

// SetDateValue replaces the content with v.
func (mv *MultiValues) SetDateValue(v time.Time) {
	setOne(mv, Date, v)
}

// SetDateValues replaces the content with vs.
func (mv *MultiValues) SetDateValues(vs ...time.Time) {
	setAll(mv, Date, vs)
}

// AddDateValue appends v.
func (mv *MultiValues) AddDateValue(v time.Time) error {
	return addAll(mv, Date, []time.Time{v})
}

// AddDateValues appends vs.
func (mv *MultiValues) AddDateValues(vs ...time.Time) error {
	return addAll(mv, Date, vs)
}

// ValueAsDate converts the first value to DATE.
func (mv *MultiValues) ValueAsDate() (time.Time, error) {
	return valueAs[time.Time](mv, Date)
}

// ValuesAsDate converts all values to DATE.
func (mv *MultiValues) ValuesAsDate() ([]time.Time, error) {
	return valuesAs[time.Time](mv, Date)
}

// NewBigIntegerMultiValues returns a BIG_INTEGER cell holding vs.
func NewBigIntegerMultiValues(vs ...*big.Int) *MultiValues {
	mv := NewMultiValuesOf(BigInteger)
	mv.SetBigIntegerValues(vs...)
	return mv
}

// BigIntegerValue returns the first BIG_INTEGER value.
func (mv *MultiValues) BigIntegerValue() (*big.Int, error) {
	return getFirst[*big.Int](mv, BigInteger)
}

// BigIntegerValues returns all BIG_INTEGER values.
func (mv *MultiValues) BigIntegerValues() ([]*big.Int, error) {
	return getAll[*big.Int](mv, BigInteger)
}

// SetBigIntegerValue replaces the content with v.
func (mv *MultiValues) SetBigIntegerValue(v *big.Int) {
	setOne(mv, BigInteger, v)
}

// SetBigIntegerValues replaces the content with vs.
func (mv *MultiValues) SetBigIntegerValues(vs ...*big.Int) {
	setAll(mv, BigInteger, vs)
}

// AddBigIntegerValue appends v.
func (mv *MultiValues) AddBigIntegerValue(v *big.Int) error {
	return addAll(mv, BigInteger, []*big.Int{v})
}

// AddBigIntegerValues appends vs.
func (mv *MultiValues) AddBigIntegerValues(vs ...*big.Int) error {
	return addAll(mv, BigInteger, vs)
}

// ValueAsBigInteger converts the first value to BIG_INTEGER.
func (mv *MultiValues) ValueAsBigInteger() (*big.Int, error) {
	return valueAs[*big.Int](mv, BigInteger)
}

// ValuesAsBigInteger converts all values to BIG_INTEGER.
func (mv *MultiValues) ValuesAsBigInteger() ([]*big.Int, error) {
	return valuesAs[*big.Int](mv, BigInteger)
}

// NewBigDecimalMultiValues returns a BIG_DECIMAL cell holding vs.
func NewBigDecimalMultiValues(vs ...decimal.Decimal) *MultiValues {
	mv := NewMultiValuesOf(BigDecimal)
	mv.SetBigDecimalValues(vs...)
	return mv
}

// BigDecimalValue returns the first BIG_DECIMAL value.
func (mv *MultiValues) BigDecimalValue() (decimal.Decimal, error) {
	return getFirst[decimal.Decimal](mv, BigDecimal)
}

// BigDecimalValues returns all BIG_DECIMAL values.
func (mv *MultiValues) BigDecimalValues() ([]decimal.Decimal, error) {
	return getAll[decimal.Decimal](mv, BigDecimal)
}

// SetBigDecimalValue replaces the content with v.
func (mv *MultiValues) SetBigDecimalValue(v decimal.Decimal) {
	setOne(mv, BigDecimal, v)
}

// SetBigDecimalValues replaces the content with vs.
func (mv *MultiValues) SetBigDecimalValues(vs ...decimal.Decimal) {
	setAll(mv, BigDecimal, vs)
}

// AddBigDecimalValue appends v.
func (mv *MultiValues) AddBigDecimalValue(v decimal.Decimal) error {
	return addAll(mv, BigDecimal, []decimal.Decimal{v})
}

// AddBigDecimalValues appends vs.
func (mv *MultiValues) AddBigDecimalValues(vs ...decimal.Decimal) error {
	return addAll(mv, BigDecimal, vs)
}

// ValueAsBigDecimal converts the first value to BIG_DECIMAL.
func (mv *MultiValues) ValueAsBigDecimal() (decimal.Decimal, error) {
	return valueAs[decimal.Decimal](mv, BigDecimal)
}

// ValuesAsBigDecimal converts all values to BIG_DECIMAL.
func (mv *MultiValues) ValuesAsBigDecimal() ([]decimal.Decimal, error) {
	return valuesAs[decimal.Decimal](mv, BigDecimal)
}

// NewByteArrayMultiValues returns a BYTE_ARRAY cell holding vs.
func NewByteArrayMultiValues(vs ...[]byte) *MultiValues {
	mv := NewMultiValuesOf(ByteArray)
	mv.SetByteArrayValues(vs...)
	return mv
}

// ByteArrayValue returns the first BYTE_ARRAY value.
func (mv *MultiValues) ByteArrayValue() ([]byte, error) {
	return getFirst[[]byte](mv, ByteArray)
}

// ByteArrayValues returns all BYTE_ARRAY values.
func (mv *MultiValues) ByteArrayValues() ([][]byte, error) {
	return getAll[[]byte](mv, ByteArray)
}

// SetByteArrayValue replaces the content with v.
func (mv *MultiValues) SetByteArrayValue(v []byte) {
	setOne(mv, ByteArray, v)
}

// SetByteArrayValues replaces the content with vs.
func (mv *MultiValues) SetByteArrayValues(vs ...[]byte) {
	setAll(mv, ByteArray, vs)
}

// AddByteArrayValue appends v.
func (mv *MultiValues) AddByteArrayValue(v []byte) error {
	return addAll(mv, ByteArray, [][]byte{v})
}

// AddByteArrayValues appends vs.
func (mv *MultiValues) AddByteArrayValues(vs ...[]byte) error {
	return addAll(mv, ByteArray, vs)
}

// ValueAsByteArray converts the first value to BYTE_ARRAY.
func (mv *MultiValues) ValueAsByteArray() ([]byte, error) {
	return valueAs[[]byte](mv, ByteArray)
}

// ValuesAsByteArray converts all values to BYTE_ARRAY.
func (mv *MultiValues) ValuesAsByteArray() ([][]byte, error) {
	return valuesAs[[]byte](mv, ByteArray)
}

// NewClassMultiValues returns a CLASS cell holding vs.
func NewClassMultiValues(vs ...reflect.Type) *MultiValues {
	mv := NewMultiValuesOf(Class)
	mv.SetClassValues(vs...)
	return mv
}

// ClassValue returns the first CLASS value.
func (mv *MultiValues) ClassValue() (reflect.Type, error) {
	return getFirst[reflect.Type](mv, Class)
}

// ClassValues returns all CLASS values.
func (mv *MultiValues) ClassValues() ([]reflect.Type, error) {
	return getAll[reflect.Type](mv, Class)
}

// SetClassValue replaces the content with v.
func (mv *MultiValues) SetClassValue(v reflect.Type) {
	setOne(mv, Class, v)
}

// SetClassValues replaces the content with vs.
func (mv *MultiValues) SetClassValues(vs ...reflect.Type) {
	setAll(mv, Class, vs)
}

// AddClassValue appends v.
func (mv *MultiValues) AddClassValue(v reflect.Type) error {
	return addAll(mv, Class, []reflect.Type{v})
}

// AddClassValues appends vs.
func (mv *MultiValues) AddClassValues(vs ...reflect.Type) error {
	return addAll(mv, Class, vs)
}

// ValueAsClass converts the first value to CLASS.
func (mv *MultiValues) ValueAsClass() (reflect.Type, error) {
	return valueAs[reflect.Type](mv, Class)
}

// ValuesAsClass converts all values to CLASS.
func (mv *MultiValues) ValuesAsClass() ([]reflect.Type, error) {
	return valuesAs[reflect.Type](mv, Class)
}
