package value

import (
	"math/big"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// NewBoolValue returns a BOOLEAN cell holding x.
func NewBoolValue(x bool) *Value {
	v := NewValueOf(Boolean)
	v.SetBoolValue(x)
	return v
}

// BoolValue returns the stored BOOLEAN value.
func (v *Value) BoolValue() (bool, error) {
	return getFirst[bool](&v.cell, Boolean)
}

// SetBoolValue stores x and sets the type to BOOLEAN.
func (v *Value) SetBoolValue(x bool) {
	setOne(&v.cell, Boolean, x)
}

// ValueAsBool converts the stored value to BOOLEAN.
func (v *Value) ValueAsBool() (bool, error) {
	return valueAs[bool](&v.cell, Boolean)
}

// NewCharValue returns a CHAR cell holding x.
func NewCharValue(x rune) *Value {
	v := NewValueOf(Char)
	v.SetCharValue(x)
	return v
}

// CharValue returns the stored CHAR value.
func (v *Value) CharValue() (rune, error) {
	return getFirst[rune](&v.cell, Char)
}

// SetCharValue stores x and sets the type to CHAR.
func (v *Value) SetCharValue(x rune) {
	setOne(&v.cell, Char, x)
}

// ValueAsChar converts the stored value to CHAR.
func (v *Value) ValueAsChar() (rune, error) {
	return valueAs[rune](&v.cell, Char)
}

// NewByteValue returns a BYTE cell holding x.
func NewByteValue(x int8) *Value {
	v := NewValueOf(Byte)
	v.SetByteValue(x)
	return v
}

// ByteValue returns the stored BYTE value.
func (v *Value) ByteValue() (int8, error) {
	return getFirst[int8](&v.cell, Byte)
}

// SetByteValue stores x and sets the type to BYTE.
func (v *Value) SetByteValue(x int8) {
	setOne(&v.cell, Byte, x)
}

// ValueAsByte converts the stored value to BYTE.
func (v *Value) ValueAsByte() (int8, error) {
	return valueAs[int8](&v.cell, Byte)
}

// NewShortValue returns a SHORT cell holding x.
func NewShortValue(x int16) *Value {
	v := NewValueOf(Short)
	v.SetShortValue(x)
	return v
}

// ShortValue returns the stored SHORT value.
func (v *Value) ShortValue() (int16, error) {
	return getFirst[int16](&v.cell, Short)
}

// SetShortValue stores x and sets the type to SHORT.
func (v *Value) SetShortValue(x int16) {
	setOne(&v.cell, Short, x)
}

// ValueAsShort converts the stored value to SHORT.
func (v *Value) ValueAsShort() (int16, error) {
	return valueAs[int16](&v.cell, Short)
}

// NewIntValue returns a INT cell holding x.
func NewIntValue(x int32) *Value {
	v := NewValueOf(Int)
	v.SetIntValue(x)
	return v
}

// IntValue returns the stored INT value.
func (v *Value) IntValue() (int32, error) {
	return getFirst[int32](&v.cell, Int)
}

// SetIntValue stores x and sets the type to INT.
func (v *Value) SetIntValue(x int32) {
	setOne(&v.cell, Int, x)
}

// ValueAsInt converts the stored value to INT.
func (v *Value) ValueAsInt() (int32, error) {
	return valueAs[int32](&v.cell, Int)
}

// NewLongValue returns a LONG cell holding x.
func NewLongValue(x int64) *Value {
	v := NewValueOf(Long)
	v.SetLongValue(x)
	return v
}

// LongValue returns the stored LONG value.
func (v *Value) LongValue() (int64, error) {
	return getFirst[int64](&v.cell, Long)
}

// SetLongValue stores x and sets the type to LONG.
func (v *Value) SetLongValue(x int64) {
	setOne(&v.cell, Long, x)
}

// ValueAsLong converts the stored value to LONG.
func (v *Value) ValueAsLong() (int64, error) {
	return valueAs[int64](&v.cell, Long)
}

// NewFloatValue returns a FLOAT cell holding x.
func NewFloatValue(x float32) *Value {
	v := NewValueOf(Float)
	v.SetFloatValue(x)
	return v
}

// FloatValue returns the stored FLOAT value.
func (v *Value) FloatValue() (float32, error) {
	return getFirst[float32](&v.cell, Float)
}

// SetFloatValue stores x and sets the type to FLOAT.
func (v *Value) SetFloatValue(x float32) {
	setOne(&v.cell, Float, x)
}

// ValueAsFloat converts the stored value to FLOAT.
func (v *Value) ValueAsFloat() (float32, error) {
	return valueAs[float32](&v.cell, Float)
}

// NewDoubleValue returns a DOUBLE cell holding x.
func NewDoubleValue(x float64) *Value {
	v := NewValueOf(Double)
	v.SetDoubleValue(x)
	return v
}

// DoubleValue returns the stored DOUBLE value.
func (v *Value) DoubleValue() (float64, error) {
	return getFirst[float64](&v.cell, Double)
}

// SetDoubleValue stores x and sets the type to DOUBLE.
func (v *Value) SetDoubleValue(x float64) {
	setOne(&v.cell, Double, x)
}

// ValueAsDouble converts the stored value to DOUBLE.
func (v *Value) ValueAsDouble() (float64, error) {
	return valueAs[float64](&v.cell, Double)
}

// NewStringValue returns a STRING cell holding x.
func NewStringValue(x string) *Value {
	v := NewValueOf(String)
	v.SetStringValue(x)
	return v
}

// StringValue returns the stored STRING value.
func (v *Value) StringValue() (string, error) {
	return getFirst[string](&v.cell, String)
}

// SetStringValue stores x and sets the type to STRING.
func (v *Value) SetStringValue(x string) {
	setOne(&v.cell, String, x)
}

// ValueAsString converts the stored value to STRING.
func (v *Value) ValueAsString() (string, error) {
	return valueAs[string](&v.cell, String)
}

// NewDateValue returns a DATE cell holding x.
func NewDateValue(x time.Time) *Value {
	v := NewValueOf(Date)
	v.SetDateValue(x)
	return v
}

// DateValue returns the stored DATE value.
func (v *Value) DateValue() (time.Time, error) {
	return getFirst[time.Time](&v.cell, Date)
}

// SetDateValue stores x and sets the type to DATE.
func (v *Value) SetDateValue(x time.Time) {
	setOne(&v.cell, Date, x)
}

// ValueAsDate converts the stored value to DATE.
func (v *Value) ValueAsDate() (time.Time, error) {
	return valueAs[time.Time](&v.cell, Date)
}

// NewBigIntegerValue returns a BIG_INTEGER cell holding x.
func NewBigIntegerValue(x *big.Int) *Value {
	v := NewValueOf(BigInteger)
	v.SetBigIntegerValue(x)
	return v
}

// BigIntegerValue returns the stored BIG_INTEGER value.
func (v *Value) BigIntegerValue() (*big.Int, error) {
	return getFirst[*big.Int](&v.cell, BigInteger)
}

// SetBigIntegerValue stores x and sets the type to BIG_INTEGER.
func (v *Value) SetBigIntegerValue(x *big.Int) {
	setOne(&v.cell, BigInteger, x)
}

// ValueAsBigInteger converts the stored value to BIG_INTEGER.
func (v *Value) ValueAsBigInteger() (*big.Int, error) {
	return valueAs[*big.Int](&v.cell, BigInteger)
}

// NewBigDecimalValue returns a BIG_DECIMAL cell holding x.
func NewBigDecimalValue(x decimal.Decimal) *Value {
	v := NewValueOf(BigDecimal)
	v.SetBigDecimalValue(x)
	return v
}

// BigDecimalValue returns the stored BIG_DECIMAL value.
func (v *Value) BigDecimalValue() (decimal.Decimal, error) {
	return getFirst[decimal.Decimal](&v.cell, BigDecimal)
}

// SetBigDecimalValue stores x and sets the type to BIG_DECIMAL.
func (v *Value) SetBigDecimalValue(x decimal.Decimal) {
	setOne(&v.cell, BigDecimal, x)
}

// ValueAsBigDecimal converts the stored value to BIG_DECIMAL.
func (v *Value) ValueAsBigDecimal() (decimal.Decimal, error) {
	return valueAs[decimal.Decimal](&v.cell, BigDecimal)
}

// NewByteArrayValue returns a BYTE_ARRAY cell holding x.
func NewByteArrayValue(x []byte) *Value {
	v := NewValueOf(ByteArray)
	v.SetByteArrayValue(x)
	return v
}

// ByteArrayValue returns the stored BYTE_ARRAY value.
func (v *Value) ByteArrayValue() ([]byte, error) {
	return getFirst[[]byte](&v.cell, ByteArray)
}

// SetByteArrayValue stores x and sets the type to BYTE_ARRAY.
func (v *Value) SetByteArrayValue(x []byte) {
	setOne(&v.cell, ByteArray, x)
}

// ValueAsByteArray converts the stored value to BYTE_ARRAY.
func (v *Value) ValueAsByteArray() ([]byte, error) {
	return valueAs[[]byte](&v.cell, ByteArray)
}

// NewClassValue returns a CLASS cell holding x.
func NewClassValue(x reflect.Type) *Value {
	v := NewValueOf(Class)
	v.SetClassValue(x)
	return v
}

// ClassValue returns the stored CLASS value.
func (v *Value) ClassValue() (reflect.Type, error) {
	return getFirst[reflect.Type](&v.cell, Class)
}

// SetClassValue stores x and sets the type to CLASS.
func (v *Value) SetClassValue(x reflect.Type) {
	setOne(&v.cell, Class, x)
}

// ValueAsClass converts the stored value to CLASS.
func (v *Value) ValueAsClass() (reflect.Type, error) {
	return valueAs[reflect.Type](&v.cell, Class)
}
