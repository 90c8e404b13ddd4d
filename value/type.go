package value

import (
	"fmt"
	"strings"
)

// Type identifies the scalar kind held by a cell. The ordinal of each
// constant is part of the binary format and must not be reordered.
type Type uint8

const (
	Boolean Type = iota
	Char
	Byte
	Short
	Int
	Long
	Float
	Double
	String
	Date
	BigInteger
	BigDecimal
	ByteArray
	Class
)

// DefaultType is the type of a newly created cell.
const DefaultType = String

var typeNames = [...]string{
	Boolean:    "BOOLEAN",
	Char:       "CHAR",
	Byte:       "BYTE",
	Short:      "SHORT",
	Int:        "INT",
	Long:       "LONG",
	Float:      "FLOAT",
	Double:     "DOUBLE",
	String:     "STRING",
	Date:       "DATE",
	BigInteger: "BIG_INTEGER",
	BigDecimal: "BIG_DECIMAL",
	ByteArray:  "BYTE_ARRAY",
	Class:      "CLASS",
}

// Types returns all supported types in ordinal order.
func Types() []Type {
	types := make([]Type, len(typeNames))
	for i := range typeNames {
		types[i] = Type(i)
	}
	return types
}

// Valid reports whether t is one of the declared constants.
func (t Type) Valid() bool {
	return int(t) < len(typeNames)
}

func (t Type) integral() bool {
	switch t {
	case Byte, Short, Int, Long, BigInteger:
		return true
	}
	return false
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeNames[t]
}

// ParseType resolves a type name as produced by Type.String.
// Matching ignores case, and "-" may be used in place of "_".
func ParseType(name string) (Type, error) {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for i, n := range typeNames {
		if n == norm {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: ordinal %d", ErrUnsupportedType, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
