package value

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when an accessor's kind differs from the
	// cell's declared type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrNoSuchElement is returned when reading from an empty cell.
	ErrNoSuchElement = errors.New("no such element")
	// ErrTypeConvert is returned when no conversion is defined between
	// the stored kind and the requested kind.
	ErrTypeConvert = errors.New("type conversion failed")
	// ErrUnsupportedType is returned for a Type outside the declared set.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrInvalidFormat is returned by the binary codec for malformed input.
	ErrInvalidFormat = errors.New("invalid binary format")
	// ErrXMLFormat is returned by the XML codec for malformed input.
	ErrXMLFormat = errors.New("invalid xml format")
)

func mismatch(expected, actual Type) error {
	return fmt.Errorf("%w: expected %s, actual %s", ErrTypeMismatch, expected, actual)
}

func noSuchElement(t Type) error {
	return fmt.Errorf("%w: cell of type %s is empty", ErrNoSuchElement, t)
}

func unsupported(t Type) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}
