package value

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/big"
	"reflect"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// MaxBinaryLength bounds every length prefix read from a stream.
const MaxBinaryLength = 64 << 20

const (
	markerNil     byte = 0
	markerPresent byte = 1
)

// Writer encodes typed scalars onto an io.Writer. All integers are
// big-endian. Errors from the underlying writer are returned unchanged.
type Writer struct {
	w   io.Writer
	buf [8]byte
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) write(p []byte) error {
	_, err := w.w.Write(p)
	return err
}

// WriteByte writes a single byte.
func (w *Writer) WriteByte(b byte) error {
	w.buf[0] = b
	return w.write(w.buf[:1])
}

// WriteUint16 writes v in 2 bytes.
func (w *Writer) WriteUint16(v uint16) error {
	binary.BigEndian.PutUint16(w.buf[:2], v)
	return w.write(w.buf[:2])
}

// WriteUint32 writes v in 4 bytes.
func (w *Writer) WriteUint32(v uint32) error {
	binary.BigEndian.PutUint32(w.buf[:4], v)
	return w.write(w.buf[:4])
}

// WriteUint64 writes v in 8 bytes.
func (w *Writer) WriteUint64(v uint64) error {
	binary.BigEndian.PutUint64(w.buf[:8], v)
	return w.write(w.buf[:8])
}

// WriteBytes writes a length-prefixed byte slice.
func (w *Writer) WriteBytes(p []byte) error {
	if len(p) > MaxBinaryLength {
		return fmt.Errorf("%w: length %d exceeds %d", ErrInvalidFormat, len(p), MaxBinaryLength)
	}
	if err := w.WriteUint32(uint32(len(p))); err != nil {
		return err
	}
	return w.write(p)
}

// WriteString writes a length-prefixed UTF-8 string.
func (w *Writer) WriteString(s string) error {
	return w.WriteBytes([]byte(s))
}

// WriteType writes the ordinal of t.
func (w *Writer) WriteType(t Type) error {
	if !t.Valid() {
		return unsupported(t)
	}
	return w.WriteByte(byte(t))
}

// WriteScalar writes v, which must be in the Go representation of t.
func (w *Writer) WriteScalar(t Type, v any) error {
	switch t {
	case Boolean:
		if v.(bool) {
			return w.WriteByte(1)
		}
		return w.WriteByte(0)
	case Char:
		return w.WriteUint32(uint32(v.(rune)))
	case Byte:
		return w.WriteByte(byte(v.(int8)))
	case Short:
		return w.WriteUint16(uint16(v.(int16)))
	case Int:
		return w.WriteUint32(uint32(v.(int32)))
	case Long:
		return w.WriteUint64(uint64(v.(int64)))
	case Float:
		return w.WriteUint32(math.Float32bits(v.(float32)))
	case Double:
		return w.WriteUint64(math.Float64bits(v.(float64)))
	case String:
		return w.WriteString(v.(string))
	case Date:
		d := v.(time.Time)
		if err := w.WriteUint64(uint64(d.Unix())); err != nil {
			return err
		}
		return w.WriteUint32(uint32(d.Nanosecond()))
	case BigInteger:
		return w.writeBigInt(v.(*big.Int))
	case BigDecimal:
		d := v.(decimal.Decimal)
		if err := w.writeBigInt(d.Coefficient()); err != nil {
			return err
		}
		return w.WriteUint32(uint32(d.Exponent()))
	case ByteArray:
		return w.WriteBytes(v.([]byte))
	case Class:
		ct, _ := v.(reflect.Type)
		if ct == nil {
			return fmt.Errorf("%w: nil class reference", ErrInvalidFormat)
		}
		return w.WriteString(ClassName(ct))
	}
	return unsupported(t)
}

func (w *Writer) writeBigInt(b *big.Int) error {
	if err := w.WriteByte(byte(int8(b.Sign()))); err != nil {
		return err
	}
	return w.WriteBytes(b.Bytes())
}

// Reader decodes typed scalars written by Writer. Short reads surface
// as io.EOF or io.ErrUnexpectedEOF; structurally invalid data yields
// ErrInvalidFormat.
type Reader struct {
	r   io.Reader
	buf [8]byte
}

// NewReader returns a Reader on r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) read(n int) ([]byte, error) {
	if _, err := io.ReadFull(r.r, r.buf[:n]); err != nil {
		return nil, err
	}
	return r.buf[:n], nil
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	p, err := r.read(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// ReadUint16 reads 2 bytes.
func (r *Reader) ReadUint16() (uint16, error) {
	p, err := r.read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(p), nil
}

// ReadUint32 reads 4 bytes.
func (r *Reader) ReadUint32() (uint32, error) {
	p, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(p), nil
}

// ReadUint64 reads 8 bytes.
func (r *Reader) ReadUint64() (uint64, error) {
	p, err := r.read(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(p), nil
}

// ReadBytes reads a length-prefixed byte slice.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	if n > MaxBinaryLength {
		return nil, fmt.Errorf("%w: length %d exceeds %d", ErrInvalidFormat, n, MaxBinaryLength)
	}
	p := make([]byte, n)
	if _, err := io.ReadFull(r.r, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ReadString reads a length-prefixed UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	p, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(p) {
		return "", fmt.Errorf("%w: string is not valid UTF-8", ErrInvalidFormat)
	}
	return string(p), nil
}

// ReadType reads a type ordinal.
func (r *Reader) ReadType() (Type, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	t := Type(b)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: unknown type ordinal %d", ErrInvalidFormat, b)
	}
	return t, nil
}

// ReadScalar reads a scalar of kind t.
func (r *Reader) ReadScalar(t Type) (any, error) {
	switch t {
	case Boolean:
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if b > 1 {
			return nil, fmt.Errorf("%w: boolean byte %d", ErrInvalidFormat, b)
		}
		return b == 1, nil
	case Char:
		u, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		if !utf8.ValidRune(rune(u)) {
			return nil, fmt.Errorf("%w: invalid rune %#x", ErrInvalidFormat, u)
		}
		return rune(u), nil
	case Byte:
		b, err := r.ReadByte()
		return int8(b), err
	case Short:
		u, err := r.ReadUint16()
		return int16(u), err
	case Int:
		u, err := r.ReadUint32()
		return int32(u), err
	case Long:
		u, err := r.ReadUint64()
		return int64(u), err
	case Float:
		u, err := r.ReadUint32()
		return math.Float32frombits(u), err
	case Double:
		u, err := r.ReadUint64()
		return math.Float64frombits(u), err
	case String:
		return r.ReadString()
	case Date:
		sec, err := r.ReadUint64()
		if err != nil {
			return nil, err
		}
		nsec, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		if nsec >= uint32(time.Second) {
			return nil, fmt.Errorf("%w: nanoseconds %d out of range", ErrInvalidFormat, nsec)
		}
		return time.Unix(int64(sec), int64(nsec)).UTC(), nil
	case BigInteger:
		return r.readBigInt()
	case BigDecimal:
		coef, err := r.readBigInt()
		if err != nil {
			return nil, err
		}
		exp, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		return decimal.NewFromBigInt(coef, int32(exp)), nil
	case ByteArray:
		return r.ReadBytes()
	case Class:
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		ct, ok := LookupClass(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown class %q", ErrInvalidFormat, name)
		}
		return ct, nil
	}
	return nil, unsupported(t)
}

func (r *Reader) readBigInt() (*big.Int, error) {
	sign, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	mag, err := r.ReadBytes()
	if err != nil {
		return nil, err
	}
	b := new(big.Int).SetBytes(mag)
	switch int8(sign) {
	case 0:
		if b.Sign() != 0 {
			return nil, fmt.Errorf("%w: zero sign with non-zero magnitude", ErrInvalidFormat)
		}
	case 1:
	case -1:
		b.Neg(b)
	default:
		return nil, fmt.Errorf("%w: big integer sign %d", ErrInvalidFormat, int8(sign))
	}
	return b, nil
}

// readMarker returns false for a nil cell.
func (r *Reader) readMarker() (bool, error) {
	m, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	switch m {
	case markerNil:
		return false, nil
	case markerPresent:
		return true, nil
	}
	return false, fmt.Errorf("%w: unknown null marker %d", ErrInvalidFormat, m)
}

// WriteValue writes v as [marker][type][present][scalar]. A nil v is
// written as a single nil marker.
func WriteValue(w io.Writer, v *Value) error {
	return writeValue(NewWriter(w), v, nil)
}

// ReadValue reads a cell written by WriteValue. A nil marker yields
// (nil, nil).
func ReadValue(r io.Reader) (*Value, error) {
	v, _, err := readValue(NewReader(r), false)
	return v, err
}

// WriteNamedValue writes nv with its name between the type and body.
func WriteNamedValue(w io.Writer, nv *NamedValue) error {
	if nv == nil {
		return writeValue(NewWriter(w), nil, nil)
	}
	return writeValue(NewWriter(w), &nv.Value, &nv.Name)
}

// ReadNamedValue reads a cell written by WriteNamedValue.
func ReadNamedValue(r io.Reader) (*NamedValue, error) {
	v, name, err := readValue(NewReader(r), true)
	if err != nil || v == nil {
		return nil, err
	}
	return &NamedValue{Name: name, Value: *v}, nil
}

func writeValue(w *Writer, v *Value, name *string) error {
	if v == nil {
		return w.WriteByte(markerNil)
	}
	if err := w.WriteByte(markerPresent); err != nil {
		return err
	}
	if err := w.WriteType(v.Type()); err != nil {
		return err
	}
	if name != nil {
		if err := w.WriteString(*name); err != nil {
			return err
		}
	}
	if v.IsEmpty() {
		return w.WriteByte(0)
	}
	if err := w.WriteByte(1); err != nil {
		return err
	}
	return w.WriteScalar(v.Type(), v.cell.first())
}

func readValue(r *Reader, named bool) (*Value, string, error) {
	present, err := r.readMarker()
	if err != nil || !present {
		return nil, "", err
	}
	t, err := r.ReadType()
	if err != nil {
		return nil, "", err
	}
	var name string
	if named {
		if name, err = r.ReadString(); err != nil {
			return nil, "", err
		}
	}
	v := NewValueOf(t)
	has, err := r.ReadByte()
	if err != nil {
		return nil, "", err
	}
	switch has {
	case 0:
		return v, name, nil
	case 1:
	default:
		return nil, "", fmt.Errorf("%w: value presence byte %d", ErrInvalidFormat, has)
	}
	s, err := r.ReadScalar(t)
	if err != nil {
		return nil, "", err
	}
	v.cell.appendValues([]any{s})
	return v, name, nil
}

// WriteMultiValues writes mv as [marker][type][count][scalars...].
func WriteMultiValues(w io.Writer, mv *MultiValues) error {
	return writeMultiValues(NewWriter(w), mv, nil)
}

// ReadMultiValues reads a cell written by WriteMultiValues.
func ReadMultiValues(r io.Reader) (*MultiValues, error) {
	mv, _, err := readMultiValues(NewReader(r), false)
	return mv, err
}

// WriteNamedMultiValues writes nmv with its name between the type and
// the count.
func WriteNamedMultiValues(w io.Writer, nmv *NamedMultiValues) error {
	if nmv == nil {
		return writeMultiValues(NewWriter(w), nil, nil)
	}
	return writeMultiValues(NewWriter(w), &nmv.MultiValues, &nmv.Name)
}

// ReadNamedMultiValues reads a cell written by WriteNamedMultiValues.
func ReadNamedMultiValues(r io.Reader) (*NamedMultiValues, error) {
	mv, name, err := readMultiValues(NewReader(r), true)
	if err != nil || mv == nil {
		return nil, err
	}
	return &NamedMultiValues{Name: name, MultiValues: *mv}, nil
}

func writeMultiValues(w *Writer, mv *MultiValues, name *string) error {
	if mv == nil {
		return w.WriteByte(markerNil)
	}
	if err := w.WriteByte(markerPresent); err != nil {
		return err
	}
	if err := w.WriteType(mv.typ); err != nil {
		return err
	}
	if name != nil {
		if err := w.WriteString(*name); err != nil {
			return err
		}
	}
	if err := w.WriteUint32(uint32(mv.count)); err != nil {
		return err
	}
	for _, v := range mv.all() {
		if err := w.WriteScalar(mv.typ, v); err != nil {
			return err
		}
	}
	return nil
}

func readMultiValues(r *Reader, named bool) (*MultiValues, string, error) {
	present, err := r.readMarker()
	if err != nil || !present {
		return nil, "", err
	}
	t, err := r.ReadType()
	if err != nil {
		return nil, "", err
	}
	var name string
	if named {
		if name, err = r.ReadString(); err != nil {
			return nil, "", err
		}
	}
	n, err := r.ReadUint32()
	if err != nil {
		return nil, "", err
	}
	if n > MaxBinaryLength {
		return nil, "", fmt.Errorf("%w: value count %d exceeds %d", ErrInvalidFormat, n, MaxBinaryLength)
	}
	// The count is untrusted; grow as values arrive instead of
	// preallocating.
	vs := make([]any, 0, min(n, 16))
	for i := uint32(0); i < n; i++ {
		s, err := r.ReadScalar(t)
		if err != nil {
			return nil, "", err
		}
		vs = append(vs, s)
	}
	mv := NewMultiValuesOf(t)
	mv.appendValues(vs)
	return mv, name, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v *Value) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Value) UnmarshalBinary(data []byte) error {
	decoded, err := ReadValue(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if decoded == nil {
		return fmt.Errorf("%w: nil value", ErrInvalidFormat)
	}
	*v = *decoded
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (mv *MultiValues) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteMultiValues(&buf, mv); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (mv *MultiValues) UnmarshalBinary(data []byte) error {
	decoded, err := ReadMultiValues(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if decoded == nil {
		return fmt.Errorf("%w: nil value", ErrInvalidFormat)
	}
	*mv = *decoded
	return nil
}
