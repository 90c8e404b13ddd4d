package value

import (
	"fmt"
	"reflect"

	"github.com/samber/lo"
)

// MultiValues holds zero, one or many scalars of a single Type.
//
// A lone value is kept in one and no slice is allocated; the slice in
// many only exists once a second value is added. The invariants are:
//
//	count == 0  <=> many == nil and one unused
//	count == 1  <=> many == nil and one holds the value
//	count  > 1  <=> len(many) == count and one unused
//
// MultiValues is not safe for concurrent mutation. Use NewMultiValues
// or NewMultiValuesOf to create one; the zero value is an empty cell of
// type BOOLEAN rather than DefaultType.
type MultiValues struct {
	typ   Type
	count int
	one   any
	many  []any
}

// NewMultiValues returns an empty cell of DefaultType.
func NewMultiValues() *MultiValues {
	return &MultiValues{typ: DefaultType}
}

// NewMultiValuesOf returns an empty cell of type t.
func NewMultiValuesOf(t Type) *MultiValues {
	return &MultiValues{typ: t}
}

// Type returns the declared type of the cell.
func (mv *MultiValues) Type() Type {
	return mv.typ
}

// SetType changes the declared type. Stored values are discarded when
// the type actually changes.
func (mv *MultiValues) SetType(t Type) {
	if mv.typ == t {
		return
	}
	mv.Clear()
	mv.typ = t
}

// Count returns the number of stored values.
func (mv *MultiValues) Count() int {
	return mv.count
}

// IsEmpty reports whether the cell holds no values.
func (mv *MultiValues) IsEmpty() bool {
	return mv.count == 0
}

// Clear removes all values. The type is kept.
func (mv *MultiValues) Clear() {
	mv.count = 0
	mv.one = nil
	mv.many = nil
}

// Remove deletes the value at index, shifting later values down.
func (mv *MultiValues) Remove(index int) error {
	if index < 0 || index >= mv.count {
		return fmt.Errorf("%w: index %d out of range [0,%d)", ErrNoSuchElement, index, mv.count)
	}
	switch mv.count {
	case 1:
		mv.Clear()
	case 2:
		mv.one = mv.many[1-index]
		mv.many = nil
		mv.count = 1
	default:
		mv.many = append(mv.many[:index], mv.many[index+1:]...)
		mv.count--
	}
	return nil
}

// UnionValues appends the values of other after the existing ones,
// preserving order and duplicates. Both cells must have the same type.
func (mv *MultiValues) UnionValues(other *MultiValues) error {
	if other == nil {
		return nil
	}
	if mv.typ != other.typ {
		return mismatch(mv.typ, other.typ)
	}
	mv.appendValues(copyScalars(other.typ, other.all()))
	return nil
}

// AssignValues replaces the type and values of this cell with a deep
// copy of other. A nil other clears the cell and keeps its type.
func (mv *MultiValues) AssignValues(other *MultiValues) {
	if other == nil {
		mv.Clear()
		return
	}
	if mv == other {
		return
	}
	mv.typ = other.typ
	mv.replace(copyScalars(other.typ, other.all()))
}

// Clone returns a deep copy.
func (mv *MultiValues) Clone() *MultiValues {
	clone := &MultiValues{}
	clone.AssignValues(mv)
	return clone
}

// Equal reports whether both cells have the same type and values in the
// same order.
func (mv *MultiValues) Equal(other *MultiValues) bool {
	if mv == nil || other == nil {
		return mv == other
	}
	if mv.typ != other.typ || mv.count != other.count {
		return false
	}
	b := other.all()
	for i, v := range mv.all() {
		if !equalScalar(mv.typ, v, b[i]) {
			return false
		}
	}
	return true
}

func (mv *MultiValues) String() string {
	return mv.typ.String() + formatScalars(mv.typ, mv.all())
}

// Scalar returns a copy of the first value in its Go representation.
func (mv *MultiValues) Scalar() (any, error) {
	if mv.count == 0 {
		return nil, noSuchElement(mv.typ)
	}
	return copyScalar(mv.typ, mv.first()), nil
}

// Scalars returns copies of all values in their Go representation.
func (mv *MultiValues) Scalars() []any {
	return copyScalars(mv.typ, mv.all())
}

// SetScalars replaces the content with vs, adopting type t. Every
// element must already be in the Go representation of t.
func (mv *MultiValues) SetScalars(t Type, vs ...any) error {
	if err := checkScalars(t, vs); err != nil {
		return err
	}
	mv.typ = t
	mv.replace(copyScalars(t, vs))
	return nil
}

// AddScalars appends vs under the same rules as the typed Add methods.
func (mv *MultiValues) AddScalars(t Type, vs ...any) error {
	if err := checkScalars(t, vs); err != nil {
		return err
	}
	return mv.add(t, copyScalars(t, vs))
}

// first returns the first stored value without copying.
func (mv *MultiValues) first() any {
	if mv.count == 1 {
		return mv.one
	}
	return mv.many[0]
}

// all returns a view of the stored values. Callers must not retain or
// mutate it.
func (mv *MultiValues) all() []any {
	switch mv.count {
	case 0:
		return nil
	case 1:
		return []any{mv.one}
	}
	return mv.many
}

// replace takes ownership of vs.
func (mv *MultiValues) replace(vs []any) {
	mv.Clear()
	mv.appendValues(vs)
}

// add appends vs after the type check. An empty cell adopts t.
func (mv *MultiValues) add(t Type, vs []any) error {
	if mv.count > 0 && mv.typ != t {
		return mismatch(mv.typ, t)
	}
	if len(vs) == 0 {
		return nil
	}
	mv.typ = t
	mv.appendValues(vs)
	return nil
}

// appendValues takes ownership of vs and moves the cell along
// Empty -> One -> Many as needed.
func (mv *MultiValues) appendValues(vs []any) {
	switch {
	case len(vs) == 0:
		return
	case mv.count == 0 && len(vs) == 1:
		mv.one = vs[0]
	case mv.count == 0:
		mv.many = vs
	case mv.count == 1:
		many := make([]any, 0, 1+len(vs))
		many = append(many, mv.one)
		mv.many = append(many, vs...)
		mv.one = nil
	default:
		mv.many = append(mv.many, vs...)
	}
	mv.count += len(vs)
}

func checkScalars(t Type, vs []any) error {
	if !t.Valid() {
		return unsupported(t)
	}
	want := goType(t)
	for _, v := range vs {
		if t == Class {
			if _, ok := v.(reflect.Type); ok {
				continue
			}
		} else if v != nil && reflect.TypeOf(v) == want {
			continue
		}
		return fmt.Errorf("%w: %T is not a %s scalar", ErrTypeMismatch, v, t)
	}
	return nil
}

// The generic helpers below implement the per-kind accessors. T must be
// the Go representation of t.

func getFirst[T any](mv *MultiValues, t Type) (T, error) {
	var zero T
	if mv.count == 0 {
		return zero, noSuchElement(t)
	}
	if mv.typ != t {
		return zero, mismatch(t, mv.typ)
	}
	v, _ := copyScalar(t, mv.first()).(T)
	return v, nil
}

func getAll[T any](mv *MultiValues, t Type) ([]T, error) {
	if mv.count == 0 {
		return []T{}, nil
	}
	if mv.typ != t {
		return nil, mismatch(t, mv.typ)
	}
	return lo.Map(mv.all(), func(v any, _ int) T {
		out, _ := copyScalar(t, v).(T)
		return out
	}), nil
}

func box[T any](t Type, vs []T) []any {
	return lo.Map(vs, func(v T, _ int) any {
		return copyScalar(t, v)
	})
}

func setOne[T any](mv *MultiValues, t Type, v T) {
	mv.typ = t
	mv.replace([]any{copyScalar(t, v)})
}

func setAll[T any](mv *MultiValues, t Type, vs []T) {
	mv.typ = t
	mv.replace(box(t, vs))
}

func addAll[T any](mv *MultiValues, t Type, vs []T) error {
	return mv.add(t, box(t, vs))
}

func valueAs[T any](mv *MultiValues, to Type) (T, error) {
	var zero T
	if mv.count == 0 {
		return zero, noSuchElement(mv.typ)
	}
	c, err := Convert(mv.typ, mv.first(), to)
	if err != nil {
		return zero, err
	}
	v, _ := c.(T)
	return v, nil
}

func valuesAs[T any](mv *MultiValues, to Type) ([]T, error) {
	out := make([]T, 0, mv.count)
	for _, v := range mv.all() {
		c, err := Convert(mv.typ, v, to)
		if err != nil {
			return nil, err
		}
		cv, _ := c.(T)
		out = append(out, cv)
	}
	return out, nil
}
