package value

// Value holds zero or one scalar of a single Type. It is a MultiValues
// whose count never exceeds one, exposing only the single-value
// accessors.
//
// Value is not safe for concurrent mutation.
type Value struct {
	cell MultiValues
}

// NewValue returns an empty cell of DefaultType.
func NewValue() *Value {
	return NewValueOf(DefaultType)
}

// NewValueOf returns an empty cell of type t.
func NewValueOf(t Type) *Value {
	return &Value{cell: MultiValues{typ: t}}
}

// Type returns the declared type of the cell.
func (v *Value) Type() Type {
	return v.cell.typ
}

// SetType changes the declared type, discarding the stored value when
// the type actually changes.
func (v *Value) SetType(t Type) {
	v.cell.SetType(t)
}

// IsEmpty reports whether no value is stored.
func (v *Value) IsEmpty() bool {
	return v.cell.IsEmpty()
}

// Clear discards the stored value. The type is kept.
func (v *Value) Clear() {
	v.cell.Clear()
}

// AssignValue copies the type and value of other into v. An empty
// other leaves v empty with other's type.
func (v *Value) AssignValue(other *Value) {
	if other == nil {
		v.Clear()
		return
	}
	v.cell.AssignValues(&other.cell)
}

// Clone returns a deep copy.
func (v *Value) Clone() *Value {
	clone := &Value{}
	clone.cell.AssignValues(&v.cell)
	return clone
}

// Equal reports whether both cells have the same type and value.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.cell.Equal(&other.cell)
}

func (v *Value) String() string {
	if v.cell.count == 0 {
		return v.cell.typ.String() + "(empty)"
	}
	return v.cell.typ.String() + "(" + formatScalar(v.cell.typ, v.cell.first()) + ")"
}

// Scalar returns a copy of the stored value in its Go representation.
func (v *Value) Scalar() (any, error) {
	return v.cell.Scalar()
}

// SetScalar stores x, which must be in the Go representation of t.
func (v *Value) SetScalar(t Type, x any) error {
	return v.cell.SetScalars(t, x)
}

// ToMultiValues returns a MultiValues holding a copy of the content.
func (v *Value) ToMultiValues() *MultiValues {
	return v.cell.Clone()
}
