package value

// NamedValue is a Value with a name attached.
type NamedValue struct {
	Name string
	Value
}

// NewNamedValue returns an empty named cell of DefaultType.
func NewNamedValue(name string) *NamedValue {
	return &NamedValue{Name: name, Value: *NewValue()}
}

// Clone returns a deep copy, including the name.
func (nv *NamedValue) Clone() *NamedValue {
	return &NamedValue{Name: nv.Name, Value: *nv.Value.Clone()}
}

// Equal compares the name as well as the content.
func (nv *NamedValue) Equal(other *NamedValue) bool {
	if nv == nil || other == nil {
		return nv == other
	}
	return nv.Name == other.Name && nv.Value.Equal(&other.Value)
}

func (nv *NamedValue) String() string {
	return nv.Name + "=" + nv.Value.String()
}

// NamedMultiValues is a MultiValues with a name attached.
type NamedMultiValues struct {
	Name string
	MultiValues
}

// NewNamedMultiValues returns an empty named cell of DefaultType.
func NewNamedMultiValues(name string) *NamedMultiValues {
	return &NamedMultiValues{Name: name, MultiValues: *NewMultiValues()}
}

// Clone returns a deep copy, including the name.
func (nmv *NamedMultiValues) Clone() *NamedMultiValues {
	return &NamedMultiValues{Name: nmv.Name, MultiValues: *nmv.MultiValues.Clone()}
}

// Equal compares the name as well as the content.
func (nmv *NamedMultiValues) Equal(other *NamedMultiValues) bool {
	if nmv == nil || other == nil {
		return nmv == other
	}
	return nmv.Name == other.Name && nmv.MultiValues.Equal(&other.MultiValues)
}

func (nmv *NamedMultiValues) String() string {
	return nmv.Name + "=" + nmv.MultiValues.String()
}
