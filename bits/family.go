package bits

// Ops binds the generic bit functions to one word type.
type Ops[W Word] struct{}

var (
	// ByteBit operates on 8-bit words.
	ByteBit Ops[uint8]
	// ShortBit operates on 16-bit words.
	ShortBit Ops[uint16]
	// IntBit operates on 32-bit words.
	IntBit Ops[uint32]
	// LongBit operates on 64-bit words.
	LongBit Ops[uint64]
)

func (Ops[W]) Width() int { return Width[W]() }
func (Ops[W]) Set(v W, i int) W { return Set(v, i) }
func (Ops[W]) Clear(v W, i int) W { return Clear(v, i) }
func (Ops[W]) Toggle(v W, i int) W { return Toggle(v, i) }
func (Ops[W]) IsSet(v W, i int) bool { return IsSet(v, i) }
func (Ops[W]) Mask(from, to int) W { return Mask[W](from, to) }
func (Ops[W]) SetRange(v W, from, to int) W { return SetRange(v, from, to) }
func (Ops[W]) ClearRange(v W, from, to int) W { return ClearRange(v, from, to) }
func (Ops[W]) Count(v W) int { return Count(v) }
func (Ops[W]) Reverse(v W) W { return Reverse(v) }
func (Ops[W]) First(v W) int { return First(v) }
func (Ops[W]) Last(v W) int { return Last(v) }
func (Ops[W]) Next(v W, from int) int { return Next(v, from) }
func (Ops[W]) Format(v W) string { return Format(v) }
func (Ops[W]) Parse(s string) (W, error) { return Parse[W](s) }
