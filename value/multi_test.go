package value

import (
	"math/big"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertInvariants checks the arity invariants of the storage.
func assertInvariants(t *testing.T, mv *MultiValues) {
	t.Helper()
	switch {
	case mv.count == 0:
		assert.Nil(t, mv.many)
	case mv.count == 1:
		assert.Nil(t, mv.many)
	default:
		assert.Len(t, mv.many, mv.count)
		assert.Nil(t, mv.one)
	}
}

// TestMultiValuesArity tests growing and shrinking between single and many values
func TestMultiValuesArity(t *testing.T) {
	t.Run("AddOneAtATime", func(t *testing.T) {
		mv := NewMultiValuesOf(Int)
		assert.True(t, mv.IsEmpty())

		require.NoError(t, mv.AddIntValue(1))
		assertInvariants(t, mv)
		assert.Equal(t, 1, mv.Count())
		assert.Nil(t, mv.many, "single value must not allocate a slice")

		require.NoError(t, mv.AddIntValue(2))
		assertInvariants(t, mv)
		vs, err := mv.IntValues()
		require.NoError(t, err)
		assert.Equal(t, []int32{1, 2}, vs)

		require.NoError(t, mv.AddIntValues(3, 4))
		assertInvariants(t, mv)
		assert.Equal(t, 4, mv.Count())
	})

	t.Run("BulkAddFromEmpty", func(t *testing.T) {
		mv := NewMultiValuesOf(Long)
		require.NoError(t, mv.AddLongValues(7, 8, 9))
		assertInvariants(t, mv)
		vs, err := mv.LongValues()
		require.NoError(t, err)
		assert.Equal(t, []int64{7, 8, 9}, vs)
	})

	t.Run("SetTransitions", func(t *testing.T) {
		mv := NewMultiValues()
		mv.SetStringValues("a", "b", "c")
		assertInvariants(t, mv)
		assert.Equal(t, 3, mv.Count())

		mv.SetStringValues("only")
		assertInvariants(t, mv)
		s, err := mv.StringValue()
		require.NoError(t, err)
		assert.Equal(t, "only", s)

		mv.SetStringValue("replaced")
		assert.Equal(t, 1, mv.Count())

		mv.SetStringValues()
		assertInvariants(t, mv)
		assert.True(t, mv.IsEmpty())
		assert.Equal(t, 0, mv.Count())
	})

	t.Run("Remove", func(t *testing.T) {
		mv := NewIntMultiValues(1, 2, 3)
		require.NoError(t, mv.Remove(1))
		assertInvariants(t, mv)
		vs, _ := mv.IntValues()
		assert.Equal(t, []int32{1, 3}, vs)

		require.NoError(t, mv.Remove(0))
		assertInvariants(t, mv)
		v, err := mv.IntValue()
		require.NoError(t, err)
		assert.Equal(t, int32(3), v)

		require.NoError(t, mv.Remove(0))
		assert.True(t, mv.IsEmpty())
		assert.ErrorIs(t, mv.Remove(0), ErrNoSuchElement)
	})
}

// TestMultiValuesTypeRules tests retyping of empty cells and rejection of mismatched adds
func TestMultiValuesTypeRules(t *testing.T) {
	t.Run("AddToEmptyCellRetypes", func(t *testing.T) {
		mv := NewMultiValues()
		require.NoError(t, mv.AddIntValue(5))
		assert.Equal(t, Int, mv.Type())
	})

	t.Run("AddMismatchFails", func(t *testing.T) {
		mv := NewIntMultiValues(1)
		err := mv.AddStringValue("x")
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.Equal(t, 1, mv.Count())
	})

	t.Run("GetMismatchFails", func(t *testing.T) {
		mv := NewIntMultiValues(1, 2)
		_, err := mv.StringValue()
		assert.ErrorIs(t, err, ErrTypeMismatch)
		_, err = mv.StringValues()
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("EmptyCell", func(t *testing.T) {
		mv := NewMultiValuesOf(Int)
		_, err := mv.IntValue()
		assert.ErrorIs(t, err, ErrNoSuchElement)
		_, err = mv.StringValue()
		assert.ErrorIs(t, err, ErrNoSuchElement)

		vs, err := mv.IntValues()
		require.NoError(t, err)
		assert.Empty(t, vs)
		assert.NotNil(t, vs)
	})

	t.Run("SetTypeClears", func(t *testing.T) {
		mv := NewIntMultiValues(1, 2)
		mv.SetType(Int)
		assert.Equal(t, 2, mv.Count())
		mv.SetType(Long)
		assert.True(t, mv.IsEmpty())
		assert.Equal(t, Long, mv.Type())
	})

	t.Run("SetScalarsChecksRepresentation", func(t *testing.T) {
		mv := NewMultiValues()
		assert.ErrorIs(t, mv.SetScalars(Int, int64(1)), ErrTypeMismatch)
		require.NoError(t, mv.SetScalars(Int, int32(1), int32(2)))
		assert.Equal(t, []any{int32(1), int32(2)}, mv.Scalars())
	})
}

// TestMultiValuesUnionAndAssign tests union and assignment between cells
func TestMultiValuesUnionAndAssign(t *testing.T) {
	t.Run("UnionAppendsInOrder", func(t *testing.T) {
		a := NewIntMultiValues(1, 2)
		b := NewIntMultiValues(3, 4)
		require.NoError(t, a.UnionValues(b))
		vs, err := a.IntValues()
		require.NoError(t, err)
		assert.Equal(t, []int32{1, 2, 3, 4}, vs)
		assertInvariants(t, a)

		// b is untouched
		bv, _ := b.IntValues()
		assert.Equal(t, []int32{3, 4}, bv)
	})

	t.Run("UnionKeepsDuplicates", func(t *testing.T) {
		a := NewStringMultiValues("x")
		require.NoError(t, a.UnionValues(NewStringMultiValues("x")))
		assert.Equal(t, 2, a.Count())
	})

	t.Run("UnionWithSelf", func(t *testing.T) {
		a := NewIntMultiValues(1, 2)
		require.NoError(t, a.UnionValues(a))
		vs, _ := a.IntValues()
		assert.Equal(t, []int32{1, 2, 1, 2}, vs)
	})

	t.Run("UnionMismatch", func(t *testing.T) {
		a := NewIntMultiValues(1)
		err := a.UnionValues(NewLongMultiValues(2))
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.Equal(t, 1, a.Count())
	})

	t.Run("AssignIgnoresType", func(t *testing.T) {
		a := NewIntMultiValues(1, 2, 3)
		b := NewByteArrayMultiValues([]byte("ab"))
		a.AssignValues(b)
		assert.Equal(t, ByteArray, a.Type())
		assert.True(t, a.Equal(b))

		// deep copy
		got, _ := a.ByteArrayValue()
		got[0] = 'z'
		again, _ := a.ByteArrayValue()
		assert.Equal(t, []byte("ab"), again)
	})
}

// TestMultiValuesDefensiveCopies tests that accessors do not alias internal storage
func TestMultiValuesDefensiveCopies(t *testing.T) {
	t.Run("ByteArray", func(t *testing.T) {
		src := []byte{1, 2, 3}
		mv := NewMultiValues()
		mv.SetByteArrayValues(src, []byte{4})
		src[0] = 9

		vs, err := mv.ByteArrayValues()
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, vs[0])

		vs[0][1] = 9
		again, _ := mv.ByteArrayValues()
		assert.Equal(t, []byte{1, 2, 3}, again[0])
	})

	t.Run("BigInteger", func(t *testing.T) {
		src := big.NewInt(42)
		mv := NewMultiValues()
		mv.SetBigIntegerValue(src)
		src.SetInt64(0)

		got, err := mv.BigIntegerValue()
		require.NoError(t, err)
		assert.Equal(t, int64(42), got.Int64())
		got.SetInt64(1)
		again, _ := mv.BigIntegerValue()
		assert.Equal(t, int64(42), again.Int64())
	})

	t.Run("Clone", func(t *testing.T) {
		mv := NewByteArrayMultiValues([]byte("a"), []byte("b"))
		clone := mv.Clone()
		require.True(t, clone.Equal(mv))
		clone.many[0].([]byte)[0] = 'x'
		assert.False(t, clone.Equal(mv))
		first, _ := mv.ByteArrayValue()
		assert.Equal(t, []byte("a"), first)
	})
}

// TestMultiValuesConversion tests element-wise conversion between types
func TestMultiValuesConversion(t *testing.T) {
	mv := NewStringMultiValues("1", "2", "3")
	ints, err := mv.ValuesAsInt()
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, ints)

	first, err := mv.ValueAsDouble()
	require.NoError(t, err)
	assert.Equal(t, 1.0, first)

	require.NoError(t, mv.AddStringValue("x"))
	_, err = mv.ValuesAsInt()
	assert.ErrorIs(t, err, ErrTypeConvert)

	empty := NewMultiValuesOf(Int)
	_, err = empty.ValueAsString()
	assert.ErrorIs(t, err, ErrNoSuchElement)
	vs, err := empty.ValuesAsString()
	require.NoError(t, err)
	assert.Empty(t, vs)
}

// TestMultiValuesAllKinds tests construction and access for every type
func TestMultiValuesAllKinds(t *testing.T) {
	when := time.Date(2024, 5, 6, 7, 8, 9, 10, time.UTC)
	tests := []struct {
		name string
		cell *MultiValues
		typ  Type
	}{
		{"Bool", NewBoolMultiValues(true, false), Boolean},
		{"Char", NewCharMultiValues('a', 'ß'), Char},
		{"Byte", NewByteMultiValues(-1, 127), Byte},
		{"Short", NewShortMultiValues(-300, 300), Short},
		{"Int", NewIntMultiValues(1, 2), Int},
		{"Long", NewLongMultiValues(1 << 40), Long},
		{"Float", NewFloatMultiValues(1.5), Float},
		{"Double", NewDoubleMultiValues(2.25, -1), Double},
		{"String", NewStringMultiValues("a", ""), String},
		{"Date", NewDateMultiValues(when), Date},
		{"BigInteger", NewBigIntegerMultiValues(big.NewInt(-5)), BigInteger},
		{"BigDecimal", NewBigDecimalMultiValues(decimal.RequireFromString("3.14")), BigDecimal},
		{"ByteArray", NewByteArrayMultiValues([]byte{0, 1}), ByteArray},
		{"Class", NewClassMultiValues(goType(Int)), Class},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.cell.Type())
			clone := tt.cell.Clone()
			if diff := cmp.Diff(tt.cell, clone); diff != "" {
				t.Errorf("clone mismatch (-want +got):\n%s", diff)
			}
			s, err := tt.cell.ValuesAsString()
			require.NoError(t, err)
			assert.Len(t, s, tt.cell.Count())
		})
	}
}

// TestEndToEndIntScenario tests an INT cell through add, read and binary encoding
func TestEndToEndIntScenario(t *testing.T) {
	mv := NewMultiValuesOf(Int)
	require.NoError(t, mv.AddIntValue(1))
	require.NoError(t, mv.AddIntValue(2))
	require.NoError(t, mv.AddIntValue(3))
	assert.Equal(t, 3, mv.Count())
	vs, err := mv.IntValues()
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, vs)

	data, err := mv.MarshalBinary()
	require.NoError(t, err)
	decoded := NewMultiValues()
	require.NoError(t, decoded.UnmarshalBinary(data))
	if diff := cmp.Diff(mv, decoded); diff != "" {
		t.Errorf("binary round trip (-want +got):\n%s", diff)
	}

	el, err := MultiValuesToXML(mv, XMLOptions{ValueTag: "value"})
	require.NoError(t, err)
	assert.Len(t, el.SelectElements("value"), 3)
	assert.Equal(t, "INT", el.SelectAttrValue("type", ""))
}
