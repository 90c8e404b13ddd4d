package value

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMultiValuesXMLRoundTrip tests XML encoding of every sample cell
func TestMultiValuesXMLRoundTrip(t *testing.T) {
	for name, mv := range sampleCells() {
		t.Run(name, func(t *testing.T) {
			el, err := MultiValuesToXML(mv, XMLOptions{})
			require.NoError(t, err)
			assert.Equal(t, DefaultMultiValuesRootTag, el.Tag)
			assert.Len(t, el.ChildElements(), mv.Count())

			var buf bytes.Buffer
			require.NoError(t, WriteXML(&buf, el, 2))
			parsed, err := ReadXML(&buf)
			require.NoError(t, err)

			got, err := MultiValuesFromXML(parsed, XMLOptions{})
			require.NoError(t, err)
			if diff := cmp.Diff(mv, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestXMLTypeAttribute tests when the type attribute is written
func TestXMLTypeAttribute(t *testing.T) {
	t.Run("DefaultTypeOmitted", func(t *testing.T) {
		el, err := MultiValuesToXML(NewStringMultiValues("a"), XMLOptions{})
		require.NoError(t, err)
		assert.Nil(t, el.SelectAttr("type"))
	})

	t.Run("OtherTypesWritten", func(t *testing.T) {
		el, err := ValueToXML(NewBigDecimalValue(decimal.RequireFromString("1.5")), XMLOptions{})
		require.NoError(t, err)
		assert.Equal(t, "BIG_DECIMAL", el.SelectAttrValue("type", ""))
	})

	t.Run("MissingAttributeMeansString", func(t *testing.T) {
		el := mustParse(t, `<multi-values><value>42</value></multi-values>`)
		mv, err := MultiValuesFromXML(el, XMLOptions{})
		require.NoError(t, err)
		assert.Equal(t, String, mv.Type())
		s, _ := mv.StringValue()
		assert.Equal(t, "42", s)
	})

	t.Run("UnknownType", func(t *testing.T) {
		el := mustParse(t, `<value type="UUID"><value>x</value></value>`)
		_, err := ValueFromXML(el, XMLOptions{})
		assert.ErrorIs(t, err, ErrXMLFormat)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})
}

// TestXMLMalformedInput tests rejection of invalid XML documents and text
func TestXMLMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"BadInt", `<multi-values type="INT"><value>1</value><value>abc</value></multi-values>`},
		{"BadDate", `<multi-values type="DATE"><value>yesterday</value></multi-values>`},
		{"BadBase64", `<multi-values type="BYTE_ARRAY"><value>!!</value></multi-values>`},
		{"WrongRoot", `<values type="INT"><value>1</value></values>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MultiValuesFromXML(mustParse(t, tt.doc), XMLOptions{})
			assert.ErrorIs(t, err, ErrXMLFormat)
		})
	}

	t.Run("ValueWithTwoChildren", func(t *testing.T) {
		el := mustParse(t, `<value type="INT"><value>1</value><value>2</value></value>`)
		_, err := ValueFromXML(el, XMLOptions{})
		assert.ErrorIs(t, err, ErrXMLFormat)
	})

	t.Run("TextNotAllowedInXML", func(t *testing.T) {
		cells := map[string]*MultiValues{
			"ControlChar":  NewStringMultiValues("ok", "x\x01y"),
			"NulChar":      NewCharMultiValues(0),
			"InvalidUTF8":  NewStringMultiValues("\xff"),
			"NonCharacter": NewStringMultiValues("\uFFFE"),
		}
		for name, mv := range cells {
			_, err := MultiValuesToXML(mv, XMLOptions{})
			assert.ErrorIs(t, err, ErrXMLFormat, name)
		}

		nmv := NewNamedMultiValues("bad\x02name")
		_, err := NamedMultiValuesToXML(nmv, XMLOptions{})
		assert.ErrorIs(t, err, ErrXMLFormat)
	})

	t.Run("NotXML", func(t *testing.T) {
		_, err := ReadXML(strings.NewReader("<<<"))
		assert.ErrorIs(t, err, ErrXMLFormat)
	})

	t.Run("NoRoot", func(t *testing.T) {
		_, err := ReadXML(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrXMLFormat)
	})
}

// TestXMLOptions tests custom element tags and wrappers
func TestXMLOptions(t *testing.T) {
	t.Run("CustomTagsAndWrapper", func(t *testing.T) {
		opts := XMLOptions{RootTag: "ports", ValueTag: "port", WrapperTag: "list"}
		mv := NewIntMultiValues(80, 443)
		el, err := MultiValuesToXML(mv, opts)
		require.NoError(t, err)

		list := el.SelectElement("list")
		require.NotNil(t, list)
		assert.Len(t, list.SelectElements("port"), 2)

		got, err := MultiValuesFromXML(el, opts)
		require.NoError(t, err)
		assert.True(t, mv.Equal(got))
	})

	t.Run("MissingWrapperIsEmpty", func(t *testing.T) {
		el := mustParse(t, `<ports type="INT"/>`)
		got, err := MultiValuesFromXML(el, XMLOptions{RootTag: "ports", WrapperTag: "list"})
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
		assert.Equal(t, Int, got.Type())
	})

	t.Run("PreserveSpace", func(t *testing.T) {
		mv := NewStringMultiValues("  padded ", "tight")
		el, err := MultiValuesToXML(mv, XMLOptions{PreserveSpace: true})
		require.NoError(t, err)

		children := el.ChildElements()
		require.Len(t, children, 2)
		assert.Equal(t, "preserve", children[0].SelectAttrValue("xml:space", ""))
		assert.Nil(t, children[1].SelectAttr("xml:space"))

		var buf bytes.Buffer
		require.NoError(t, WriteXML(&buf, el, 0))
		parsed, err := ReadXML(&buf)
		require.NoError(t, err)
		got, err := MultiValuesFromXML(parsed, XMLOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"  padded ", "tight"}, mustStrings(t, got))
	})
}

// TestNamedXML tests XML encoding of named cells
func TestNamedXML(t *testing.T) {
	nv := NewNamedValue("retries")
	nv.SetShortValue(3)
	el, err := NamedValueToXML(nv, XMLOptions{})
	require.NoError(t, err)
	assert.Equal(t, "retries", el.SelectAttrValue("name", ""))

	got, err := NamedValueFromXML(el, XMLOptions{})
	require.NoError(t, err)
	assert.True(t, nv.Equal(got))

	t.Run("NameWithLineBreak", func(t *testing.T) {
		named := NewNamedValue("first\r\nsecond\tthird")
		named.SetIntValue(1)
		el, err := NamedValueToXML(named, XMLOptions{})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, WriteXML(&buf, el, 2))
		parsed, err := ReadXML(&buf)
		require.NoError(t, err)
		got, err := NamedValueFromXML(parsed, XMLOptions{})
		require.NoError(t, err)
		assert.Equal(t, "first\r\nsecond\tthird", got.Name)
	})

	nmv := NewNamedMultiValues("tags")
	require.NoError(t, nmv.AddStringValues("a", "b"))
	mel, err := NamedMultiValuesToXML(nmv, XMLOptions{})
	require.NoError(t, err)
	mgot, err := NamedMultiValuesFromXML(mel, XMLOptions{})
	require.NoError(t, err)
	assert.True(t, nmv.Equal(mgot))
}

// TestEmptyValueXML tests XML encoding of empty cells
func TestEmptyValueXML(t *testing.T) {
	v := NewValueOf(Long)
	el, err := ValueToXML(v, XMLOptions{})
	require.NoError(t, err)
	assert.Empty(t, el.ChildElements())

	got, err := ValueFromXML(el, XMLOptions{})
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
	assert.Equal(t, Long, got.Type())
}

func mustParse(t *testing.T, doc string) *etree.Element {
	t.Helper()
	el, err := ReadXML(strings.NewReader(doc))
	require.NoError(t, err)
	return el
}

func mustStrings(t *testing.T, mv *MultiValues) []string {
	t.Helper()
	vs, err := mv.StringValues()
	require.NoError(t, err)
	return vs
}
