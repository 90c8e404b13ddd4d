package value

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/beevik/etree"
)

const (
	// DefaultValueRootTag is the root element name of a serialized Value.
	DefaultValueRootTag = "value"
	// DefaultMultiValuesRootTag is the root element name of a serialized MultiValues.
	DefaultMultiValuesRootTag = "multi-values"
	// DefaultValueTag names each child element holding one scalar.
	DefaultValueTag = "value"

	typeAttr  = "type"
	nameAttr  = "name"
	spaceAttr = "xml:space"
)

// XMLOptions controls element naming for the XML codec. Zero fields
// take the defaults for the cell being encoded.
type XMLOptions struct {
	// RootTag names the root element.
	RootTag string
	// ValueTag names each scalar element.
	ValueTag string
	// WrapperTag, when set, wraps the scalar elements in a container.
	WrapperTag string
	// PreserveSpace marks scalar elements whose text has leading or
	// trailing whitespace with xml:space="preserve".
	PreserveSpace bool
}

func (o XMLOptions) withDefaults(root string) XMLOptions {
	if o.RootTag == "" {
		o.RootTag = root
	}
	if o.ValueTag == "" {
		o.ValueTag = DefaultValueTag
	}
	return o
}

// ValueToXML encodes v as an element with at most one scalar child.
func ValueToXML(v *Value, opts XMLOptions) (*etree.Element, error) {
	opts = opts.withDefaults(DefaultValueRootTag)
	return cellToXML(&v.cell, opts)
}

// ValueFromXML decodes an element produced by ValueToXML.
func ValueFromXML(el *etree.Element, opts XMLOptions) (*Value, error) {
	opts = opts.withDefaults(DefaultValueRootTag)
	mv, err := cellFromXML(el, opts)
	if err != nil {
		return nil, err
	}
	if mv.count > 1 {
		return nil, fmt.Errorf("%w: <%s> holds %d values, expected at most one", ErrXMLFormat, el.Tag, mv.count)
	}
	return &Value{cell: *mv}, nil
}

// MultiValuesToXML encodes mv as an element with one child per scalar.
func MultiValuesToXML(mv *MultiValues, opts XMLOptions) (*etree.Element, error) {
	opts = opts.withDefaults(DefaultMultiValuesRootTag)
	return cellToXML(mv, opts)
}

// MultiValuesFromXML decodes an element produced by MultiValuesToXML.
func MultiValuesFromXML(el *etree.Element, opts XMLOptions) (*MultiValues, error) {
	opts = opts.withDefaults(DefaultMultiValuesRootTag)
	return cellFromXML(el, opts)
}

// NamedValueToXML encodes nv like ValueToXML and adds a name attribute.
func NamedValueToXML(nv *NamedValue, opts XMLOptions) (*etree.Element, error) {
	el, err := ValueToXML(&nv.Value, opts)
	if err != nil {
		return nil, err
	}
	if err := checkXMLText(nv.Name); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	el.CreateAttr(nameAttr, nv.Name)
	return el, nil
}

// NamedValueFromXML decodes an element produced by NamedValueToXML.
func NamedValueFromXML(el *etree.Element, opts XMLOptions) (*NamedValue, error) {
	v, err := ValueFromXML(el, opts)
	if err != nil {
		return nil, err
	}
	return &NamedValue{Name: el.SelectAttrValue(nameAttr, ""), Value: *v}, nil
}

// NamedMultiValuesToXML encodes nmv like MultiValuesToXML and adds a
// name attribute.
func NamedMultiValuesToXML(nmv *NamedMultiValues, opts XMLOptions) (*etree.Element, error) {
	el, err := MultiValuesToXML(&nmv.MultiValues, opts)
	if err != nil {
		return nil, err
	}
	if err := checkXMLText(nmv.Name); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	el.CreateAttr(nameAttr, nmv.Name)
	return el, nil
}

// NamedMultiValuesFromXML decodes an element produced by
// NamedMultiValuesToXML.
func NamedMultiValuesFromXML(el *etree.Element, opts XMLOptions) (*NamedMultiValues, error) {
	mv, err := MultiValuesFromXML(el, opts)
	if err != nil {
		return nil, err
	}
	return &NamedMultiValues{Name: el.SelectAttrValue(nameAttr, ""), MultiValues: *mv}, nil
}

func cellToXML(mv *MultiValues, opts XMLOptions) (*etree.Element, error) {
	root := etree.NewElement(opts.RootTag)
	if mv.typ != DefaultType {
		root.CreateAttr(typeAttr, mv.typ.String())
	}
	parent := root
	if opts.WrapperTag != "" {
		parent = root.CreateElement(opts.WrapperTag)
	}
	for _, v := range mv.all() {
		text, err := FormatText(mv.typ, v)
		if err != nil {
			return nil, err
		}
		if err := checkXMLText(text); err != nil {
			return nil, err
		}
		child := parent.CreateElement(opts.ValueTag)
		if opts.PreserveSpace && hasOuterSpace(text) {
			child.CreateAttr(spaceAttr, "preserve")
		}
		child.SetText(text)
	}
	return root, nil
}

func cellFromXML(el *etree.Element, opts XMLOptions) (*MultiValues, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: nil element", ErrXMLFormat)
	}
	if el.Tag != opts.RootTag {
		return nil, fmt.Errorf("%w: expected <%s>, found <%s>", ErrXMLFormat, opts.RootTag, el.Tag)
	}
	t := DefaultType
	if attr := el.SelectAttr(typeAttr); attr != nil {
		parsed, err := ParseType(attr.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrXMLFormat, err)
		}
		t = parsed
	}
	parent := el
	if opts.WrapperTag != "" {
		parent = el.SelectElement(opts.WrapperTag)
		if parent == nil {
			return NewMultiValuesOf(t), nil
		}
	}
	children := parent.SelectElements(opts.ValueTag)
	vs := make([]any, 0, len(children))
	for _, child := range children {
		s, err := ParseText(t, child.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: <%s> content %q is not a valid %s: %w", ErrXMLFormat, opts.ValueTag, child.Text(), t, err)
		}
		vs = append(vs, s)
	}
	mv := NewMultiValuesOf(t)
	mv.appendValues(vs)
	return mv, nil
}

// checkXMLText rejects text that an XML 1.0 document cannot carry.
func checkXMLText(s string) error {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrXMLFormat, i)
			}
		}
		if !isXMLChar(r) {
			return fmt.Errorf("%w: character %U at byte %d is not allowed in XML", ErrXMLFormat, r, i)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

func hasOuterSpace(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) != s
}

// WriteXML writes el as a standalone document to w. A positive indent
// pretty-prints with that many spaces. Carriage returns in text, and
// line breaks and tabs in attributes, are written as character references
// so parsing does not normalize them. Whitespace-only leaf text is kept.
func WriteXML(w io.Writer, el *etree.Element, indent int) error {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalText = true
	doc.WriteSettings.CanonicalAttrVal = true
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(el.Copy())
	if indent > 0 {
		settings := etree.NewIndentSettings()
		settings.Spaces = indent
		settings.PreserveLeafWhitespace = true
		doc.IndentWithSettings(settings)
	}
	_, err := doc.WriteTo(w)
	return err
}

// ReadXML parses a document from r and returns its root element.
func ReadXML(r io.Reader) (*etree.Element, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrXMLFormat, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrXMLFormat)
	}
	return root, nil
}
