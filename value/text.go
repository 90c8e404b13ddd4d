package value

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order when parsing DATE text.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// FormatText renders a scalar of kind t in its canonical text form.
// The same form is used by STRING conversions and the XML codec.
func FormatText(t Type, v any) (string, error) {
	switch t {
	case Boolean:
		return strconv.FormatBool(v.(bool)), nil
	case Char:
		return string(v.(rune)), nil
	case Byte:
		return strconv.FormatInt(int64(v.(int8)), 10), nil
	case Short:
		return strconv.FormatInt(int64(v.(int16)), 10), nil
	case Int:
		return strconv.FormatInt(int64(v.(int32)), 10), nil
	case Long:
		return strconv.FormatInt(v.(int64), 10), nil
	case Float:
		return strconv.FormatFloat(float64(v.(float32)), 'g', -1, 32), nil
	case Double:
		return strconv.FormatFloat(v.(float64), 'g', -1, 64), nil
	case String:
		return v.(string), nil
	case Date:
		return v.(time.Time).Format(time.RFC3339Nano), nil
	case BigInteger:
		return v.(*big.Int).String(), nil
	case BigDecimal:
		return v.(decimal.Decimal).String(), nil
	case ByteArray:
		return base64.StdEncoding.EncodeToString(v.([]byte)), nil
	case Class:
		ct, _ := v.(reflect.Type)
		if ct == nil {
			return "", fmt.Errorf("%w: nil class reference", ErrTypeConvert)
		}
		return ClassName(ct), nil
	}
	return "", unsupported(t)
}

// ParseText parses the canonical text form of kind t. Surrounding
// whitespace is ignored for every kind except STRING and CHAR.
func ParseText(t Type, s string) (any, error) {
	if t != String && t != Char {
		s = strings.TrimSpace(s)
	}
	switch t {
	case Boolean:
		return strconv.ParseBool(s)
	case Char:
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) || r == utf8.RuneError {
			return nil, fmt.Errorf("invalid char %q", s)
		}
		return r, nil
	case Byte:
		i, err := strconv.ParseInt(s, 10, 8)
		return int8(i), err
	case Short:
		i, err := strconv.ParseInt(s, 10, 16)
		return int16(i), err
	case Int:
		i, err := strconv.ParseInt(s, 10, 32)
		return int32(i), err
	case Long:
		return strconv.ParseInt(s, 10, 64)
	case Float:
		f, err := strconv.ParseFloat(s, 32)
		return float32(f), err
	case Double:
		return strconv.ParseFloat(s, 64)
	case String:
		return s, nil
	case Date:
		return parseDate(s)
	case BigInteger:
		b, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("invalid big integer %q", s)
		}
		return b, nil
	case BigDecimal:
		return decimal.NewFromString(s)
	case ByteArray:
		return base64.StdEncoding.DecodeString(s)
	case Class:
		ct, ok := LookupClass(s)
		if !ok {
			return nil, fmt.Errorf("unknown class %q", s)
		}
		return ct, nil
	}
	return nil, unsupported(t)
}

func parseDate(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		d, err := time.Parse(layout, s)
		if err == nil {
			return d, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
