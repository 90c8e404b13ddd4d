package config

import (
	"encoding"
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

var (
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	decimalType       = reflect.TypeOf(decimal.Decimal{})
	bigIntType        = reflect.TypeOf(big.Int{})
)

// Scan decodes the resolved configuration under basePath into target,
// which must be a non-nil pointer to a struct or map. Fields map by
// their `toml` tag.
func (c *Config) Scan(basePath string, target any) error {
	return c.unmarshal(basePath, "", target)
}

// ScanSource is like Scan but only sees the values held by one source.
func (c *Config) ScanSource(basePath string, source Source, target any) error {
	return c.unmarshal(basePath, source, target)
}

func (c *Config) unmarshal(basePath string, source Source, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	c.mutex.RLock()
	nested := make(map[string]any)
	for path, item := range c.items {
		if source == "" {
			setNestedValue(nested, path, plainValue(item.currentValue))
		} else if val, exists := item.values[source]; exists {
			setNestedValue(nested, path, plainValue(val))
		}
	}
	c.mutex.RUnlock()

	section := navigateToPath(nested, basePath)
	sectionMap, ok := section.(map[string]any)
	if !ok {
		if section != nil {
			return fmt.Errorf("configuration path %q does not refer to a scannable section, but to type %T", basePath, section)
		}
		sectionMap = make(map[string]any)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("failed to scan section %q into %T: %w", basePath, target, err)
	}
	return nil
}

func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
		toDecimalHookFunc(),
		toBigIntHookFunc(),
	)
}

// toDecimalHookFunc decodes strings and numbers into decimal.Decimal.
func toDecimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != decimalType {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return decimal.NewFromString(v)
		case float64:
			return decimal.NewFromFloat(v), nil
		case float32:
			return decimal.NewFromFloat32(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		}
		return data, nil
	}
}

// toBigIntHookFunc decodes base-10 strings and integers into big.Int or *big.Int.
func toBigIntHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		isPtr := t.Kind() == reflect.Ptr
		target := t
		if isPtr {
			target = t.Elem()
		}
		if target != bigIntType {
			return data, nil
		}

		var b *big.Int
		switch v := data.(type) {
		case string:
			parsed, ok := new(big.Int).SetString(v, 10)
			if !ok {
				return nil, fmt.Errorf("invalid big integer: %q", v)
			}
			b = parsed
		case int:
			b = big.NewInt(int64(v))
		case int64:
			b = big.NewInt(v)
		default:
			return data, nil
		}
		if isPtr {
			return b, nil
		}
		return *b, nil
	}
}
