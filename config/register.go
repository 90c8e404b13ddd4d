package config

import (
	"fmt"
	"reflect"
	"strings"
)

// Register makes a configuration path known to the Config instance.
// The path is dot-separated ("server.port") and every segment must be a
// valid TOML bare key. Registering an existing path replaces its default
// and keeps any source values.
func (c *Config) Register(path string, defaultValue any) error {
	if path == "" {
		return fmt.Errorf("registration path cannot be empty")
	}

	for _, segment := range strings.Split(path, ".") {
		if !isValidKeySegment(segment) {
			return fmt.Errorf("invalid path segment %q in path %q", segment, path)
		}
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	item := c.items[path]
	item.defaultValue = defaultValue
	item.currentValue = c.computeValue(item)
	c.items[path] = item
	return nil
}

// Unregister removes a configuration path and all its children.
func (c *Config) Unregister(path string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	prefix := path + "."
	_, exists := c.items[path]
	if !exists {
		hasChildren := false
		for childPath := range c.items {
			if strings.HasPrefix(childPath, prefix) {
				hasChildren = true
				break
			}
		}
		if !hasChildren {
			return fmt.Errorf("%w: %s", ErrPathNotRegistered, path)
		}
	}

	delete(c.items, path)
	for childPath := range c.items {
		if strings.HasPrefix(childPath, prefix) {
			delete(c.items, childPath)
		}
	}
	return nil
}

// RegisterStruct registers one path per leaf field of a struct, using
// `toml` tags for the segment names. Nested structs recurse; nil struct
// pointers are skipped. The prefix is prepended to all paths.
func (c *Config) RegisterStruct(prefix string, structWithDefaults any) error {
	v := reflect.ValueOf(structWithDefaults)

	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("RegisterStruct requires a non-nil struct pointer or value")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("RegisterStruct requires a struct or struct pointer, got %T", structWithDefaults)
	}

	var errs []string
	c.registerFields(v, prefix, "", &errs)
	if len(errs) > 0 {
		return fmt.Errorf("failed to register %d field(s): %s", len(errs), strings.Join(errs, "; "))
	}
	return nil
}

func (c *Config) registerFields(v reflect.Value, pathPrefix, fieldPath string, errs *[]string) {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("toml")
		if tag == "-" {
			continue
		}
		key := field.Name
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			key = name
		}

		currentPath := key
		if pathPrefix != "" {
			currentPath = strings.TrimSuffix(pathPrefix, ".") + "." + key
		}

		if isNestedStruct(fieldValue) {
			nested := fieldValue
			if nested.Kind() == reflect.Ptr {
				if nested.IsNil() {
					continue
				}
				nested = nested.Elem()
			}
			c.registerFields(nested, currentPath, fieldPath+field.Name+".", errs)
			continue
		}

		if err := c.Register(currentPath, fieldValue.Interface()); err != nil {
			*errs = append(*errs, fmt.Sprintf("field %s%s (path %s): %v", fieldPath, field.Name, currentPath, err))
		}
	}
}

// isNestedStruct reports whether a field should be walked instead of
// registered. Leaf struct types with their own text form (time.Time,
// decimal.Decimal) are registered as values.
func isNestedStruct(v reflect.Value) bool {
	t := v.Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	return !reflect.PointerTo(t).Implements(textMarshalerType) && !t.Implements(textMarshalerType)
}

// GetRegisteredPaths returns all registered paths with the given prefix.
func (c *Config) GetRegisteredPaths(prefix string) map[string]bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	result := make(map[string]bool)
	for path := range c.items {
		if strings.HasPrefix(path, prefix) {
			result[path] = true
		}
	}
	return result
}
