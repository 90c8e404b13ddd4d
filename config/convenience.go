package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"

	"github.com/lixenwraith/commons/value"
)

// Validate checks that every required path holds a value from some
// source other than its default.
func (c *Config) Validate(required ...string) error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var missing []string
	for _, path := range required {
		item, exists := c.items[path]
		if !exists {
			missing = append(missing, path+" (not registered)")
			continue
		}
		if !valuesEqual(item.currentValue, item.defaultValue) {
			continue
		}
		hasValue := false
		for _, val := range item.values {
			if val != nil {
				hasValue = true
				break
			}
		}
		if !hasValue {
			missing = append(missing, path)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Debug returns every path with its resolved, default and per-source values.
func (c *Config) Debug() string {
	var b strings.Builder
	c.mutex.RLock()
	fmt.Fprintf(&b, "Precedence: %v\n", c.options.Sources)
	c.mutex.RUnlock()

	for _, path := range c.Paths() {
		c.mutex.RLock()
		item := c.items[path]
		fmt.Fprintf(&b, "  %s:\n", path)
		fmt.Fprintf(&b, "    Current: %v\n", item.currentValue)
		fmt.Fprintf(&b, "    Default: %v\n", item.defaultValue)
		for _, source := range []Source{SourceCLI, SourceEnv, SourceFile} {
			if v, ok := item.values[source]; ok {
				fmt.Fprintf(&b, "    %s: %v\n", source, v)
			}
		}
		c.mutex.RUnlock()
	}
	return b.String()
}

// Dump writes the resolved configuration to w as TOML.
func (c *Config) Dump(w io.Writer) error {
	c.mutex.RLock()
	nested := make(map[string]any)
	for path, item := range c.items {
		if v := plainValue(item.currentValue); v != nil {
			setNestedValue(nested, path, v)
		}
	}
	c.mutex.RUnlock()

	return toml.NewEncoder(w).Encode(nested)
}

// ExportEnv returns variable name -> value for every path whose resolved
// value differs from its default, named the way LoadEnv reads them. Lists
// are joined with commas.
func (c *Config) ExportEnv(prefix string) map[string]string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	transform := c.options.EnvTransform
	if transform == nil {
		transform = defaultEnvTransform(prefix)
	}

	exports := make(map[string]string)
	for path, item := range c.items {
		if item.currentValue == nil || valuesEqual(item.currentValue, item.defaultValue) {
			continue
		}
		exports[transform(path)] = envText(plainValue(item.currentValue))
	}
	return exports
}

func envText(v any) string {
	switch list := v.(type) {
	case []string:
		return strings.Join(list, ",")
	case []any:
		return strings.Join(lo.Map(list, func(e any, _ int) string { return fmt.Sprint(e) }), ",")
	}
	return fmt.Sprintf("%v", v)
}

// Clone returns an independent copy. Stored cells are deep-copied.
func (c *Config) Clone() *Config {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	clone := &Config{
		items:    make(map[string]configItem, len(c.items)),
		options:  c.options,
		logger:   c.logger,
		security: c.security,
		filePath: c.filePath,
	}
	for path, item := range c.items {
		newItem := configItem{
			defaultValue: cloneStored(item.defaultValue),
			currentValue: cloneStored(item.currentValue),
		}
		if item.values != nil {
			newItem.values = make(map[Source]any, len(item.values))
			for source, v := range item.values {
				newItem.values[source] = cloneStored(v)
			}
		}
		clone.items[path] = newItem
	}
	return clone
}

func cloneStored(v any) any {
	switch cell := v.(type) {
	case *value.MultiValues:
		return cell.Clone()
	case *value.Value:
		return cell.Clone()
	}
	return v
}
