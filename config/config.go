package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// MaxValueSize bounds string values accepted from any source.
const MaxValueSize = 1024 * 1024

var (
	// ErrConfigNotFound indicates the specified configuration file was not found.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrCLIParse indicates that parsing command-line arguments failed.
	ErrCLIParse = errors.New("failed to parse command-line arguments")

	// ErrValueSize indicates a value larger than MaxValueSize.
	ErrValueSize = fmt.Errorf("value size exceeds maximum %d bytes", MaxValueSize)

	// ErrPathNotRegistered indicates an operation on a path that was never registered.
	ErrPathNotRegistered = errors.New("path not registered")
)

// configItem holds the default, the per-source values and the resolved value for a path.
type configItem struct {
	defaultValue any
	values       map[Source]any
	currentValue any
}

// Config manages properties loaded from defaults, files, environment and CLI.
type Config struct {
	items    map[string]configItem
	mutex    sync.RWMutex
	options  LoadOptions
	logger   *zap.Logger
	security SecurityOptions
	filePath string
}

// New creates a Config with DefaultLoadOptions.
func New() *Config {
	return NewWithOptions(DefaultLoadOptions())
}

// NewWithOptions creates a Config with the given load options.
func NewWithOptions(opts LoadOptions) *Config {
	if len(opts.Sources) == 0 {
		opts.Sources = DefaultLoadOptions().Sources
	}
	return &Config{
		items:   make(map[string]configItem),
		options: opts,
		logger:  zap.NewNop(),
	}
}

// SetLogger replaces the logger. A nil logger disables logging.
func (c *Config) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.mutex.Lock()
	c.logger = logger
	c.mutex.Unlock()
}

func (c *Config) log() *zap.Logger {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.logger
}

// SetLoadOptions changes the source precedence and recomputes every value.
func (c *Config) SetLoadOptions(opts LoadOptions) error {
	if len(opts.Sources) == 0 {
		return fmt.Errorf("load options must name at least one source")
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.options = opts
	for path, item := range c.items {
		item.currentValue = c.computeValue(item)
		c.items[path] = item
	}
	return nil
}

// Get returns the resolved value for path and whether the path is registered.
func (c *Config) Get(path string) (any, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, registered := c.items[path]
	if !registered {
		return nil, false
	}
	return item.currentValue, true
}

// Set stores value under the highest-precedence source.
func (c *Config) Set(path string, value any) error {
	c.mutex.RLock()
	source := c.options.Sources[0]
	c.mutex.RUnlock()
	return c.SetSource(source, path, value)
}

// SetSource stores value for path under a specific source.
func (c *Config) SetSource(source Source, path string, value any) error {
	if s, ok := value.(string); ok && len(s) > MaxValueSize {
		return ErrValueSize
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	item, registered := c.items[path]
	if !registered {
		return fmt.Errorf("%w: %s", ErrPathNotRegistered, path)
	}
	if source == SourceDefault {
		item.defaultValue = value
	} else {
		if item.values == nil {
			item.values = make(map[Source]any)
		}
		item.values[source] = value
	}
	item.currentValue = c.computeValue(item)
	c.items[path] = item
	return nil
}

// GetSource returns the value a single source holds for path.
func (c *Config) GetSource(path string, source Source) (any, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, registered := c.items[path]
	if !registered {
		return nil, false
	}
	if source == SourceDefault {
		return item.defaultValue, true
	}
	v, ok := item.values[source]
	return v, ok
}

// GetSources returns a copy of every non-default source value for path.
func (c *Config) GetSources(path string) map[Source]any {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, registered := c.items[path]
	if !registered {
		return nil
	}
	out := make(map[Source]any, len(item.values))
	for s, v := range item.values {
		out[s] = v
	}
	return out
}

// ResetSource drops every value held by source.
func (c *Config) ResetSource(source Source) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for path, item := range c.items {
		delete(item.values, source)
		item.currentValue = c.computeValue(item)
		c.items[path] = item
	}
}

// Reset drops all source values so every path resolves to its default.
func (c *Config) Reset() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for path, item := range c.items {
		item.values = nil
		item.currentValue = item.defaultValue
		c.items[path] = item
	}
}

// Paths returns every registered path in lexical order.
func (c *Config) Paths() []string {
	c.mutex.RLock()
	paths := lo.Keys(c.items)
	c.mutex.RUnlock()

	sort.Strings(paths)
	return paths
}

// computeValue resolves an item against the configured precedence.
// Callers must hold the write lock.
func (c *Config) computeValue(item configItem) any {
	for _, source := range c.options.Sources {
		if source == SourceDefault {
			return item.defaultValue
		}
		if v, ok := item.values[source]; ok {
			return v
		}
	}
	return item.defaultValue
}

// valuesEqual compares resolved values, which may hold slices or maps.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
