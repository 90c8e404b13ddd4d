package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Source represents a configuration source, used to define load precedence.
type Source string

const (
	// SourceDefault represents registered default values.
	SourceDefault Source = "default"
	// SourceFile represents values loaded from a configuration file.
	SourceFile Source = "file"
	// SourceEnv represents values loaded from environment variables.
	SourceEnv Source = "env"
	// SourceCLI represents values loaded from command-line arguments.
	SourceCLI Source = "cli"
)

// File formats understood by the loader.
const (
	FormatAuto = ""
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EnvTransformFunc converts a configuration path to an environment variable name.
type EnvTransformFunc func(path string) string

// LoadOptions configures how configuration is loaded from multiple sources.
type LoadOptions struct {
	// Sources defines the precedence order (first = highest priority).
	// Default: [SourceCLI, SourceEnv, SourceFile, SourceDefault]
	Sources []Source

	// EnvPrefix is prepended to environment variable names.
	// "MYAPP_" maps "server.port" to "MYAPP_SERVER_PORT".
	EnvPrefix string

	// EnvTransform customizes how paths map to environment variables.
	// If nil, dots become underscores and the result is uppercased.
	EnvTransform EnvTransformFunc

	// EnvWhitelist limits which paths are checked for env vars (nil = all).
	EnvWhitelist map[string]bool

	// FileFormat forces a file format; FormatAuto detects it.
	FileFormat string
}

// DefaultLoadOptions returns the standard load options.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Sources: []Source{SourceCLI, SourceEnv, SourceFile, SourceDefault},
	}
}

// Load reads the file and CLI overrides using the current options.
func (c *Config) Load(filePath string, args []string) error {
	c.mutex.RLock()
	opts := c.options
	c.mutex.RUnlock()
	return c.LoadWithOptions(filePath, args, opts)
}

// LoadWithOptions applies every source in opts, lowest precedence first.
// A missing file is reported as ErrConfigNotFound alongside any other
// non-fatal errors; parse failures of an existing file are fatal.
func (c *Config) LoadWithOptions(filePath string, args []string, opts LoadOptions) error {
	if len(opts.Sources) == 0 {
		opts.Sources = DefaultLoadOptions().Sources
	}
	c.mutex.Lock()
	c.options = opts
	c.mutex.Unlock()

	var loadErrors []error

	for i := len(opts.Sources) - 1; i >= 0; i-- {
		switch opts.Sources[i] {
		case SourceDefault:
			// Defaults are in place from Register.
			continue

		case SourceFile:
			if filePath != "" {
				if err := c.loadFile(filePath, opts.FileFormat); err != nil {
					if !errors.Is(err, ErrConfigNotFound) {
						return err
					}
					loadErrors = append(loadErrors, err)
				}
			}

		case SourceEnv:
			if err := c.loadEnv(opts); err != nil {
				loadErrors = append(loadErrors, err)
			}

		case SourceCLI:
			if len(args) > 0 {
				if err := c.loadCLI(args); err != nil {
					loadErrors = append(loadErrors, err)
				}
			}
		}
	}

	return errors.Join(loadErrors...)
}

// LoadFile loads values from a TOML, YAML or JSON file.
func (c *Config) LoadFile(filePath string) error {
	c.mutex.RLock()
	format := c.options.FileFormat
	c.mutex.RUnlock()
	return c.loadFile(filePath, format)
}

// LoadEnv loads values from environment variables named with prefix.
func (c *Config) LoadEnv(prefix string) error {
	c.mutex.RLock()
	opts := c.options
	c.mutex.RUnlock()
	opts.EnvPrefix = prefix
	return c.loadEnv(opts)
}

// LoadCLI loads values from "--path=value" style arguments.
func (c *Config) LoadCLI(args []string) error {
	return c.loadCLI(args)
}

// RegisterFile registers every leaf path found in a file with a nil
// default and then loads the file. Already registered paths keep their
// defaults. Keys that are not valid path segments are skipped and
// reported together after the load.
func (c *Config) RegisterFile(filePath string) error {
	c.mutex.RLock()
	format := c.options.FileFormat
	security := c.security
	c.mutex.RUnlock()

	fileConfig, _, err := readConfigFile(filePath, format, security)
	if err != nil {
		return err
	}

	var errs []error
	for path := range flattenMap(fileConfig, "") {
		if _, registered := c.Get(path); registered {
			continue
		}
		if err := c.Register(path, nil); err != nil {
			errs = append(errs, err)
		}
	}

	if err := c.loadFile(filePath, format); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// readConfigFile reads and decodes a file, detecting the format when it
// is FormatAuto, and returns the format used.
func readConfigFile(path, format string, security SecurityOptions) (map[string]any, string, error) {
	data, err := security.readFile(path)
	if err != nil {
		return nil, "", err
	}

	if format == FormatAuto {
		format = detectFileFormat(path)
		if format == FormatAuto {
			format = detectFormatFromContent(data)
		}
	}

	fileConfig, err := decodeFile(data, format)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse %s config file '%s': %w", strings.ToUpper(format), path, err)
	}
	return fileConfig, format, nil
}

func (c *Config) loadFile(path, format string) error {
	c.mutex.RLock()
	security := c.security
	c.mutex.RUnlock()

	fileConfig, format, err := readConfigFile(path, format, security)
	if err != nil {
		return err
	}

	c.log().Debug("loaded config file",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("keys", len(fileConfig)))

	// Collect registered paths without holding the write lock.
	c.mutex.RLock()
	registered := make(map[string]bool, len(c.items))
	for p := range c.items {
		registered[p] = true
	}
	c.mutex.RUnlock()

	fileData := make(map[string]any)
	var apply func(prefix string, data map[string]any)
	apply = func(prefix string, data map[string]any) {
		for key, value := range data {
			fullPath := key
			if prefix != "" {
				fullPath = prefix + "." + key
			}
			if registered[fullPath] {
				fileData[fullPath] = value
			} else if subMap, isMap := value.(map[string]any); isMap {
				apply(fullPath, subMap)
			}
		}
	}
	apply("", fileConfig)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.filePath = path
	for p, item := range c.items {
		if v, exists := fileData[p]; exists {
			if item.values == nil {
				item.values = make(map[Source]any)
			}
			item.values[SourceFile] = v
		} else {
			delete(item.values, SourceFile)
		}
		item.currentValue = c.computeValue(item)
		c.items[p] = item
	}
	return nil
}

func decodeFile(data []byte, format string) (map[string]any, error) {
	out := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&out); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unable to determine config format")
	}
	return out, nil
}

func (c *Config) loadEnv(opts LoadOptions) error {
	transform := opts.EnvTransform
	if transform == nil {
		transform = defaultEnvTransform(opts.EnvPrefix)
	}

	paths := c.Paths()
	found := make(map[string]any)
	for _, path := range paths {
		if opts.EnvWhitelist != nil && !opts.EnvWhitelist[path] {
			continue
		}
		if value, exists := os.LookupEnv(transform(path)); exists {
			if len(value) > MaxValueSize {
				return fmt.Errorf("%w: env for %s", ErrValueSize, path)
			}
			found[path] = parseValue(value)
		}
	}
	if len(found) == 0 {
		return nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for path, value := range found {
		if item, exists := c.items[path]; exists {
			if item.values == nil {
				item.values = make(map[Source]any)
			}
			item.values[SourceEnv] = value
			item.currentValue = c.computeValue(item)
			c.items[path] = item
		}
	}
	return nil
}

func (c *Config) loadCLI(args []string) error {
	parsed, err := parseArgs(args)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCLIParse, err)
	}

	flat := flattenMap(parsed, "")
	if len(flat) == 0 {
		return nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for path, value := range flat {
		if item, exists := c.items[path]; exists {
			if item.values == nil {
				item.values = make(map[Source]any)
			}
			item.values[SourceCLI] = value
			item.currentValue = c.computeValue(item)
			c.items[path] = item
		}
	}
	return nil
}

// DiscoverEnv returns path -> variable name for every registered path
// whose environment variable is set.
func (c *Config) DiscoverEnv(prefix string) map[string]string {
	c.mutex.RLock()
	transform := c.options.EnvTransform
	c.mutex.RUnlock()
	if transform == nil {
		transform = defaultEnvTransform(prefix)
	}

	discovered := make(map[string]string)
	for _, path := range c.Paths() {
		envVar := transform(path)
		if _, exists := os.LookupEnv(envVar); exists {
			discovered[path] = envVar
		}
	}
	return discovered
}

func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(path string) string {
		env := strings.ToUpper(strings.ReplaceAll(path, ".", "_"))
		env = strings.ReplaceAll(env, "-", "_")
		return prefix + env
	}
}

// Save writes the resolved configuration to a TOML file atomically.
func (c *Config) Save(path string) error {
	c.mutex.RLock()
	nested := make(map[string]any)
	for itemPath, item := range c.items {
		if v := plainValue(item.currentValue); v != nil {
			setNestedValue(nested, itemPath, v)
		}
	}
	c.mutex.RUnlock()

	return encodeAndWrite(path, nested, "config")
}

// SaveSource writes only the values held by source to a TOML file.
func (c *Config) SaveSource(path string, source Source) error {
	c.mutex.RLock()
	nested := make(map[string]any)
	for itemPath, item := range c.items {
		if val, exists := item.values[source]; exists && val != nil {
			setNestedValue(nested, itemPath, plainValue(val))
		}
	}
	c.mutex.RUnlock()

	return encodeAndWrite(path, nested, string(source)+" source")
}

func encodeAndWrite(path string, nested map[string]any, what string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(nested); err != nil {
		return fmt.Errorf("failed to marshal %s data to TOML: %w", what, err)
	}
	return atomicWriteFile(path, buf.Bytes())
}

func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// parseArgs turns "--a.b=v", "--a.b v" and bare "--flag" arguments into
// a nested map of parsed values. Non-flag arguments are skipped.
func parseArgs(args []string) (map[string]any, error) {
	result := make(map[string]any)
	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			i++
			continue
		}

		content := strings.TrimPrefix(arg, "--")
		if content == "" {
			i++
			continue
		}

		keyPath, valueStr, hasValue := strings.Cut(content, "=")
		switch {
		case hasValue:
			i++
		case i+1 >= len(args) || strings.HasPrefix(args[i+1], "--"):
			valueStr = "true"
			i++
		default:
			valueStr = args[i+1]
			i += 2
		}

		if keyPath == "" {
			continue
		}
		for _, segment := range strings.Split(keyPath, ".") {
			if !isValidKeySegment(segment) {
				return nil, fmt.Errorf("invalid command-line key segment %q in path %q", segment, keyPath)
			}
		}

		setNestedValue(result, keyPath, parseValue(valueStr))
	}
	return result, nil
}

// parseValue types text from the environment or the command line.
// Only exact forms convert: "true" and "false", and numbers whose
// canonical rendering is the input itself, so "007", "1e3" and digits
// beyond int64 or float64 precision stay text. Surrounding double
// quotes are removed.
func parseValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(v, 10) == s {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && strconv.FormatFloat(v, 'f', -1, 64) == s {
		return v
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatAuto
}

// detectFormatFromContent tries the strictest format first.
func detectFormatFromContent(data []byte) string {
	if err := json.Unmarshal(data, &map[string]any{}); err == nil {
		return FormatJSON
	}
	if err := toml.Unmarshal(data, &map[string]any{}); err == nil {
		return FormatTOML
	}
	if err := yaml.Unmarshal(data, &map[string]any{}); err == nil {
		return FormatYAML
	}
	return FormatAuto
}
