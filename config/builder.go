package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// ValidatorFunc validates a fully loaded Config.
type ValidatorFunc func(c *Config) error

// Builder provides a fluent interface for building configurations.
type Builder struct {
	cfg        *Config
	opts       LoadOptions
	defaults   any
	prefix     string
	file       string
	args       []string
	logger     *zap.Logger
	validators []ValidatorFunc
}

// NewBuilder creates a builder that reads os.Args[1:] unless WithArgs is used.
func NewBuilder() *Builder {
	return &Builder{
		cfg:  New(),
		opts: DefaultLoadOptions(),
		args: os.Args[1:],
	}
}

// WithDefaults sets the struct containing default values.
func (b *Builder) WithDefaults(defaults any) *Builder {
	b.defaults = defaults
	return b
}

// WithPrefix sets the path prefix for struct registration and scanning.
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

// WithEnvPrefix sets the environment variable prefix.
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.opts.EnvPrefix = prefix
	return b
}

// WithFile sets the configuration file path.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithFileFormat forces the file format instead of detecting it.
func (b *Builder) WithFileFormat(format string) *Builder {
	b.opts.FileFormat = format
	return b
}

// WithSecurityOptions sets the checks applied to the config file.
func (b *Builder) WithSecurityOptions(opts SecurityOptions) *Builder {
	b.cfg.SetSecurityOptions(opts)
	return b
}

// WithArgs sets the command-line arguments.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithSources sets the precedence order for configuration sources.
func (b *Builder) WithSources(sources ...Source) *Builder {
	b.opts.Sources = sources
	return b
}

// WithEnvTransform sets a custom environment variable transformer.
func (b *Builder) WithEnvTransform(fn EnvTransformFunc) *Builder {
	b.opts.EnvTransform = fn
	return b
}

// WithEnvWhitelist limits which paths are checked for env vars.
func (b *Builder) WithEnvWhitelist(paths ...string) *Builder {
	if b.opts.EnvWhitelist == nil {
		b.opts.EnvWhitelist = make(map[string]bool)
	}
	for _, path := range paths {
		b.opts.EnvWhitelist[path] = true
	}
	return b
}

// WithValidator adds a validation function run after loading, in the
// order added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// WithLogger sets the logger used for load and substitution diagnostics.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// Build registers defaults, loads every source and runs validators.
// A missing file is not fatal: the Config is returned together with
// ErrConfigNotFound.
func (b *Builder) Build() (*Config, error) {
	if b.logger != nil {
		b.cfg.SetLogger(b.logger)
	}

	if b.defaults != nil {
		if err := b.cfg.RegisterStruct(b.prefix, b.defaults); err != nil {
			return nil, fmt.Errorf("failed to register defaults: %w", err)
		}
	}

	loadErr := b.cfg.LoadWithOptions(b.file, b.args, b.opts)
	if loadErr != nil && !errors.Is(loadErr, ErrConfigNotFound) {
		return nil, loadErr
	}

	for _, validator := range b.validators {
		if err := validator(b.cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return b.cfg, loadErr
}

// MustBuild is like Build but panics on any error other than ErrConfigNotFound.
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}

// BuildAndScan builds and decodes the result into target, using the
// registration prefix as the base path.
func (b *Builder) BuildAndScan(target any) error {
	cfg, err := b.Build()
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return err
	}

	if err := cfg.Scan(b.prefix, target); err != nil {
		return fmt.Errorf("failed to scan final config into target: %w", err)
	}
	return err
}

// Quick builds a Config from struct defaults with the standard
// CLI > Env > File > Default precedence.
func Quick(structDefaults any, envPrefix, configFile string) (*Config, error) {
	return NewBuilder().
		WithDefaults(structDefaults).
		WithEnvPrefix(envPrefix).
		WithFile(configFile).
		Build()
}
