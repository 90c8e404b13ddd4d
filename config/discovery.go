package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// FileDiscoveryOptions configures config file lookup
type FileDiscoveryOptions struct {
	// Base name of the file, without extension
	Name string

	// Extensions tried in order for each directory
	Extensions []string

	// Directories searched before the defaults
	Paths []string

	// Environment variable holding an explicit path
	EnvVar string

	// Flag holding an explicit path, e.g. "--config"
	CLIFlag string

	UseXDG        bool
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns lookup options for appName covering every
// supported file format.
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".toml", ".yaml", ".yml", ".json", ".conf", ".config"},
		EnvVar:        strings.ToUpper(strings.ReplaceAll(appName, "-", "_")) + "_CONFIG",
		CLIFlag:       "--config",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// DiscoverFile locates a config file. An explicit flag in args wins over the
// environment variable, which wins over the first existing file in the
// search directories. An explicit path is returned even if it does not exist.
func DiscoverFile(opts FileDiscoveryOptions, args []string) (string, bool) {
	if opts.CLIFlag != "" {
		for i, arg := range args {
			if arg == "--" {
				break
			}
			if arg == opts.CLIFlag && i+1 < len(args) {
				return args[i+1], true
			}
			if path, ok := strings.CutPrefix(arg, opts.CLIFlag+"="); ok {
				return path, true
			}
		}
	}

	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path, true
		}
	}

	for _, dir := range searchPaths(opts) {
		for _, ext := range opts.Extensions {
			path := filepath.Join(dir, opts.Name+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, true
			}
		}
	}
	return "", false
}

// WithFileDiscovery sets the config file from DiscoverFile using the
// builder's arguments. Without a match the builder runs on defaults,
// environment and command line only.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	if path, ok := DiscoverFile(opts, b.args); ok {
		b.file = path
	}
	return b
}

func searchPaths(opts FileDiscoveryOptions) []string {
	paths := append([]string{}, opts.Paths...)
	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			paths = append(paths, cwd)
		}
	}
	if opts.UseXDG {
		paths = append(paths, xdgConfigPaths(opts.Name)...)
	}
	return lo.Uniq(paths)
}

func xdgConfigPaths(appName string) []string {
	var paths []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}
	return paths
}
