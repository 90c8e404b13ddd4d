package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrFileRejected indicates a config file refused by SecurityOptions.
var ErrFileRejected = errors.New("config file rejected")

// SecurityOptions restricts which files LoadFile and RegisterFile accept.
// The zero value accepts any readable file.
type SecurityOptions struct {
	// PreventPathTraversal rejects relative paths that climb above the
	// working directory once cleaned.
	PreventPathTraversal bool

	// MaxFileSize caps the file size in bytes. Zero means no limit.
	MaxFileSize int64

	// EnforceFileOwnership requires the file to be owned by the effective
	// user. Ignored where file ownership is not available.
	EnforceFileOwnership bool
}

// SetSecurityOptions sets the checks applied to config files.
func (c *Config) SetSecurityOptions(opts SecurityOptions) {
	c.mutex.Lock()
	c.security = opts
	c.mutex.Unlock()
}

// readFile reads path after applying the enabled checks.
func (s SecurityOptions) readFile(path string) ([]byte, error) {
	if s.PreventPathTraversal {
		clean := filepath.Clean(path)
		if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return nil, fmt.Errorf("%w: potential path traversal detected in config path: %s", ErrFileRejected, path)
		}
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to open config file '%s': %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file '%s': %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: config path '%s' is a directory", ErrFileRejected, path)
	}
	if s.MaxFileSize > 0 && info.Size() > s.MaxFileSize {
		return nil, fmt.Errorf("%w: config file '%s' exceeds maximum size %d bytes", ErrFileRejected, path, s.MaxFileSize)
	}
	if s.EnforceFileOwnership {
		if err := checkOwner(path, info); err != nil {
			return nil, err
		}
	}

	var reader io.Reader = file
	if s.MaxFileSize > 0 {
		// One extra byte detects a file that grew after the stat.
		reader = io.LimitReader(file, s.MaxFileSize+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	if s.MaxFileSize > 0 && int64(len(data)) > s.MaxFileSize {
		return nil, fmt.Errorf("%w: config file '%s' exceeds maximum size %d bytes", ErrFileRejected, path, s.MaxFileSize)
	}
	return data, nil
}
