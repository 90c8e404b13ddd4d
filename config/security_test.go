package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSecurityOptions tests the file checks applied before decoding
func TestSecurityOptions(t *testing.T) {
	t.Run("PathTraversal", func(t *testing.T) {
		cfg := New()
		cfg.SetSecurityOptions(SecurityOptions{PreventPathTraversal: true})

		maliciousPaths := []string{
			"../../../etc/passwd",
			"..",
			"config/../../../etc/passwd",
			"./../secret.toml",
		}
		for _, path := range maliciousPaths {
			err := cfg.LoadFile(path)
			require.Error(t, err, "expected error for path: %s", path)
			assert.ErrorIs(t, err, ErrFileRejected)
			assert.Contains(t, err.Error(), "path traversal")
		}

		tmpDir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "conf", "sub"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "conf", "app.toml"), []byte("name = \"inside\"\n"), 0644))
		oldWd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(tmpDir))
		t.Cleanup(func() { _ = os.Chdir(oldWd) })

		cfg.Register("name", "")
		require.NoError(t, cfg.LoadFile("conf/sub/../app.toml"))
		name, _ := cfg.String("name")
		assert.Equal(t, "inside", name)

		// Absolute paths are not traversal.
		require.NoError(t, cfg.LoadFile(filepath.Join(tmpDir, "conf", "..", "conf", "app.toml")))
	})

	t.Run("FileSizeLimit", func(t *testing.T) {
		tmpDir := t.TempDir()
		large := filepath.Join(tmpDir, "large.toml")
		require.NoError(t, os.WriteFile(large, []byte("data = \""+strings.Repeat("x", 1024)+"\"\n"), 0644))

		cfg := New()
		cfg.Register("data", "")
		cfg.SetSecurityOptions(SecurityOptions{MaxFileSize: 512})

		err := cfg.LoadFile(large)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFileRejected)
		assert.Contains(t, err.Error(), "exceeds maximum size")
		data, _ := cfg.String("data")
		assert.Empty(t, data)

		err = cfg.RegisterFile(large)
		assert.ErrorIs(t, err, ErrFileRejected)

		cfg.SetSecurityOptions(SecurityOptions{MaxFileSize: 2048})
		require.NoError(t, cfg.LoadFile(large))
		data, _ = cfg.String("data")
		assert.Len(t, data, 1024)
	})

	t.Run("Directory", func(t *testing.T) {
		err := New().LoadFile(t.TempDir())
		assert.ErrorIs(t, err, ErrFileRejected)
	})

	t.Run("MissingFile", func(t *testing.T) {
		cfg := New()
		cfg.SetSecurityOptions(SecurityOptions{PreventPathTraversal: true, MaxFileSize: 10, EnforceFileOwnership: true})
		err := cfg.LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("FileOwnership", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("file ownership not available on windows")
		}

		tmpDir := t.TempDir()
		owned := filepath.Join(tmpDir, "owned.toml")
		require.NoError(t, os.WriteFile(owned, []byte("name = \"mine\"\n"), 0644))

		cfg := New()
		cfg.Register("name", "")
		cfg.SetSecurityOptions(SecurityOptions{EnforceFileOwnership: true})
		require.NoError(t, cfg.LoadFile(owned))
		name, _ := cfg.String("name")
		assert.Equal(t, "mine", name)

		if os.Geteuid() != 0 {
			t.Skip("changing file owner requires root")
		}
		foreign := filepath.Join(tmpDir, "foreign.toml")
		require.NoError(t, os.WriteFile(foreign, []byte("name = \"theirs\"\n"), 0644))
		require.NoError(t, os.Chown(foreign, 65534, 65534))

		err := cfg.LoadFile(foreign)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFileRejected)
		assert.Contains(t, err.Error(), "not owned by current user")
		name, _ = cfg.String("name")
		assert.Equal(t, "mine", name)
	})

	t.Run("Builder", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "app.toml")
		require.NoError(t, os.WriteFile(configFile, []byte("[server]\nhost = \"file-host\"\n"), 0644))

		_, err := NewBuilder().
			WithDefaults(builderDefaults()).
			WithFile(configFile).
			WithSecurityOptions(SecurityOptions{MaxFileSize: 8}).
			Build()
		assert.ErrorIs(t, err, ErrFileRejected)

		cfg, err := NewBuilder().
			WithDefaults(builderDefaults()).
			WithFile(configFile).
			WithSecurityOptions(SecurityOptions{MaxFileSize: 1024, PreventPathTraversal: true}).
			Build()
		require.NoError(t, err)
		host, _ := cfg.String("server.host")
		assert.Equal(t, "file-host", host)

		clone := cfg.Clone()
		assert.ErrorIs(t, clone.LoadFile(filepath.Join("..", "app.toml")), ErrFileRejected)
	})
}
