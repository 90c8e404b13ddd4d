package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiscoverFile tests lookup order for config files
func TestDiscoverFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "sys"))
	t.Setenv("DISCO_CONFIG", "")

	opts := DefaultDiscoveryOptions("disco")
	opts.UseCurrentDir = false
	assert.Equal(t, "DISCO_CONFIG", opts.EnvVar)

	t.Run("NothingFound", func(t *testing.T) {
		_, ok := DiscoverFile(opts, nil)
		assert.False(t, ok)
	})

	xdgFile := filepath.Join(dir, "xdg", "disco", "disco.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(xdgFile), 0755))
	require.NoError(t, os.WriteFile(xdgFile, []byte("a: 1\n"), 0644))

	t.Run("XDGHome", func(t *testing.T) {
		path, ok := DiscoverFile(opts, nil)
		require.True(t, ok)
		assert.Equal(t, xdgFile, path)
	})

	t.Run("CustomPathsFirst", func(t *testing.T) {
		custom := filepath.Join(dir, "custom")
		require.NoError(t, os.MkdirAll(custom, 0755))
		customFile := filepath.Join(custom, "disco.json")
		require.NoError(t, os.WriteFile(customFile, []byte(`{"a": 1}`), 0644))

		withCustom := opts
		withCustom.Paths = []string{custom}
		path, ok := DiscoverFile(withCustom, nil)
		require.True(t, ok)
		assert.Equal(t, customFile, path)
	})

	t.Run("ExtensionOrder", func(t *testing.T) {
		tomlFile := filepath.Join(dir, "xdg", "disco", "disco.toml")
		require.NoError(t, os.WriteFile(tomlFile, []byte("a = 1\n"), 0644))
		defer os.Remove(tomlFile)

		path, ok := DiscoverFile(opts, nil)
		require.True(t, ok)
		assert.Equal(t, tomlFile, path)
	})

	t.Run("EnvVar", func(t *testing.T) {
		t.Setenv("DISCO_CONFIG", "/explicit/env.toml")
		path, ok := DiscoverFile(opts, nil)
		require.True(t, ok)
		assert.Equal(t, "/explicit/env.toml", path)
	})

	t.Run("CLIFlag", func(t *testing.T) {
		t.Setenv("DISCO_CONFIG", "/explicit/env.toml")
		tests := []struct {
			name string
			args []string
			want string
		}{
			{"Space", []string{"--verbose", "--config", "/cli/a.toml"}, "/cli/a.toml"},
			{"Equals", []string{"--config=/cli/b.toml"}, "/cli/b.toml"},
			{"AfterTerminator", []string{"--", "--config=/cli/c.toml"}, "/explicit/env.toml"},
			{"MissingValue", []string{"--config"}, "/explicit/env.toml"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				path, ok := DiscoverFile(opts, tt.args)
				require.True(t, ok)
				assert.Equal(t, tt.want, path)
			})
		}
	})
}

// TestBuilderFileDiscovery tests discovery through the builder
func TestBuilderFileDiscovery(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "svc.toml"), []byte(`
[server]
host = "discovered"
`), 0644))

	opts := DefaultDiscoveryOptions("svc")
	opts.Paths = []string{dir}
	opts.UseXDG = false
	opts.UseCurrentDir = false
	opts.EnvVar = ""

	cfg, err := NewBuilder().
		WithDefaults(builderDefaults()).
		WithArgs(nil).
		WithFileDiscovery(opts).
		Build()
	require.NoError(t, err)
	host, _ := cfg.String("server.host")
	assert.Equal(t, "discovered", host)

	t.Run("NoMatchRunsOnDefaults", func(t *testing.T) {
		opts.Paths = []string{t.TempDir()}
		cfg, err := NewBuilder().
			WithDefaults(builderDefaults()).
			WithArgs(nil).
			WithFileDiscovery(opts).
			Build()
		require.NoError(t, err)
		host, _ := cfg.String("server.host")
		assert.Equal(t, "localhost", host)
	})
}
