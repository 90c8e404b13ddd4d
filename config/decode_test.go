package config

import (
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/commons/value"
)

// TestScanHooks tests decode hooks applied during Scan
func TestScanHooks(t *testing.T) {
	type Target struct {
		Timeout  time.Duration   `toml:"timeout"`
		Started  time.Time       `toml:"started"`
		Tags     []string        `toml:"tags"`
		Price    decimal.Decimal `toml:"price"`
		Total    *big.Int        `toml:"total"`
		Count    big.Int         `toml:"count"`
		Port     int             `toml:"port"`
		Enabled  bool            `toml:"enabled"`
		Limits   []int64         `toml:"limits"`
		Untagged string
	}

	cfg := New()
	cfg.Register("app.timeout", "")
	cfg.Register("app.started", "")
	cfg.Register("app.tags", "")
	cfg.Register("app.price", "")
	cfg.Register("app.total", "")
	cfg.Register("app.count", int64(0))
	cfg.Register("app.port", 0)
	cfg.Register("app.enabled", false)
	cfg.Register("app.limits", []int64{})

	require.NoError(t, cfg.LoadCLI([]string{
		"--app.timeout=45s",
		"--app.started=2024-05-01T12:00:00Z",
		"--app.tags=a,b,c",
		"--app.price=12.50",
		"--app.total=123456789012345678901234567890",
		"--app.port=8443",
		"--app.enabled",
	}))
	require.NoError(t, cfg.SetSource(SourceFile, "app.count", int64(77)))
	require.NoError(t, cfg.SetProperty("app.limits", value.NewLongMultiValues(1, 2)))

	var target Target
	require.NoError(t, cfg.Scan("app", &target))

	assert.Equal(t, 45*time.Second, target.Timeout)
	assert.True(t, target.Started.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, []string{"a", "b", "c"}, target.Tags)
	assert.True(t, target.Price.Equal(decimal.RequireFromString("12.5")))
	require.NotNil(t, target.Total)
	assert.Equal(t, "123456789012345678901234567890", target.Total.String())
	assert.Equal(t, "77", target.Count.String())
	assert.Equal(t, 8443, target.Port)
	assert.True(t, target.Enabled)
	assert.Equal(t, []int64{1, 2}, target.Limits)
}

// TestScanSections tests base path handling
func TestScanSections(t *testing.T) {
	cfg := New()
	cfg.Register("db.host", "localhost")
	cfg.Register("db.port", 5432)
	cfg.Register("name", "svc")

	t.Run("Section", func(t *testing.T) {
		var db struct {
			Host string `toml:"host"`
			Port int    `toml:"port"`
		}
		require.NoError(t, cfg.Scan("db", &db))
		assert.Equal(t, "localhost", db.Host)
		assert.Equal(t, 5432, db.Port)
	})

	t.Run("Root", func(t *testing.T) {
		var all map[string]any
		require.NoError(t, cfg.Scan("", &all))
		assert.Equal(t, "svc", all["name"])
		assert.Contains(t, all, "db")
	})

	t.Run("MissingSectionLeavesTarget", func(t *testing.T) {
		var other struct {
			Value string `toml:"value"`
		}
		other.Value = "unchanged"
		require.NoError(t, cfg.Scan("absent", &other))
		assert.Equal(t, "unchanged", other.Value)
	})

	t.Run("LeafIsNotSection", func(t *testing.T) {
		var target struct{}
		err := cfg.Scan("name", &target)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not refer to a scannable section")
	})

	t.Run("NonPointer", func(t *testing.T) {
		var target struct{}
		assert.Error(t, cfg.Scan("", target))
		assert.Error(t, cfg.Scan("", nil))
	})

	t.Run("ScanSource", func(t *testing.T) {
		require.NoError(t, cfg.SetSource(SourceEnv, "db.host", "env-host"))
		var db struct {
			Host string `toml:"host"`
			Port int    `toml:"port"`
		}
		require.NoError(t, cfg.ScanSource("db", SourceEnv, &db))
		assert.Equal(t, "env-host", db.Host)
		assert.Zero(t, db.Port)
	})

	t.Run("BadBigInt", func(t *testing.T) {
		c := New()
		c.Register("n", "not-a-number")
		var target struct {
			N *big.Int `toml:"n"`
		}
		assert.Error(t, c.Scan("", &target))
	})
}
