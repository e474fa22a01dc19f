package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/config"
)

const tomlConfig = `
[log]
level = "debug"
format = "json"

[coloring]
strategy = "sl"
interchange = true
seed = 99

[server]
addr = "127.0.0.1:9000"

[bench]
sizes = [10, 20]
probabilities = [0.25]
workers = 2
`

const yamlConfig = `
log:
  level: warn
coloring:
  strategy: largest-first
bench:
  probabilities: [0.5, 1.0]
`

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.Validate(cfg))
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "dsatur", cfg.Coloring.Strategy)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []int{100, 200}, cfg.Bench.Sizes)
	assert.Equal(t, []float64{0.1, 0.5, 0.9}, cfg.Bench.Probabilities)
}

func TestLoad_TOML(t *testing.T) {
	cfg, err := config.Load(write(t, "chroma.toml", tomlConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "sl", cfg.Coloring.Strategy)
	assert.True(t, cfg.Coloring.Interchange)
	assert.Equal(t, int64(99), cfg.Coloring.Seed)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 10000, cfg.Server.MaxVertices, "defaulted")
	assert.Equal(t, []int{10, 20}, cfg.Bench.Sizes)
	assert.Equal(t, []float64{0.25}, cfg.Bench.Probabilities)
	assert.Equal(t, 2, cfg.Bench.Workers)
}

func TestLoad_YAML(t *testing.T) {
	cfg, err := config.Load(write(t, "chroma.yaml", yamlConfig))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "largest-first", cfg.Coloring.Strategy)
	assert.Equal(t, []int{100, 200}, cfg.Bench.Sizes)
	assert.Equal(t, []float64{0.5, 1.0}, cfg.Bench.Probabilities)

	empty, err := config.Load(write(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), empty)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(write(t, "c.ini", "x=1"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFile)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = config.Load(write(t, "c.toml", "[coloring]\nstrategee = \"lf\"\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(write(t, "c.yaml", "coloring:\n  strategee: lf\n"))
	assert.Error(t, err)

	_, err = config.Load(write(t, "c.toml", "[coloring\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"
	cfg.Coloring.Strategy = "rainbow"
	cfg.Bench.Sizes = []int{0}
	cfg.Bench.Probabilities = []float64{1.5}
	cfg.Bench.Workers = -1

	err := config.Validate(cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	for _, want := range []string{"log.level", "log.format", "coloring.strategy", "bench.sizes[0]", "bench.probabilities[0]", "bench.workers"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoader_Reload(t *testing.T) {
	path := write(t, "chroma.toml", tomlConfig)
	l, err := config.NewLoader(path, log.New(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.Equal(t, "sl", l.Config().Coloring.Strategy)

	var seen atomic.Value
	l.OnChange(func(c *config.Config) { seen.Store(c.Coloring.Strategy) })

	require.NoError(t, os.WriteFile(path, []byte("[coloring]\nstrategy = \"rs\"\n"), 0o644))
	cfg, err := l.Reload()
	require.NoError(t, err)
	assert.Equal(t, "rs", cfg.Coloring.Strategy)
	assert.Equal(t, "rs", l.Config().Coloring.Strategy)
	assert.Equal(t, "rs", seen.Load())

	require.NoError(t, os.WriteFile(path, []byte("[coloring]\nstrategy = \"nope\"\n"), 0o644))
	_, err = l.Reload()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Equal(t, "rs", l.Config().Coloring.Strategy, "previous config kept")
}

func TestLoader_Watch(t *testing.T) {
	path := write(t, "chroma.yaml", yamlConfig)
	l, err := config.NewLoader(path, log.New(&bytes.Buffer{}))
	require.NoError(t, err)

	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("coloring:\n  strategy: dsatur\n  interchange: true\n"), 0o644))

	require.Eventually(t, func() bool {
		c := l.Config()
		return c.Coloring.Strategy == "dsatur" && c.Coloring.Interchange
	}, 5*time.Second, 20*time.Millisecond)

	stop()
	stop()
}

// TestLoader_WatchAtomicSave replaces the file by rename twice, the way many
// editors save, and expects both versions to be picked up.
func TestLoader_WatchAtomicSave(t *testing.T) {
	path := write(t, "chroma.yaml", yamlConfig)
	dir := filepath.Dir(path)
	l, err := config.NewLoader(path, log.New(&bytes.Buffer{}))
	require.NoError(t, err)

	var reloads atomic.Int32
	l.OnChange(func(*config.Config) { reloads.Add(1) })

	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	save := func(body string) {
		tmp := filepath.Join(dir, ".chroma.yaml.swp")
		require.NoError(t, os.WriteFile(tmp, []byte(body), 0o644))
		require.NoError(t, os.Rename(tmp, path))
	}

	save("coloring:\n  strategy: sl\n")
	require.Eventually(t, func() bool {
		return l.Config().Coloring.Strategy == "sl"
	}, 5*time.Second, 20*time.Millisecond)

	save("coloring:\n  strategy: rs\n")
	require.Eventually(t, func() bool {
		return l.Config().Coloring.Strategy == "rs" && reloads.Load() >= 2
	}, 5*time.Second, 20*time.Millisecond)

	settled := reloads.Load()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	assert.Never(t, func() bool { return reloads.Load() != settled }, 300*time.Millisecond, 20*time.Millisecond)
}

func TestLogConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := config.LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"k":1`)

	assert.Equal(t, log.InfoLevel, config.LogConfig{Level: "???"}.NewLogger(&buf).GetLevel())
}
