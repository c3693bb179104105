package bench_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/xover/bench"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := bench.DefaultConfig()
	require.NoError(t, cfg.Validate())

	modes, err := cfg.ParsedModes()
	require.NoError(t, err)
	require.Len(t, modes, 16)
}

func TestLoad_LayersYAMLThenEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	raw := []byte("cities: 12\ntrials: 30\nmodes: [pmx, er]\nlog:\n  format: json\n")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	cfg, err := bench.Load(path, map[string]string{
		"XOVER_TRIALS":    "7",
		"XOVER_LOG_LEVEL": "debug",
	})
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, 12, cfg.Cities)     // yaml
	require.Equal(t, 7, cfg.Trials)      // env beats yaml
	require.Equal(t, 32, cfg.Population) // default
	require.Equal(t, []string{"pmx", "er"}, cfg.Modes)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvironmentModes(t *testing.T) {
	cfg, err := bench.Load("", map[string]string{"XOVER_MODES": "ox1,cx,hx"})
	require.NoError(t, err)
	require.Equal(t, []string{"ox1", "cx", "hx"}, cfg.Modes)
}

func TestLoad_Errors(t *testing.T) {
	_, err := bench.Load(filepath.Join(t.TempDir(), "missing.yaml"), map[string]string{})
	require.ErrorIs(t, err, bench.ErrInvalidConfig)

	_, err = bench.Load("", map[string]string{"XOVER_CITIES": "many"})
	require.ErrorIs(t, err, bench.ErrInvalidConfig)
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*bench.Config){
		"zero cities":   func(c *bench.Config) { c.Cities = 0 },
		"zero workers":  func(c *bench.Config) { c.Workers = 0 },
		"no modes":      func(c *bench.Config) { c.Modes = nil },
		"unknown mode":  func(c *bench.Config) { c.Modes = []string{"pmx", "zigzag"} },
		"bad log level": func(c *bench.Config) { c.Log.Level = "loud" },
		"bad format":    func(c *bench.Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := bench.DefaultConfig()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), bench.ErrInvalidConfig)
		})
	}
}
