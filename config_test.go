package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorgenbele/go-clock/status"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadFile(t *testing.T, path string) (Config, error) {
	t.Helper()
	v := viper.New()
	setDefaults(v)
	useConfigFile(v, path)
	return readConfig(v, true)
}

func TestReadConfig_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(t.TempDir())

	cfg, err := readConfig(v, false)
	require.NoError(t, err)
	assert.Equal(t, BarI3, cfg.Bar)
	assert.Equal(t, "info", cfg.LogLevel)

	style, err := cfg.Clock.Style()
	require.NoError(t, err)
	grey := status.ColorFromHex("#8A8B8C")
	assert.Equal(t, ClockStyle{Name: "clock", Alignment: status.AlignRight, Color: &grey}, style)
}

func TestReadConfig_File(t *testing.T) {
	path := writeConfig(t, `
bar: lemonbar
log_level: debug
clock:
  name: time
  instance: desk
  align: center
  color: "#ffffff"
  background: "#000000"
`)

	cfg, err := loadFile(t, path)
	require.NoError(t, err)
	assert.Equal(t, BarLemon, cfg.Bar)
	assert.Equal(t, "debug", cfg.LogLevel)

	style, err := cfg.Clock.Style()
	require.NoError(t, err)
	assert.Equal(t, "time", style.Name)
	assert.Equal(t, "desk", style.Instance)
	assert.Equal(t, status.AlignCenter, style.Alignment)
	assert.Equal(t, status.ColorFromHex("#ffffff"), *style.Color)
	assert.Equal(t, status.ColorFromHex("#000000"), *style.Background)
}

func TestReadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kind    error
	}{
		{"unknown bar", "bar: xmobar\n", nil},
		{"bad alignment", "clock:\n  align: middle\n", status.ErrInvalidAlignment},
		{"bad color", "clock:\n  color: red\n", status.ErrInvalidColor},
		{"bad background", "clock:\n  background: \"#12\"\n", status.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadFile(t, writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			if tt.kind != nil {
				assert.True(t, errors.Is(err, tt.kind), "expected %v in %v", tt.kind, err)
			}
		})
	}
}

func TestReadConfig_UnknownBarHint(t *testing.T) {
	_, err := loadFile(t, writeConfig(t, "bar: xmobar\n"))
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "i3bar")
}

func TestClockConfig_StyleErrors(t *testing.T) {
	_, err := ClockConfig{Color: "nope"}.Style()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.True(t, errors.Is(err, status.ErrInvalidColor))
	assert.Contains(t, err.Error(), "clock.color")
	assert.Contains(t, errors.FlattenHints(err), "#RRGGBB")

	_, err = ClockConfig{Align: "middle"}.Style()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.True(t, errors.Is(err, status.ErrInvalidAlignment))
}

func TestReadConfig_MissingExplicitFile(t *testing.T) {
	_, err := loadFile(t, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReloadStyle(t *testing.T) {
	path := writeConfig(t, "clock:\n  name: before\n")
	v := viper.New()
	setDefaults(v)
	useConfigFile(v, path)
	cfg, err := readConfig(v, true)
	require.NoError(t, err)

	style, err := cfg.Clock.Style()
	require.NoError(t, err)
	gen := NewClockGenerator(nil, style, nil)
	assert.Equal(t, "before", gen.style.Load().Name)

	require.NoError(t, os.WriteFile(path, []byte("clock:\n  name: after\n"), 0o644))
	require.NoError(t, reloadStyle(v, gen))
	assert.Equal(t, "after", gen.style.Load().Name)

	require.NoError(t, os.WriteFile(path, []byte("clock:\n  color: nope\n"), 0o644))
	assert.ErrorIs(t, reloadStyle(v, gen), ErrInvalidConfig)
	assert.Equal(t, "after", gen.style.Load().Name)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(os.Stderr, "warn")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = newLogger(os.Stderr, "loud")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), `log level "loud"`)
}
