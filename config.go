package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/jorgenbele/go-clock/status"
)

// ErrInvalidConfig is returned when the configuration cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Bar names accepted by the bar setting.
const (
	BarI3      = "i3bar"
	BarLemon   = "lemonbar"
	BarDzen2   = "dzen2"
	BarTerm    = "tui"
	barDefault = BarI3
)

// Config is the file and flag configuration of go-clock.
type Config struct {
	Bar      string      `mapstructure:"bar"`
	LogLevel string      `mapstructure:"log_level"`
	Clock    ClockConfig `mapstructure:"clock"`
}

// ClockConfig configures the clock element.
type ClockConfig struct {
	Name       string `mapstructure:"name"`
	Instance   string `mapstructure:"instance"`
	Align      string `mapstructure:"align"`
	Color      string `mapstructure:"color"`
	Background string `mapstructure:"background"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("bar", barDefault)
	v.SetDefault("log_level", "info")
	v.SetDefault("clock.name", "clock")
	v.SetDefault("clock.align", string(status.AlignRight))
	v.SetDefault("clock.color", "#8A8B8C")
}

// readConfig reads the config file known to v, if any, and decodes the
// result. A missing file is only an error when path was given explicitly.
func readConfig(v *viper.Viper, explicit bool) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "read config")
		}
	}
	return decodeConfig(v)
}

func decodeConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Bar {
	case BarI3, BarLemon, BarDzen2, BarTerm:
	default:
		return errors.WithHintf(
			errors.Wrapf(ErrInvalidConfig, "unknown bar %q", c.Bar),
			"Use one of %s, %s, %s or %s.", BarI3, BarLemon, BarDzen2, BarTerm)
	}
	_, err := c.Clock.Style()
	return err
}

const colorHint = "Colors are written as #RRGGBB."

// Style converts the clock configuration to a ClockStyle.
func (c ClockConfig) Style() (ClockStyle, error) {
	align, err := status.ParseAlign(c.Align)
	if err != nil {
		return ClockStyle{}, invalidField("clock.align", err, status.ErrInvalidAlignment)
	}

	style := ClockStyle{Name: c.Name, Instance: c.Instance, Alignment: align}
	if style.Color, err = optionalColor(c.Color); err != nil {
		return ClockStyle{}, errors.WithHint(invalidField("clock.color", err, status.ErrInvalidColor), colorHint)
	}
	if style.Background, err = optionalColor(c.Background); err != nil {
		return ClockStyle{}, errors.WithHint(invalidField("clock.background", err, status.ErrInvalidColor), colorHint)
	}
	return style, nil
}

func optionalColor(hex string) (*status.Color, error) {
	if hex == "" {
		return nil, nil
	}
	c, err := status.ParseColor(hex)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// invalidField reports an unusable value of field. The result matches
// ErrInvalidConfig and kind under errors.Is, and keeps cause as detail.
func invalidField(field string, cause, kind error) error {
	err := errors.Wrapf(ErrInvalidConfig, "%s: %v", field, cause)
	err = errors.WithSecondaryError(err, cause)
	return errors.Mark(err, kind)
}
