// Package config loads scatter plot options from a configuration file.
//
// Recognised keys and their defaults:
//
//	margin      50
//	width       1000
//	height      1000
//	ticks       6
//	padding     0.05
//	radius.min  4
//	radius.max  12
//	dimOpacity  0.2
//	palette     "tableau10"
//	logLevel    "info"
//
// The file format (JSON, YAML or TOML) is derived from the file extension.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/vdobler/scatter"
)

// Config is the plot configuration.
type Config struct {
	Margin     float64 `mapstructure:"margin"`
	Width      float64 `mapstructure:"width"`
	Height     float64 `mapstructure:"height"`
	Ticks      int     `mapstructure:"ticks"`
	Padding    float64 `mapstructure:"padding"`
	Radius     Radius  `mapstructure:"radius"`
	DimOpacity float64 `mapstructure:"dimOpacity"`
	Palette    string  `mapstructure:"palette"`
	LogLevel   string  `mapstructure:"logLevel"`
}

// Radius is the range of marker radii.
type Radius struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("margin", 50)
	v.SetDefault("width", 1000)
	v.SetDefault("height", 1000)
	v.SetDefault("ticks", scatter.DefaultTickCount)
	v.SetDefault("padding", 0.05)
	v.SetDefault("radius.min", 4)
	v.SetDefault("radius.max", 12)
	v.SetDefault("dimOpacity", scatter.DefaultDimOpacity)
	v.SetDefault("palette", "tableau10")
	v.SetDefault("logLevel", "info")
	return v
}

// Default returns the configuration without any file.
func Default() Config {
	cfg, err := decode(newViper())
	if err != nil {
		panic(err) // the defaults always decode
	}
	return cfg
}

// Load reads the configuration file at path. Keys missing in the file
// keep their defaults.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

// Options returns scatter.DefaultOptions with the configured values.
// Channels, title and legend are left to the caller.
func (c Config) Options() (scatter.Options, error) {
	pal, err := scatter.PaletteByName(c.Palette)
	if err != nil {
		return scatter.Options{}, err
	}
	opts := scatter.DefaultOptions()
	opts.Margin = c.Margin
	opts.Width = c.Width
	opts.Height = c.Height
	opts.Ticks = c.Ticks
	opts.Padding = c.Padding
	opts.RadiusRange = scatter.Interval{Min: c.Radius.Min, Max: c.Radius.Max}
	opts.DimOpacity = c.DimOpacity
	opts.Palette = pal
	return opts, nil
}

// Level parses LogLevel. The empty string means info.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	l, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

// Logger returns a logger writing to w at the configured level. Unknown
// levels fall back to info.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	l, err := c.Level()
	if err != nil {
		l = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(l).With().Timestamp().Logger()
}
