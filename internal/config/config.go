package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Region is the screen rectangle to capture. Zero width or height
// means the remainder of the screen.
type Region struct {
	X      int `mapstructure:"x"`
	Y      int `mapstructure:"y"`
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Config carries the agent settings
type Config struct {
	Display  string  `mapstructure:"display"`
	Region   Region  `mapstructure:"region"`
	Format   string  `mapstructure:"format"`
	Scale    float64 `mapstructure:"scale"`
	Output   string  `mapstructure:"output"`
	HTTPPort string  `mapstructure:"http_port"`
	LogLevel string  `mapstructure:"log_level"`
}

// Load reads the YAML config file at path on top of the defaults. An
// empty path yields just the defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("format", "png")
	v.SetDefault("scale", 1.0)
	v.SetDefault("output", ".")
	v.SetDefault("http_port", "9000")
	v.SetDefault("log_level", "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
