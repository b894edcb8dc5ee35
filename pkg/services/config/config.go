package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	FontDir         string        `mapstructure:"font_dir"`
}

// Load reads the optional service config file. An empty path yields the
// defaults; a named but unreadable file is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8001")
	v.SetDefault("shutdown_timeout", 10*time.Second)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse service config: %w", err)
	}
	return &cfg, nil
}
