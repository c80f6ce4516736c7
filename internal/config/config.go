package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI UIConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// InitialColor is a color name or "#rrggbb" hex value shown at startup.
	InitialColor string `mapstructure:"initial_color"`
	// RevertAfter is how long an invalid field may sit before it reverts to
	// its committed value. Zero disables the timer; invalid text then only
	// reverts when the edit completes.
	RevertAfter time.Duration `mapstructure:"revert_after"`
	// SwatchHeight is the height of the color swatch in rows.
	SwatchHeight int `mapstructure:"swatch_height"`
}

// Load reads configuration from file and env. Env var overrides use prefix TRICOLOR_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.initial_color", "magenta")
	v.SetDefault("ui.revert_after", "0s")
	v.SetDefault("ui.swatch_height", 5)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TRICOLOR_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tricolor"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TRICOLOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.SwatchHeight < 1 {
		c.UI.SwatchHeight = 1
	}
	return c, nil
}
