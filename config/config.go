// Package config loads engine and service settings from an optional
// file, with GOMOKUARM_* environment variables taking precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/nelhage/gomokuarm/ai"
	"github.com/nelhage/gomokuarm/gomoku"
)

type Config struct {
	BoardSize       int     `mapstructure:"board_size"`
	Primary         string  `mapstructure:"primary"`
	PrimaryAttack   float64 `mapstructure:"primary_attack"`
	SecondaryAttack float64 `mapstructure:"secondary_attack"`
	GRPCAddr        string  `mapstructure:"grpc_addr"`
	HTTPAddr        string  `mapstructure:"http_addr"`
	ResultsDB       string  `mapstructure:"results_db"`
	Debug           bool    `mapstructure:"debug"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("board_size", gomoku.DefaultSize)
	v.SetDefault("primary", ai.DefaultWeights.Primary.String())
	v.SetDefault("primary_attack", ai.DefaultWeights.PrimaryAttack)
	v.SetDefault("secondary_attack", ai.DefaultWeights.SecondaryAttack)
	v.SetDefault("grpc_addr", ":9090")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("results_db", "")
	v.SetDefault("debug", false)
}

// Load reads path (any format viper understands) over the defaults.
// An empty path uses the defaults and the environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("gomokuarm")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Weights(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Weights applies the configured attack coefficients to the default
// weights.
func (c *Config) Weights() (ai.Weights, error) {
	w := ai.DefaultWeights
	primary, err := gomoku.ParseColor(c.Primary)
	if err != nil || !primary.IsStone() {
		return w, fmt.Errorf("primary: bad color %q", c.Primary)
	}
	w.Primary = primary
	w.PrimaryAttack = c.PrimaryAttack
	w.SecondaryAttack = c.SecondaryAttack
	return w, nil
}
