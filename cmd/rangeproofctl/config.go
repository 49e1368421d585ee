package main

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultN        = 40
	defaultValue    = 0
	defaultLogLevel = "info"
	defaultMode     = "vartime"
)

// Config holds rangeproofctl's runtime configuration, loaded from flags
// merged with environment variables.
type Config struct {
	N     int    `mapstructure:"n"`
	Value uint64 `mapstructure:"value"`
	Seed  string `mapstructure:"seed"`
	Mode  string `mapstructure:"mode"`
	Log   LogConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// loadConfig loads configuration from flags and environment variables,
// following the teacher's loadConfig() pattern: flag defaults, then
// RANGEPROOFCTL_-prefixed environment overrides, then an Unmarshal into a
// mapstructure-tagged struct.
func loadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("n", defaultN)
	v.SetDefault("value", defaultValue)
	v.SetDefault("seed", "")
	v.SetDefault("mode", defaultMode)
	v.SetDefault("log.level", defaultLogLevel)

	flag.IntP("n", "n", defaultN, "ring count: proves value is in [0, 3^n)")
	flag.Uint64P("value", "v", defaultValue, "value to prove is in range")
	flag.String("seed", "", "hex-encoded 32-byte seed for a deterministic CSPRNG (empty: use crypto/rand)")
	flag.StringP("mode", "m", defaultMode, "prover mode: vartime or ct")
	flag.StringP("log.level", "l", defaultLogLevel, "log level (debug, info, warn, error)")

	flag.CommandLine.SortFlags = false
	flag.Parse()

	v.SetEnvPrefix("RANGEPROOFCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flag.CommandLine); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}
