// Package config merges command line flags, FRONTIER_* environment variables
// and an optional config file into the CLI settings.
package config

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trim21/errgo"

	"github.com/katalvlaran/frontier/heap"
)

// EnvPrefix prefixes every environment override, e.g. FRONTIER_LOG_LEVEL.
const EnvPrefix = "FRONTIER"

// Config holds the settings shared by every subcommand.
type Config struct {
	Heap     heap.Kind
	LogLevel string
	LogJSON  bool

	v *viper.Viper
}

// Load binds flags to a fresh viper instance, applies environment overrides
// and reads the file named by the "config" flag, if any.
// Precedence: explicit flag, environment, config file, flag default.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	lo.Must0(v.BindPFlags(flags), "failed to bind flags")

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errgo.Wrap(err, "failed to read config file")
		}
	}

	kind, err := heap.ParseKind(v.GetString("heap"))
	if err != nil {
		return Config{}, errgo.Wrap(err, "invalid heap")
	}

	return Config{
		Heap:     kind,
		LogLevel: v.GetString("log-level"),
		LogJSON:  v.GetBool("log-json"),
		v:        v,
	}, nil
}

// String returns the merged value of a command specific key.
func (c Config) String(key string) string { return c.v.GetString(key) }

// Float64 returns the merged value of a command specific key.
func (c Config) Float64(key string) float64 { return c.v.GetFloat64(key) }
