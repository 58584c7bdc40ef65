package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/byte4ever/multidigest/digester"
	"github.com/byte4ever/multidigest/render"
)

const envPrefix = "MULTIDIGEST"

// Config holds the settings of one invocation.
type Config struct {
	Format    string `mapstructure:"format"`
	ChunkSize int    `mapstructure:"chunk_size"`
	Output    string `mapstructure:"output"`
	Verbose   bool   `mapstructure:"verbose"`
}

var errNegativeChunkSize = errors.New("chunk size must not be negative")

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"format":     "format",
	"chunk-size": "chunk_size",
	"output":     "output",
	"verbose":    "verbose",
}

// newViper returns a viper instance with defaults and environment
// lookup configured.
func newViper() *viper.Viper {
	vp := viper.New()

	vp.SetDefault("format", string(render.FormatText))
	vp.SetDefault("chunk_size", digester.DefaultChunkSize)
	vp.SetDefault("output", "")
	vp.SetDefault("verbose", false)

	vp.SetEnvPrefix(envPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.AutomaticEnv()

	return vp
}

// loadConfig binds the flags present in fs, reads the config file named
// by the --config flag when set, and decodes the merged settings.
func loadConfig(vp *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	const errCtx = "loading config"

	for name, key := range flagKeys {
		fl := fs.Lookup(name)
		if fl == nil {
			continue
		}

		if err := vp.BindPFlag(key, fl); err != nil {
			return Config{}, fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	if fl := fs.Lookup("config"); fl != nil && fl.Value.String() != "" {
		vp.SetConfigFile(fl.Value.String())

		if err := vp.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf(
				"%s: reading %s: %w",
				errCtx, fl.Value.String(), err,
			)
		}
	}

	var cfg Config
	if err := vp.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	if cfg.ChunkSize < 0 {
		return Config{}, fmt.Errorf(
			"%s: %w: %d",
			errCtx, errNegativeChunkSize, cfg.ChunkSize,
		)
	}

	return cfg, nil
}
