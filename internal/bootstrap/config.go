package bootstrap

import (
	"fmt"
	"runtime"

	"github.com/spf13/viper"

	"quarto_ai/internal/errors"
)

type Config struct {
	SearchDepth  int     `mapstructure:"SEARCH_DEPTH"`
	RandomMoves  int     `mapstructure:"RANDOM_MOVES"`
	Seed         int64   `mapstructure:"SEED"`
	Games        int     `mapstructure:"GAMES"`
	Workers      int     `mapstructure:"WORKERS"`
	LogLevel     string  `mapstructure:"LOG_LEVEL"`
	Narrate      bool    `mapstructure:"NARRATE"`
	WinMagnitude float64 `mapstructure:"WIN_MAGNITUDE"`
	QuietScore   float64 `mapstructure:"QUIET_SCORE"`
}

var keys = []string{
	"SEARCH_DEPTH", "RANDOM_MOVES", "SEED", "GAMES", "WORKERS",
	"LOG_LEVEL", "NARRATE", "WIN_MAGNITUDE", "QUIET_SCORE",
}

// Setup reads cfgPath (an .env style file) on top of the defaults. Environment
// variables win over both. An empty cfgPath skips the file.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SEARCH_DEPTH", 3)
	v.SetDefault("RANDOM_MOVES", 6)
	v.SetDefault("SEED", 0)
	v.SetDefault("GAMES", 10)
	v.SetDefault("WORKERS", runtime.NumCPU())
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("NARRATE", false)
	v.SetDefault("WIN_MAGNITUDE", 1000.0)
	v.SetDefault("QUIET_SCORE", 10.0)
}

func (c Config) Validate() error {
	switch {
	case c.SearchDepth < 1:
		return fmt.Errorf("%w: SEARCH_DEPTH=%d", errors.ErrInvalidConfig, c.SearchDepth)
	case c.RandomMoves < 0:
		return fmt.Errorf("%w: RANDOM_MOVES=%d", errors.ErrInvalidConfig, c.RandomMoves)
	case c.Workers < 1:
		return fmt.Errorf("%w: WORKERS=%d", errors.ErrInvalidConfig, c.Workers)
	case c.Games < 0:
		return fmt.Errorf("%w: GAMES=%d", errors.ErrInvalidConfig, c.Games)
	case c.WinMagnitude <= 0:
		return fmt.Errorf("%w: WIN_MAGNITUDE=%v", errors.ErrInvalidConfig, c.WinMagnitude)
	}
	return nil
}
