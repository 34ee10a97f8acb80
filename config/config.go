package config

import (
	"errors"
	"fmt"
	"strings"

	"hex/meta"
	"hex/searcher"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Game modes.
const (
	PlayerVsAI = "pva"
	AIVsAI     = "ava"
	Tournament = "tournament"
	Throughput = "throughput"
)

var (
	ErrInvalidBoardSize  = errors.New("board size out of range")
	ErrUnknownMode       = errors.New("unknown mode")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownPlayer     = errors.New("human player must be a or b")
)

var difficulties = map[string]int{
	"easy":   meta.EASY_DEPTH,
	"medium": meta.MEDIUM_DEPTH,
	"hard":   meta.HARD_DEPTH,
}

type Config struct {
	BoardSize   int    `mapstructure:"board_size"`
	Difficulty  string `mapstructure:"difficulty"`
	Depth       int    `mapstructure:"depth"` // Overrides Difficulty when positive
	Mode        string `mapstructure:"mode"`
	Backend     string `mapstructure:"backend"`
	Swap        bool   `mapstructure:"swap"`
	HumanPlayer string `mapstructure:"human_player"`
	Seed        uint64 `mapstructure:"seed"` // 0 seeds from the clock
	LogLevel    string `mapstructure:"log_level"`
	Games       int    `mapstructure:"games"`
	Goroutines  int    `mapstructure:"goroutines"`
	OutputDir   string `mapstructure:"output_dir"`
}

// Flags declares one command-line flag per key; dashes map to underscores.
func Flags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("hex", pflag.ContinueOnError)
	flags.String("config", "", "path to a config file")
	flags.Int("board-size", meta.DEFAULT_BOARD_SIZE, "side length of the board")
	flags.String("difficulty", "medium", "easy, medium or hard")
	flags.Int("depth", 0, "search depth, overrides difficulty")
	flags.String("mode", PlayerVsAI, "pva, ava, tournament or throughput")
	flags.String("backend", searcher.BFSBackend, "win check: bfs or unionfind")
	flags.Bool("swap", true, "allow the pie rule")
	flags.String("human-player", "a", "side played by the human in pva mode")
	flags.Uint64("seed", 0, "random seed, 0 for time-based")
	flags.String("log-level", "info", "zerolog level")
	flags.Int("games", 10, "games per matchup in tournament mode")
	flags.Int("goroutines", meta.DEFAULT_GOROUTINES, "concurrent tournament games")
	flags.String("output-dir", "experiments", "where tournament records are written")
	return flags
}

// Setup merges, by increasing priority: defaults, the config file,
// HEX_* environment variables and explicitly set flags.
func Setup(cfgPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("HEX")
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if f.Name == "config" {
				return
			}
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return nil, bindErr
		}
	}

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("board_size", meta.DEFAULT_BOARD_SIZE)
	v.SetDefault("difficulty", "medium")
	v.SetDefault("depth", 0)
	v.SetDefault("mode", PlayerVsAI)
	v.SetDefault("backend", searcher.BFSBackend)
	v.SetDefault("swap", true)
	v.SetDefault("human_player", "a")
	v.SetDefault("seed", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("games", 10)
	v.SetDefault("goroutines", meta.DEFAULT_GOROUTINES)
	v.SetDefault("output_dir", "experiments")
}

func (c *Config) Validate() error {
	if c.BoardSize < meta.MIN_BOARD_SIZE || c.BoardSize > meta.MAX_BOARD_SIZE {
		return fmt.Errorf("%d not in [%d, %d]: %w", c.BoardSize, meta.MIN_BOARD_SIZE, meta.MAX_BOARD_SIZE, ErrInvalidBoardSize)
	}
	switch c.Mode {
	case PlayerVsAI, AIVsAI, Tournament, Throughput:
	default:
		return fmt.Errorf("%q: %w", c.Mode, ErrUnknownMode)
	}
	switch c.Backend {
	case searcher.BFSBackend, searcher.UnionFindBackend:
	default:
		return fmt.Errorf("%q: %w", c.Backend, searcher.ErrUnknownBackend)
	}
	if c.Depth <= 0 {
		if _, ok := difficulties[strings.ToLower(c.Difficulty)]; !ok {
			return fmt.Errorf("%q: %w", c.Difficulty, ErrUnknownDifficulty)
		}
	}
	switch strings.ToLower(c.HumanPlayer) {
	case "a", "b":
	default:
		return fmt.Errorf("%q: %w", c.HumanPlayer, ErrUnknownPlayer)
	}
	return nil
}

// SearchDepth is the explicit depth if set, else the difficulty's depth.
func (c *Config) SearchDepth() int {
	if c.Depth > 0 {
		return c.Depth
	}
	return difficulties[strings.ToLower(c.Difficulty)]
}
