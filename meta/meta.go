// meta/meta.go
package meta

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// PLAYOUT_COUNT is the number of random playouts per candidate move for the
// flat Monte Carlo agent.
const PLAYOUT_COUNT = 500

// EXPAND_LIMIT is the visit count at which an MCTS leaf gets its children.
const EXPAND_LIMIT = 10

// TREE_SEARCH_COUNT is the number of MCTS evaluations per move.
const TREE_SEARCH_COUNT = 500

const (
	BOARD_ROWS = 8
	BOARD_COLS = 8
)

const ARENA_GAMES = 10

const (
	ModePlay  = "play"
	ModeArena = "arena"
)

type Config struct {
	Mode        string `mapstructure:"mode"`
	Level       string `mapstructure:"level"`
	HumanFirst  bool   `mapstructure:"human-first"`
	Rows        int    `mapstructure:"rows"`
	Cols        int    `mapstructure:"cols"`
	Seed        uint64 `mapstructure:"seed"` // 0 seeds from the clock
	Playouts    int    `mapstructure:"playouts"`
	ExpandLimit int    `mapstructure:"expand"`
	Evaluations int    `mapstructure:"evaluations"`
	Games       int    `mapstructure:"games"`
	Debug       bool   `mapstructure:"debug"`
}

func Default() Config {
	return Config{
		Mode:        ModePlay,
		Level:       "normal",
		HumanFirst:  true,
		Rows:        BOARD_ROWS,
		Cols:        BOARD_COLS,
		Playouts:    PLAYOUT_COUNT,
		ExpandLimit: EXPAND_LIMIT,
		Evaluations: TREE_SEARCH_COUNT,
		Games:       ARENA_GAMES,
	}
}

// RegisterFlags adds one flag per Config field to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("mode", d.Mode, "play against the computer (play) or run agent matchups (arena)")
	fs.String("level", d.Level, "computer strength: weak, normal or strong")
	fs.Bool("human-first", d.HumanFirst, "human plays black and moves first")
	fs.Int("rows", d.Rows, "board rows (even)")
	fs.Int("cols", d.Cols, "board columns (even)")
	fs.Uint64("seed", d.Seed, "random seed for the agents, 0 for a clock seed")
	fs.Int("playouts", d.Playouts, "playouts per candidate move (flat Monte Carlo)")
	fs.Int("expand", d.ExpandLimit, "visits before an MCTS leaf is expanded")
	fs.Int("evaluations", d.Evaluations, "MCTS evaluations per move")
	fs.Int("games", d.Games, "games per arena matchup")
	fs.Bool("debug", d.Debug, "enable debug logging")
}

// Load resolves the configuration from defaults, an optional config file,
// REVERSI_* environment variables and flags, in increasing priority.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("mode", d.Mode)
	v.SetDefault("level", d.Level)
	v.SetDefault("human-first", d.HumanFirst)
	v.SetDefault("rows", d.Rows)
	v.SetDefault("cols", d.Cols)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("playouts", d.Playouts)
	v.SetDefault("expand", d.ExpandLimit)
	v.SetDefault("evaluations", d.Evaluations)
	v.SetDefault("games", d.Games)
	v.SetDefault("debug", d.Debug)

	v.SetEnvPrefix("REVERSI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if c.Mode != ModePlay && c.Mode != ModeArena {
		return errors.Errorf("unknown mode %q", c.Mode)
	}
	if c.Playouts <= 0 || c.ExpandLimit <= 0 || c.Evaluations <= 0 {
		return errors.Errorf("search budgets must be positive: playouts=%d expand=%d evaluations=%d",
			c.Playouts, c.ExpandLimit, c.Evaluations)
	}
	if c.Games <= 0 {
		return errors.Errorf("games must be positive, got %d", c.Games)
	}
	return nil
}
