package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/horizon/internal/gamedata"
)

const (
	// DefaultPath is read when HORIZON_CONFIG is unset.
	DefaultPath = "horizon.toml"
	// EnvPath names the environment variable that overrides DefaultPath.
	EnvPath = "HORIZON_CONFIG"
)

type Config struct {
	Game      GameConfig      `toml:"game"`
	Player    PlayerConfig    `toml:"player"`
	UI        UIConfig        `toml:"ui"`
	Logging   LoggingConfig   `toml:"logging"`
	Telemetry TelemetryConfig `toml:"telemetry"`
}

type GameConfig struct {
	Seed       int64   `toml:"seed"` // 0 = time based
	MapWidth   int     `toml:"map_width"`
	MapHeight  int     `toml:"map_height"`
	WallChance float64 `toml:"wall_chance"` // 0.0-1.0
	EnemyCount int     `toml:"enemy_count"`
	Generator  string  `toml:"generator"` // "scatter" or "rooms"
	Layout     string  `toml:"layout"`    // optional YAML map; overrides the generator
}

// Map generators.
const (
	GeneratorScatter = "scatter"
	GeneratorRooms   = "rooms"
)

type PlayerConfig struct {
	Name    string `toml:"name"`
	Symbol  string `toml:"symbol"` // single character
	Color   string `toml:"color"`  // W3C name or #RRGGBB
	HP      int    `toml:"hp"`
	Attack  int    `toml:"attack"`
	Defense int    `toml:"defense"`
}

type UIConfig struct {
	JournalLines int `toml:"journal_lines"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = stderr
}

type TelemetryConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
}

// Load reads path and applies it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv loads the file named by HORIZON_CONFIG, or DefaultPath when
// unset. A missing DefaultPath yields the defaults; a missing explicit
// path is an error.
func FromEnv() (*Config, string, error) {
	path, explicit := os.LookupEnv(EnvPath)
	if !explicit || path == "" {
		path = DefaultPath
		explicit = false
	}
	cfg, err := Load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), "", nil
		}
		return nil, path, err
	}
	return cfg, path, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			MapWidth:   150,
			MapHeight:  120,
			WallChance: 0.1,
			EnemyCount: 10,
			Generator:  GeneratorScatter,
		},
		Player: PlayerConfig{
			Name:    "Hero",
			Symbol:  "@",
			Color:   "yellow",
			HP:      100,
			Attack:  10,
			Defense: 5,
		},
		UI: UIConfig{
			JournalLines: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "horizon.log",
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			ServiceName: "horizon",
		},
	}
}

// Validate rejects values the game cannot start with.
func (c *Config) Validate() error {
	g := c.Game
	if g.Layout == "" && (g.MapWidth < 3 || g.MapHeight < 3) {
		return fmt.Errorf("map must be at least 3x3, got %dx%d", g.MapWidth, g.MapHeight)
	}
	switch g.Generator {
	case GeneratorScatter:
	case GeneratorRooms:
		if g.Layout == "" && (g.MapWidth < 10 || g.MapHeight < 10) {
			return fmt.Errorf("rooms generator needs at least 10x10, got %dx%d", g.MapWidth, g.MapHeight)
		}
	default:
		return fmt.Errorf("unknown generator %q", g.Generator)
	}
	if g.WallChance < 0 || g.WallChance > 1 {
		return fmt.Errorf("wall_chance %v outside [0, 1]", g.WallChance)
	}
	if g.EnemyCount < 0 {
		return fmt.Errorf("enemy_count %d is negative", g.EnemyCount)
	}
	if utf8.RuneCountInString(c.Player.Symbol) != 1 {
		return fmt.Errorf("player symbol %q must be one character", c.Player.Symbol)
	}
	if _, err := gamedata.ParseColor(c.Player.Color); err != nil {
		return fmt.Errorf("player color: %w", err)
	}
	if c.Player.HP <= 0 {
		return fmt.Errorf("player hp %d must be positive", c.Player.HP)
	}
	if c.UI.JournalLines < 0 {
		return fmt.Errorf("journal_lines %d is negative", c.UI.JournalLines)
	}
	switch c.Logging.Format {
	case "json", "console", "":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}

// PlayerSymbol returns the configured glyph.
func (c *Config) PlayerSymbol() rune {
	r, _ := utf8.DecodeRuneInString(c.Player.Symbol)
	return r
}

// PlayerColor returns the configured player colour. Validate has already
// rejected names ParseColor cannot read.
func (c *Config) PlayerColor() tcell.Color {
	color, err := gamedata.ParseColor(c.Player.Color)
	if err != nil {
		return tcell.ColorYellow
	}
	return color
}
