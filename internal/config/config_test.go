package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "horizon.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if cfg.Game.MapWidth != 150 || cfg.Game.MapHeight != 120 {
		t.Errorf("map = %dx%d, want 150x120", cfg.Game.MapWidth, cfg.Game.MapHeight)
	}
	if cfg.Game.WallChance != 0.1 || cfg.Game.EnemyCount != 10 {
		t.Errorf("game = %+v", cfg.Game)
	}
	if cfg.PlayerSymbol() != '@' || cfg.Player.HP != 100 {
		t.Errorf("player = %+v", cfg.Player)
	}
	if cfg.Game.Generator != GeneratorScatter {
		t.Errorf("generator = %q, want scatter", cfg.Game.Generator)
	}
	if cfg.PlayerColor() != tcell.ColorYellow {
		t.Errorf("player color = %v, want yellow", cfg.PlayerColor())
	}
	if cfg.UI.JournalLines != 5 {
		t.Errorf("journal_lines = %d, want 5", cfg.UI.JournalLines)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
[game]
seed = 42
enemy_count = 3

[player]
name = "Ash"
symbol = "A"
color = "#00FF00"

[logging]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.Seed != 42 || cfg.Game.EnemyCount != 3 {
		t.Errorf("game = %+v", cfg.Game)
	}
	if cfg.Game.MapWidth != 150 {
		t.Errorf("unset map_width = %d, want default 150", cfg.Game.MapWidth)
	}
	if cfg.Player.Name != "Ash" || cfg.PlayerSymbol() != 'A' || cfg.Player.Attack != 10 {
		t.Errorf("player = %+v", cfg.Player)
	}
	if r, g, b := cfg.PlayerColor().RGB(); r != 0 || g != 255 || b != 0 {
		t.Errorf("player color = %d,%d,%d, want 0,255,0", r, g, b)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad toml", "[game\n", "parse config"},
		{"wall chance", "[game]\nwall_chance = 1.5\n", "wall_chance"},
		{"negative enemies", "[game]\nenemy_count = -1\n", "enemy_count"},
		{"tiny map", "[game]\nmap_width = 2\n", "at least 3x3"},
		{"long symbol", "[player]\nsymbol = \"@@\"\n", "one character"},
		{"zero hp", "[player]\nhp = 0\n", "hp"},
		{"generator", "[game]\ngenerator = \"caves\"\n", "unknown generator"},
		{"small rooms map", "[game]\ngenerator = \"rooms\"\nmap_width = 8\n", "at least 10x10"},
		{"log format", "[logging]\nformat = \"xml\"\n", "log format"},
		{"bad colour", "[player]\ncolor = \"not-a-colour\"\n", "player color"},
		{"unknown key", "[game]\nenemy_cout = 3\n", "enemy_cout"},
		{"unknown table", "[sound]\nvolume = 3\n", "unknown keys sound"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := writeFile(t, "[ui]\njournal_lines = 9\n")
		t.Setenv(EnvPath, path)
		cfg, got, err := FromEnv()
		if err != nil {
			t.Fatal(err)
		}
		if got != path || cfg.UI.JournalLines != 9 {
			t.Errorf("FromEnv = %+v, %q", cfg.UI, got)
		}
	})

	t.Run("explicit path missing", func(t *testing.T) {
		t.Setenv(EnvPath, filepath.Join(t.TempDir(), "nope.toml"))
		_, _, err := FromEnv()
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("err = %v, want not exist", err)
		}
	})

	t.Run("default path missing", func(t *testing.T) {
		t.Setenv(EnvPath, "")
		t.Chdir(t.TempDir())
		cfg, got, err := FromEnv()
		if err != nil {
			t.Fatal(err)
		}
		if got != "" || cfg.Game.EnemyCount != 10 {
			t.Errorf("FromEnv = %+v, %q", cfg.Game, got)
		}
	})
}
