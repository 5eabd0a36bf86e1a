package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"

	"termreversi/engine"
	"termreversi/types"
)

var (
	cfgFile = "termreversi/config.json"
	logFile = "termreversi/debug.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	WhiteColor        int `json:"white"`
	MarkColor         int `json:"mark"`
	LineColor         int `json:"line"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackStone  rune `json:"black"`
	WhiteStone  rune `json:"white"`
	BoardSquare rune `json:"board"`
	Mark        rune `json:"mark"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	ShowLegalMoves           bool          `json:"show_legal_moves"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameSettings holds the defaults used when a game is started from flags.
type GameSettings struct {
	DefaultMode string `json:"default_mode"` // easy, hard or pvp
	HumanColor  string `json:"human_color"`  // black or white, computer modes only
}

// LogConfig controls the debug log.
type LogConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"` // empty uses the XDG state directory
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameSettings `json:"game"`
	Log   LogConfig    `json:"log"`
}

// InitConfig loads the user's config file if there is one, over the defaults.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		return &config, nil
	}
	return LoadConfig(absPath)
}

// LoadConfig reads filePath over the defaults and validates the result.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(filePath, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	s := c.Theme.Symbols
	for _, r := range []rune{s.BlackStone, s.WhiteStone, s.BoardSquare, s.Mark} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	for _, col := range []int{c.Theme.Colors.BoardColor, c.Theme.Colors.BoardColorAlt, c.Theme.Colors.BlackColor,
		c.Theme.Colors.WhiteColor, c.Theme.Colors.MarkColor, c.Theme.Colors.LineColor,
		c.Theme.Colors.CursorColorBG, c.Theme.Colors.LastPlayedColorBG} {
		if col < 0 || col > 255 {
			return &InvalidConfig{fmt.Sprintf("palette color %d out of range 0-255", col)}
		}
	}
	if _, err := engine.ParseMode(c.Game.DefaultMode); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if _, err := types.ParseColor(c.Game.HumanColor); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// DefaultGame converts the game settings into an engine configuration.
// The config must have passed Validate.
func (c *Config) DefaultGame() engine.GameConfig {
	gameCfg := engine.DefaultConfig()
	if mode, err := engine.ParseMode(c.Game.DefaultMode); err == nil {
		gameCfg.Mode = mode
	}
	if color, err := types.ParseColor(c.Game.HumanColor); err == nil {
		gameCfg.HumanColor = color
	}
	return gameCfg
}

// Save writes the config to the user's XDG config directory and returns the path.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

// LogPath returns where the debug log is written.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	return xdg.StateFile(logFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
