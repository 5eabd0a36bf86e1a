// termreversi is a terminal application to play Reversi against the computer or a friend.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"termreversi/config"
	"termreversi/console"
	"termreversi/engine"
	"termreversi/engine/othello"
	"termreversi/record"
	"termreversi/types"
	"termreversi/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagMode       = flag.String("mode", "", "Start a game immediately: easy, hard or pvp")
	flagColor      = flag.String("color", "", "Your color against the computer (black or white)")
	flagMoves      = flag.String("moves", "", "Start the first game from these moves, e.g. \"f5 d6 c3\"")
	flagPosition   = flag.String("position", "", "Start the first game from 8 rows top rank first, '.' empty, B and W stones")
	flagPlain      = flag.Bool("plain", false, "Use the line-based console instead of the full-screen UI")
	flagDebug      = flag.Bool("debug", false, "Write a debug log")
	flagInitConfig = flag.Bool("init-config", false, "Write the current config to the user config directory and exit")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termreversi %s\n", Version)
		return
	}

	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *flagInitConfig {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not write config: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	debugLog, closeLog, err := openDebugLog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open debug log: %s\n", err)
		os.Exit(1)
	}
	defer closeLog()

	base, preset, err := buildGameConfigFromFlags(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	base.Logger = debugLog
	session := engine.NewSession(debugLog)

	if *flagPlain {
		c := console.New(os.Stdin, os.Stdout)
		var sel engine.ModeSelector = c
		if preset != nil {
			sel = engine.Preselect(*preset, c)
		}
		if err := session.Run(sel, c, base); err != nil {
			debugLog.Printf("session: %s", err)
			panic(err)
		}
		return
	}

	tui := ui.NewTUI(cfg, base, debugLog)
	if preset != nil {
		tui.Preselect(*preset)
	}
	if err := tui.Run(session, base); err != nil {
		debugLog.Printf("session: %s", err)
		panic(err)
	}
}

// openDebugLog returns the debug logger and a function closing its file.
// Without --debug or log.enabled the logger discards.
func openDebugLog(cfg *config.Config) (*log.Logger, func(), error) {
	if !*flagDebug && !cfg.Log.Enabled {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.New(f, "", log.Ltime|log.Lmicroseconds)
	logger.Printf("termreversi %s starting", Version)
	return logger, func() { f.Close() }, nil
}

// buildGameConfigFromFlags applies the command line over the config file
// defaults. preset is set when --mode asks for an immediate game. --position
// and --moves seed the first game of the session.
func buildGameConfigFromFlags(cfg *config.Config) (base engine.GameConfig, preset *engine.Mode, err error) {
	base = cfg.DefaultGame()
	if *flagColor != "" {
		color, err := types.ParseColor(*flagColor)
		if err != nil {
			return base, nil, err
		}
		base.HumanColor = color
	}
	if *flagMode != "" {
		mode, err := engine.ParseMode(*flagMode)
		if err != nil {
			return base, nil, err
		}
		base.Mode = mode
		preset = &mode
	}
	start := othello.NewBoard
	if *flagPosition != "" {
		rows := strings.Fields(*flagPosition)
		if _, err := othello.ParseBoard(rows...); err != nil {
			return base, nil, fmt.Errorf("--position: %w", err)
		}
		start = func() *othello.Board {
			b, _ := othello.ParseBoard(rows...)
			return b
		}
		base.Start = start()
	}
	if *flagMoves != "" {
		moves, err := record.Parse(*flagMoves)
		if err != nil {
			return base, nil, fmt.Errorf("--moves: %w", err)
		}
		// NewGame replays them again on base.Start
		if _, _, err := record.Replay(start(), moves); err != nil {
			return base, nil, fmt.Errorf("--moves: %w", err)
		}
		base.Opening = moves
	}
	return base, preset, nil
}
