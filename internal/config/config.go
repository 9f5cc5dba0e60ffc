package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

type AppConfig struct {
	// EngineMode selects "local" (in-process search) or "remote"
	// (websocket engine daemon).
	EngineMode  string
	EngineWSURL string

	// DatabaseURL enables the Postgres match archive; empty keeps the
	// archive in memory.
	DatabaseURL string

	DefaultPreset string
	BoardTheme    string
	TileSize      int

	// SkipPickers jumps straight into a match with the defaults above.
	SkipPickers bool
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		EngineMode:    "local",
		DefaultPreset: "level3",
		BoardTheme:    "classic",
		TileSize:      72,
	}

	if v := strings.TrimSpace(os.Getenv("ENGINE_MODE")); v != "" {
		cfg.EngineMode = strings.ToLower(v)
	}
	cfg.EngineWSURL = strings.TrimSpace(os.Getenv("ENGINE_WS_URL"))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))

	if v := strings.TrimSpace(os.Getenv("CHESS_DEFAULT_PRESET")); v != "" {
		cfg.DefaultPreset = v
	}
	if v := strings.TrimSpace(os.Getenv("BOARD_THEME")); v != "" {
		cfg.BoardTheme = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("TILE_SIZE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 32 && n <= 160 {
			cfg.TileSize = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("SKIP_PICKERS")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SkipPickers = b
		}
	}

	if cfg.EngineMode != "local" && cfg.EngineMode != "remote" {
		return nil, errors.New("ENGINE_MODE must be local or remote")
	}
	if cfg.EngineMode == "remote" && cfg.EngineWSURL == "" {
		return nil, errors.New("ENGINE_WS_URL is required for remote engine mode")
	}

	return cfg, nil
}
