package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ENGINE_MODE", "ENGINE_WS_URL", "DATABASE_URL", "CHESS_DEFAULT_PRESET", "BOARD_THEME", "TILE_SIZE", "SKIP_PICKERS"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EngineMode != "local" || cfg.DefaultPreset != "level3" || cfg.BoardTheme != "classic" || cfg.TileSize != 72 {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestLoadReadsChessDefaultPreset(t *testing.T) {
	t.Setenv("CHESS_DEFAULT_PRESET", "level7")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultPreset != "level7" {
		t.Fatalf("DefaultPreset = %q, want level7", cfg.DefaultPreset)
	}
}

func TestLoadRemoteModeNeedsURL(t *testing.T) {
	t.Setenv("ENGINE_MODE", "remote")
	t.Setenv("ENGINE_WS_URL", "")
	if _, err := Load(); err == nil {
		t.Fatalf("remote mode accepted without ENGINE_WS_URL")
	}

	t.Setenv("ENGINE_WS_URL", "ws://localhost:8099")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EngineMode != "remote" {
		t.Fatalf("EngineMode = %q", cfg.EngineMode)
	}
}
