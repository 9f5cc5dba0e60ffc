package main

import (
	"context"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/kapu/chessdesk/internal/archive"
	appcfg "github.com/kapu/chessdesk/internal/config"
	"github.com/kapu/chessdesk/internal/engine"
	"github.com/kapu/chessdesk/internal/obslog"
	"github.com/kapu/chessdesk/internal/ui"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	logger := obslog.L()
	defer logger.Sync()

	repo := newArchiveRepo(cfg, logger)
	factory := newEngineFactory(cfg, logger)

	app, err := ui.NewApp(cfg, factory, repo, logger)
	if err != nil {
		logger.Fatal("app init", zap.Error(err))
	}
	defer app.Close()

	w, h := app.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("chessdesk")

	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal("game loop", zap.Error(err))
	}
}

func newEngineFactory(cfg *appcfg.AppConfig, logger *zap.Logger) ui.EngineFactory {
	if cfg.EngineMode == "remote" {
		return func(level int) (engine.Engine, error) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return engine.Dial(ctx, cfg.EngineWSURL, level, logger)
		}
	}
	return func(level int) (engine.Engine, error) {
		return engine.NewLocal(level)
	}
}

func newArchiveRepo(cfg *appcfg.AppConfig, logger *zap.Logger) archive.Repository {
	if cfg.DatabaseURL == "" {
		logger.Info("no DATABASE_URL, archiving matches in memory")
		return archive.NewMemoryRepository()
	}
	repo, err := archive.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Warn("archive database unavailable, falling back to memory", zap.Error(err))
		return archive.NewMemoryRepository()
	}
	logger.Info("archiving matches to postgres")
	return repo
}
