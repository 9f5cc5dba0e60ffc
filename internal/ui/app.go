package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/kapu/chessdesk/internal/archive"
	"github.com/kapu/chessdesk/internal/config"
	"github.com/kapu/chessdesk/internal/engine"
	"github.com/kapu/chessdesk/internal/match"
)

type appMode int

const (
	modeLevelPick appMode = iota
	modeThemePick
	modePlaying
)

// EngineFactory builds a fresh engine for one match at the given difficulty
// level.
type EngineFactory func(level int) (engine.Engine, error)

// App is the ebiten game: a level picker, a theme picker and the match view.
type App struct {
	cfg       *config.AppConfig
	logger    *zap.Logger
	newEngine EngineFactory
	repo      archive.Repository

	themes    []Theme
	theme     Theme
	rend      *boardRenderer
	levelMenu *menu
	themeMenu *menu

	mode  appMode
	level int
	eng   engine.Engine
	orch  *match.Orchestrator
}

func NewApp(cfg *config.AppConfig, factory EngineFactory, repo archive.Repository, logger *zap.Logger) (*App, error) {
	if factory == nil {
		return nil, errors.New("nil engine factory")
	}
	if repo == nil {
		repo = archive.NewMemoryRepository()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:       cfg,
		logger:    logger,
		newEngine: factory,
		repo:      repo,
		themes:    themes,
		theme:     ThemeByName(themes, cfg.BoardTheme),
		level:     levelForPreset(cfg.DefaultPreset),
		mode:      modeLevelPick,
	}
	a.rend = newBoardRenderer(cfg.TileSize, a.theme, logger.Sugar().Warnf)
	a.levelMenu = newMenu("Pick a difficulty", engine.PresetNames(), a.theme)
	a.themeMenu = newMenu("Pick a board theme", themeNames(themes), a.theme)

	if cfg.SkipPickers {
		if err := a.startMatch(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch a.mode {
	case modeLevelPick:
		if i, ok := a.menuClick(a.levelMenu); ok {
			a.level = i + 1
			a.mode = modeThemePick
		}
	case modeThemePick:
		if i, ok := a.menuClick(a.themeMenu); ok {
			a.setTheme(a.themes[i])
			if err := a.startMatch(); err != nil {
				return err
			}
		}
	case modePlaying:
		now := time.Now()
		a.orch.Tick(now)
		fs := a.orch.Frame(now)

		if fs.State == match.StateGameOver || fs.State == match.StateFailed {
			if inpututil.IsKeyJustPressed(ebiten.KeyR) {
				a.endMatch()
				a.mode = modeLevelPick
				return nil
			}
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if sq, ok := a.rend.squareAt(ebiten.CursorPosition()); ok {
				a.orch.PointerDown(sq, now)
			}
		}
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	switch a.mode {
	case modeLevelPick:
		a.levelMenu.draw(screen)
	case modeThemePick:
		a.themeMenu.draw(screen)
	case modePlaying:
		a.rend.draw(screen, a.orch.Frame(time.Now()))
	}
}

func (a *App) Layout(_, _ int) (int, int) {
	return a.rend.boardPx() + sidebarWidth, a.rend.boardPx()
}

// Close tears the current match down. Safe to call more than once.
func (a *App) Close() {
	a.endMatch()
}

func (a *App) menuClick(m *menu) (int, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, false
	}
	return m.hit(ebiten.CursorPosition())
}

func (a *App) setTheme(th Theme) {
	a.theme = th
	a.rend = newBoardRenderer(a.cfg.TileSize, th, a.logger.Sugar().Warnf)
	a.levelMenu.theme = th
	a.themeMenu.theme = th
}

func (a *App) startMatch() error {
	eng, err := a.newEngine(a.level)
	if err != nil {
		return fmt.Errorf("start engine: %w", err)
	}
	preset := engine.PresetForLevel(a.level).Name
	a.eng = eng
	a.orch = match.New(eng, match.Config{
		HumanSide:  match.White,
		Preset:     preset,
		Logger:     a.logger,
		OnGameOver: a.archiveResult,
	}, time.Now())
	a.mode = modePlaying
	a.logger.Info("match started",
		zap.String("preset", preset),
		zap.String("theme", a.theme.Name),
	)
	return nil
}

func (a *App) endMatch() {
	if a.orch != nil {
		a.orch.Shutdown()
		a.orch = nil
	}
	if a.eng != nil {
		if err := a.eng.Close(); err != nil {
			a.logger.Warn("close engine", zap.Error(err))
		}
		a.eng = nil
	}
}

func (a *App) archiveResult(res match.Result) {
	rec := archive.NewRecord(res)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := a.repo.Insert(ctx, rec)
		switch {
		case errors.Is(err, archive.ErrDuplicateRecord):
			a.logger.Debug("archive record already stored", zap.String("id", rec.ID))
		case err != nil:
			a.logger.Warn("archive match", zap.Error(err))
		default:
			a.logger.Info("match archived",
				zap.String("id", rec.ID),
				zap.String("result", rec.Result),
				zap.String("method", rec.Method),
			)
		}
	}()
}

func themeNames(themes []Theme) []string {
	names := make([]string, 0, len(themes))
	for _, th := range themes {
		names = append(names, th.Name)
	}
	return names
}

func levelForPreset(name string) int {
	for i, n := range engine.PresetNames() {
		if n == name {
			return i + 1
		}
	}
	return 3
}
