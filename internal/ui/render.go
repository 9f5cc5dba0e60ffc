package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/kapu/chessdesk/internal/engine"
	"github.com/kapu/chessdesk/internal/match"
)

const sidebarWidth = 220

// boardRenderer draws one frame of the match view: tiles, pieces, highlights
// and the sidebar with clocks and status.
type boardRenderer struct {
	tile   int
	theme  Theme
	logger loggerFunc
}

// loggerFunc lets the renderer report asset problems once without dragging a
// full logger through every draw call.
type loggerFunc func(format string, args ...any)

func newBoardRenderer(tile int, theme Theme, logf loggerFunc) *boardRenderer {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &boardRenderer{tile: tile, theme: theme, logger: logf}
}

func (r *boardRenderer) boardPx() int { return r.tile * 8 }

// squareAt maps a screen pixel to a board square, white side at the bottom.
func (r *boardRenderer) squareAt(x, y int) (match.Square, bool) {
	px := r.boardPx()
	if x < 0 || y < 0 || x >= px || y >= px {
		return match.Square{}, false
	}
	sq := match.Square{File: x / r.tile, Rank: 7 - y/r.tile}
	return sq, sq.Valid()
}

func (r *boardRenderer) squareOrigin(sq match.Square) (float32, float32) {
	return float32(sq.File * r.tile), float32((7 - sq.Rank) * r.tile)
}

func (r *boardRenderer) draw(screen *ebiten.Image, fs match.FrameState) {
	screen.Fill(r.theme.Background)
	r.drawTiles(screen, fs)
	r.drawPieces(screen, fs)
	r.drawTargets(screen, fs)
	r.drawSidebar(screen, fs)
}

func (r *boardRenderer) drawTiles(screen *ebiten.Image, fs match.FrameState) {
	tile := float32(r.tile)
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := match.Square{File: file, Rank: rank}
			clr := r.theme.Light
			if (file+rank)%2 == 0 {
				clr = r.theme.Dark
			}
			if fs.Selected != nil && *fs.Selected == sq {
				clr = r.theme.Select
			}
			x, y := r.squareOrigin(sq)
			vector.DrawFilledRect(screen, x, y, tile, tile, clr, false)
		}
	}
}

func (r *boardRenderer) drawPieces(screen *ebiten.Image, fs match.FrameState) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := match.Square{File: file, Rank: rank}
			letter := fs.Board.At(sq)
			if letter == engine.EmptySquare {
				continue
			}
			img, err := pieceImage(letter, r.tile)
			if err != nil {
				r.logger("piece sprite %q: %v", string(letter), err)
				continue
			}
			x, y := r.squareOrigin(sq)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(img, op)
		}
	}
}

func (r *boardRenderer) drawTargets(screen *ebiten.Image, fs match.FrameState) {
	tile := float32(r.tile)
	clr := r.theme.Highlight
	for _, sq := range fs.Targets {
		x, y := r.squareOrigin(sq)
		vector.DrawFilledCircle(screen, x+tile/2, y+tile/2, tile/6, clr, true)
	}
}

func (r *boardRenderer) drawSidebar(screen *ebiten.Image, fs match.FrameState) {
	x := r.boardPx() + 16
	y := 24
	line := func(s string) {
		text.Draw(screen, s, basicfont.Face7x13, x, y, r.theme.Text)
		y += 20
	}

	line(fmt.Sprintf("White  %s", formatClock(fs.WhiteElapsed)))
	line(fmt.Sprintf("Black  %s", formatClock(fs.BlackElapsed)))
	y += 8

	switch fs.State {
	case match.StateAITurn:
		line("AI is thinking...")
	case match.StateFailed:
		line("Engine failed")
		if fs.Err != nil {
			line(fs.Err.Error())
		}
	default:
		line(fs.Status.String())
	}
	y += 8

	if fs.LastMove != "" {
		line(fs.LastMove)
	}
	if fs.CapturedWhite != "" {
		line("White took " + fs.CapturedWhite)
	}
	if fs.CapturedBlack != "" {
		line("Black took " + fs.CapturedBlack)
	}

	if fs.State == match.StateGameOver {
		y += 8
		line("Game over")
		line("Press R for a new game")
	}
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
