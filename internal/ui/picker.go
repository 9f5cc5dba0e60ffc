package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	menuRowHeight = 36
	menuRowWidth  = 260
	menuTop       = 72
	menuLeft      = 48
)

// menu is a vertical list of clickable rows used by the level and theme
// pickers.
type menu struct {
	title string
	items []string
	theme Theme
}

func newMenu(title string, items []string, theme Theme) *menu {
	return &menu{title: title, items: items, theme: theme}
}

// hit returns the row index under the pixel, if any.
func (m *menu) hit(x, y int) (int, bool) {
	if x < menuLeft || x >= menuLeft+menuRowWidth {
		return 0, false
	}
	for i := range m.items {
		top := menuTop + i*(menuRowHeight+8)
		if y >= top && y < top+menuRowHeight {
			return i, true
		}
	}
	return 0, false
}

func (m *menu) draw(screen *ebiten.Image) {
	screen.Fill(m.theme.Background)
	text.Draw(screen, m.title, basicfont.Face7x13, menuLeft, menuTop-28, m.theme.Text)

	cx, cy := ebiten.CursorPosition()
	hover, hovering := m.hit(cx, cy)

	for i, item := range m.items {
		top := menuTop + i*(menuRowHeight+8)
		clr := m.theme.Dark
		if hovering && hover == i {
			clr = m.theme.Highlight
		}
		vector.DrawFilledRect(screen, menuLeft, float32(top), menuRowWidth, menuRowHeight, clr, false)
		text.Draw(screen, item, basicfont.Face7x13, menuLeft+14, top+menuRowHeight/2+4, m.theme.Text)
	}
}
