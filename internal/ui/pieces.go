package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/pieces/*.svg
var pieceFiles embed.FS

type pieceCacheKey struct {
	letter byte
	size   int
}

var (
	pieceCache   = map[pieceCacheKey]*ebiten.Image{}
	pieceCacheMu sync.RWMutex
)

// pieceImage rasterizes the SVG for one board letter at the given pixel size.
// Uppercase letters are white pieces, lowercase black.
func pieceImage(letter byte, size int) (*ebiten.Image, error) {
	key := pieceCacheKey{letter: letter, size: size}

	pieceCacheMu.RLock()
	if img, ok := pieceCache[key]; ok {
		pieceCacheMu.RUnlock()
		return img, nil
	}
	pieceCacheMu.RUnlock()

	rgba, err := rasterizePiece(letter, size)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(rgba)

	pieceCacheMu.Lock()
	pieceCache[key] = img
	pieceCacheMu.Unlock()

	return img, nil
}

func rasterizePiece(letter byte, size int) (*image.RGBA, error) {
	name, err := pieceAssetName(letter)
	if err != nil {
		return nil, err
	}
	data, err := pieceFiles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read piece asset %s: %w", name, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse piece svg %s: %w", name, err)
	}
	if icon.ViewBox.W <= 0 {
		icon.ViewBox.W = float64(size)
	}
	if icon.ViewBox.H <= 0 {
		icon.ViewBox.H = float64(size)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

func pieceAssetName(letter byte) (string, error) {
	switch letter {
	case 'P', 'N', 'B', 'R', 'Q', 'K':
		return fmt.Sprintf("assets/pieces/w%c.svg", letter), nil
	case 'p', 'n', 'b', 'r', 'q', 'k':
		return fmt.Sprintf("assets/pieces/b%c.svg", letter-'a'+'A'), nil
	default:
		return "", fmt.Errorf("unknown piece letter %q", string(letter))
	}
}
