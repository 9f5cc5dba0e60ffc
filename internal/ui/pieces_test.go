package ui

import "testing"

func TestRasterizeAllPieces(t *testing.T) {
	for _, letter := range []byte("PNBRQKpnbrqk") {
		img, err := rasterizePiece(letter, 64)
		if err != nil {
			t.Fatalf("rasterizePiece(%q): %v", string(letter), err)
		}
		opaque := 0
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] != 0 {
				opaque++
			}
		}
		if opaque == 0 {
			t.Fatalf("piece %q rasterized to a fully transparent image", string(letter))
		}
	}
}

func TestPieceAssetNames(t *testing.T) {
	name, err := pieceAssetName('K')
	if err != nil || name != "assets/pieces/wK.svg" {
		t.Fatalf("pieceAssetName(K) = %q, %v", name, err)
	}
	name, err = pieceAssetName('q')
	if err != nil || name != "assets/pieces/bQ.svg" {
		t.Fatalf("pieceAssetName(q) = %q, %v", name, err)
	}
	if _, err := pieceAssetName('x'); err == nil {
		t.Fatalf("unknown letter accepted")
	}
}
