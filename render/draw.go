package render

import (
	"context"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/metafont/shaper"
)

// TileSource supplies styled tiles for runes, typically backed by the
// tile cache so repeated runes render once.
type TileSource interface {
	StyledTile(ctx context.Context, r rune) (*StyledTile, error)
}

// Image converts the tile to a straight-alpha image. Tile row 0 is the
// bottom of the glyph, so rows are flipped into image order.
func (t *StyledTile) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, TileSize, TileSize))
	for py := 0; py < TileSize; py++ {
		row := TileSize - 1 - py
		for px := 0; px < TileSize; px++ {
			img.SetNRGBA(px, row, t.Pixels[py*TileSize+px].NRGBA())
		}
	}
	return img
}

// DrawTile scales a styled tile into the rectangle r of dst.
func DrawTile(dst draw.Image, r image.Rectangle, tile *StyledTile) {
	src := tile.Image()
	xdraw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), xdraw.Over, nil)
}

// DrawLine renders a shaped line onto dst. The origin is the baseline
// start in pixels, scale converts em units to pixels, and line offsets
// move downward on screen.
func DrawLine(ctx context.Context, dst draw.Image, line shaper.Line, origin image.Point, scale float32, src TileSource) error {
	baseline := origin.Y + int(line.YOffset*scale+0.5)

	for _, g := range line.Glyphs {
		tile, err := src.StyledTile(ctx, g.Rune)
		if err != nil {
			return err
		}
		w := tile.BBoxMax.X - tile.BBoxMin.X
		h := tile.BBoxMax.Y - tile.BBoxMin.Y
		if w <= 0 || h <= 0 {
			continue
		}

		// Glyph-local bbox, positioned at the pen cursor.
		penX := g.X - g.LSB
		x0 := origin.X + int((penX+tile.BBoxMin.X)*scale+0.5)
		x1 := origin.X + int((penX+tile.BBoxMax.X)*scale+0.5)
		y0 := baseline - int(tile.BBoxMax.Y*scale+0.5)
		y1 := baseline - int(tile.BBoxMin.Y*scale+0.5)

		DrawTile(dst, image.Rect(x0, y0, x1, y1), tile)
	}
	return nil
}

// DrawText renders multiple shaped lines onto dst.
func DrawText(ctx context.Context, dst draw.Image, lines []shaper.Line, origin image.Point, scale float32, src TileSource) error {
	for _, line := range lines {
		if err := DrawLine(ctx, dst, line, origin, scale, src); err != nil {
			return err
		}
	}
	return nil
}
