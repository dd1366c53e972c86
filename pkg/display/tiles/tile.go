package tiles

import (
	"image"
	"image/color"
)

const (
	// tileCount is the number of tiles video RAM holds in its tile
	// data area (0x8000-0x97FF).
	tileCount = 384
	// tileBytes is the size of a tile, two bytes per row.
	tileBytes = 16
	columns   = 16
	rows      = tileCount / columns
)

// palette maps a colour number to a grey shade, lightest first.
var palette = [4]color.Gray{{Y: 0xFF}, {Y: 0xAA}, {Y: 0x55}, {Y: 0x00}}

// Tile represents a tile. Each tile has a size of 8x8 pixels and a color
// depth of 4 colors/gray shades.
type Tile [8][8]uint8

// NewTile decodes the 2 bits per pixel encoding of a tile. The low bit
// of a pixel's colour comes from the first byte of its row, the high
// bit from the second.
func NewTile(b []byte) Tile {
	t := Tile{}
	for tileY := 0; tileY < 8; tileY++ {
		lo, hi := b[tileY*2], b[tileY*2+1]
		for tileX := 0; tileX < 8; tileX++ {
			t[tileY][tileX] = (lo>>(7-tileX))&1 | ((hi>>(7-tileX))&1)<<1
		}
	}
	return t
}

// Draw draws the tile to img with its top left corner at x, y.
func (t Tile) Draw(img *image.Gray, x, y int) {
	for tileY := 0; tileY < 8; tileY++ {
		for tileX := 0; tileX < 8; tileX++ {
			img.SetGray(x+tileX, y+tileY, palette[t[tileY][tileX]])
		}
	}
}

// Sheet lays out every tile in data as a grid of 16 tiles per row.
func Sheet(data []byte) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, columns*8, rows*8))
	for i := 0; i < tileCount && (i+1)*tileBytes <= len(data); i++ {
		NewTile(data[i*tileBytes:]).Draw(img, (i%columns)*8, (i/columns)*8)
	}
	return img
}
