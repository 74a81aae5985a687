package renderer

import (
	"image"
	"math/rand"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid splits a width×height image into row-major square tiles.
// Edge tiles are clipped to the image bounds.
func NewTileGrid(width, height, tileSize int) []Tile {
	if width <= 0 || height <= 0 || tileSize <= 0 {
		return nil
	}

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize
	tiles := make([]Tile, 0, tilesX*tilesY)

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, Tile{ID: len(tiles), Bounds: image.Rect(x0, y0, x1, y1)})
		}
	}

	return tiles
}

// NewRandom returns the tile's own random source. It depends only on the base
// seed and tile ID, so a tile renders the same no matter which worker runs it.
func (t Tile) NewRandom(seed int64) *rand.Rand {
	// splitmix64 finalizer spreads neighboring IDs across the seed space
	z := uint64(seed) + uint64(t.ID+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return rand.New(rand.NewSource(int64(z)))
}
