/*
Package tile implements the Game Boy 2bpp tile format, rasterizing indexed
pixels into tiles and removing duplicate tiles.

A tile is 8 pixels wide and either 8 or 16 pixels tall. Each pixel is one of
four colors so a row is stored as two bytes; the first holds the low bit of
every pixel and the second the high bit, most significant bit leftmost. An 8
by 8 tile is therefore 16 bytes and an 8 by 16 tile 32 bytes.

An image is cut into a grid of tiles, padded right and bottom to a whole
number of tiles, and a tilemap names the tile to display at each grid cell.
*/
package tile

const (
	// Width is the width of every tile in pixels.
	Width = 8
	// Height is the height of a normal tile.
	Height = 8
	// TallHeight is the height of a tile in 8x16 sprite mode.
	TallHeight = 16
	// Colors is the number of colors a tile pixel can take.
	Colors = 4

	bytesPerRow = 2
)
