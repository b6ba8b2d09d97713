package tile

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(s *Sheet) [][]uint8 {
	rows := make([][]uint8, s.Rows*s.TileHeight)
	for y := range rows {
		rows[y] = make([]uint8, s.Cols*Width)
		for x := range rows[y] {
			rows[y][x] = s.ColorAt(x, y)
		}
	}
	return rows
}

func checkReduced(t *testing.T, s *Sheet) {
	t.Helper()

	for _, v := range s.Map {
		assert.Less(t, v, s.Count)
		assert.GreaterOrEqual(t, v, 0)
	}
	for a := 0; a < s.Count; a++ {
		for b := a + 1; b < s.Count; b++ {
			assert.False(t, s.Equal(a, b), "tiles %d and %d are identical", a, b)
		}
	}
	assert.Len(t, s.Bytes(), s.Count*s.TileSize())
}

func TestReduceDuplicates(t *testing.T) {
	s, err := Rasterize(twoTiles(t, 1), []uint8{2, 2}, Height)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Reduce())
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, []int{0, 0}, s.Map)
	checkReduced(t, s)
}

func TestReduceDistinct(t *testing.T) {
	s, err := Rasterize(twoTiles(t, 1), []uint8{0, 1}, Height)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Reduce())
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, []int{0, 1}, s.Map)
}

func TestReduceTailSwap(t *testing.T) {
	// Tiles: A B A C, tile 2 is replaced by C which moves from slot 3
	colors := []uint8{0, 1, 0, 2}
	b := fill(t, 32, 8, 2, func(x, y int) uint8 { return colors[x/Width] })
	s, err := Rasterize(b, identity(Colors), Height)
	require.NoError(t, err)
	before := render(s)

	assert.Equal(t, 1, s.Reduce())
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, []int{0, 1, 0, 2}, s.Map)
	assert.Equal(t, before, render(s))
	checkReduced(t, s)
}

func TestReduceMovedTileRechecked(t *testing.T) {
	// Tiles: A B A A, the tail copied into slot 2 is itself a duplicate
	colors := []uint8{0, 1, 0, 0}
	b := fill(t, 32, 8, 2, func(x, y int) uint8 { return colors[x/Width] })
	s, err := Rasterize(b, identity(Colors), Height)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Reduce())
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, []int{0, 1, 0, 0}, s.Map)
	checkReduced(t, s)
}

func TestReduceFidelity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, th := range []int{Height, TallHeight} {
		// A handful of patterns repeated over a large grid
		patterns := make([][]uint8, 5)
		for i := range patterns {
			patterns[i] = make([]uint8, Width*th)
			for j := range patterns[i] {
				patterns[i][j] = uint8(rng.Intn(Colors))
			}
		}
		choice := make([]int, 12*6)
		for i := range choice {
			choice[i] = rng.Intn(len(patterns))
		}

		w, h := 12*Width-3, 6*th-5
		b := fill(t, w, h, 2, func(x, y int) uint8 {
			p := patterns[choice[(y/th)*12+x/Width]]
			return p[(y%th)*Width+x%Width]
		})
		s, err := Rasterize(b, identity(Colors), th)
		require.NoError(t, err)

		before := render(s)
		removed := s.Reduce()

		assert.Greater(t, removed, 0)
		// Cropped right and bottom edges give at most three more variants
		// of every pattern
		assert.LessOrEqual(t, s.Count, 4*len(patterns))
		assert.Equal(t, before, render(s))
		checkReduced(t, s)
	}
}
