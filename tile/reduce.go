package tile

import "github.com/cespare/xxhash"

// Reduce removes duplicate tiles and rewrites the tilemap so the image
// renders unchanged. A duplicate is replaced by the last tile in use which
// is then checked again in its new slot. It returns the number of tiles
// removed.
func (s *Sheet) Reduce() int {
	before := s.Count

	// Only tiles with matching hashes are compared byte for byte
	sums := make([]uint64, s.Count)
	for t := range sums {
		sums[t] = xxhash.Sum64(s.Tile(t))
	}

	for t1 := 0; t1 < s.Count; t1++ {
		for t2 := t1 + 1; t2 < s.Count; {
			if sums[t1] != sums[t2] || !s.Equal(t1, t2) {
				t2++
				continue
			}

			last := s.Count - 1
			s.replace(t2, t1)
			copy(s.Tile(t2), s.Tile(last))
			sums[t2] = sums[last]
			s.replace(last, t2)
			s.Count--
		}
	}

	s.data = s.data[:s.Count*s.TileSize()]

	return before - s.Count
}
