package model

// NeighborEntry identifies one neighbor relation plus its contribution
// weight to the scoring function.
type NeighborEntry struct {
	Row    int
	Col    int
	Weight float64
}

// NeighborTable holds, for every (row, col) in a grid, the precomputed
// boundary-clipped neighbor entries. It depends only on grid size and
// topology, never on cell states, so one table serves every generation.
type NeighborTable [][][]NeighborEntry

const (
	tier1Weight = 1.0
	tier2Weight = 0.3
)

// offset is a relative (row, col) step from a source cell
type offset struct {
	dr, dc int
}

// mooreOffsets are the 8 surrounding cells of the square topology
var mooreOffsets = []offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// hexOffsets returns the 6 tier-1 hex directions for a row. Hex adjacency
// on a row-offset layout is asymmetric by row parity: even rows drop the
// two right-leaning diagonals, odd rows the two left-leaning ones.
func hexOffsets(row int) []offset {
	var excluded [2]offset
	if row%2 == 0 {
		excluded = [2]offset{{-1, 1}, {1, 1}}
	} else {
		excluded = [2]offset{{-1, -1}, {1, -1}}
	}

	out := make([]offset, 0, 6)
	for _, o := range mooreOffsets {
		if o == excluded[0] || o == excluded[1] {
			continue
		}
		out = append(out, o)
	}
	return out
}

// hexTier2Offsets returns the 6 second-ring hex directions for a row:
// two cells straight up/down plus four parity-dependent diagonal skips.
func hexTier2Offsets(row int) []offset {
	if row%2 == 0 {
		return []offset{
			{-2, 0}, {2, 0},
			{-1, -2}, {-1, 1},
			{1, -2}, {1, 1},
		}
	}
	return []offset{
		{-2, 0}, {2, 0},
		{-1, -1}, {-1, 2},
		{1, -1}, {1, 2},
	}
}

// NeighborsOf enumerates the boundary-clipped neighbor entries of one cell
// under the given topology. Out-of-bounds neighbors are omitted, never
// wrapped or substituted.
func NeighborsOf(topology Topology, size, row, col int) []NeighborEntry {
	var entries []NeighborEntry

	appendClipped := func(offsets []offset, weight float64) {
		for _, o := range offsets {
			r, c := row+o.dr, col+o.dc
			if r < 0 || r >= size || c < 0 || c >= size {
				continue
			}
			entries = append(entries, NeighborEntry{Row: r, Col: c, Weight: weight})
		}
	}

	switch topology {
	case Square8:
		appendClipped(mooreOffsets, tier1Weight)
	case Hex6:
		appendClipped(hexOffsets(row), tier1Weight)
	case Hex12:
		appendClipped(hexOffsets(row), tier1Weight)
		appendClipped(hexTier2Offsets(row), tier2Weight)
	}

	return entries
}

// NewNeighborTable precomputes the neighbor entries for every cell of a
// size x size grid under the given topology
func NewNeighborTable(topology Topology, size int) NeighborTable {
	table := make(NeighborTable, size)
	for row := range table {
		table[row] = make([][]NeighborEntry, size)
		for col := range table[row] {
			table[row][col] = NeighborsOf(topology, size, row, col)
		}
	}
	return table
}
