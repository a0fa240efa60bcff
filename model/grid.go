package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
)

const (
	glyphAlive = 'X'
	glyphDead  = '.'
)

// Grid represents one generation of the board: a square size x size array
// of binary cells indexed by (row, col)
type Grid struct {
	size  int
	cells [][]bool
}

// NewGrid creates an all-dead grid with the specified size
func NewGrid(size int) *Grid {
	cells := make([][]bool, size)
	for i := range cells {
		cells[i] = make([]bool, size)
	}
	return &Grid{size: size, cells: cells}
}

// GridFromLines parses a rectangular character grid into a Grid. Every
// line must have the same length as the number of lines (the board is
// square), and the glyph alphabet is exactly {X, .}.
func GridFromLines(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, NewInvalidGridError("empty input")
	}

	size := len(lines)
	grid := NewGrid(size)
	for row, line := range lines {
		if len(line) != size {
			return nil, NewInvalidGridRowError(row,
				fmt.Sprintf("expected %d cells, got %d", size, len(line)))
		}
		for col, glyph := range []byte(line) {
			switch glyph {
			case glyphAlive:
				grid.cells[row][col] = true
			case glyphDead:
				// already dead
			default:
				return nil, NewInvalidGridRowError(row,
					fmt.Sprintf("illegal glyph %q at column %d", glyph, col))
			}
		}
	}
	return grid, nil
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// Reset resizes the grid and clears every cell
func (g *Grid) Reset(size int) {
	g.size = size
	if len(g.cells) != size {
		g.cells = make([][]bool, size)
	}
	for i := range g.cells {
		if len(g.cells[i]) != size {
			g.cells[i] = make([]bool, size)
		} else {
			for j := range g.cells[i] {
				g.cells[i][j] = false
			}
		}
	}
}

// Clear clears all cells
func (g *Grid) Clear() {
	for row := range g.cells {
		for col := range g.cells[row] {
			g.cells[row][col] = false
		}
	}
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) {
	if row >= 0 && row < g.size && col >= 0 && col < g.size {
		g.cells[row][col] = alive
	}
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) bool {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return false
	}
	return g.cells[row][col]
}

// Randomize fills the grid with i.i.d. Bernoulli(probability) cells
func (g *Grid) Randomize(probability float64, rng *rand.Rand) {
	for row := range g.cells {
		for col := range g.cells[row] {
			g.cells[row][col] = rng.Float64() < probability
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// Equal reports whether two grids hold identical cell states
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Hash returns an efficient MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
