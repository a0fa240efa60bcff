package model

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Board owns one current generation grid plus the neighbor table for its
// topology. The table is built once at construction and reused by every
// Update call; grid size and topology are fixed for the board's lifetime.
type Board struct {
	topology Topology
	grid     *Grid
	table    NeighborTable
	pool     *GridPool
	history  []string // recent grid hashes for cycle detection
}

// NewBoardFromLines constructs a board from a pre-loaded character grid
func NewBoardFromLines(topology Topology, lines []string) (*Board, error) {
	grid, err := GridFromLines(lines)
	if err != nil {
		return nil, err
	}
	return newBoard(topology, grid), nil
}

// NewRandomBoard constructs a size x size board where each cell is
// independently alive with the given probability. The seed makes runs
// reproducible.
func NewRandomBoard(topology Topology, probability float64, size int, seed int64) (*Board, error) {
	if probability < 0 || probability > 1 {
		return nil, &InvalidParameterError{Name: "probability", Value: probability}
	}
	if size <= 0 {
		return nil, &InvalidParameterError{Name: "size", Value: float64(size)}
	}

	grid := NewGrid(size)
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	grid.Randomize(probability, rng)
	return newBoard(topology, grid), nil
}

func newBoard(topology Topology, grid *Grid) *Board {
	return &Board{
		topology: topology,
		grid:     grid,
		table:    NewNeighborTable(topology, grid.Size()),
		pool:     NewGridPool(),
	}
}

// Topology returns the board's fixed adjacency policy
func (b *Board) Topology() Topology {
	return b.topology
}

// Grid returns the current generation
func (b *Board) Grid() *Grid {
	return b.grid
}

// Update advances the board by one generation. Every cell's neighbor
// score is read against the current grid and the results land in a fresh
// grid, which replaces the current one only after all positions have been
// computed. Rows are sharded across workers; positions within one
// generation have no data dependency on each other.
func (b *Board) Update() {
	var (
		cur  = b.grid
		next = b.pool.Get(cur.Size())
		size = cur.Size()

		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (size + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, size)
		)
		if startRow >= size {
			break
		}

		eg.Go(func() error {
			for row := startRow; row < endRow; row++ {
				for col := 0; col < size; col++ {
					score := 0.0
					for _, n := range b.table[row][col] {
						if cur.cells[n.Row][n.Col] {
							score += n.Weight
						}
					}
					next.cells[row][col] = b.topology.nextState(cur.cells[row][col], score)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	b.grid = next
	b.pool.Put(cur)
}

// Render projects the current grid onto text lines. The square topology
// renders rows as contiguous glyph strings; the hex topologies
// space-separate cells and indent odd rows by one extra space to
// approximate the brick-wall layout.
func (b *Board) Render() []string {
	var (
		size  = b.grid.Size()
		hex   = b.topology == Hex6 || b.topology == Hex12
		lines = make([]string, size)
		sb    strings.Builder
	)

	for row := 0; row < size; row++ {
		sb.Reset()
		if hex && row%2 == 1 {
			sb.WriteByte(' ')
		}
		for col := 0; col < size; col++ {
			if hex && col > 0 {
				sb.WriteByte(' ')
			}
			if b.grid.cells[row][col] {
				sb.WriteByte(glyphAlive)
			} else {
				sb.WriteByte(glyphDead)
			}
		}
		lines[row] = sb.String()
	}
	return lines
}

// UpdateHistory adds the current state to the hash history and maintains size
func (b *Board) UpdateHistory() {
	b.history = append(b.history, b.grid.Hash())

	// Keep only last 5 states to detect cycles
	if len(b.history) > 5 {
		b.history = b.history[1:]
	}
}

// IsStagnant checks if the board is stuck in a short cycle or static state
func (b *Board) IsStagnant() bool {
	if len(b.history) < 3 {
		return false
	}

	currentHash := b.grid.Hash()
	for back := 1; back <= 3 && back <= len(b.history); back++ {
		if b.history[len(b.history)-back] == currentHash {
			return true
		}
	}
	return false
}
