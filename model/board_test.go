package model

import (
	"errors"
	"strings"
	"testing"
)

func boardFromLines(t *testing.T, topology Topology, lines []string) *Board {
	t.Helper()
	board, err := NewBoardFromLines(topology, lines)
	if err != nil {
		t.Fatalf("NewBoardFromLines failed: %v", err)
	}
	return board
}

func TestBlockStillLife(t *testing.T) {
	board := boardFromLines(t, Square8, []string{
		".....",
		".XX..",
		".XX..",
		".....",
		".....",
	})
	before := board.Render()

	board.Update()

	after := board.Render()
	for row := range before {
		if before[row] != after[row] {
			t.Fatalf("block changed at row %d: %q -> %q", row, before[row], after[row])
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	board := boardFromLines(t, Square8, []string{
		".....",
		"..X..",
		"..X..",
		"..X..",
		".....",
	})

	board.Update()

	expects := map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := board.Grid().Get(row, col)
			_, shouldBeAlive := expects[[2]int{row, col}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, alive, shouldBeAlive)
			}
		}
	}

	board.Update()

	expects = map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := board.Grid().Get(row, col)
			_, shouldBeAlive := expects[[2]int{row, col}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", row, col, alive, shouldBeAlive)
			}
		}
	}
}

func TestUpdateIsDeterministic(t *testing.T) {
	for _, topology := range allTopologies {
		first, err := NewRandomBoard(topology, 0.5, 20, 7)
		if err != nil {
			t.Fatalf("NewRandomBoard failed: %v", err)
		}
		second, err := NewRandomBoard(topology, 0.5, 20, 7)
		if err != nil {
			t.Fatalf("NewRandomBoard failed: %v", err)
		}

		if !first.Grid().Equal(second.Grid()) {
			t.Fatalf("topology %s: identical seeds produced different initial grids", topology)
		}

		for i := 0; i < 5; i++ {
			first.Update()
			second.Update()
			if !first.Grid().Equal(second.Grid()) {
				t.Fatalf("topology %s: grids diverged after %d updates", topology, i+1)
			}
		}
	}
}

func TestSquareRenderRoundTrip(t *testing.T) {
	board, err := NewRandomBoard(Square8, 0.5, 12, 99)
	if err != nil {
		t.Fatalf("NewRandomBoard failed: %v", err)
	}

	reparsed, err := GridFromLines(board.Render())
	if err != nil {
		t.Fatalf("re-parsing rendered board failed: %v", err)
	}
	if !board.Grid().Equal(reparsed) {
		t.Fatal("round-tripped grid differs from original")
	}
}

func TestHexRenderOffsetsOddRows(t *testing.T) {
	board := boardFromLines(t, Hex6, []string{
		"X..",
		".X.",
		"..X",
	})

	lines := board.Render()
	want := []string{
		"X . .",
		" . X .",
		". . X",
	}
	for row := range want {
		if lines[row] != want[row] {
			t.Errorf("row %d rendered %q, expected %q", row, lines[row], want[row])
		}
	}
}

func TestSingleCellDiesEverywhere(t *testing.T) {
	for _, topology := range allTopologies {
		board := boardFromLines(t, topology, []string{
			".....",
			".....",
			"..X..",
			".....",
			".....",
		})
		board.Update()
		if got := board.Grid().CountLivingCells(); got != 0 {
			t.Errorf("topology %s: lone cell left %d living cells, expected 0", topology, got)
		}
	}
}

func TestBoardFromLinesRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"empty input", nil},
		{"ragged rows", []string{"XX", "X"}},
		{"non-square", []string{"XXX", "XXX"}},
		{"illegal glyph", []string{"X?", ".."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromLines(Square8, tt.lines)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var gridErr *InvalidGridError
			if !errors.As(err, &gridErr) {
				t.Fatalf("expected InvalidGridError, got %T: %v", err, err)
			}
		})
	}
}

func TestRandomBoardRejectsBadParameters(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		size        int
		wantParam   string
	}{
		{"negative probability", -0.1, 10, "probability"},
		{"probability above one", 1.5, 10, "probability"},
		{"zero size", 0.5, 0, "size"},
		{"negative size", 0.5, -3, "size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRandomBoard(Hex6, tt.probability, tt.size, 1)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var paramErr *InvalidParameterError
			if !errors.As(err, &paramErr) {
				t.Fatalf("expected InvalidParameterError, got %T: %v", err, err)
			}
			if paramErr.Name != tt.wantParam {
				t.Errorf("error names parameter %q, expected %q", paramErr.Name, tt.wantParam)
			}
		})
	}
}

func TestParseTopology(t *testing.T) {
	for selector, want := range map[string]Topology{"8": Square8, "6": Hex6, "12": Hex12} {
		got, err := ParseTopology(selector)
		if err != nil {
			t.Fatalf("ParseTopology(%q) failed: %v", selector, err)
		}
		if got != want {
			t.Errorf("ParseTopology(%q) = %v, expected %v", selector, got, want)
		}
	}

	_, err := ParseTopology("7")
	var topoErr *UnknownTopologyError
	if !errors.As(err, &topoErr) {
		t.Fatalf("expected UnknownTopologyError, got %T: %v", err, err)
	}
	if !strings.Contains(topoErr.Error(), "7") {
		t.Errorf("error message %q does not name the selector", topoErr.Error())
	}
}

func TestStagnationDetection(t *testing.T) {
	board := boardFromLines(t, Square8, []string{
		".....",
		".XX..",
		".XX..",
		".....",
		".....",
	})

	// A still life repeats its hash every generation
	for i := 0; i < 4; i++ {
		board.UpdateHistory()
		board.Update()
	}
	if !board.IsStagnant() {
		t.Fatal("still life not reported as stagnant")
	}
}
