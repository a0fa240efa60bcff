package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/hexlife/model"
	"github.com/sheikhrachel/hexlife/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Board,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	topology, err := model.ParseTopology(config.Topology)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to select topology")
	}

	var board *model.Board
	if config.File != "" {
		board, err = loadBoardFromFile(topology, config.File)
	} else {
		board, err = model.NewRandomBoard(topology, config.Probability, config.Size, config.Seed)
	}
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to build board")
	}

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	return board, renderer, stats, nil
}

// loadBoardFromFile reads a glyph grid from a text file, one row per line
func loadBoardFromFile(topology model.Topology, path string) (*model.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadBoardFromFile] failed to read file: %+v", path)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	board, err := model.NewBoardFromLines(topology, lines)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadBoardFromFile] failed to parse board from file: %+v", path)
	}
	return board, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board *model.Board) {
	source := "random"
	if config.File != "" {
		source = config.File
	}
	fmt.Printf("Topology: %s-neighbor | Source: %s\n", board.Topology(), source)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		board.Grid().Size(), board.Grid().Size(), board.Grid().CountLivingCells())
	if config.Listen != "" {
		fmt.Printf("Streaming frames on ws://%s/watch\n", config.Listen)
	}
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState refreshes stats and stagnation tracking after a step
func updateGameState(
	board *model.Board,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string) {
	var (
		size        = board.Grid().Size()
		livingCells = board.Grid().CountLivingCells()
		density     = float64(livingCells) / float64(size*size) * 100
	)

	stats.Update(generation, livingCells, time.Since(lastFrameTime))
	board.UpdateHistory()

	status := "Active"
	if board.IsStagnant() {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}
