package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/hexlife/model"
	"github.com/sheikhrachel/hexlife/stream"
	"github.com/sheikhrachel/hexlife/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
	}

	// Explicit flags override both defaults and the config file
	config.Bind(flag.CommandLine)
	flag.Parse()

	if err = config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	board, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var broadcaster *stream.Broadcaster
	if config.Listen != "" {
		broadcaster = stream.NewBroadcaster()
		defer broadcaster.Close()

		mux := http.NewServeMux()
		mux.Handle("/watch", broadcaster)
		go func() {
			if serveErr := http.ListenAndServe(config.Listen, mux); serveErr != nil {
				fmt.Fprintln(os.Stderr, "viewer server stopped:", serveErr)
			}
		}()
	}

	displayGameInfo(config, board)
	renderer.Display(board)
	publishFrame(broadcaster, board, 0)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	lastFrameTime := time.Now()
	for generation := 1; generation <= config.Generations; generation++ {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
			return
		default:
		}

		frameStart := time.Now()
		board.Update()

		livingCells, density, status := updateGameState(board, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if generation%config.PrintInterval == 0 {
			renderer.Clear()
			displayGameStatus(generation, livingCells, density, status, stats)
			renderer.Display(board)
		}
		publishFrame(broadcaster, board, generation)

		time.Sleep(config.FrameRate)
	}

	fmt.Printf("\nFinished: %d generations in %.1f seconds (%.1f avg population)\n",
		config.Generations, time.Since(stats.StartTime).Seconds(), stats.AveragePopulation)
}

// publishFrame sends the rendered generation to the broadcaster, if any
func publishFrame(broadcaster *stream.Broadcaster, board *model.Board, generation int) {
	if broadcaster == nil {
		return
	}
	broadcaster.Publish(stream.Frame{
		Generation: generation,
		Population: board.Grid().CountLivingCells(),
		Lines:      board.Render(),
	})
}
