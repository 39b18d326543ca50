package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lifesim/go-life/model"
	"github.com/lifesim/go-life/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	pool := model.NewGridPool()
	grid, err := pool.Get(config.Rows, config.Cols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create grid: %v\n", err)
		os.Exit(1)
	}
	if err = seedGrid(grid, config); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed grid: %v\n", err)
		os.Exit(1)
	}

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully: the signal cancels the loop's context
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return runLoop(ctx, grid, pool, renderer, stats, config)
	})

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "game loop failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nShutting down gracefully...")
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
