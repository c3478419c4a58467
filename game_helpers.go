package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/sheikhrachel/gameoflife/board"
	"github.com/sheikhrachel/gameoflife/model"
	"github.com/sheikhrachel/gameoflife/utils"
)

const (
	headerStart  = "Starting state"
	headerThen   = "Then:"
	headerFinish = "Finishing state"
)

// runGame loads the params and starting board, runs the configured number of
// generations and saves the final live cells
func runGame(config utils.Config, boardPath string, stdout io.Writer, logger *slog.Logger) error {
	params, err := board.LoadParams(config.ParamsFile)
	if err != nil {
		return err
	}

	pair := model.NewBufferPair(params.Width, params.Height)
	if err = board.LoadBoard(boardPath, pair.Current()); err != nil {
		return err
	}
	logger.Debug("board loaded",
		"width", params.Width,
		"height", params.Height,
		"living", pair.Current().CountLivingCells(),
	)

	stats, err := runGenerations(pair, config.Generations, config.Workers, model.NewTerminalRenderer(stdout), logger)
	if err != nil {
		return err
	}

	if err = board.SaveBoard(config.FinalStateFile, pair.Current()); err != nil {
		return err
	}

	logger.Debug("run finished", slog.Any("stats", stats), "final_state", config.FinalStateFile)
	return nil
}

// runGenerations renders the starting board, then advances the pair the given
// number of times, rendering after every step. The final state is left in
// pair.Current().
func runGenerations(
	pair *model.BufferPair,
	generations int,
	workers int,
	renderer *model.TerminalRenderer,
	logger *slog.Logger,
) (*utils.Stats, error) {
	stats := utils.NewStats()
	stats.Update(0, pair.Current().CountLivingCells(), 0)

	if err := display(renderer, headerStart, pair.Current()); err != nil {
		return stats, err
	}
	if generations == 0 {
		return stats, display(renderer, headerFinish, pair.Current())
	}

	for generation := 1; generation <= generations; generation++ {
		start := time.Now()
		if err := pair.Advance(workers); err != nil {
			return stats, err
		}

		population := pair.Current().CountLivingCells()
		stats.Update(generation, population, time.Since(start))
		logger.Debug("generation complete", "generation", generation, "population", population)

		header := headerThen
		if generation == generations {
			header = headerFinish
		}
		if err := display(renderer, header, pair.Current()); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

func display(renderer *model.TerminalRenderer, header string, g *model.Grid) error {
	if err := renderer.Display(header, g); err != nil {
		return &utils.FatalError{Kind: utils.KindWrite, Check: "could not write board", Err: err}
	}
	return nil
}
