package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"konane/engine"
	"konane/game"
	"konane/player"
	"konane/record"
	"konane/searcher"
)

type config struct {
	boardSize  int
	blackDepth int
	whiteDepth int
	goroutines int
	games      int
	exportPath string
	verbose    bool
}

func main() {
	cfg := parseFlags()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	for i := 0; i < cfg.games; i++ {
		if err := runGame(cfg); err != nil {
			log.Fatal().Err(err).Msg("game failed")
		}
	}
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.boardSize, "size", 8, "board size (even, 4-16)")
	flag.IntVar(&cfg.blackDepth, "black-depth", searcher.DefaultDepth, "search depth for black")
	flag.IntVar(&cfg.whiteDepth, "white-depth", searcher.DefaultDepth, "search depth for white")
	flag.IntVar(&cfg.goroutines, "goroutines", 1, "parallel root searchers per move")
	flag.IntVar(&cfg.games, "games", 1, "number of games to play")
	flag.StringVar(&cfg.exportPath, "export", "", "write the final game record to this file")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()
	return cfg
}

func runGame(cfg config) error {
	state, err := game.NewGameState(cfg.boardSize)
	if err != nil {
		return err
	}

	black := player.NewAI(game.Black, cfg.blackDepth,
		searcher.WithGoroutines(cfg.goroutines))
	white := player.NewAI(game.White, cfg.whiteDepth,
		searcher.WithGoroutines(cfg.goroutines))

	final, err := engine.New(state, black, white).Run()
	if err != nil {
		return err
	}

	fmt.Println(record.ExportText(final))

	if cfg.exportPath != "" {
		data, err := record.Export(final)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.exportPath, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.exportPath, err)
		}
		log.Info().Str("path", cfg.exportPath).Msg("game record written")
	}
	return nil
}
