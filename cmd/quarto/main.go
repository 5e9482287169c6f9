package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"quarto_ai/internal/bootstrap"
	"quarto_ai/internal/usecase/match"
	"quarto_ai/internal/usecase/player"
	"quarto_ai/internal/usecase/search"
)

func main() {
	cfgPath := flag.String("config", "", "path to an .env config file")
	games := flag.Int("games", 0, "number of games, overrides GAMES")
	narrate := flag.Bool("narrate", false, "log every move")
	flag.Parse()

	cfg, err := bootstrap.Setup(*cfgPath)
	if err != nil {
		NewLogger("info").Errorw("Failed to setup configuration", zap.Error(err))
		os.Exit(1)
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *narrate {
		cfg.Narrate = true
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := NewLogger(cfg.LogLevel)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	logger.Infow("starting tournament",
		"games", cfg.Games, "workers", cfg.Workers, "depth", cfg.SearchDepth,
		"random_moves", cfg.RandomMoves, "seed", cfg.Seed)

	tournament := match.NewTournament(newPlayers(*cfg, logger), cfg.Workers, cfg.Seed, logger, cfg.Narrate)
	summary, err := tournament.Run(ctx, cfg.Games)
	if err != nil {
		logger.Errorw("Tournament failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Infof("%s won %d, %s won %d, %d draws",
		summary.Players[0], summary.Wins[0], summary.Players[1], summary.Wins[1], summary.Draws)
}

// newPlayers pits the searching player against a random one. Both draw from
// sources derived from the game seed.
func newPlayers(cfg bootstrap.Config, log *zap.SugaredLogger) match.PlayerFactory {
	evaluator := search.LineEvaluator{WinMagnitude: cfg.WinMagnitude, QuietScore: cfg.QuietScore}
	engine := search.NewEngine(evaluator, log)

	return func(seed int64) (player.Player, player.Player) {
		opening := player.NewRandom(player.NewSource(seed))
		minimax := player.NewMinimax(engine, opening, cfg.SearchDepth, cfg.RandomMoves, log)
		return minimax, player.NewRandom(player.NewSource(^seed))
	}
}

func NewLogger(level string) *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	if level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
