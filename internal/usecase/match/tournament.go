package match

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quarto_ai/internal/usecase/player"
)

// PlayerFactory builds fresh players for one game. Players are not shared
// between games, so each game owns its random sources.
type PlayerFactory func(seed int64) (player.Player, player.Player)

type Summary struct {
	ID      uuid.UUID `json:"id"`
	Players [2]string `json:"players"`
	Games   int       `json:"games"`
	Wins    [2]int    `json:"wins"`
	Draws   int       `json:"draws"`
	Records []Record  `json:"records"`
}

type Tournament struct {
	newPlayers PlayerFactory
	workers    int
	seed       int64
	log        *zap.SugaredLogger
	narrate    bool
}

func NewTournament(newPlayers PlayerFactory, workers int, seed int64, log *zap.SugaredLogger, narrate bool) *Tournament {
	if workers < 1 {
		workers = 1
	}
	return &Tournament{
		newPlayers: newPlayers,
		workers:    workers,
		seed:       seed,
		log:        log,
		narrate:    narrate,
	}
}

// Run plays games concurrently. Game i is seeded with seed+i and player i%2 gives
// the first piece, so a run is reproducible regardless of scheduling.
func (t *Tournament) Run(ctx context.Context, games int) (Summary, error) {
	summary := Summary{ID: uuid.New(), Games: games}
	records := make([]Record, games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)
	for i := 0; i < games; i++ {
		i := i
		g.Go(func() error {
			p0, p1 := t.newPlayers(t.seed + int64(i))
			rec, err := NewRunner(p0, p1, t.log, t.narrate).Run(ctx, i%2)
			if err != nil {
				return err
			}
			records[i] = rec
			t.log.Debugw("game done", "tournament", summary.ID, "game", i, "winner", rec.WinnerName(), "turns", len(rec.Turns))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary, err
	}

	summary.Records = records
	if games > 0 {
		summary.Players = records[0].Players
	}
	summary.Draws = lo.CountBy(records, func(r Record) bool { return r.Winner == Draw })
	for side := range summary.Wins {
		summary.Wins[side] = lo.CountBy(records, func(r Record) bool { return r.Winner == side })
	}

	t.log.Infow("tournament finished",
		"tournament", summary.ID, "games", games,
		"wins", summary.Wins, "draws", summary.Draws)
	return summary, nil
}
