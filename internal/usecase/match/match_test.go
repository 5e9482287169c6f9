package match

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"quarto_ai/internal/domain/quarto"
	"quarto_ai/internal/usecase/player"
	"quarto_ai/internal/usecase/search"
)

func randomPair(seed int64) (player.Player, player.Player) {
	return player.NewRandom(player.NewSource(seed)), player.NewRandom(player.NewSource(seed + 1000))
}

func minimaxVsRandom(seed int64) (player.Player, player.Player) {
	log := zap.NewNop().Sugar()
	engine := search.NewEngine(search.NewLineEvaluator(), log)
	mm := player.NewMinimax(engine, player.NewRandom(player.NewSource(seed)), 1, 6, log)
	return mm, player.NewRandom(player.NewSource(seed + 1000))
}

// replay checks the record against the rules on a fresh board.
func replay(t *testing.T, rec Record) {
	t.Helper()
	b := quarto.NewBoard()
	giver := rec.First
	for i, turn := range rec.Turns {
		if b.IsOver() {
			t.Fatalf("turn %d played after the game ended", i)
		}
		if turn.Giver != giver {
			t.Fatalf("turn %d: expected giver %d, got %d", i, giver, turn.Giver)
		}
		if _, err := b.TakePiece(turn.Piece); err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
		if err := b.Place(turn.Placement.X, turn.Placement.Y, turn.Piece); err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
		giver = 1 - giver
	}
	if !b.IsOver() {
		t.Fatalf("record ends before the game is over")
	}
	if b.Fingerprint() != rec.Fingerprint {
		t.Fatalf("fingerprint mismatch")
	}
	switch {
	case b.IsWon() && rec.Winner != 1-rec.Turns[len(rec.Turns)-1].Giver:
		t.Fatalf("winner should be the last placer, got %d", rec.Winner)
	case b.IsDraw() && rec.Winner != Draw:
		t.Fatalf("drawn board recorded winner %d", rec.Winner)
	}
}

func TestRunnerPlaysLegalGames(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		p0, p1 := randomPair(seed)
		rec, err := NewRunner(p0, p1, zap.NewNop().Sugar(), false).Run(context.Background(), int(seed%2))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		replay(t, rec)
	}
}

func TestRunnerIsReproducible(t *testing.T) {
	run := func() Record {
		p0, p1 := minimaxVsRandom(3)
		rec, err := NewRunner(p0, p1, zap.NewNop().Sugar(), true).Run(context.Background(), 0)
		if err != nil {
			t.Fatal(err)
		}
		return rec
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a.Turns, b.Turns) || a.Winner != b.Winner {
		t.Fatalf("same seeds produced different games")
	}
	if a.ID == b.ID {
		t.Fatalf("every game gets its own id")
	}
	replay(t, a)
}

func TestRunnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p0, p1 := randomPair(1)
	if _, err := NewRunner(p0, p1, zap.NewNop().Sugar(), false).Run(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTournamentCountsEveryGame(t *testing.T) {
	const games = 6
	summary, err := NewTournament(minimaxVsRandom, 3, 100, zap.NewNop().Sugar(), false).Run(context.Background(), games)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Wins[0]+summary.Wins[1]+summary.Draws != games {
		t.Fatalf("wins %v and draws %d do not add up to %d", summary.Wins, summary.Draws, games)
	}
	if summary.Players != [2]string{"minimax", "random"} {
		t.Fatalf("unexpected players %v", summary.Players)
	}
	for i, rec := range summary.Records {
		if rec.First != i%2 {
			t.Fatalf("game %d: expected player %d to start", i, i%2)
		}
		replay(t, rec)
	}
}

func TestTournamentIgnoresWorkerCount(t *testing.T) {
	serial, err := NewTournament(randomPair, 1, 7, zap.NewNop().Sugar(), false).Run(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := NewTournament(randomPair, 4, 7, zap.NewNop().Sugar(), false).Run(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	for i := range serial.Records {
		if !reflect.DeepEqual(serial.Records[i].Turns, parallel.Records[i].Turns) {
			t.Fatalf("game %d differs between worker counts", i)
		}
	}
}
