package match

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quarto_ai/internal/domain/quarto"
	"quarto_ai/internal/errors"
	"quarto_ai/internal/usecase/player"
)

const Draw = -1

// Turn is one gift followed by the opponent placing it.
type Turn struct {
	Giver     int              `json:"giver"`
	Piece     quarto.Piece     `json:"piece"`
	Placement quarto.Placement `json:"placement"`
}

// Record is the outcome of one game.
type Record struct {
	ID          uuid.UUID `json:"id"`
	Players     [2]string `json:"players"`
	First       int       `json:"first"`
	Winner      int       `json:"winner"`
	Turns       []Turn    `json:"turns"`
	Fingerprint uint64    `json:"fingerprint"`
	FinalBoard  string    `json:"final_board"`
}

type Runner struct {
	players [2]player.Player
	log     *zap.SugaredLogger
	narrate bool
}

func NewRunner(p0, p1 player.Player, log *zap.SugaredLogger, narrate bool) *Runner {
	return &Runner{players: [2]player.Player{p0, p1}, log: log, narrate: narrate}
}

// Run plays one game on a fresh board. Player first hands over the first piece.
func (r *Runner) Run(ctx context.Context, first int) (Record, error) {
	if first != 0 && first != 1 {
		return Record{}, fmt.Errorf("%w: first player %d", errors.ErrInvalidConfig, first)
	}

	board := quarto.NewBoard()
	record := Record{
		ID:      uuid.New(),
		Players: [2]string{r.players[0].Name(), r.players[1].Name()},
		First:   first,
		Winner:  Draw,
	}

	giver := first
	for !board.IsOver() {
		if err := ctx.Err(); err != nil {
			return record, err
		}

		turn, err := r.playTurn(board, giver)
		if err != nil {
			return record, fmt.Errorf("game %s move %d: %w", record.ID, board.MoveCount()+1, err)
		}
		record.Turns = append(record.Turns, turn)

		placer := 1 - giver
		if board.IsWon() {
			record.Winner = placer
		}
		giver = placer
	}

	record.Fingerprint = board.Fingerprint()
	record.FinalBoard = board.String()
	if r.narrate {
		r.log.Infow("game finished", "game", record.ID, "winner", record.Winner, "moves", board.MoveCount())
	}
	return record, nil
}

func (r *Runner) playTurn(board *quarto.Board, giver int) (Turn, error) {
	placer := 1 - giver

	piece, err := r.players[giver].DecidePieceToGive(board)
	if err != nil {
		return Turn{}, err
	}
	if _, err = board.TakePiece(piece); err != nil {
		return Turn{}, err
	}
	if r.narrate {
		r.log.Infof("%s selected %s", r.players[giver].Name(), piece)
	}

	at, err := r.players[placer].DecidePlacement(board, piece)
	if err != nil {
		return Turn{}, err
	}
	if err = board.Place(at.X, at.Y, piece); err != nil {
		return Turn{}, fmt.Errorf("%s: %w", r.players[placer].Name(), err)
	}
	if r.narrate {
		r.log.Infof("%s made its move to %s\n%s", r.players[placer].Name(), at, board)
	}

	return Turn{Giver: giver, Piece: piece, Placement: at}, nil
}

// WinnerName returns the name of the winning player, or "draw".
func (rec Record) WinnerName() string {
	if rec.Winner == Draw {
		return "draw"
	}
	return rec.Players[rec.Winner]
}
