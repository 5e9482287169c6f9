package player

import (
	"math/rand"

	"github.com/bszcz/mt19937_64"

	"quarto_ai/internal/domain/quarto"
	"quarto_ai/internal/errors"
)

// NewSource returns a Mersenne Twister backed generator. Two generators built
// from the same seed yield the same sequence.
func NewSource(seed int64) *rand.Rand {
	src := mt19937_64.New()
	src.Seed(seed)
	return rand.New(src)
}

// Random makes every decision uniformly at random. It also serves as the opening
// book of the minimax player.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Name() string {
	return "random"
}

// PickLegalMove returns a free cell.
func (r *Random) PickLegalMove(board *quarto.Board) (quarto.Placement, error) {
	free := board.EmptyFields()
	if len(free) == 0 {
		return quarto.Placement{}, errors.ErrNoLegalPlacement
	}
	return free[r.rng.Intn(len(free))], nil
}

// PickLeftoverPiece returns a piece still in the leftover pool without removing it.
func (r *Random) PickLeftoverPiece(board *quarto.Board) (quarto.Piece, error) {
	pieces := board.LeftoverPieces()
	if len(pieces) == 0 {
		return quarto.Piece{}, errors.ErrPieceUnavailable
	}
	return pieces[r.rng.Intn(len(pieces))], nil
}

func (r *Random) DecidePlacement(board *quarto.Board, _ quarto.Piece) (quarto.Placement, error) {
	return r.PickLegalMove(board)
}

func (r *Random) DecidePieceToGive(board *quarto.Board) (quarto.Piece, error) {
	return r.PickLeftoverPiece(board)
}
