package player

import "quarto_ai/internal/domain/quarto"

// Player decides one placement and one gift per turn. The board carries all game
// state; players keep nothing between calls beyond their random source.
type Player interface {
	Name() string
	// DecidePlacement picks a free cell for the piece the opponent handed over.
	DecidePlacement(board *quarto.Board, held quarto.Piece) (quarto.Placement, error)
	// DecidePieceToGive picks a leftover piece for the opponent. The caller takes it from the pool.
	DecidePieceToGive(board *quarto.Board) (quarto.Piece, error)
}
