package errors

import "errors"

var (
	ErrIllegalPlacement = errors.New("field can not be set")
	ErrPieceUnavailable = errors.New("piece is not in the leftover pool")
	ErrNoLegalPlacement = errors.New("no legal placement left on the board")
	ErrNoBestMove       = errors.New("search finished without a best move")
	ErrGameOver         = errors.New("game is already over")
	ErrInvalidDepth     = errors.New("search depth must be positive")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
