package player

import (
	"go.uber.org/zap"

	"quarto_ai/internal/domain/quarto"
	"quarto_ai/internal/usecase/search"
)

// Opening supplies moves while the position is too open to search.
type Opening interface {
	PickLegalMove(board *quarto.Board) (quarto.Placement, error)
	PickLeftoverPiece(board *quarto.Board) (quarto.Piece, error)
}

type Minimax struct {
	engine      *search.Engine
	opening     Opening
	depth       int
	randomMoves int
	log         *zap.SugaredLogger
}

// NewMinimax plays opening moves until the board has seen randomMoves placements
// and searches depth plies after that.
func NewMinimax(engine *search.Engine, opening Opening, depth, randomMoves int, log *zap.SugaredLogger) *Minimax {
	return &Minimax{
		engine:      engine,
		opening:     opening,
		depth:       depth,
		randomMoves: randomMoves,
		log:         log,
	}
}

func (m *Minimax) Name() string {
	return "minimax"
}

func (m *Minimax) inOpening(board *quarto.Board) bool {
	return board.MoveCount() < m.randomMoves
}

func (m *Minimax) DecidePlacement(board *quarto.Board, held quarto.Piece) (quarto.Placement, error) {
	if m.inOpening(board) {
		m.log.Debugw("random placement", "move", board.MoveCount())
		return m.opening.PickLegalMove(board)
	}

	res, err := m.engine.FindBestPlacement(board, held, m.depth)
	if err != nil {
		return quarto.Placement{}, err
	}
	return res.Action.Placement, nil
}

func (m *Minimax) DecidePieceToGive(board *quarto.Board) (quarto.Piece, error) {
	if m.inOpening(board) {
		m.log.Debugw("random piece", "move", board.MoveCount())
		return m.opening.PickLeftoverPiece(board)
	}

	res, err := m.engine.FindWorstPieceToGive(board, m.depth)
	if err != nil {
		return quarto.Piece{}, err
	}
	return res.Action.Piece, nil
}
