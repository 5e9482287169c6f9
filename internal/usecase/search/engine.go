package search

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"quarto_ai/internal/domain/quarto"
	"quarto_ai/internal/errors"
)

// Result describes the best root child found by one search.
type Result struct {
	Score  float64
	Action Action
	Board  *quarto.Board
	Nodes  int
}

// Engine runs depth limited alpha-beta searches. It keeps no state between calls.
type Engine struct {
	eval Evaluator
	log  *zap.SugaredLogger
}

func NewEngine(eval Evaluator, log *zap.SugaredLogger) *Engine {
	return &Engine{eval: eval, log: log}
}

// search holds what one top-level call accumulates.
type search struct {
	eval      Evaluator
	held      quarto.Piece
	best      *Node
	bestScore float64
	nodes     int
}

// FindBestPlacement places held on every free cell and searches the replies,
// returning the placement with the highest backed up score.
func (e *Engine) FindBestPlacement(board *quarto.Board, held quarto.Piece, depth int) (Result, error) {
	if err := checkSearchable(board, depth); err != nil {
		return Result{}, err
	}

	s := &search{eval: e.eval, held: held, bestScore: math.Inf(-1)}
	root := NewNode(nil, board, Action{})
	score := s.maximize(root, depth, math.Inf(-1), math.Inf(1), true)

	if s.best == nil {
		return Result{}, fmt.Errorf("placing %s: %w", held, errors.ErrNoBestMove)
	}
	e.log.Debugw("placement search finished",
		"depth", depth, "nodes", s.nodes, "score", score,
		"placement", s.best.Action().Placement.String(), "piece", held.String())

	return s.result(), nil
}

// FindWorstPieceToGive searches every leftover piece the opponent could be handed
// and returns the one whose best outcome for the opponent is lowest.
func (e *Engine) FindWorstPieceToGive(board *quarto.Board, depth int) (Result, error) {
	if err := checkSearchable(board, depth); err != nil {
		return Result{}, err
	}
	if board.LeftoverCount() == 0 {
		return Result{}, errors.ErrPieceUnavailable
	}

	s := &search{eval: e.eval, bestScore: math.Inf(1)}
	root := NewNode(nil, board, Action{})
	score := s.minimize(root, depth, math.Inf(-1), math.Inf(1), true)

	if s.best == nil {
		return Result{}, fmt.Errorf("selecting piece: %w", errors.ErrNoBestMove)
	}
	e.log.Debugw("piece search finished",
		"depth", depth, "nodes", s.nodes, "score", score,
		"piece", s.best.Action().Piece.String())

	return s.result(), nil
}

func checkSearchable(board *quarto.Board, depth int) error {
	switch {
	case depth < 1:
		return fmt.Errorf("%w: %d", errors.ErrInvalidDepth, depth)
	case board.IsWon():
		return errors.ErrGameOver
	case board.IsFull():
		return errors.ErrNoLegalPlacement
	}
	return nil
}

func (s *search) result() Result {
	return Result{
		Score:  s.bestScore,
		Action: s.best.Action(),
		Board:  s.best.Board(),
		Nodes:  s.nodes,
	}
}

func (s *search) maximize(node *Node, depth int, alpha, beta float64, root bool) float64 {
	s.nodes++
	board := node.Board()
	if board.IsWon() || depth <= 0 {
		return s.eval.Evaluate(board, depth)
	}

	// the root may only place the piece it was handed
	pieces := board.LeftoverPieces()
	if root {
		pieces = []quarto.Piece{s.held}
	}

	expanded := false
	for _, piece := range pieces {
		for x := 0; x < quarto.BoardLength; x++ {
			for y := 0; y < quarto.BoardLength; y++ {
				child := expand(node, piece, x, y)
				if child == nil {
					continue
				}
				expanded = true

				alpha = math.Max(alpha, s.minimize(child, depth-1, alpha, beta, false))
				if root && (s.best == nil || alpha > s.bestScore) {
					s.best = child
					s.bestScore = alpha
				}

				if alpha >= beta {
					return alpha
				}
			}
		}
	}

	if !expanded {
		return s.eval.Evaluate(board, depth)
	}
	return alpha
}

func (s *search) minimize(node *Node, depth int, alpha, beta float64, root bool) float64 {
	s.nodes++
	board := node.Board()
	if board.IsWon() || depth <= 0 {
		return -1 * s.eval.Evaluate(board, depth)
	}

	expanded := false
	for _, piece := range board.LeftoverPieces() {
		for x := 0; x < quarto.BoardLength; x++ {
			for y := 0; y < quarto.BoardLength; y++ {
				child := expand(node, piece, x, y)
				if child == nil {
					continue
				}
				expanded = true

				beta = math.Min(beta, s.maximize(child, depth-1, alpha, beta, false))
				if root && (s.best == nil || beta < s.bestScore) {
					s.best = child
					s.bestScore = beta
				}

				if beta <= alpha {
					return beta
				}
			}
		}
	}

	if !expanded {
		return -1 * s.eval.Evaluate(board, depth)
	}
	return beta
}

// expand clones the node's board and places piece on (x, y), or returns nil
// when the cell can not take it.
func expand(node *Node, piece quarto.Piece, x, y int) *Node {
	board := node.Board()
	if !board.IsLegalPlacement(x, y) {
		return nil
	}

	next := board.Clone()
	if err := next.Place(x, y, piece); err != nil {
		return nil
	}
	return NewNode(node, next, Action{
		Placement: quarto.Placement{X: x, Y: y},
		Piece:     piece,
	})
}
