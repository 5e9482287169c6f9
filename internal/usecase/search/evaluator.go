package search

import (
	"math"

	"quarto_ai/internal/domain/quarto"
)

const (
	WinMagnitude = 1000.0
	QuietScore   = 10.0
)

// Evaluator scores a board for the player who made the last placement.
// depth is the search depth still unused when the board was reached.
type Evaluator interface {
	Evaluate(board *quarto.Board, depth int) float64
}

type LineEvaluator struct {
	WinMagnitude float64
	QuietScore   float64
}

func NewLineEvaluator() LineEvaluator {
	return LineEvaluator{WinMagnitude: WinMagnitude, QuietScore: QuietScore}
}

// Evaluate returns WinMagnitude*d for a won board, 0 for a draw, QuietScore*d when
// no line is near complete and -count*d otherwise, with d = max(depth, 1).
func (e LineEvaluator) Evaluate(board *quarto.Board, depth int) float64 {
	d := math.Max(float64(depth), 1)
	switch {
	case board.IsWon():
		return e.WinMagnitude * d
	case board.IsDraw():
		return 0
	}

	// near complete lines can be finished by the next player with the right piece
	count := NearCompleteLines(board)
	if count == 0 {
		return e.QuietScore * d
	}
	return -1 * float64(count) * d
}

// NearCompleteLines counts lines with exactly three pieces that share an attribute.
func NearCompleteLines(board *quarto.Board) int {
	count := 0
	for _, line := range board.Lines() {
		if IsNearComplete(line) {
			count++
		}
	}
	return count
}

func IsNearComplete(line quarto.Line) bool {
	filled := line.Filled()
	return len(filled) == quarto.BoardLength-1 && quarto.SharedAttribute(filled)
}
