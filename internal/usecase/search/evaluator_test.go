package search

import (
	"testing"

	"quarto_ai/internal/domain/quarto"
)

func piece(color, size, shape, inner int) quarto.Piece {
	return quarto.Piece{
		Color:      quarto.Color(color),
		Size:       quarto.Size(size),
		Shape:      quarto.Shape(shape),
		InnerShape: quarto.InnerShape(inner),
	}
}

func mustPlace(t *testing.T, b *quarto.Board, x, y int, p quarto.Piece) {
	t.Helper()
	if err := b.Place(x, y, p); err != nil {
		t.Fatalf("place %d,%d: %v", x, y, err)
	}
}

// threeThreatBoard fills a 3x3 block so that only rows 1 to 3 are near complete.
func threeThreatBoard(t *testing.T) *quarto.Board {
	t.Helper()
	b := quarto.NewBoard()
	rows := [3][3]quarto.Piece{
		{piece(0, 0, 0, 0), piece(0, 0, 1, 1), piece(0, 1, 0, 1)},
		{piece(1, 1, 1, 1), piece(1, 1, 0, 0), piece(1, 0, 1, 0)},
		{piece(0, 1, 1, 0), piece(0, 0, 0, 1), piece(0, 1, 1, 1)},
	}
	for x, row := range rows {
		for y, p := range row {
			mustPlace(t, b, x, y, p)
		}
	}
	return b
}

func TestEvaluateThreeThreatsAtDepthTwo(t *testing.T) {
	b := threeThreatBoard(t)
	if got := NearCompleteLines(b); got != 3 {
		t.Fatalf("expected 3 near complete lines, got %d", got)
	}
	if got := NewLineEvaluator().Evaluate(b, 2); got != -6 {
		t.Fatalf("expected -6, got %v", got)
	}
}

func TestNearCompleteLineCountsOnceForSingleSharedAttribute(t *testing.T) {
	b := quarto.NewBoard()
	// only color is shared across the line
	mustPlace(t, b, 0, 0, piece(1, 0, 0, 0))
	mustPlace(t, b, 0, 1, piece(1, 1, 1, 1))
	mustPlace(t, b, 0, 2, piece(1, 0, 1, 0))

	line := b.Lines()[0]
	if !IsNearComplete(line) {
		t.Fatalf("row sharing color should be near complete")
	}
	if got := NearCompleteLines(b); got != 1 {
		t.Fatalf("expected exactly one near complete line, got %d", got)
	}
}

func TestNearCompleteLineCountsOnceForManySharedAttributes(t *testing.T) {
	b := quarto.NewBoard()
	mustPlace(t, b, 0, 0, piece(1, 1, 0, 0))
	mustPlace(t, b, 0, 1, piece(1, 1, 1, 0))
	mustPlace(t, b, 0, 2, piece(1, 1, 0, 1))
	if got := NearCompleteLines(b); got != 1 {
		t.Fatalf("a line sharing color and size still counts once, got %d", got)
	}
}

func TestEvaluateQuietPosition(t *testing.T) {
	b := quarto.NewBoard()
	mustPlace(t, b, 0, 0, piece(0, 0, 0, 0))
	ev := NewLineEvaluator()
	tests := []struct {
		depth int
		want  float64
	}{
		{-1, 10},
		{0, 10},
		{1, 10},
		{3, 30},
	}
	for _, tt := range tests {
		if got := ev.Evaluate(b, tt.depth); got != tt.want {
			t.Fatalf("depth %d: expected %v, got %v", tt.depth, tt.want, got)
		}
	}
}

func TestEvaluateDrawIsZero(t *testing.T) {
	b := drawBoard(t, 0)
	ev := NewLineEvaluator()
	for depth := -1; depth <= 4; depth++ {
		if got := ev.Evaluate(b, depth); got != 0 {
			t.Fatalf("depth %d: draw must score 0, got %v", depth, got)
		}
	}
}

func TestEvaluateWinPrefersMoreRemainingDepth(t *testing.T) {
	b := quarto.NewBoard()
	for y := 0; y < quarto.BoardLength; y++ {
		mustPlace(t, b, 2, y, quarto.AllPieces()[y])
	}
	ev := NewLineEvaluator()
	prev := ev.Evaluate(b, 1)
	if prev != WinMagnitude {
		t.Fatalf("expected %v at depth 1, got %v", WinMagnitude, prev)
	}
	for depth := 2; depth <= 4; depth++ {
		got := ev.Evaluate(b, depth)
		if got <= prev {
			t.Fatalf("win at depth %d (%v) must beat depth %d (%v)", depth, got, depth-1, prev)
		}
		prev = got
	}
}

func TestMinimizeTerminalNegatesEvaluator(t *testing.T) {
	b := threeThreatBoard(t)
	s := &search{eval: NewLineEvaluator()}
	node := NewNode(nil, b, Action{})
	for depth := 0; depth >= -1; depth-- {
		maxScore := s.maximize(node, depth, -1e9, 1e9, false)
		minScore := s.minimize(node, depth, -1e9, 1e9, false)
		if minScore != -maxScore {
			t.Fatalf("depth %d: minimize %v is not the negation of maximize %v", depth, minScore, maxScore)
		}
	}
}
