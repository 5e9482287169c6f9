package quarto

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/OneOfOne/xxhash"
	"github.com/samber/lo"

	"quarto_ai/internal/errors"
)

const (
	BoardLength = 4
	PieceCount  = 16
)

// Line is a row, column or diagonal; nil entries are empty cells.
type Line [BoardLength]*Piece

// Filled returns the pieces on the line in cell order.
func (l Line) Filled() []Piece {
	filled := make([]Piece, 0, BoardLength)
	for _, p := range l {
		if p != nil {
			filled = append(filled, *p)
		}
	}
	return filled
}

type Placement struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the placement the way moves are narrated, row number then column letter.
func (p Placement) String() string {
	return fmt.Sprintf("%d%c", p.X+1, rune('A'+p.Y))
}

// Board is a Quarto position. The zero value is not usable, see NewBoard.
// Copies made with Clone never share mutable state with the receiver.
type Board struct {
	fields    [BoardLength][BoardLength]*Piece
	leftover  []Piece
	moveCount int
}

func NewBoard() *Board {
	return &Board{leftover: AllPieces()}
}

func (b *Board) Clone() *Board {
	c := &Board{
		fields:    b.fields,
		moveCount: b.moveCount,
	}
	c.leftover = make([]Piece, len(b.leftover))
	copy(c.leftover, b.leftover)
	return c
}

func inside(x, y int) bool {
	return x >= 0 && x < BoardLength && y >= 0 && y < BoardLength
}

func (b *Board) IsLegalPlacement(x, y int) bool {
	return inside(x, y) && b.fields[x][y] == nil
}

// At returns the piece on the cell, or nil when it is empty or off the board.
func (b *Board) At(x, y int) *Piece {
	if !inside(x, y) {
		return nil
	}
	return b.fields[x][y]
}

// Place puts p on the cell. The piece leaves the leftover pool if it was still there.
func (b *Board) Place(x, y int, p Piece) error {
	if !b.IsLegalPlacement(x, y) {
		return fmt.Errorf("%w: %s", errors.ErrIllegalPlacement, Placement{X: x, Y: y})
	}
	if idx := lo.IndexOf(b.leftover, p); idx >= 0 {
		b.removeAt(idx)
	}
	piece := p
	b.fields[x][y] = &piece
	b.moveCount++
	return nil
}

// TakePiece removes p from the leftover pool and returns it.
func (b *Board) TakePiece(p Piece) (Piece, error) {
	idx := lo.IndexOf(b.leftover, p)
	if idx < 0 {
		return Piece{}, fmt.Errorf("%w: %s", errors.ErrPieceUnavailable, p)
	}
	b.removeAt(idx)
	return p, nil
}

// TakePieceAt removes the index-th leftover piece, counting from 1.
func (b *Board) TakePieceAt(index int) (Piece, error) {
	if index < 1 || index > len(b.leftover) {
		return Piece{}, fmt.Errorf("%w: index %d of %d", errors.ErrPieceUnavailable, index, len(b.leftover))
	}
	p := b.leftover[index-1]
	b.removeAt(index - 1)
	return p, nil
}

func (b *Board) removeAt(idx int) {
	b.leftover = append(b.leftover[:idx], b.leftover[idx+1:]...)
}

// LeftoverPieces returns a copy of the pool of pieces not yet handed out, in pool order.
func (b *Board) LeftoverPieces() []Piece {
	pieces := make([]Piece, len(b.leftover))
	copy(pieces, b.leftover)
	return pieces
}

func (b *Board) LeftoverCount() int {
	return len(b.leftover)
}

func (b *Board) HasLeftover(p Piece) bool {
	return lo.Contains(b.leftover, p)
}

func (b *Board) MoveCount() int {
	return b.moveCount
}

// Lines returns the four rows, the four columns and both diagonals.
func (b *Board) Lines() []Line {
	lines := make([]Line, 0, 2*BoardLength+2)
	for i := 0; i < BoardLength; i++ {
		var row Line
		for j := 0; j < BoardLength; j++ {
			row[j] = b.fields[i][j]
		}
		lines = append(lines, row)
	}
	for j := 0; j < BoardLength; j++ {
		var column Line
		for i := 0; i < BoardLength; i++ {
			column[i] = b.fields[i][j]
		}
		lines = append(lines, column)
	}
	var diagonal, antiDiagonal Line
	for i := 0; i < BoardLength; i++ {
		diagonal[i] = b.fields[i][i]
		antiDiagonal[i] = b.fields[i][BoardLength-1-i]
	}
	return append(lines, diagonal, antiDiagonal)
}

func (b *Board) IsWon() bool {
	for _, line := range b.Lines() {
		filled := line.Filled()
		if len(filled) == BoardLength && SharedAttribute(filled) {
			return true
		}
	}
	return false
}

func (b *Board) IsFull() bool {
	for i := 0; i < BoardLength; i++ {
		for j := 0; j < BoardLength; j++ {
			if b.fields[i][j] == nil {
				return false
			}
		}
	}
	return true
}

func (b *Board) IsDraw() bool {
	return b.IsFull() && !b.IsWon()
}

func (b *Board) IsOver() bool {
	return b.IsWon() || b.IsFull()
}

// EmptyFields lists the free cells in row-major order.
func (b *Board) EmptyFields() []Placement {
	var free []Placement
	for i := 0; i < BoardLength; i++ {
		for j := 0; j < BoardLength; j++ {
			if b.fields[i][j] == nil {
				free = append(free, Placement{X: i, Y: j})
			}
		}
	}
	return free
}

// Diff finds the first cell that is empty on b and filled on next.
func (b *Board) Diff(next *Board) (Placement, Piece, bool) {
	for i := 0; i < BoardLength; i++ {
		for j := 0; j < BoardLength; j++ {
			if b.fields[i][j] == nil && next.fields[i][j] != nil {
				return Placement{X: i, Y: j}, *next.fields[i][j], true
			}
		}
	}
	return Placement{}, Piece{}, false
}

// Fingerprint hashes the cells and the leftover pool. Equal positions hash equally.
func (b *Board) Fingerprint() uint64 {
	buf := make([]byte, 0, BoardLength*BoardLength+PieceCount+8)
	for i := 0; i < BoardLength; i++ {
		for j := 0; j < BoardLength; j++ {
			buf = append(buf, encodeField(b.fields[i][j]))
		}
	}
	for _, p := range b.leftover {
		buf = append(buf, encodePiece(p))
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(b.moveCount))
	return xxhash.Checksum64(buf)
}

func encodePiece(p Piece) byte {
	return byte(p.Color)<<3 | byte(p.Size)<<2 | byte(p.Shape)<<1 | byte(p.InnerShape)
}

func encodeField(p *Piece) byte {
	if p == nil {
		return 0xff
	}
	return encodePiece(*p)
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("     A    B    C    D\n")
	for i := 0; i < BoardLength; i++ {
		sb.WriteString(fmt.Sprintf("%d ", i+1))
		for j := 0; j < BoardLength; j++ {
			if p := b.fields[i][j]; p != nil {
				sb.WriteString(" " + p.String())
			} else {
				sb.WriteString(" ....")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
