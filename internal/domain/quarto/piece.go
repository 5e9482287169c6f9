package quarto

import "strings"

type Color uint8

const (
	Light Color = iota
	Dark
)

type Size uint8

const (
	Small Size = iota
	Tall
)

type Shape uint8

const (
	Round Shape = iota
	Square
)

type InnerShape uint8

const (
	Solid InnerShape = iota
	Hollow
)

// Piece is one of the 16 Quarto pieces. Values are compared with ==.
type Piece struct {
	Color      Color      `json:"color"`
	Size       Size       `json:"size"`
	Shape      Shape      `json:"shape"`
	InnerShape InnerShape `json:"inner_shape"`
}

// AllPieces returns the full set in a fixed order, the order the leftover pool starts in.
func AllPieces() []Piece {
	pieces := make([]Piece, 0, PieceCount)
	for i := 0; i < PieceCount; i++ {
		pieces = append(pieces, Piece{
			Color:      Color(i >> 3 & 1),
			Size:       Size(i >> 2 & 1),
			Shape:      Shape(i >> 1 & 1),
			InnerShape: InnerShape(i & 1),
		})
	}
	return pieces
}

func (p Piece) String() string {
	var sb strings.Builder
	sb.Grow(4)
	sb.WriteByte("LD"[p.Color])
	sb.WriteByte("ST"[p.Size])
	sb.WriteByte("RQ"[p.Shape])
	sb.WriteByte("FH"[p.InnerShape])
	return sb.String()
}

// SharedAttribute reports whether all pieces agree on at least one attribute.
// Attributes are checked in the order color, inner shape, shape, size.
func SharedAttribute(pieces []Piece) bool {
	if len(pieces) == 0 {
		return false
	}
	first := pieces[0]
	same := [4]bool{true, true, true, true}
	for _, p := range pieces[1:] {
		same[0] = same[0] && p.Color == first.Color
		same[1] = same[1] && p.InnerShape == first.InnerShape
		same[2] = same[2] && p.Shape == first.Shape
		same[3] = same[3] && p.Size == first.Size
	}
	return same[0] || same[1] || same[2] || same[3]
}
