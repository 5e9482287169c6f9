package search

import "quarto_ai/internal/domain/quarto"

// Action is what a child node did to its parent's board.
type Action struct {
	Placement quarto.Placement `json:"placement"`
	Piece     quarto.Piece     `json:"piece"`
}

// Node binds one board snapshot to the node it was expanded from.
// The parent link is bookkeeping only; nothing walks it back up.
type Node struct {
	parent *Node
	board  *quarto.Board
	action Action
}

func NewNode(parent *Node, board *quarto.Board, action Action) *Node {
	return &Node{parent: parent, board: board, action: action}
}

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Board() *quarto.Board { return n.board }

// Action is meaningless on a root node.
func (n *Node) Action() Action { return n.action }

func (n *Node) IsRoot() bool { return n.parent == nil }
