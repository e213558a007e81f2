package ast

import (
	"errors"
	"fmt"
)

var errNotVector = errors.New("nodes of type value can't accept children")

// Node represents leaf of the AST. A node owns its children, nodes are never
// shared between trees and keep no reference to their parent or to the tokens
// they were built from.
type Node struct {
	nt NodeType

	name  string
	value string

	children []*Node
}

func newNode(nt NodeType) *Node {
	return &Node{nt: nt}
}

// NewProgram creates the root node of a tree
func NewProgram(body ...*Node) *Node {
	n := newNode(NodeTypeProgram)
	n.children = append([]*Node{}, body...)
	return n
}

// NewNumberLiteral creates a literal node holding the raw digits of a number
func NewNumberLiteral(v string) *Node {
	n := newNode(NodeTypeNumberLiteral)
	n.value = v
	return n
}

// NewStringLiteral creates a literal node holding the contents of a string
func NewStringLiteral(v string) *Node {
	n := newNode(NodeTypeStringLiteral)
	n.value = v
	return n
}

// NewCallExpression creates a call node with the given name and parameters
func NewCallExpression(name string, params ...*Node) *Node {
	n := newNode(NodeTypeCallExpression)
	n.name = name
	n.children = append([]*Node{}, params...)
	return n
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Name returns the name of a call expression, or an empty string for any
// other node.
func (n Node) Name() string {
	return n.name
}

// Value returns the raw value of a literal node
func (n Node) Value() string {
	return n.value
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.children
}

// Body returns the top-level expressions of a program
func (n *Node) Body() []*Node {
	if n.nt != NodeTypeProgram {
		return nil
	}
	return n.children
}

// Params returns the parameters of a call expression
func (n *Node) Params() []*Node {
	if n.nt != NodeTypeCallExpression {
		return nil
	}
	return n.children
}

func (n Node) String() string {
	switch n.nt {
	case NodeTypeProgram:
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.children))
	case NodeTypeCallExpression:
		return fmt.Sprintf("(%v %s)[%d]", n.nt, n.name, len(n.children))
	}
	return fmt.Sprintf("(%v): %q", n.nt, n.value)
}

// Push appends a child node to a parent node of type "Program" or
// "CallExpression".
func (n *Node) Push(node *Node) error {
	if n.IsVector() {
		n.children = append(n.children, node)
		return nil
	}
	return errNotVector
}

// IsValue returns true if the node is a literal
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node can hold children
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

// Equal reports whether two trees have the same shape and values.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.nt != b.nt || a.name != b.name || a.value != b.value {
		return false
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// Walk traverses the tree in pre-order. Children of a node are skipped when
// fn returns false for it.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.children {
		Walk(child, fn)
	}
}
