package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeNumberLiteral = nodeTypeValue | 1
	NodeTypeStringLiteral = nodeTypeValue | 2

	NodeTypeProgram        = nodeTypeVector | 1
	NodeTypeCallExpression = nodeTypeVector | 2
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeNumberLiteral:  "NumberLiteral",
	NodeTypeStringLiteral:  "StringLiteral",
	NodeTypeProgram:        "Program",
	NodeTypeCallExpression: "CallExpression",
}
