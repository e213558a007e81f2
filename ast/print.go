package ast

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable representation of a node to w
func Print(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s)", indent, n.Type())
	switch n.Type() {

	case NodeTypeProgram:
		fmt.Fprintf(w, "\n")
		for _, child := range n.List() {
			printLevel(w, child, level+1)
		}

	case NodeTypeCallExpression:
		fmt.Fprintf(w, ": %s\n", n.Name())
		for _, child := range n.List() {
			printLevel(w, child, level+1)
		}

	case NodeTypeNumberLiteral, NodeTypeStringLiteral:
		fmt.Fprintf(w, ": %q\n", n.Value())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its text representation
func Encode(n *Node) []byte {
	return encodeNodeLevel(n, 0)
}

func encodeNodeLevel(n *Node, level int) []byte {
	if n == nil {
		return []byte(":nil")
	}
	switch n.Type() {
	case NodeTypeProgram:
		nodes := []string{}
		for _, child := range n.List() {
			nodes = append(nodes, string(encodeNodeLevel(child, level+1)))
		}
		return []byte(strings.Join(nodes, " "))

	case NodeTypeCallExpression:
		nodes := []string{n.Name()}
		for _, child := range n.List() {
			nodes = append(nodes, string(encodeNodeLevel(child, level+1)))
		}
		return []byte(fmt.Sprintf("(%s)", strings.Join(nodes, " ")))

	case NodeTypeStringLiteral:
		// strings have no escapes, the value is written back verbatim
		return []byte(`"` + n.Value() + `"`)

	case NodeTypeNumberLiteral:
		return []byte(n.Value())

	default:
		panic("unknown node type")
	}
}

// EncodeXML transforms a node into an indented XML document
func EncodeXML(n *Node) []byte {
	var buf bytes.Buffer
	encodeXMLLevel(&buf, n, 0)
	return buf.Bytes()
}

func encodeXMLLevel(buf *bytes.Buffer, n *Node, level int) {
	indent := strings.Repeat("  ", level)
	if n == nil {
		fmt.Fprintf(buf, "%s<nil/>\n", indent)
		return
	}

	switch n.Type() {
	case NodeTypeProgram:
		fmt.Fprintf(buf, "%s<program>\n", indent)
		for _, child := range n.List() {
			encodeXMLLevel(buf, child, level+1)
		}
		fmt.Fprintf(buf, "%s</program>\n", indent)

	case NodeTypeCallExpression:
		fmt.Fprintf(buf, "%s<call name=\"", indent)
		_ = xml.EscapeText(buf, []byte(n.Name()))
		buf.WriteString("\">\n")
		for _, child := range n.List() {
			encodeXMLLevel(buf, child, level+1)
		}
		fmt.Fprintf(buf, "%s</call>\n", indent)

	case NodeTypeNumberLiteral, NodeTypeStringLiteral:
		tag := "number"
		if n.Type() == NodeTypeStringLiteral {
			tag = "string"
		}
		fmt.Fprintf(buf, "%s<%s>", indent, tag)
		_ = xml.EscapeText(buf, []byte(n.Value()))
		fmt.Fprintf(buf, "</%s>\n", tag)

	default:
		panic("unknown node type")
	}
}

type jsonProgram struct {
	Type string  `json:"type"`
	Body []*Node `json:"body"`
}

type jsonLiteral struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type jsonCallExpression struct {
	Type   string  `json:"type"`
	Name   string  `json:"name"`
	Params []*Node `json:"params"`
}

// MarshalJSON encodes the node and its children as a JSON tree
func (n *Node) MarshalJSON() ([]byte, error) {
	children := n.children
	if children == nil {
		children = []*Node{}
	}

	switch n.Type() {
	case NodeTypeProgram:
		return json.Marshal(jsonProgram{Type: n.nt.String(), Body: children})
	case NodeTypeCallExpression:
		return json.Marshal(jsonCallExpression{Type: n.nt.String(), Name: n.name, Params: children})
	case NodeTypeNumberLiteral, NodeTypeStringLiteral:
		return json.Marshal(jsonLiteral{Type: n.nt.String(), Value: n.value})
	}

	return nil, fmt.Errorf("unknown node type %d", n.nt)
}
