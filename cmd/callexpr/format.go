package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/xiam/callexpr/ast"
	"github.com/xiam/callexpr/lexer"
)

const (
	formatSexpr = "sexpr"
	formatTree  = "tree"
	formatJSON  = "json"
	formatXML   = "xml"
)

func validFormat(format string) bool {
	switch format {
	case formatSexpr, formatTree, formatJSON, formatXML:
		return true
	}
	return false
}

func render(root *ast.Node, format string) ([]byte, error) {
	switch format {
	case formatSexpr:
		return append(ast.Encode(root), '\n'), nil
	case formatTree:
		var buf bytes.Buffer
		ast.Print(&buf, root)
		return buf.Bytes(), nil
	case formatJSON:
		out, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case formatXML:
		return ast.EncodeXML(root), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func renderTokens(tokens []lexer.Token) []byte {
	var buf bytes.Buffer
	for i, tok := range tokens {
		fmt.Fprintf(&buf, "token[%d] (type: %v)\n\t-> %q\n", i, tok.Type(), tok.Text())
	}
	return buf.Bytes()
}
