package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/callexpr/ast"
	"github.com/xiam/callexpr/lexer"
	"github.com/xiam/callexpr/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsVector() {
		if node.Type() == ast.NodeTypeCallExpression {
			fmt.Printf("%s<%s name=%q>\n", indent, node.Type(), node.Name())
		} else {
			fmt.Printf("%s<%s>\n", indent, node.Type())
		}
		children := node.List()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, node.Type(), node.Value(), node.Type())
}

func main() {
	input := `(greet (concat "Hello" " " "world!") (add 66 3 53))`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	root, err := parser.Parse(tokens)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)

	// the same tree, escaped by the ast package
	fmt.Printf("\n%s", ast.EncodeXML(root))
}
