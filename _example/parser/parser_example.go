package main

import (
	"log"
	"os"

	"github.com/xiam/callexpr"
	"github.com/xiam/callexpr/ast"
)

func main() {
	input := `(greet (concat "Hello" " " "world!") (add 66 3 53))`

	root, err := callexpr.ParseString(input)
	if err != nil {
		log.Fatal("callexpr.ParseString:", err)
	}

	ast.Print(os.Stdout, root)
}
