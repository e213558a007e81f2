package main

import (
	"fmt"
	"log"

	"github.com/xiam/callexpr/lexer"
)

func main() {
	input := `
		(greet
			(concat "Hello" " " "world!")
			(add 66 3 53)
		)
	`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		fmt.Printf("token[%d] (type: %v)\n\t-> %q\n\n", i, tok.Type(), tok.Text())
	}
}
