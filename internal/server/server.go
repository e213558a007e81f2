// Package server exposes the tokenizer and the parser over HTTP.
package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/xiam/callexpr/lexer"
	"github.com/xiam/callexpr/parser"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"

	// larger bodies are rejected before tokenizing
	maxSourceSize = 1 << 20
)

type tokenResponse struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	Position  *int   `json:"position,omitempty"`
	RequestID string `json:"requestId"`
}

// New returns an engine serving the front end routes.
func New() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:   []string{requestIDHeader},
	}))
	r.Use(requestID)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/tokens", handleTokens)
	r.POST("/parse", handleParse)

	return r
}

func requestID(c *gin.Context) {
	id := ulid.Make().String()
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func readSource(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxSourceSize))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse{
			Error:     err.Error(),
			Kind:      "request",
			RequestID: c.GetString(requestIDKey),
		})
		return nil, false
	}
	return body, true
}

func handleTokens(c *gin.Context) {
	src, ok := readSource(c)
	if !ok {
		return
	}

	tokens, err := lexer.TokenizeBytes(src)
	if err != nil {
		abortWithError(c, err)
		return
	}

	out := make([]tokenResponse, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tokenResponse{Type: tok.Type().String(), Text: tok.Text()})
	}
	c.JSON(http.StatusOK, gin.H{"tokens": out})
}

func handleParse(c *gin.Context) {
	src, ok := readSource(c)
	if !ok {
		return
	}

	tokens, err := lexer.TokenizeBytes(src)
	if err != nil {
		abortWithError(c, err)
		return
	}

	root, err := parser.Parse(tokens)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, root)
}

func abortWithError(c *gin.Context, err error) {
	res := errorResponse{
		Error:     err.Error(),
		Kind:      "parse",
		RequestID: c.GetString(requestIDKey),
	}

	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		pos := lexErr.Pos
		res.Kind = "lex"
		res.Position = &pos
	}

	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, res)
}
