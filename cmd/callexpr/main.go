package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/peterh/liner"
	"golang.org/x/sync/errgroup"

	"github.com/xiam/callexpr"
	"github.com/xiam/callexpr/internal/server"
	"github.com/xiam/callexpr/internal/watch"
	"github.com/xiam/callexpr/lexer"
	"github.com/xiam/callexpr/parser"
)

const (
	appName     = "callexpr"
	historyFile = ".callexpr_history"
	promptMain  = "==> "
	promptCont  = "... "

	defaultAddr = ":8080"
)

var banner = fmt.Sprintf("%s %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", appName, callexpr.Version)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s <command> [arguments]

Commands:
  parse [-format sexpr|tree|json|xml] [-j N] [files...]
  tokens [files...]
  watch [-format sexpr|tree|json|xml] files...
  repl
  serve [-addr %s]
  version
`, appName, defaultAddr)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "parse":
		os.Exit(cmdParse(os.Args[2:], os.Stdin, os.Stdout, os.Stderr))
	case "tokens":
		os.Exit(cmdTokens(os.Args[2:], os.Stdin, os.Stdout, os.Stderr))
	case "watch":
		os.Exit(cmdWatch(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "serve":
		os.Exit(cmdServe(os.Args[2:]))
	case "version":
		fmt.Println(callexpr.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

// readInputs returns the contents of every file, or of stdin when no file
// is given. Names are kept for error messages.
func readInputs(files []string, stdin io.Reader) ([]string, [][]byte, error) {
	if len(files) == 0 {
		in, err := io.ReadAll(stdin)
		if err != nil {
			return nil, nil, err
		}
		return []string{"<stdin>"}, [][]byte{in}, nil
	}

	inputs := make([][]byte, len(files))
	for i, name := range files {
		in, err := os.ReadFile(name)
		if err != nil {
			return nil, nil, err
		}
		inputs[i] = in
	}
	return files, inputs, nil
}

// -----------------------------------------------------------------------------
// parse
// -----------------------------------------------------------------------------

func cmdParse(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", formatSexpr, "output format: sexpr, tree, json or xml")
	jobs := fs.Int("j", 4, "number of files parsed concurrently")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !validFormat(*format) {
		fmt.Fprintf(stderr, "unknown format %q\n", *format)
		return 2
	}

	names, inputs, err := readInputs(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	outputs := make([][]byte, len(inputs))

	g := new(errgroup.Group)
	if *jobs > 0 {
		g.SetLimit(*jobs)
	}
	for i := range inputs {
		g.Go(func() error {
			root, err := callexpr.Parse(inputs[i])
			if err != nil {
				return fmt.Errorf("%s: %w", names[i], err)
			}
			out, err := render(root, *format)
			if err != nil {
				return fmt.Errorf("%s: %w", names[i], err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	for _, out := range outputs {
		_, _ = stdout.Write(out)
	}
	return 0
}

// -----------------------------------------------------------------------------
// tokens
// -----------------------------------------------------------------------------

func cmdTokens(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	names, inputs, err := readInputs(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	for i := range inputs {
		tokens, err := callexpr.Tokenize(inputs[i])
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", names[i], err)
			return 1
		}
		_, _ = stdout.Write(renderTokens(tokens))
	}
	return 0
}

// -----------------------------------------------------------------------------
// watch
// -----------------------------------------------------------------------------

func cmdWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	format := fs.String("format", formatSexpr, "output format: sexpr, tree, json or xml")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 || !validFormat(*format) {
		usage()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := watch.Watch(ctx, fs.Args(), func(res watch.Result) {
		if res.Err != nil {
			log.Printf("%s: %v", res.Path, res.Err)
			return
		}
		out, err := render(res.Root, *format)
		if err != nil {
			log.Printf("%s: %v", res.Path, err)
			return
		}
		fmt.Printf("# %s\n%s", res.Path, out)
	})
	if err != nil {
		log.Printf("watch: %v", err)
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

// incomplete reports whether more lines could turn src into a valid program.
func incomplete(err error) bool {
	return parser.IsIncomplete(err) || errors.Is(err, lexer.ErrUnterminatedString)
}

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		src, ok := readForm(ln)
		if !ok {
			fmt.Println()
			return 0
		}

		switch strings.TrimSpace(src) {
		case "":
			continue
		case ":quit":
			return 0
		}

		root, err := callexpr.ParseString(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		out, _ := render(root, formatTree)
		fmt.Print(string(out))
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// readForm keeps prompting until the accumulated lines form a complete
// program, or fail for a reason other than missing input.
func readForm(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending input
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := callexpr.ParseString(src); err != nil && incomplete(err) {
			continue
		}
		return src, true
	}
}

// -----------------------------------------------------------------------------
// serve
// -----------------------------------------------------------------------------

func cmdServe(args []string) int {
	addr := os.Getenv("CALLEXPR_ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.StringVar(&addr, "addr", addr, "address to listen on")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		log.Printf("serve: %v", err)
		return 1
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
		return 1
	}
	return 0
}
