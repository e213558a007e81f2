// Package watch re-parses source files whenever they change on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/xiam/callexpr"
	"github.com/xiam/callexpr/ast"
)

// Result holds the outcome of parsing a file
type Result struct {
	Path string
	Root *ast.Node
	Err  error
}

// ParseFile reads and parses the file at path
func ParseFile(path string) Result {
	in, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}
	root, err := callexpr.Parse(in)
	return Result{Path: path, Root: root, Err: err}
}

// Watch parses every path once and then again each time it is written or
// replaced, handing each result to fn. It blocks until ctx is done or the
// underlying watcher fails.
func Watch(ctx context.Context, paths []string, fn func(Result)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// parent directories are watched so that editors replacing files through
	// a rename are still noticed
	watched := map[string]bool{}
	dirs := map[string]bool{}
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[abs] = true

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	for path := range watched {
		fn(ParseFile(path))
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			fn(ParseFile(abs))

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
