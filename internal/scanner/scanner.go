package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Options configures the scanner behavior.
type Options struct {
	// MaxDepth limits how many levels below the root the scan descends.
	// Zero means unlimited.
	MaxDepth int
}

// Scanner performs the recursive directory walk
type Scanner struct {
	root string
	opts Options
}

// New creates a scanner for the given root directory.
func New(root string, opts Options) *Scanner {
	return &Scanner{
		root: root,
		opts: opts,
	}
}

// Scan walks the tree below the root depth-first in pre-order and returns
// every subdirectory found. Cancellation is checked on entering a directory
// and again before each child; a cancelled scan returns ctx.Err(). Any error
// reading a directory is fatal for the whole scan: it is returned immediately
// and the partial result is discarded.
func (s *Scanner) Scan(ctx context.Context, onProgress ProgressFunc) ([]string, error) {
	var found []string
	count := 0

	report := func(dir string) {
		if onProgress != nil {
			onProgress(Status{CurrentDir: dir, Found: count})
		}
	}

	var walk func(dir string, depth int) error
	walk = func(dir string, depth int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		report(dir)

		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("reading %s: %w", dir, err)
		}

		for _, entry := range entries {
			// Symlinks to directories report IsDir() == false here,
			// so cycles through links are never entered.
			if !entry.IsDir() {
				continue
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			child := filepath.Join(dir, entry.Name())
			found = append(found, child)
			count++
			report(child)

			if s.opts.MaxDepth > 0 && depth+1 >= s.opts.MaxDepth {
				continue
			}
			if err := walk(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(s.root, 0); err != nil {
		return nil, err
	}
	return found, nil
}
