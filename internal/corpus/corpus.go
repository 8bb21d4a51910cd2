package corpus

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/edsrzf/mmap-go"
	"golang.org/x/sync/errgroup"

	"stava/internal/corrector"
)

//go:embed assets/words.txt
var defaultWords string

// ErrFileNotFound wraps every missing corpus file.
var ErrFileNotFound = errors.New("file not found")

// Default returns the bundled dictionary text.
func Default() string { return defaultWords }

// ReadFile maps path into memory and returns its contents.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("open corpus %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat corpus %s: %w", path, err)
	}
	if st.IsDir() {
		return "", fmt.Errorf("corpus %s is a directory", path)
	}
	// mmap rejects zero-length mappings.
	if st.Size() == 0 {
		return "", nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("mmap corpus %s: %w", path, err)
	}
	text := string(m)
	if err := m.Unmap(); err != nil {
		return "", fmt.Errorf("unmap corpus %s: %w", path, err)
	}
	return text, nil
}

// LoadFiles learns every file into a private model per file, using at most workers goroutines
// (GOMAXPROCS when workers <= 0), then merges the partial models in argument order.
func LoadFiles(ctx context.Context, paths []string, workers int) (*corrector.Model, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	partials := make([]*corrector.Model, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := ReadFile(path)
			if err != nil {
				return err
			}
			m := corrector.NewModel()
			m.Learn(text)
			partials[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	model := corrector.NewModel()
	for _, m := range partials {
		model.Merge(m)
	}
	return model, nil
}

// Learn loads paths into sc. With useDefault, or when paths is empty, the bundled dictionary
// is learned as well.
func Learn(ctx context.Context, sc *corrector.SpellCorrector, paths []string, useDefault bool) error {
	if useDefault || len(paths) == 0 {
		sc.Learn(Default())
	}
	if len(paths) == 0 {
		return nil
	}
	m, err := LoadFiles(ctx, paths, 0)
	if err != nil {
		return err
	}
	sc.Model().Merge(m)
	return nil
}
