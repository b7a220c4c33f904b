package fs

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/recipedoc/recipedoc"
	"golang.org/x/sync/errgroup"
)

// Walker runs extraction over a directory tree of saved HTML pages.
// Pages are processed concurrently; a page that fails to extract is
// logged and skipped rather than aborting the run.
type Walker struct {
	registry    recipedoc.ExtractorRegistry
	writer      recipedoc.RecipeWriter
	logger      *slog.Logger
	concurrency int
}

// Stats summarizes one ProcessDirectory run.
type Stats struct {
	Processed int
	Failed    int
}

// NewWalker creates a new Walker. Concurrency values below 1 are
// treated as 1.
func NewWalker(registry recipedoc.ExtractorRegistry, writer recipedoc.RecipeWriter, logger *slog.Logger, concurrency int) *Walker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Walker{
		registry:    registry,
		writer:      writer,
		logger:      logger,
		concurrency: concurrency,
	}
}

// ProcessDirectory walks inputDir for HTML files, extracts a recipe
// from each, and hands the records to the writer under the file's
// path relative to inputDir. The extractor for a page is resolved from
// its top-level directory name first ("marmiton/quiche.html" uses the
// marmiton extractor when one is registered), then by content
// detection.
func (w *Walker) ProcessDirectory(ctx context.Context, inputDir string) (Stats, error) {
	paths, err := htmlFiles(inputDir)
	if err != nil {
		return Stats{}, err
	}

	var processed, failed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)
	for _, relPath := range paths {
		relPath := relPath
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := w.processFile(ctx, inputDir, relPath); err != nil {
				failed.Add(1)
				w.logger.Error("page extraction failed",
					"path", relPath,
					"error", err,
				)
				return nil
			}
			processed.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	return Stats{
		Processed: int(processed.Load()),
		Failed:    int(failed.Load()),
	}, nil
}

func (w *Walker) processFile(ctx context.Context, inputDir, relPath string) error {
	raw, err := os.ReadFile(filepath.Join(inputDir, relPath))
	if err != nil {
		return err
	}
	html := string(raw)

	extractor := w.resolveExtractor(relPath, html)
	if extractor == nil {
		return recipedoc.Errorf(recipedoc.ENOTFOUND, "no extractor available for %q", relPath)
	}

	recipe, err := extractor.ExtractAll(html)
	if err != nil {
		return err
	}

	w.logger.Debug("page extracted",
		"path", relPath,
		"extractor", extractor.Name(),
	)
	return w.writer.WriteRecipe(ctx, relPath, recipe)
}

// resolveExtractor prefers the page's top-level directory name as a
// site hint before falling back to content detection.
func (w *Walker) resolveExtractor(relPath, html string) recipedoc.Extractor {
	if dir, _, ok := strings.Cut(filepath.ToSlash(relPath), "/"); ok {
		if e := w.registry.Get(recipedoc.Site(dir)); e != nil {
			return e
		}
	}
	return w.registry.GetForHTML(html)
}

// htmlFiles collects the paths of .html and .htm files under root,
// relative to root, in walk order.
func htmlFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".html", ".htm":
		default:
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
