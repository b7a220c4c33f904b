package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Extractors recipedoc.ExtractorRegistry
	Writer     recipedoc.RecipeWriter
}

// ExtractCmd runs extraction over a directory of saved HTML pages.
type ExtractCmd struct {
	InputDir    string
	OutputDir   string
	Concurrency int
}

// Run walks the input directory and writes one JSON record per page.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	walker := fs.NewWalker(deps.Extractors, deps.Writer, deps.Logger, c.Concurrency)

	stats, err := walker.ProcessDirectory(deps.Ctx, c.InputDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processed %d pages (%d failed) into %s\n",
		stats.Processed, stats.Failed, c.OutputDir)
	return nil
}

// listSites prints the registered site names plus the generic fallback.
func listSites(stdout io.Writer, registry recipedoc.ExtractorRegistry) error {
	sites := registry.List()
	names := make([]string, 0, len(sites))
	for _, s := range sites {
		names = append(names, string(s))
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(stdout, name)
	}
	fmt.Fprintln(stdout, "generic (fallback)")
	return nil
}

// forcedRegistry answers every lookup with a single extractor. Used by
// the --site flag to bypass detection.
type forcedRegistry struct {
	extractor recipedoc.Extractor
}

var _ recipedoc.ExtractorRegistry = (*forcedRegistry)(nil)

func (r *forcedRegistry) Get(site recipedoc.Site) recipedoc.Extractor { return r.extractor }

func (r *forcedRegistry) GetForHTML(html string) recipedoc.Extractor { return r.extractor }

func (r *forcedRegistry) Register(site recipedoc.Site, extractor recipedoc.Extractor) {}

func (r *forcedRegistry) List() []recipedoc.Site {
	return []recipedoc.Site{recipedoc.Site(r.extractor.Name())}
}
