package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/fs"
	"github.com/recipedoc/recipedoc/goquery"
	recslog "github.com/recipedoc/recipedoc/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("recipedoc"),
		kong.Description("Extract structured recipe records from saved recipe-site HTML pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	detector := goquery.NewDetector()
	registry := goquery.NewRegistry(detector, goquery.NewGenericExtractor())
	registerSiteExtractors(registry)

	if cli.ListSites {
		return listSites(stdout, registry)
	}

	if cli.InputDir == "" {
		return fmt.Errorf("input directory is required")
	}
	outputDir := cli.OutputDir
	if outputDir == "" {
		outputDir = cli.InputDir
	}

	concurrency := cli.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	var extractors recipedoc.ExtractorRegistry = registry
	if cli.Verbose {
		extractors = recslog.NewLoggingRegistry(registry, detector, logger)
	}
	if cli.Site != "" {
		forced := registry.Get(recipedoc.Site(cli.Site))
		if forced == nil {
			return recipedoc.Errorf(recipedoc.EINVALID, "unsupported site %q", cli.Site)
		}
		extractors = &forcedRegistry{extractor: forced}
	}

	cmd := &ExtractCmd{
		InputDir:    cli.InputDir,
		OutputDir:   outputDir,
		Concurrency: concurrency,
	}

	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		Logger:     logger,
		Extractors: extractors,
		Writer:     fs.NewWriter(outputDir),
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Concurrency int    `short:"c" default:"4" help:"Concurrent page limit"`
	Site        string `short:"s" help:"Force one site's extractor for every page (e.g. marmiton)"`
	ListSites   bool   `help:"List supported sites and exit"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`
	InputDir    string `arg:"" optional:"" help:"Directory of saved HTML pages"`
	OutputDir   string `arg:"" optional:"" help:"Directory for JSON records (default: input directory)"`
}

// registerSiteExtractors registers all site-specific extractors with the registry.
func registerSiteExtractors(registry *goquery.Registry) {
	registry.Register(recipedoc.SiteAllRecipes, goquery.NewAllRecipesExtractor())
	registry.Register(recipedoc.SiteBBCGoodFood, goquery.NewBBCGoodFoodExtractor())
	registry.Register(recipedoc.SiteMarmiton, goquery.NewMarmitonExtractor())
	registry.Register(recipedoc.SiteChefkoch, goquery.NewChefkochExtractor())
	registry.Register(recipedoc.SiteGialloZafferano, goquery.NewGialloZafferanoExtractor())
	registry.Register(recipedoc.SiteKwestiaSmaku, goquery.NewKwestiaSmakuExtractor())
	registry.Register(recipedoc.SitePovarenok, goquery.NewPovarenokExtractor())
	registry.Register(recipedoc.SiteArgiro, goquery.NewArgiroExtractor())
	registry.Register(recipedoc.SiteShahiya, goquery.NewShahiyaExtractor())
	registry.Register(recipedoc.SiteCookpad, goquery.NewCookpadExtractor())
	registry.Register(recipedoc.SiteTenThousandRecip, goquery.NewTenThousandRecipeExtractor())
	registry.Register(recipedoc.SiteMonNgon, goquery.NewMonNgonExtractor())
}
