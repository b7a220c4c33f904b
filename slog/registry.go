package slog

import (
	"log/slog"
	"time"

	"github.com/recipedoc/recipedoc"
)

// Ensure LoggingRegistry implements recipedoc.ExtractorRegistry.
var _ recipedoc.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry with debug logging for site detection.
type LoggingRegistry struct {
	next     recipedoc.ExtractorRegistry
	detector recipedoc.SiteDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next recipedoc.ExtractorRegistry, detector recipedoc.SiteDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(site recipedoc.Site) recipedoc.Extractor {
	return r.next.Get(site)
}

// GetForHTML detects the site, logs it, and returns the appropriate extractor.
func (r *LoggingRegistry) GetForHTML(html string) recipedoc.Extractor {
	begin := time.Now()
	site := r.detector.Detect(html)
	siteName := string(site)
	if site == recipedoc.SiteUnknown {
		siteName = "(unknown)"
	}
	r.logger.Info("site detection",
		"site", siteName,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(site recipedoc.Site, extractor recipedoc.Extractor) {
	r.next.Register(site, extractor)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []recipedoc.Site {
	return r.next.List()
}
