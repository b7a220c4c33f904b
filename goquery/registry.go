package goquery

import "github.com/recipedoc/recipedoc"

var _ recipedoc.ExtractorRegistry = (*Registry)(nil)

// Registry manages site-specific extractors and auto-detects sites from
// HTML content. It uses a SiteDetector to identify the source website
// and returns the appropriate extractor, falling back to a generic
// JSON-LD-first extractor when the site is unknown or no specific
// extractor is registered.
type Registry struct {
	detector   recipedoc.SiteDetector
	fallback   recipedoc.Extractor
	extractors map[recipedoc.Site]recipedoc.Extractor
}

// NewRegistry creates a new Registry with the given detector and
// fallback extractor. The fallback is used when GetForHTML cannot find
// a specific extractor for the detected site.
func NewRegistry(detector recipedoc.SiteDetector, fallback recipedoc.Extractor) *Registry {
	return &Registry{
		detector:   detector,
		fallback:   fallback,
		extractors: make(map[recipedoc.Site]recipedoc.Extractor),
	}
}

// Get returns the extractor for a specific site.
// Returns nil if no extractor is registered for the site.
func (r *Registry) Get(site recipedoc.Site) recipedoc.Extractor {
	return r.extractors[site]
}

// GetForHTML detects the site from HTML and returns the appropriate
// extractor. Falls back to the fallback extractor if the site is
// unknown or no extractor is registered for the detected site.
func (r *Registry) GetForHTML(html string) recipedoc.Extractor {
	site := r.detector.Detect(html)
	if extractor, ok := r.extractors[site]; ok {
		return extractor
	}
	return r.fallback
}

// Register adds an extractor for a site.
// If an extractor is already registered for the site, it is replaced.
func (r *Registry) Register(site recipedoc.Site, extractor recipedoc.Extractor) {
	r.extractors[site] = extractor
}

// List returns all registered sites.
func (r *Registry) List() []recipedoc.Site {
	sites := make([]recipedoc.Site, 0, len(r.extractors))
	for s := range r.extractors {
		sites = append(sites, s)
	}
	return sites
}
