package mock

import "github.com/recipedoc/recipedoc"

var _ recipedoc.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of recipedoc.ExtractorRegistry.
type ExtractorRegistry struct {
	GetFn        func(site recipedoc.Site) recipedoc.Extractor
	GetForHTMLFn func(html string) recipedoc.Extractor
	RegisterFn   func(site recipedoc.Site, extractor recipedoc.Extractor)
	ListFn       func() []recipedoc.Site
}

func (r *ExtractorRegistry) Get(site recipedoc.Site) recipedoc.Extractor {
	return r.GetFn(site)
}

func (r *ExtractorRegistry) GetForHTML(html string) recipedoc.Extractor {
	return r.GetForHTMLFn(html)
}

func (r *ExtractorRegistry) Register(site recipedoc.Site, extractor recipedoc.Extractor) {
	r.RegisterFn(site, extractor)
}

func (r *ExtractorRegistry) List() []recipedoc.Site {
	return r.ListFn()
}
