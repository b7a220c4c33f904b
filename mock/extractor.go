package mock

import "github.com/recipedoc/recipedoc"

var _ recipedoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of recipedoc.Extractor.
type Extractor struct {
	ExtractAllFn func(html string) (*recipedoc.Recipe, error)
	NameFn       func() string
}

func (e *Extractor) ExtractAll(html string) (*recipedoc.Recipe, error) {
	return e.ExtractAllFn(html)
}

func (e *Extractor) Name() string {
	return e.NameFn()
}
