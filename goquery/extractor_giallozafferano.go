package goquery

import (
	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/ingredient"
)

var _ recipedoc.Extractor = (*GialloZafferanoExtractor)(nil)

// GialloZafferanoExtractor extracts recipes from giallozafferano.it
// pages (Italian). Quantities frequently use "q.b." (quanto basta).
type GialloZafferanoExtractor struct {
	*SiteExtractor
}

// NewGialloZafferanoExtractor creates a new GialloZafferanoExtractor.
func NewGialloZafferanoExtractor() *GialloZafferanoExtractor {
	cfg := SiteConfig{
		Site:        recipedoc.SiteGialloZafferano,
		DishName:    []string{"h1.gz-title-recipe", "h1"},
		Description: []string{".gz-content-recipe > p", ".gz-description"},
		Ingredients: []string{
			".gz-ingredients .gz-ingredient",
			".gz-list-ingredients li",
		},
		Instructions: []string{
			".gz-content-recipe-step p",
		},
		Category:  []string{".gz-breadcrumb li:last-child a"},
		PrepTime:  []string{".gz-name-featured-data:contains('Preparazione') strong"},
		CookTime:  []string{".gz-name-featured-data:contains('Cottura') strong"},
		TotalTime: []string{},
		Notes:     []string{".gz-advice p"},
		Tags:      []string{".gz-list-tags a"},
		Images:    []string{".gz-featured-image img"},
	}
	return &GialloZafferanoExtractor{SiteExtractor: NewSiteExtractor(cfg, ingredient.NewParser(ingredient.Italian()))}
}
