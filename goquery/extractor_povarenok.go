package goquery

import (
	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/ingredient"
)

var _ recipedoc.Extractor = (*PovarenokExtractor)(nil)

// PovarenokExtractor extracts recipes from povarenok.ru pages (Russian).
type PovarenokExtractor struct {
	*SiteExtractor
}

// NewPovarenokExtractor creates a new PovarenokExtractor.
func NewPovarenokExtractor() *PovarenokExtractor {
	cfg := SiteConfig{
		Site:        recipedoc.SitePovarenok,
		DishName:    []string{"h1", ".top-header h1"},
		Description: []string{".article-text i", ".how-text"},
		Ingredients: []string{
			".ingredients-bl ul li",
		},
		Instructions: []string{
			".cooking-bl p",
			".how-to-cook li",
		},
		Category:  []string{".breadcrumbs a:last-child"},
		PrepTime:  []string{},
		CookTime:  []string{".cook-time span"},
		TotalTime: []string{},
		Notes:     []string{".article-note p"},
		Tags:      []string{".recipe-tags a", ".tags-bl a"},
		Images:    []string{".m-img img", ".cooking-bl img"},
	}
	return &PovarenokExtractor{SiteExtractor: NewSiteExtractor(cfg, ingredient.NewParser(ingredient.Russian()))}
}
