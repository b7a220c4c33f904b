package goquery

import (
	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/ingredient"
)

var _ recipedoc.Extractor = (*ShahiyaExtractor)(nil)

// ShahiyaExtractor extracts recipes from shahiya.com pages (Arabic).
// Text is right-to-left but the logical token order matches what the
// ingredient parser expects, so no special handling is needed.
type ShahiyaExtractor struct {
	*SiteExtractor
}

// NewShahiyaExtractor creates a new ShahiyaExtractor.
func NewShahiyaExtractor() *ShahiyaExtractor {
	cfg := SiteConfig{
		Site:        recipedoc.SiteShahiya,
		DishName:    []string{"h1.recipe-title", "h1"},
		Description: []string{".recipe-description", ".recipe-intro p"},
		Ingredients: []string{
			".recipe-ingredients-list li",
			".shy-ingredients li",
		},
		Instructions: []string{
			".recipe-steps li",
			".recipe-directions p",
		},
		Category:  []string{".breadcrumb li:last-child a"},
		PrepTime:  []string{".recipe-info .prep-time span"},
		CookTime:  []string{".recipe-info .cook-time span"},
		TotalTime: []string{},
		Notes:     []string{".recipe-notes p"},
		Tags:      []string{".recipe-tags a"},
		Images:    []string{".recipe-main-image img"},
	}
	return &ShahiyaExtractor{SiteExtractor: NewSiteExtractor(cfg, ingredient.NewParser(ingredient.Arabic()))}
}
