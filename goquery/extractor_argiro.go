package goquery

import (
	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/ingredient"
)

var _ recipedoc.Extractor = (*ArgiroExtractor)(nil)

// ArgiroExtractor extracts recipes from argiro.gr pages (Greek).
type ArgiroExtractor struct {
	*SiteExtractor
}

// NewArgiroExtractor creates a new ArgiroExtractor.
func NewArgiroExtractor() *ArgiroExtractor {
	cfg := SiteConfig{
		Site:        recipedoc.SiteArgiro,
		DishName:    []string{"h1.entry-title", "h1"},
		Description: []string{".recipe-description p", ".entry-content > p:first-of-type"},
		Ingredients: []string{
			".recipe-ingredients-wrapper li",
			".yl-recipe-ingredients li",
		},
		Instructions: []string{
			".recipe-method li",
			".recipe-execution p",
		},
		Category:  []string{".breadcrumbs span:last-child a"},
		PrepTime:  []string{".recipe-time-prep .time-value"},
		CookTime:  []string{".recipe-time-cook .time-value"},
		TotalTime: []string{".recipe-time-total .time-value"},
		Notes:     []string{".recipe-tips li", ".recipe-tips p"},
		Tags:      []string{".recipe-tags a", ".entry-tags a"},
		Images:    []string{".recipe-featured-image img", ".entry-thumbnail img"},
	}
	return &ArgiroExtractor{SiteExtractor: NewSiteExtractor(cfg, ingredient.NewParser(ingredient.Greek()))}
}
