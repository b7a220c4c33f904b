package goquery

import (
	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/ingredient"
)

var _ recipedoc.Extractor = (*ChefkochExtractor)(nil)

// ChefkochExtractor extracts recipes from chefkoch.de pages (German).
// Ingredient amounts on Chefkoch live in a two-column table; the row
// text reads naturally as one line ("500 g Mehl").
type ChefkochExtractor struct {
	*SiteExtractor
}

// NewChefkochExtractor creates a new ChefkochExtractor.
func NewChefkochExtractor() *ChefkochExtractor {
	cfg := SiteConfig{
		Site:        recipedoc.SiteChefkoch,
		DishName:    []string{"h1.recipe-header__title", "h1"},
		Description: []string{".recipe-text__subtitle", ".recipe-header__subtitle"},
		Ingredients: []string{
			"table.ingredients tbody tr",
			".recipe-ingredients li",
		},
		Instructions: []string{
			".recipe-preparation__text p",
			".instructions .ds-box",
		},
		Category:  []string{".ds-breadcrumbs li:last-child a"},
		PrepTime:  []string{".recipe-meta__prep-time"},
		CookTime:  []string{".recipe-meta__cook-time"},
		TotalTime: []string{".recipe-meta__total-time"},
		Notes:     []string{".recipe-tip p"},
		Tags:      []string{".ds-tag-list a", ".recipe-tags a"},
		Images:    []string{".recipe-image__img", ".i-amphtml-fill-content"},
	}
	return &ChefkochExtractor{SiteExtractor: NewSiteExtractor(cfg, ingredient.NewParser(ingredient.German()))}
}
