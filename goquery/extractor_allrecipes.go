package goquery

import (
	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/ingredient"
)

var _ recipedoc.Extractor = (*AllRecipesExtractor)(nil)

// AllRecipesExtractor extracts recipes from allrecipes.com pages.
// Validated against the Mantle (mntl-*) page layout; older pages carry
// full JSON-LD which takes priority anyway.
type AllRecipesExtractor struct {
	*SiteExtractor
}

// NewAllRecipesExtractor creates a new AllRecipesExtractor.
func NewAllRecipesExtractor() *AllRecipesExtractor {
	cfg := SiteConfig{
		Site:     recipedoc.SiteAllRecipes,
		DishName: []string{"h1.article-heading", "h1.headline"},
		Description: []string{
			".article-subheading", ".recipe-summary p",
		},
		Ingredients: []string{
			".mntl-structured-ingredients__list-item",
			".ingredients-item-name",
		},
		Instructions: []string{
			".recipe__steps-content ol li p",
			".instructions-section .section-body p",
		},
		Category:  []string{".mntl-breadcrumbs__item:last-child a"},
		PrepTime:  []string{".mntl-recipe-details__item--prep-time .mntl-recipe-details__value"},
		CookTime:  []string{".mntl-recipe-details__item--cook-time .mntl-recipe-details__value"},
		TotalTime: []string{".mntl-recipe-details__item--total-time .mntl-recipe-details__value"},
		Notes:     []string{".recipe-note p"},
		Tags:      []string{".mntl-taxonomysc-tag-list a"},
		Images:    []string{".primary-image__image", ".recipe-image img"},
	}
	return &AllRecipesExtractor{SiteExtractor: NewSiteExtractor(cfg, ingredient.NewParser(ingredient.English()))}
}
