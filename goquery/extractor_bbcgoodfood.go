package goquery

import (
	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/ingredient"
)

var _ recipedoc.Extractor = (*BBCGoodFoodExtractor)(nil)

// BBCGoodFoodExtractor extracts recipes from bbcgoodfood.com pages.
type BBCGoodFoodExtractor struct {
	*SiteExtractor
}

// NewBBCGoodFoodExtractor creates a new BBCGoodFoodExtractor.
func NewBBCGoodFoodExtractor() *BBCGoodFoodExtractor {
	cfg := SiteConfig{
		Site:        recipedoc.SiteBBCGoodFood,
		DishName:    []string{"h1.heading-1", "h1.post-header__title"},
		Description: []string{".post-header__description", ".editor-content .intro"},
		Ingredients: []string{
			".recipe__ingredients section ul li",
			".ingredients-list__item",
		},
		Instructions: []string{
			".recipe__method-steps li .editor-content",
			".method-steps__list-item",
		},
		Category:  []string{".post-header__course", ".breadcrumbs__item:last-child a"},
		PrepTime:  []string{".post-header__planning .planning-list-item:first-child time"},
		CookTime:  []string{".post-header__planning .planning-list-item:nth-child(2) time"},
		TotalTime: []string{},
		Notes:     []string{".recipe__tips p"},
		Tags:      []string{".post-header__tags a", ".terms-icons-list a"},
		Images:    []string{".post-header__image img", ".image__container img"},
	}
	return &BBCGoodFoodExtractor{SiteExtractor: NewSiteExtractor(cfg, ingredient.NewParser(ingredient.English()))}
}
