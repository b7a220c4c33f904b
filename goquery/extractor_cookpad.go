package goquery

import (
	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/ingredient"
)

var _ recipedoc.Extractor = (*CookpadExtractor)(nil)

// CookpadExtractor extracts recipes from cookpad.com pages (Japanese).
// Ingredient rows read name-first ("砂糖 大さじ2"); the Japanese locale
// handles the trailing quantity phrase.
type CookpadExtractor struct {
	*SiteExtractor
}

// NewCookpadExtractor creates a new CookpadExtractor.
func NewCookpadExtractor() *CookpadExtractor {
	cfg := SiteConfig{
		Site:        recipedoc.SiteCookpad,
		DishName:    []string{"h1.recipe-title", "h1"},
		Description: []string{".description_text", "#description .text"},
		Ingredients: []string{
			"#ingredients_list .ingredient_row",
			".ingredient-list li",
		},
		Instructions: []string{
			"#steps .step_text",
			".step p",
		},
		Category:  []string{".category_list a:last-child"},
		PrepTime:  []string{},
		CookTime:  []string{".cooking_time .value"},
		TotalTime: []string{},
		Notes:     []string{"#advice .text", ".hints_text"},
		Tags:      []string{".tag_list a"},
		Images:    []string{"#main-photo img", ".recipe-image img"},
	}
	return &CookpadExtractor{SiteExtractor: NewSiteExtractor(cfg, ingredient.NewParser(ingredient.Japanese()))}
}
