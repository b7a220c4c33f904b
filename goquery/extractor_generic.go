package goquery

import (
	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/ingredient"
)

var _ recipedoc.Extractor = (*GenericExtractor)(nil)

// GenericExtractor handles pages from unrecognized sites. It relies on
// JSON-LD recipe data first and falls back to the microformat/class
// conventions most recipe themes share (itemprop attributes, WordPress
// recipe plugin classes).
type GenericExtractor struct {
	*SiteExtractor
}

// NewGenericExtractor creates a new GenericExtractor using the English
// locale for ingredient parsing.
func NewGenericExtractor() *GenericExtractor {
	cfg := SiteConfig{
		Site:     "generic",
		DishName: []string{`[itemprop="name"]`, "h1.recipe-title", "h1.entry-title", "h1"},
		Description: []string{
			`[itemprop="description"]`, ".recipe-summary", ".recipe-description",
		},
		Ingredients: []string{
			`[itemprop="recipeIngredient"]`, `[itemprop="ingredients"]`,
			".recipe-ingredients li", ".wprm-recipe-ingredient", ".ingredient",
		},
		Instructions: []string{
			`[itemprop="recipeInstructions"] li`, `[itemprop="recipeInstructions"]`,
			".recipe-instructions li", ".wprm-recipe-instruction-text", ".instructions li",
		},
		Category: []string{`[itemprop="recipeCategory"]`, ".recipe-category"},
		PrepTime: []string{`[itemprop="prepTime"]`, ".prep-time"},
		CookTime: []string{`[itemprop="cookTime"]`, ".cook-time"},
		TotalTime: []string{`[itemprop="totalTime"]`, ".total-time"},
		Notes:    []string{".recipe-notes li", ".recipe-notes", ".wprm-recipe-notes"},
		Tags:     []string{".recipe-tags a", `[rel="tag"]`},
		Images:   []string{`[itemprop="image"]`, ".recipe-image img"},
	}
	return &GenericExtractor{SiteExtractor: NewSiteExtractor(cfg, ingredient.NewParser(ingredient.English()))}
}
