package goquery

import (
	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/ingredient"
)

var _ recipedoc.Extractor = (*KwestiaSmakuExtractor)(nil)

// KwestiaSmakuExtractor extracts recipes from kwestiasmaku.com pages
// (Polish). The site is Drupal-based; fields live in field-name-*
// wrappers and there is no JSON-LD on older pages.
type KwestiaSmakuExtractor struct {
	*SiteExtractor
}

// NewKwestiaSmakuExtractor creates a new KwestiaSmakuExtractor.
func NewKwestiaSmakuExtractor() *KwestiaSmakuExtractor {
	cfg := SiteConfig{
		Site:        recipedoc.SiteKwestiaSmaku,
		DishName:    []string{"h1.przepis", "h1.page-header", "h1"},
		Description: []string{".field-name-field-uwagi-wstepne p"},
		Ingredients: []string{
			".field-name-field-skladniki ul li",
		},
		Instructions: []string{
			".field-name-field-przygotowanie ul li",
			".field-name-field-przygotowanie p",
		},
		Category:  []string{".breadcrumb li:last-child a"},
		PrepTime:  []string{".czas-przygotowania"},
		CookTime:  []string{},
		TotalTime: []string{},
		Notes:     []string{".field-name-field-wskazowki li", ".field-name-field-wskazowki p"},
		Tags:      []string{".field-name-field-tagi a"},
		Images:    []string{".view-zdjecia-przepisu img", ".field-name-field-zdjecie img"},
	}
	return &KwestiaSmakuExtractor{SiteExtractor: NewSiteExtractor(cfg, ingredient.NewParser(ingredient.Polish()))}
}
