package goquery

import (
	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/ingredient"
)

var _ recipedoc.Extractor = (*MarmitonExtractor)(nil)

// MarmitonExtractor extracts recipes from marmiton.org pages (French).
type MarmitonExtractor struct {
	*SiteExtractor
}

// NewMarmitonExtractor creates a new MarmitonExtractor.
func NewMarmitonExtractor() *MarmitonExtractor {
	cfg := SiteConfig{
		Site:        recipedoc.SiteMarmiton,
		DishName:    []string{"h1.main-title", "h1"},
		Description: []string{".recipe-chapo", ".mrtn-recette-description"},
		Ingredients: []string{
			".mrtn-recette_ingredients-items .card-ingredient",
			".recipe-ingredients__list__item",
		},
		Instructions: []string{
			".recipe-step-list__container p",
			".mrtn-recette_etapes li",
		},
		Category:  []string{".mrtn-breadcrumb li:last-child a"},
		PrepTime:  []string{".recipe-primary__item--preparation span"},
		CookTime:  []string{".recipe-primary__item--cooking span"},
		TotalTime: []string{".recipe-primary__item--total span"},
		Notes:     []string{".recipe-note-author p"},
		Tags:      []string{".mrtn-tags-list a"},
		Images:    []string{".recipe-media-viewer__main_picture img"},
	}
	return &MarmitonExtractor{SiteExtractor: NewSiteExtractor(cfg, ingredient.NewParser(ingredient.French()))}
}
