package goquery

import (
	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/ingredient"
)

var _ recipedoc.Extractor = (*MonNgonExtractor)(nil)

// MonNgonExtractor extracts recipes from monngonmoingay.com pages
// (Vietnamese).
type MonNgonExtractor struct {
	*SiteExtractor
}

// NewMonNgonExtractor creates a new MonNgonExtractor.
func NewMonNgonExtractor() *MonNgonExtractor {
	cfg := SiteConfig{
		Site:        recipedoc.SiteMonNgon,
		DishName:    []string{"h1.title-detail", "h1"},
		Description: []string{".mnmn-description p", ".detail-intro"},
		Ingredients: []string{
			".nguyen-lieu li",
			".mnmn-ingredients li",
		},
		Instructions: []string{
			".cach-lam .step",
			".thuc-hien li",
		},
		Category:  []string{".breadcrumb li:last-child a"},
		PrepTime:  []string{".thoi-gian-so-che span"},
		CookTime:  []string{".thoi-gian-nau span"},
		TotalTime: []string{},
		Notes:     []string{".meo-nho p", ".ghi-chu p"},
		Tags:      []string{".tags-list a"},
		Images:    []string{".detail-thumb img", ".mnmn-gallery img"},
	}
	return &MonNgonExtractor{SiteExtractor: NewSiteExtractor(cfg, ingredient.NewParser(ingredient.Vietnamese()))}
}
