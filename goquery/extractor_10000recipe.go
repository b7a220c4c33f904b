package goquery

import (
	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/ingredient"
)

var _ recipedoc.Extractor = (*TenThousandRecipeExtractor)(nil)

// TenThousandRecipeExtractor extracts recipes from 10000recipe.com
// pages (Korean). Ingredient rows read name-first ("버터 1큰술").
type TenThousandRecipeExtractor struct {
	*SiteExtractor
}

// NewTenThousandRecipeExtractor creates a new TenThousandRecipeExtractor.
func NewTenThousandRecipeExtractor() *TenThousandRecipeExtractor {
	cfg := SiteConfig{
		Site:        recipedoc.SiteTenThousandRecip,
		DishName:    []string{".view2_summary h3", "h1"},
		Description: []string{".view2_summary_in", ".view_summary"},
		Ingredients: []string{
			".ready_ingre3 ul li",
		},
		Instructions: []string{
			".view_step .media-body",
			".view_step_cont",
		},
		Category:  []string{".view_cate a"},
		PrepTime:  []string{},
		CookTime:  []string{".view2_summary_info2"},
		TotalTime: []string{},
		Notes:     []string{".view_step_tip"},
		Tags:      []string{".view_tag a"},
		Images:    []string{".centeredcrop img", ".view3_pic img"},
	}
	return &TenThousandRecipeExtractor{SiteExtractor: NewSiteExtractor(cfg, ingredient.NewParser(ingredient.Korean()))}
}
