package goquery_test

import (
	"fmt"
	"testing"

	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/goquery"
	"github.com/stretchr/testify/assert"
)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	d := goquery.NewDetector()

	t.Run("canonical URL", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			url  string
			want recipedoc.Site
		}{
			{"https://www.allrecipes.com/recipe/12345/pancakes/", recipedoc.SiteAllRecipes},
			{"https://www.bbcgoodfood.com/recipes/victoria-sponge", recipedoc.SiteBBCGoodFood},
			{"https://www.marmiton.org/recettes/recette_quiche.aspx", recipedoc.SiteMarmiton},
			{"https://www.chefkoch.de/rezepte/12345/kaesespaetzle.html", recipedoc.SiteChefkoch},
			{"https://www.giallozafferano.it/ricette/Tiramisu.html", recipedoc.SiteGialloZafferano},
			{"https://www.kwestiasmaku.com/przepis/pierogi", recipedoc.SiteKwestiaSmaku},
			{"https://www.povarenok.ru/recipes/show/12345/", recipedoc.SitePovarenok},
			{"https://www.argiro.gr/recipe/moussaka/", recipedoc.SiteArgiro},
			{"https://shahiya.com/recipe/kabsa", recipedoc.SiteShahiya},
			{"https://cookpad.com/recipe/1234567", recipedoc.SiteCookpad},
			{"https://www.10000recipe.com/recipe/6842324", recipedoc.SiteTenThousandRecip},
			{"https://www.monngonmoingay.com/pho-bo/", recipedoc.SiteMonNgon},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(string(tt.want), func(t *testing.T) {
				t.Parallel()

				html := fmt.Sprintf(`<html><head><link rel="canonical" href=%q></head><body></body></html>`, tt.url)
				assert.Equal(t, tt.want, d.Detect(html))
			})
		}
	})

	t.Run("og:site_name", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			want recipedoc.Site
		}{
			{"Marmiton", recipedoc.SiteMarmiton},
			{"Поваренок.ру", recipedoc.SitePovarenok},
			{"クックパッド", recipedoc.SiteCookpad},
			{"만개의레시피", recipedoc.SiteTenThousandRecip},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(string(tt.want), func(t *testing.T) {
				t.Parallel()

				html := fmt.Sprintf(`<html><head><meta property="og:site_name" content=%q></head><body></body></html>`, tt.name)
				assert.Equal(t, tt.want, d.Detect(html))
			})
		}
	})

	t.Run("structural marker without meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="ingredients-bl"><ul><li>мука</li></ul></div></body></html>`
		assert.Equal(t, recipedoc.SitePovarenok, d.Detect(html))
	})

	t.Run("URL hint wins over another site's marker", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><link rel="canonical" href="https://www.marmiton.org/r"></head>
<body><div class="ingredients-bl"></div></body></html>`
		assert.Equal(t, recipedoc.SiteMarmiton, d.Detect(html))
	})

	t.Run("unknown page", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><link rel="canonical" href="https://example.com/blog"></head><body><p>hello</p></body></html>`
		assert.Equal(t, recipedoc.SiteUnknown, d.Detect(html))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, recipedoc.SiteUnknown, d.Detect(""))
	})
}
