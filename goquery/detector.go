package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/recipedoc/recipedoc"
)

// Detector identifies recipe websites from HTML content. It checks the
// og:site_name meta tag and canonical/og URLs first, then falls back to
// site-specific structural markers.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// siteSignature describes how one site is recognized: host substrings
// matched against canonical/og URLs, name substrings matched against
// og:site_name, and CSS selectors unique to the site's markup.
type siteSignature struct {
	site    recipedoc.Site
	hosts   []string
	names   []string
	markers []string
}

var signatures = []siteSignature{
	{
		site:    recipedoc.SiteAllRecipes,
		hosts:   []string{"allrecipes.com"},
		names:   []string{"allrecipes"},
		markers: []string{"#allrecipes-logo", ".mntl-structured-ingredients"},
	},
	{
		site:    recipedoc.SiteBBCGoodFood,
		hosts:   []string{"bbcgoodfood.com"},
		names:   []string{"bbc good food"},
		markers: []string{".recipe__ingredients", ".post-header--masthead"},
	},
	{
		site:    recipedoc.SiteMarmiton,
		hosts:   []string{"marmiton.org"},
		names:   []string{"marmiton"},
		markers: []string{".mrtn-recette_ingredients", ".recipe-ingredients__list"},
	},
	{
		site:    recipedoc.SiteChefkoch,
		hosts:   []string{"chefkoch.de"},
		names:   []string{"chefkoch"},
		markers: []string{".ingredients.table-header", ".recipe-ingredients"},
	},
	{
		site:    recipedoc.SiteGialloZafferano,
		hosts:   []string{"giallozafferano.it"},
		names:   []string{"giallozafferano"},
		markers: []string{".gz-ingredients", ".gz-content-recipe"},
	},
	{
		site:    recipedoc.SiteKwestiaSmaku,
		hosts:   []string{"kwestiasmaku.com"},
		names:   []string{"kwestia smaku"},
		markers: []string{".field-name-field-skladniki", ".przepis"},
	},
	{
		site:    recipedoc.SitePovarenok,
		hosts:   []string{"povarenok.ru"},
		names:   []string{"поваренок", "povarenok"},
		markers: []string{".ingredients-bl", ".cooking-bl"},
	},
	{
		site:    recipedoc.SiteArgiro,
		hosts:   []string{"argiro.gr"},
		names:   []string{"argiro"},
		markers: []string{".recipe-ingredients-wrapper", ".yl-recipe-ingredients"},
	},
	{
		site:    recipedoc.SiteShahiya,
		hosts:   []string{"shahiya.com"},
		names:   []string{"شهية", "shahiya"},
		markers: []string{".recipe-ingredients-list[dir='rtl']", ".shy-ingredients"},
	},
	{
		site:    recipedoc.SiteCookpad,
		hosts:   []string{"cookpad.com"},
		names:   []string{"クックパッド", "cookpad"},
		markers: []string{"#ingredients_list", ".ingredient_row"},
	},
	{
		site:    recipedoc.SiteTenThousandRecip,
		hosts:   []string{"10000recipe.com"},
		names:   []string{"만개의레시피", "10000recipe"},
		markers: []string{".ready_ingre3", ".view_step"},
	},
	{
		site:    recipedoc.SiteMonNgon,
		hosts:   []string{"monngonmoingay.com"},
		names:   []string{"món ngon mỗi ngày", "monngonmoingay"},
		markers: []string{".nguyen-lieu", ".mnmn-ingredients"},
	},
}

// Detect analyzes HTML and returns the identified site.
// Returns SiteUnknown if the site cannot be determined.
func (d *Detector) Detect(html string) recipedoc.Site {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return recipedoc.SiteUnknown
	}

	host := pageHost(doc)
	siteName := pageSiteName(doc)

	for _, sig := range signatures {
		for _, h := range sig.hosts {
			if host != "" && strings.Contains(host, h) {
				return sig.site
			}
		}
		for _, n := range sig.names {
			if siteName != "" && strings.Contains(siteName, n) {
				return sig.site
			}
		}
	}

	// Structural markers are checked after URL/name hints for every
	// site, so a saved page stripped of meta tags still resolves.
	for _, sig := range signatures {
		for _, m := range sig.markers {
			if doc.Find(m).Length() > 0 {
				return sig.site
			}
		}
	}

	return recipedoc.SiteUnknown
}

// pageHost returns the host part of the canonical or og:url link,
// lowercased. Empty when neither is present.
func pageHost(doc *goquery.Document) string {
	raw, ok := doc.Find(`link[rel="canonical"]`).Attr("href")
	if !ok || raw == "" {
		raw, _ = doc.Find(`meta[property="og:url"]`).Attr("content")
	}
	raw = strings.ToLower(strings.TrimSpace(raw))
	raw = strings.TrimPrefix(raw, "https://")
	raw = strings.TrimPrefix(raw, "http://")
	raw = strings.TrimPrefix(raw, "www.")
	if i := strings.IndexByte(raw, '/'); i >= 0 {
		raw = raw[:i]
	}
	return raw
}

func pageSiteName(doc *goquery.Document) string {
	name, _ := doc.Find(`meta[property="og:site_name"]`).Attr("content")
	return strings.ToLower(strings.TrimSpace(name))
}
