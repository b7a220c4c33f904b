package recipedoc

import "encoding/json"

// Recipe represents one extracted recipe record. Every field is
// nullable: absence of the underlying markup is the normal, expected
// case and is reported as null in the serialized record rather than as
// an error. All keys are always present in the marshaled output.
type Recipe struct {
	DishName     *string `json:"dish_name"`
	Description  *string `json:"description"`
	Ingredients  *string `json:"ingredients"` // JSON-encoded array of ParsedIngredient
	Instructions *string `json:"instructions"`
	Category     *string `json:"category"`
	PrepTime     *string `json:"prep_time"`
	CookTime     *string `json:"cook_time"`
	TotalTime    *string `json:"total_time"`
	Notes        *string `json:"notes"`
	Tags         *string `json:"tags"`       // comma-separated
	ImageURLs    *string `json:"image_urls"` // comma-separated
}

// SetIngredients serializes parsed ingredients into the Ingredients
// field. A nil or empty list leaves the field null.
func (r *Recipe) SetIngredients(items []ParsedIngredient) error {
	if len(items) == 0 {
		return nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return Errorf(EINTERNAL, "failed to encode ingredients: %v", err)
	}
	s := string(b)
	r.Ingredients = &s
	return nil
}

// ParsedIngredients decodes the Ingredients field back into structured
// records. Returns nil when the field is null.
func (r *Recipe) ParsedIngredients() ([]ParsedIngredient, error) {
	if r.Ingredients == nil {
		return nil, nil
	}
	var items []ParsedIngredient
	if err := json.Unmarshal([]byte(*r.Ingredients), &items); err != nil {
		return nil, Errorf(EINVALID, "malformed ingredients payload: %v", err)
	}
	return items, nil
}

// Site identifies a supported recipe website.
type Site string

// Supported recipe sites.
const (
	SiteUnknown          Site = ""
	SiteAllRecipes       Site = "allrecipes"
	SiteBBCGoodFood      Site = "bbcgoodfood"
	SiteMarmiton         Site = "marmiton"
	SiteChefkoch         Site = "chefkoch"
	SiteGialloZafferano  Site = "giallozafferano"
	SiteKwestiaSmaku     Site = "kwestiasmaku"
	SitePovarenok        Site = "povarenok"
	SiteArgiro           Site = "argiro"
	SiteShahiya          Site = "shahiya"
	SiteCookpad          Site = "cookpad"
	SiteTenThousandRecip Site = "10000recipe"
	SiteMonNgon          Site = "monngon"
)

// Extractor extracts all recipe fields from one HTML document.
type Extractor interface {
	// ExtractAll parses HTML and returns the assembled recipe record.
	// A field whose target markup is absent is nil in the result; the
	// only error condition is HTML that cannot be parsed at all.
	ExtractAll(html string) (*Recipe, error)

	// Name returns the extractor's identifier (e.g., "allrecipes",
	// "generic").
	Name() string
}

// SiteDetector identifies recipe websites from HTML.
type SiteDetector interface {
	// Detect analyzes HTML and returns the identified site.
	// Returns SiteUnknown if the site cannot be determined.
	Detect(html string) Site
}

// ExtractorRegistry manages site-specific extractors.
type ExtractorRegistry interface {
	// Get returns the extractor for a specific site.
	// Returns nil if no extractor is registered for the site.
	Get(site Site) Extractor

	// GetForHTML detects the site from HTML and returns the appropriate
	// extractor. Falls back to a generic extractor if the site is
	// unknown.
	GetForHTML(html string) Extractor

	// Register adds an extractor for a site.
	Register(site Site, extractor Extractor)

	// List returns all registered sites.
	List() []Site
}
