// Package goquery implements site detection and per-site recipe field
// extraction using CSS selectors, with JSON-LD structured data preferred
// when a page provides it.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/recipedoc/recipedoc"
)

// SiteConfig defines the CSS selectors locating each recipe field on
// one site. Selectors within a field are tried in order; the first one
// matching wins. Empty selector lists fall back to JSON-LD only.
type SiteConfig struct {
	Site recipedoc.Site

	DishName     []string
	Description  []string
	Ingredients  []string
	Instructions []string
	Category     []string
	PrepTime     []string
	CookTime     []string
	TotalTime    []string
	Notes        []string
	Tags         []string
	Images       []string
}

// SiteExtractor extracts recipe fields using a SiteConfig and an
// ingredient parser for the site's locale. JSON-LD recipe data, when
// present and well-formed, is consulted before the HTML selectors;
// malformed JSON-LD silently falls through to the selectors. A missing
// field is nil in the result, never an error.
type SiteExtractor struct {
	cfg    SiteConfig
	parser recipedoc.IngredientParser
}

// NewSiteExtractor creates a SiteExtractor from a selector config and
// an ingredient parser.
func NewSiteExtractor(cfg SiteConfig, parser recipedoc.IngredientParser) *SiteExtractor {
	return &SiteExtractor{cfg: cfg, parser: parser}
}

// Name returns the extractor's site identifier.
func (e *SiteExtractor) Name() string {
	return string(e.cfg.Site)
}

// ExtractAll parses HTML and assembles the complete recipe record.
// Field extractors are independent; each yields nil when its target
// markup is absent.
func (e *SiteExtractor) ExtractAll(html string) (*recipedoc.Recipe, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, recipedoc.Errorf(recipedoc.EINVALID, "failed to parse HTML: %v", err)
	}

	ld := findRecipeLD(doc)

	r := &recipedoc.Recipe{}
	r.DishName = e.extractDishName(doc, ld)
	r.Description = e.extractDescription(doc, ld)
	if err := r.SetIngredients(e.extractIngredients(doc, ld)); err != nil {
		return nil, err
	}
	r.Instructions = e.extractInstructions(doc, ld)
	r.Category = e.extractCategory(doc, ld)
	r.PrepTime = e.extractTime(doc, ld.prepTime(), e.cfg.PrepTime)
	r.CookTime = e.extractTime(doc, ld.cookTime(), e.cfg.CookTime)
	r.TotalTime = e.extractTime(doc, ld.totalTime(), e.cfg.TotalTime)
	r.Notes = e.extractNotes(doc)
	r.Tags = e.extractTags(doc, ld)
	r.ImageURLs = e.extractImageURLs(doc, ld)
	return r, nil
}

func (e *SiteExtractor) extractDishName(doc *goquery.Document, ld *recipeLD) *string {
	if ld != nil && ld.Name != "" {
		return strptr(cleanText(ld.Name))
	}
	if s := firstText(doc, e.cfg.DishName); s != "" {
		return strptr(s)
	}
	// og:title is a near-universal fallback for the dish name.
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && cleanText(og) != "" {
		return strptr(cleanText(og))
	}
	return nil
}

func (e *SiteExtractor) extractDescription(doc *goquery.Document, ld *recipeLD) *string {
	if ld != nil && ld.Description != "" {
		return strptr(cleanText(ld.Description))
	}
	if s := firstText(doc, e.cfg.Description); s != "" {
		return strptr(s)
	}
	if og, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok && cleanText(og) != "" {
		return strptr(cleanText(og))
	}
	return nil
}

// extractIngredients collects the raw ingredient lines and feeds each
// through the locale's ingredient parser, preserving document order.
func (e *SiteExtractor) extractIngredients(doc *goquery.Document, ld *recipeLD) []recipedoc.ParsedIngredient {
	lines := e.ingredientLines(doc, ld)
	if len(lines) == 0 {
		return nil
	}
	out := make([]recipedoc.ParsedIngredient, 0, len(lines))
	for _, line := range lines {
		out = append(out, e.parser.ParseAll(line)...)
	}
	return out
}

func (e *SiteExtractor) ingredientLines(doc *goquery.Document, ld *recipeLD) []string {
	if ld != nil && len(ld.Ingredients) > 0 {
		lines := make([]string, 0, len(ld.Ingredients))
		for _, l := range ld.Ingredients {
			if c := cleanText(l); c != "" {
				lines = append(lines, c)
			}
		}
		if len(lines) > 0 {
			return lines
		}
	}
	return allTexts(doc, e.cfg.Ingredients)
}

func (e *SiteExtractor) extractInstructions(doc *goquery.Document, ld *recipeLD) *string {
	if ld != nil && len(ld.Instructions) > 0 {
		return strptr(strings.Join(ld.Instructions, "\n"))
	}
	steps := allTexts(doc, e.cfg.Instructions)
	if len(steps) == 0 {
		return nil
	}
	return strptr(strings.Join(steps, "\n"))
}

func (e *SiteExtractor) extractCategory(doc *goquery.Document, ld *recipeLD) *string {
	if ld != nil && ld.Category != "" {
		return strptr(cleanText(ld.Category))
	}
	if s := firstText(doc, e.cfg.Category); s != "" {
		return strptr(s)
	}
	return nil
}

// extractTime resolves one timing field: the JSON-LD ISO-8601 duration
// first, then the site's selectors with free-text parsing.
func (e *SiteExtractor) extractTime(doc *goquery.Document, iso string, selectors []string) *string {
	if iso != "" {
		if s, ok := formatISODuration(iso); ok {
			return strptr(s)
		}
	}
	raw := firstText(doc, selectors)
	if raw == "" {
		return nil
	}
	if s, ok := formatISODuration(raw); ok {
		return strptr(s)
	}
	if s, ok := parseTimeText(raw); ok {
		return strptr(s)
	}
	return strptr(raw)
}

func (e *SiteExtractor) extractNotes(doc *goquery.Document) *string {
	notes := allTexts(doc, e.cfg.Notes)
	if len(notes) == 0 {
		return nil
	}
	return strptr(strings.Join(notes, "\n"))
}

func (e *SiteExtractor) extractTags(doc *goquery.Document, ld *recipeLD) *string {
	if ld != nil && len(ld.Keywords) > 0 {
		return strptr(strings.Join(ld.Keywords, ", "))
	}
	tags := allTexts(doc, e.cfg.Tags)
	if len(tags) == 0 {
		return nil
	}
	return strptr(strings.Join(dedupe(tags), ", "))
}

func (e *SiteExtractor) extractImageURLs(doc *goquery.Document, ld *recipeLD) *string {
	var urls []string
	if ld != nil {
		urls = append(urls, ld.Images...)
	}
	for _, sel := range e.cfg.Images {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			for _, attr := range []string{"src", "data-src", "content"} {
				if v, ok := s.Attr(attr); ok && strings.TrimSpace(v) != "" {
					urls = append(urls, strings.TrimSpace(v))
					return
				}
			}
		})
	}
	if len(urls) == 0 {
		if og, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok && strings.TrimSpace(og) != "" {
			urls = append(urls, strings.TrimSpace(og))
		}
	}
	if len(urls) == 0 {
		return nil
	}
	return strptr(strings.Join(dedupe(urls), ", "))
}

// firstText returns the cleaned text of the first element matched by
// the selector list, trying selectors in order.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		if s := cleanText(node.Text()); s != "" {
			return s
		}
	}
	return ""
}

// allTexts returns the cleaned text of every element matched by the
// first selector that matches anything, preserving document order.
func allTexts(doc *goquery.Document, selectors []string) []string {
	for _, sel := range selectors {
		var out []string
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			if t := cleanText(s.Text()); t != "" {
				out = append(out, t)
			}
		})
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// cleanText collapses runs of whitespace (including NBSP) to single
// spaces and trims the result.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func strptr(s string) *string {
	return &s
}
