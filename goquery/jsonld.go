package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// recipeLD holds the fields of a schema.org/Recipe JSON-LD block in a
// normalized shape: alternatives like string-vs-array keywords and
// HowToStep instruction objects are flattened during decoding.
type recipeLD struct {
	Name         string
	Description  string
	Ingredients  []string
	Instructions []string
	Category     string
	Prep         string
	Cook         string
	Total        string
	Keywords     []string
	Images       []string
}

func (ld *recipeLD) prepTime() string {
	if ld == nil {
		return ""
	}
	return ld.Prep
}

func (ld *recipeLD) cookTime() string {
	if ld == nil {
		return ""
	}
	return ld.Cook
}

func (ld *recipeLD) totalTime() string {
	if ld == nil {
		return ""
	}
	return ld.Total
}

// findRecipeLD scans the document's ld+json script blocks for a Recipe
// node. Malformed JSON and non-Recipe blocks are skipped silently; the
// caller falls back to HTML selectors when nil is returned.
func findRecipeLD(doc *goquery.Document) *recipeLD {
	var found *recipeLD
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var raw any
		if err := json.Unmarshal([]byte(s.Text()), &raw); err != nil {
			return true // malformed block, keep scanning
		}
		if node := findRecipeNode(raw); node != nil {
			found = decodeRecipeNode(node)
			return false
		}
		return true
	})
	return found
}

// findRecipeNode walks a decoded JSON-LD value (object, array, or
// @graph container) looking for a node whose @type is Recipe.
func findRecipeNode(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		if hasType(t, "Recipe") {
			return t
		}
		if graph, ok := t["@graph"]; ok {
			return findRecipeNode(graph)
		}
	case []any:
		for _, item := range t {
			if node := findRecipeNode(item); node != nil {
				return node
			}
		}
	}
	return nil
}

func hasType(node map[string]any, want string) bool {
	switch t := node["@type"].(type) {
	case string:
		return t == want
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == want {
				return true
			}
		}
	}
	return false
}

func decodeRecipeNode(node map[string]any) *recipeLD {
	return &recipeLD{
		Name:         asString(node["name"]),
		Description:  asString(node["description"]),
		Ingredients:  asStrings(node["recipeIngredient"]),
		Instructions: asInstructions(node["recipeInstructions"]),
		Category:     firstString(node["recipeCategory"]),
		Prep:         asString(node["prepTime"]),
		Cook:         asString(node["cookTime"]),
		Total:        asString(node["totalTime"]),
		Keywords:     asKeywords(node["keywords"]),
		Images:       asImages(node["image"]),
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStrings(v any) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		var out []string
		for _, item := range t {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func firstString(v any) string {
	if ss := asStrings(v); len(ss) > 0 {
		return ss[0]
	}
	return ""
}

// asInstructions flattens recipeInstructions: plain strings, HowToStep
// objects, and HowToSection containers all reduce to step text.
func asInstructions(v any) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		var out []string
		for _, item := range t {
			out = append(out, asInstructions(item)...)
		}
		return out
	case map[string]any:
		if items, ok := t["itemListElement"]; ok {
			return asInstructions(items)
		}
		if s := asString(t["text"]); s != "" {
			return []string{s}
		}
		if s := asString(t["name"]); s != "" {
			return []string{s}
		}
	}
	return nil
}

// asKeywords accepts both comma-separated strings and arrays.
func asKeywords(v any) []string {
	switch t := v.(type) {
	case string:
		return splitComma(t)
	case []any:
		return asStrings(t)
	}
	return nil
}

// asImages accepts a URL string, an array of URLs, or ImageObject nodes.
func asImages(v any) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		var out []string
		for _, item := range t {
			out = append(out, asImages(item)...)
		}
		return out
	case map[string]any:
		if s := asString(t["url"]); s != "" {
			return []string{s}
		}
	}
	return nil
}

func splitComma(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := cleanText(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
