package recipedoc

// ParsedIngredient represents one structured ingredient line.
type ParsedIngredient struct {
	// Name is the ingredient's identity (e.g. "flour"). Never empty for
	// a successfully parsed line; when parsing degrades entirely, the
	// whole cleaned source line becomes the name.
	Name string `json:"name"`

	// Amount is the parsed quantity: int when exact, float64 otherwise,
	// or the original numeral substring when numeric conversion fails.
	// Nil when the line carries no quantity phrase.
	Amount any `json:"amount"`

	// Units is the canonicalized measurement unit, or a qualitative
	// marker such as "to taste". Nil for bare counts ("2 eggs") and for
	// lines without a unit.
	Units *string `json:"units"`
}

// IngredientParser parses free-text ingredient lines. Parsing is total:
// it never fails, degrading to a name-only record when the line matches
// no known pattern.
type IngredientParser interface {
	// Parse parses a single ingredient expression.
	Parse(line string) ParsedIngredient

	// ParseAll parses a source line that may name several ingredients
	// joined by conjunctions ("salt and pepper to taste"), splitting
	// before parsing. Always returns at least one record for non-empty
	// input.
	ParseAll(line string) []ParsedIngredient
}
