package mock

import "github.com/recipedoc/recipedoc"

var _ recipedoc.IngredientParser = (*IngredientParser)(nil)

// IngredientParser is a mock implementation of recipedoc.IngredientParser.
type IngredientParser struct {
	ParseFn    func(line string) recipedoc.ParsedIngredient
	ParseAllFn func(line string) []recipedoc.ParsedIngredient
}

func (p *IngredientParser) Parse(line string) recipedoc.ParsedIngredient {
	return p.ParseFn(line)
}

func (p *IngredientParser) ParseAll(line string) []recipedoc.ParsedIngredient {
	return p.ParseAllFn(line)
}
