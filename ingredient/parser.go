package ingredient

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/recipedoc/recipedoc"
)

// Ensure Parser implements recipedoc.IngredientParser at compile time.
var _ recipedoc.IngredientParser = (*Parser)(nil)

// Parser parses free-text ingredient lines for one locale. It is
// stateless and safe for concurrent use.
//
// Parsing walks a fixed fallback ladder: leading quantity with optional
// unit → trailing quantity (name-first locales) → qualitative phrase →
// total fallback where the whole cleaned line becomes the name. No
// input produces an error.
type Parser struct {
	loc Locale
}

// NewParser creates a Parser bound to the given locale configuration.
func NewParser(loc Locale) *Parser {
	return &Parser{loc: loc}
}

// Locale returns the parser's locale configuration.
func (p *Parser) Locale() Locale {
	return p.loc
}

var (
	parenRe        = regexp.MustCompile(`\s*\([^()]*\)`)
	decimalCommaRe = regexp.MustCompile(`(\d),(\d)`)
	rangeRe        = regexp.MustCompile(`^(\d+(?:\.\d+)?)[-–—~](\d+(?:\.\d+)?)$`)
	fractionRe     = regexp.MustCompile(`^(\d+)/(\d+)$`)
	numeralStartRe = regexp.MustCompile(`^(\d+(?:\.\d+)?(?:[-–—~]\d+(?:\.\d+)?)?(?:/\d+)?)(\D.*)$`)
	numeralEndRe   = regexp.MustCompile(`^(.*?\D)(\d+(?:\.\d+)?(?:/\d+)?)$`)
)

// Normalize prepares a raw line for tokenization: trims and collapses
// whitespace, substitutes vulgar-fraction glyphs with decimal strings,
// and (for comma-decimal locales) rewrites commas between digits to
// periods. Normalizing an already-normalized line is a no-op.
func (p *Parser) Normalize(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	var prev rune
	for _, r := range line {
		if r == ' ' {
			b.WriteRune(' ')
			prev = ' '
			continue
		}
		if dec, ok := fractions[r]; ok {
			// "1½" reads as a mixed number; keep the parts separate so
			// the tokenizer can sum them.
			if unicode.IsDigit(prev) {
				b.WriteRune(' ')
			}
			b.WriteString(dec)
			prev = rune(dec[len(dec)-1])
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	s := b.String()
	if p.loc.DecimalComma {
		s = decimalCommaRe.ReplaceAllString(s, "$1.$2")
	}
	return strings.Join(strings.Fields(s), " ")
}

// Parse parses a single ingredient expression. It never fails: when no
// pattern matches, the whole cleaned line becomes the name with nil
// amount and units.
func (p *Parser) Parse(line string) recipedoc.ParsedIngredient {
	cleaned := p.Normalize(line)
	if cleaned == "" {
		return recipedoc.ParsedIngredient{Name: cleaned}
	}

	// Parenthetical asides are prep notes, not identity. Keep them only
	// when removing them would leave nothing to name.
	work := strings.Join(strings.Fields(parenRe.ReplaceAllString(cleaned, " ")), " ")
	if work == "" {
		work = cleaned
	}

	rec, ok := p.parseLeading(work)
	if !ok && p.loc.TrailingQuantity {
		rec, ok = p.parseTrailing(work)
	}
	if !ok {
		rec, ok = p.parseQualitative(work)
	}
	if !ok {
		return recipedoc.ParsedIngredient{Name: p.cleanupName(cleaned)}
	}

	rec.Name = p.cleanupName(rec.Name)
	if rec.Name == "" {
		return recipedoc.ParsedIngredient{Name: cleaned}
	}
	return rec
}

// ParseAll parses a source line that may carry several ingredients
// joined by a conjunction ("salt and pepper to taste"). Lines with
// digits are never split; a shared trailing qualitative phrase is
// applied to every piece.
func (p *Parser) ParseAll(line string) []recipedoc.ParsedIngredient {
	cleaned := p.Normalize(line)
	if cleaned == "" || strings.ContainsFunc(cleaned, unicode.IsDigit) {
		return []recipedoc.ParsedIngredient{p.Parse(line)}
	}

	tokens := strings.Fields(cleaned)
	marker, rest := p.trailingQualitative(tokens)
	pieces := p.splitConjunction(rest)
	if len(pieces) < 2 {
		return []recipedoc.ParsedIngredient{p.Parse(line)}
	}

	out := make([]recipedoc.ParsedIngredient, 0, len(pieces))
	for _, piece := range pieces {
		rec := p.Parse(piece)
		if marker != "" && rec.Units == nil && rec.Amount == nil {
			m := marker
			rec.Units = &m
		}
		out = append(out, rec)
	}
	return out
}

// parseLeading attempts the full pattern: a leading quantity
// expression, an optional unit token run, and the remainder as name.
func (p *Parser) parseLeading(work string) (recipedoc.ParsedIngredient, bool) {
	tokens := splitAttachedUnit(strings.Fields(work))
	amount, consumed, ok := p.scanQuantity(tokens)
	if !ok {
		return recipedoc.ParsedIngredient{}, false
	}
	rest := tokens[consumed:]

	var units *string
	if unit, n, ok := p.matchUnit(rest); ok {
		units = &unit
		rest = rest[n:]
		rest = p.skipLinking(rest)
	} else if p.loc.BareCountUnit != "" {
		bare := p.loc.BareCountUnit
		units = &bare
	}

	name := strings.Join(rest, " ")
	if name == "" {
		return recipedoc.ParsedIngredient{}, false
	}
	return recipedoc.ParsedIngredient{Name: name, Amount: amount, Units: units}, true
}

// parseTrailing attempts the name-first pattern used by CJK locales:
// "薄力粉 100g", "砂糖 大さじ2". The quantity phrase sits at the end of
// the line, with the unit attached before or after the numeral.
func (p *Parser) parseTrailing(work string) (recipedoc.ParsedIngredient, bool) {
	tokens := strings.Fields(work)
	if len(tokens) < 2 {
		return recipedoc.ParsedIngredient{}, false
	}

	last := tokens[len(tokens)-1]
	name := strings.Join(tokens[:len(tokens)-1], " ")

	// Numeral with attached unit suffix: "100g", "2個".
	if m := numeralStartRe.FindStringSubmatch(last); m != nil {
		if unit, ok := p.loc.LookupUnit(m[2]); ok {
			if amount, n, ok := p.scanQuantity([]string{m[1]}); ok && n == 1 {
				return recipedoc.ParsedIngredient{Name: name, Amount: amount, Units: &unit}, true
			}
		}
	}

	// Unit prefix with attached numeral: "大さじ2", "큰술1".
	if m := numeralEndRe.FindStringSubmatch(last); m != nil {
		if unit, ok := p.loc.LookupUnit(m[1]); ok {
			if amount, n, ok := p.scanQuantity([]string{m[2]}); ok && n == 1 {
				return recipedoc.ParsedIngredient{Name: name, Amount: amount, Units: &unit}, true
			}
		}
	}

	// Separate trailing tokens: "卵 2 個", "버터 1 큰술".
	if len(tokens) >= 3 {
		if unit, ok := p.loc.LookupUnit(last); ok {
			if amount, n, ok := p.scanQuantity([]string{tokens[len(tokens)-2]}); ok && n == 1 {
				name = strings.Join(tokens[:len(tokens)-2], " ")
				if name != "" {
					return recipedoc.ParsedIngredient{Name: name, Amount: amount, Units: &unit}, true
				}
			}
		}
	}

	// Bare trailing numeral: "卵 2".
	if amount, n, ok := p.scanQuantity([]string{last}); ok && n == 1 {
		var units *string
		if p.loc.BareCountUnit != "" {
			bare := p.loc.BareCountUnit
			units = &bare
		}
		return recipedoc.ParsedIngredient{Name: name, Amount: amount, Units: units}, true
	}

	return recipedoc.ParsedIngredient{}, false
}

// parseQualitative recognizes quantity-free qualitative phrases, either
// trailing ("salt to taste", "соль по вкусу") or leading ("a pinch of
// salt"). The phrase becomes the units marker with a nil amount.
func (p *Parser) parseQualitative(work string) (recipedoc.ParsedIngredient, bool) {
	tokens := strings.Fields(work)

	if marker, rest := p.trailingQualitative(tokens); marker != "" && len(rest) > 0 {
		return recipedoc.ParsedIngredient{
			Name:  strings.Join(rest, " "),
			Units: &marker,
		}, true
	}

	// Leading phrase: longest match first.
	for k := min(4, len(tokens)-1); k >= 1; k-- {
		cand := strings.Join(tokens[:k], " ")
		if marker, ok := p.loc.LookupQualitative(cand); ok {
			return recipedoc.ParsedIngredient{
				Name:  strings.Join(tokens[k:], " "),
				Units: &marker,
			}, true
		}
	}

	return recipedoc.ParsedIngredient{}, false
}

// trailingQualitative matches the longest qualitative phrase at the end
// of the token run. Returns the canonical marker and the remaining
// leading tokens, or ("", tokens) when nothing matches.
func (p *Parser) trailingQualitative(tokens []string) (string, []string) {
	for k := min(4, len(tokens)); k >= 1; k-- {
		cand := strings.Join(tokens[len(tokens)-k:], " ")
		cand = strings.Trim(cand, ",;")
		if marker, ok := p.loc.LookupQualitative(cand); ok {
			rest := tokens[:len(tokens)-k]
			// The preceding token may carry the separating comma.
			if len(rest) > 0 {
				rest = append(rest[:len(rest)-1:len(rest)-1], strings.TrimRight(rest[len(rest)-1], ",;"))
			}
			return marker, rest
		}
	}
	return "", tokens
}

// splitConjunction splits a token run into ingredient pieces on commas
// and locale conjunction words.
func (p *Parser) splitConjunction(tokens []string) []string {
	var pieces []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			pieces = append(pieces, strings.Join(cur, " "))
			cur = nil
		}
	}
	for _, tok := range tokens {
		trimmed := strings.TrimRight(tok, ",;")
		isConj := false
		folded := foldKey(p.loc.folder, trimmed)
		for _, c := range p.loc.conjunction {
			if folded == c {
				isConj = true
				break
			}
		}
		if isConj {
			flush()
			continue
		}
		if trimmed != "" {
			cur = append(cur, trimmed)
		}
		if trimmed != tok { // token ended with a comma
			flush()
		}
	}
	flush()
	return pieces
}

// scanQuantity reads a leading quantity expression from the token run:
// integer, decimal, simple fraction, mixed number ("1 1/2", "1 and
// 1/2", glyph-derived "1 0.5"), or range (the lower bound is kept).
// Malformed fractions keep the original substring as the amount rather
// than failing the parse.
func (p *Parser) scanQuantity(tokens []string) (any, int, bool) {
	if len(tokens) == 0 {
		return nil, 0, false
	}

	first, ok, malformed := parseNumeral(tokens[0])
	if malformed {
		return tokens[0], 1, true
	}
	if !ok {
		return nil, 0, false
	}

	// Mixed number continuation: an integer followed by a fraction or a
	// sub-unit decimal produced by glyph substitution.
	if first == math.Trunc(first) && len(tokens) > 1 {
		if frac, ok, bad := parseFractionToken(tokens[1]); ok && !bad {
			return toAmount(first + frac), 2, true
		}
		if isDecimalBelowOne(tokens[1]) {
			v, _ := strconv.ParseFloat(tokens[1], 64)
			return toAmount(first + v), 2, true
		}
		if len(tokens) > 2 && p.isNumberJoin(tokens[1]) {
			if frac, ok, bad := parseFractionToken(tokens[2]); ok && !bad {
				return toAmount(first + frac), 3, true
			}
		}
	}

	return toAmount(first), 1, true
}

// matchUnit matches a unit token run after the quantity, longest run
// first so multi-word units ("ملعقة كبيرة", "c. à soupe") win over
// their prefixes. Matching is whole-token, so "large" can never collide
// with the unit "l".
func (p *Parser) matchUnit(tokens []string) (string, int, bool) {
	for n := min(3, len(tokens)); n >= 1; n-- {
		cand := strings.Join(tokens[:n], " ")
		cand = strings.TrimRight(cand, ".,")
		if unit, ok := p.loc.LookupUnit(cand); ok {
			return unit, n, true
		}
	}
	return "", 0, false
}

// skipLinking drops a linking word between unit and name
// ("2 cups of flour").
func (p *Parser) skipLinking(tokens []string) []string {
	if len(tokens) < 2 {
		return tokens
	}
	folded := foldKey(p.loc.folder, tokens[0])
	for _, l := range p.loc.linking {
		if folded == l {
			return tokens[1:]
		}
	}
	return tokens
}

func (p *Parser) isNumberJoin(tok string) bool {
	folded := foldKey(p.loc.folder, tok)
	for _, j := range p.loc.numberJoin {
		if folded == j {
			return true
		}
	}
	return false
}

// cleanupName strips trailing qualifier clauses ("optional",
// preparation participles after a comma) and separators. It never
// reduces a name to empty: when stripping would, the pre-strip text is
// kept.
func (p *Parser) cleanupName(name string) string {
	orig := strings.TrimSpace(name)
	out := strings.Trim(orig, " ,;")

	for {
		idx := strings.LastIndex(out, ",")
		if idx < 0 {
			break
		}
		clause := foldKey(p.loc.folder, strings.Trim(out[idx+1:], " ,;"))
		if !p.isTrailingQualifier(clause) {
			break
		}
		out = strings.Trim(out[:idx], " ,;")
	}

	// Qualifier phrases also trail without a comma ("salt to taste").
	for {
		stripped := false
		folded := foldKey(p.loc.folder, out)
		for _, q := range p.loc.trailing {
			if folded == q {
				continue // never strip a qualifier that is the whole name
			}
			if strings.HasSuffix(folded, " "+q) {
				cut := trimSuffixTokens(out, strings.Count(q, " ")+1)
				if cut != "" {
					out = strings.Trim(cut, " ,;")
					stripped = true
					break
				}
			}
		}
		if !stripped {
			break
		}
	}

	if out == "" {
		return orig
	}
	return out
}

func (p *Parser) isTrailingQualifier(clause string) bool {
	for _, q := range p.loc.trailing {
		if clause == q {
			return true
		}
	}
	return false
}

// trimSuffixTokens removes the last n whitespace-separated tokens.
func trimSuffixTokens(s string, n int) string {
	tokens := strings.Fields(s)
	if len(tokens) <= n {
		return ""
	}
	return strings.Join(tokens[:len(tokens)-n], " ")
}

// splitAttachedUnit splits a leading token like "500g" or "350-400g"
// into a numeral token and a candidate unit token.
func splitAttachedUnit(tokens []string) []string {
	if len(tokens) == 0 {
		return tokens
	}
	m := numeralStartRe.FindStringSubmatch(tokens[0])
	if m == nil {
		return tokens
	}
	if r := []rune(m[2]); !unicode.IsLetter(r[0]) {
		return tokens
	}
	out := make([]string, 0, len(tokens)+1)
	out = append(out, m[1], strings.TrimSpace(m[2]))
	return append(out, tokens[1:]...)
}

// parseNumeral parses an integer, decimal, fraction, or range token.
// The bool results report (matched, malformed); a malformed numeral is
// one that looks numeric but cannot convert (zero denominator).
func parseNumeral(tok string) (float64, bool, bool) {
	tok = strings.TrimRight(tok, ".,")
	if m := rangeRe.FindStringSubmatch(tok); m != nil {
		// Range policy: the lower bound is the representative amount.
		low, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false, true
		}
		return low, true, false
	}
	if v, ok, bad := parseFractionToken(tok); ok || bad {
		return v, ok, bad
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || v < 0 {
		return 0, false, false
	}
	return v, true, false
}

// parseFractionToken parses "a/b" tokens. Thirds and other non-exact
// values round to two decimal places, matching the glyph table.
func parseFractionToken(tok string) (float64, bool, bool) {
	m := fractionRe.FindStringSubmatch(tok)
	if m == nil {
		return 0, false, false
	}
	num, err1 := strconv.ParseFloat(m[1], 64)
	den, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0, false, true
	}
	return math.Round(num/den*100) / 100, true, false
}

func isDecimalBelowOne(tok string) bool {
	if !strings.HasPrefix(tok, "0.") {
		return false
	}
	v, err := strconv.ParseFloat(tok, 64)
	return err == nil && v < 1
}

// toAmount converts a parsed value to the exported amount type: int
// when whole-valued, float64 otherwise.
func toAmount(v float64) any {
	if v == math.Trunc(v) {
		return int(v)
	}
	return v
}
