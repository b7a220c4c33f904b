package ingredient

import (
	"strings"

	"golang.org/x/text/cases"
)

// Locale holds the per-locale parsing configuration: the unit alias
// table, qualitative-quantity phrases, trailing qualifiers, and the
// tokenization conventions that differ between locale groups. A Locale
// is immutable after construction and is injected into a Parser; there
// is no ambient global vocabulary.
type Locale struct {
	// Name identifies the locale group (e.g. "en", "fr").
	Name string

	// DecimalComma enables comma-as-decimal-separator normalization
	// inside numeral contexts ("2,5" → "2.5").
	DecimalComma bool

	// TrailingQuantity enables the trailing quantity-phrase scan used
	// by locales whose lines read name-first ("薄力粉 100g").
	TrailingQuantity bool

	// BareCountUnit, when non-empty, is assigned as the unit for bare
	// counts ("2 eggs"). Left empty, bare counts carry a nil unit.
	BareCountUnit string

	units       map[string]string
	qualitative map[string]string
	trailing    []string
	linking     []string
	conjunction []string
	numberJoin  []string

	folder cases.Caser
}

// LocaleConfig carries the raw per-locale tables used to build a Locale.
type LocaleConfig struct {
	Name             string
	DecimalComma     bool
	TrailingQuantity bool
	BareCountUnit    string

	// Units maps raw unit spellings to canonical unit names.
	Units map[string]string

	// Qualitative maps qualitative-quantity phrases ("to taste",
	// "a pinch of") to the unit marker they carry.
	Qualitative map[string]string

	// Trailing lists qualifier clauses stripped from the end of a name
	// ("optional", preparation participles after a comma).
	Trailing []string

	// Linking lists words dropped between a unit and the name
	// ("2 cups of flour").
	Linking []string

	// Conjunction lists tokens that join multiple ingredients on one
	// line ("salt and pepper").
	Conjunction []string

	// NumberJoin lists words that join the parts of a spelled-out mixed
	// number ("1 and 1/2").
	NumberJoin []string
}

// NewLocale builds an immutable Locale from a config. Unit and phrase
// keys are folded so lookups are case-insensitive and ignore
// abbreviation periods.
func NewLocale(cfg LocaleConfig) Locale {
	folder := cases.Fold()
	loc := Locale{
		Name:             cfg.Name,
		DecimalComma:     cfg.DecimalComma,
		TrailingQuantity: cfg.TrailingQuantity,
		BareCountUnit:    cfg.BareCountUnit,
		units:            make(map[string]string, len(cfg.Units)),
		qualitative:      make(map[string]string, len(cfg.Qualitative)),
		trailing:         foldAll(folder, cfg.Trailing),
		linking:          foldAll(folder, cfg.Linking),
		conjunction:      foldAll(folder, cfg.Conjunction),
		numberJoin:       foldAll(folder, cfg.NumberJoin),
		folder:           folder,
	}
	for k, v := range cfg.Units {
		loc.units[foldKey(folder, k)] = v
	}
	for k, v := range cfg.Qualitative {
		loc.qualitative[foldKey(folder, k)] = v
	}
	return loc
}

// LookupUnit resolves a raw unit token (or space-joined token run) to
// its canonical name. The empty result reports not-a-unit.
func (l Locale) LookupUnit(raw string) (string, bool) {
	u, ok := l.units[foldKey(l.folder, raw)]
	return u, ok
}

// LookupQualitative resolves a qualitative-quantity phrase to its unit
// marker.
func (l Locale) LookupQualitative(raw string) (string, bool) {
	q, ok := l.qualitative[foldKey(l.folder, raw)]
	return q, ok
}

// foldKey folds case, drops abbreviation periods and collapses interior
// whitespace so "Tbsp." and "tbsp", or "ст. л" and "ст.л", compare equal.
func foldKey(folder cases.Caser, s string) string {
	s = strings.ReplaceAll(s, ".", " ")
	s = strings.Join(strings.Fields(s), " ")
	return folder.String(s)
}

func foldAll(folder cases.Caser, in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = foldKey(folder, s)
	}
	return out
}

// English returns the locale for US/UK sites.
func English() Locale {
	return NewLocale(LocaleConfig{
		Name:  "en",
		Units: englishUnits,
		Qualitative: map[string]string{
			"to taste":     "to taste",
			"or to taste":  "to taste",
			"as needed":    "as needed",
			"a pinch of":   UnitPinch,
			"pinch of":     UnitPinch,
			"a dash of":    UnitDash,
			"dash of":      UnitDash,
			"a handful of": UnitHandful,
			"some":         "some",
			"a few":        "a few",
		},
		Trailing: []string{
			"to taste", "or to taste", "as needed", "optional", "for garnish",
			"for serving", "chopped", "minced", "diced", "sliced", "beaten",
			"melted", "softened", "grated", "peeled", "crushed", "divided",
			"at room temperature",
		},
		Conjunction: []string{"and"},
		Linking:     []string{"of"},
		NumberJoin:  []string{"and"},
	})
}

// French returns the locale for French sites.
func French() Locale {
	return NewLocale(LocaleConfig{
		Name:         "fr",
		DecimalComma: true,
		Units:        frenchUnits,
		Qualitative: map[string]string{
			"au goût":         "to taste",
			"selon le goût":   "to taste",
			"une pincée de":   UnitPinch,
			"selon les goûts": "to taste",
		},
		Trailing: []string{
			"au goût", "facultatif", "haché", "hachée", "émincé", "émincée",
			"fondu", "fondue", "râpé", "râpée", "pelé", "pelée",
		},
		Conjunction: []string{"et"},
		Linking:     []string{"de", "d'"},
		NumberJoin:  []string{"et"},
	})
}

// German returns the locale for German sites.
func German() Locale {
	return NewLocale(LocaleConfig{
		Name:         "de",
		DecimalComma: true,
		Units:        germanUnits,
		Qualitative: map[string]string{
			"nach geschmack": "to taste",
			"nach bedarf":    "as needed",
			"etwas":          "some",
		},
		Trailing: []string{
			"nach geschmack", "optional", "gehackt", "gewürfelt", "gerieben",
			"geschmolzen", "geschält",
		},
		Conjunction: []string{"und"},
		Linking:     []string{},
		NumberJoin:  []string{"und"},
	})
}

// Italian returns the locale for Italian sites.
func Italian() Locale {
	return NewLocale(LocaleConfig{
		Name:         "it",
		DecimalComma: true,
		Units:        italianUnits,
		Qualitative: map[string]string{
			"q.b":      "to taste",
			"qb":       "to taste",
			"a piacere": "to taste",
		},
		Trailing: []string{
			"q.b", "a piacere", "facoltativo", "tritato", "tritata",
			"affettato", "affettata", "grattugiato", "grattugiata",
		},
		Conjunction: []string{"e"},
		Linking:     []string{"di", "d'"},
		NumberJoin:  []string{"e"},
	})
}

// Polish returns the locale for Polish sites.
func Polish() Locale {
	return NewLocale(LocaleConfig{
		Name:         "pl",
		DecimalComma: true,
		Units:        polishUnits,
		Qualitative: map[string]string{
			"do smaku":      "to taste",
			"według uznania": "to taste",
			"szczypta":      UnitPinch,
		},
		Trailing: []string{
			"do smaku", "opcjonalnie", "posiekany", "posiekana", "starty",
			"starta", "pokrojony", "pokrojona",
		},
		Conjunction: []string{"i", "oraz"},
		Linking:     []string{},
		NumberJoin:  []string{"i"},
	})
}

// Portuguese returns the locale for Portuguese/Brazilian sites.
func Portuguese() Locale {
	return NewLocale(LocaleConfig{
		Name:         "pt",
		DecimalComma: true,
		Units:        portugueseUnits,
		Qualitative: map[string]string{
			"a gosto":      "to taste",
			"ao gosto":     "to taste",
			"quanto baste": "to taste",
		},
		Trailing: []string{
			"a gosto", "ao gosto", "opcional", "picado", "picada", "ralado",
			"ralada", "fatiado", "fatiada",
		},
		Conjunction: []string{"e"},
		Linking:     []string{"de", "da", "do"},
		NumberJoin:  []string{"e"},
	})
}

// Russian returns the locale for Russian sites.
func Russian() Locale {
	return NewLocale(LocaleConfig{
		Name:         "ru",
		DecimalComma: true,
		Units:        russianUnits,
		Qualitative: map[string]string{
			"по вкусу":    "to taste",
			"по желанию":  "as needed",
			"щепотка":     UnitPinch,
		},
		Trailing: []string{
			"по вкусу", "по желанию", "измельчённый", "измельченный",
			"нарезанный", "тёртый", "тертый",
		},
		Conjunction: []string{"и"},
		Linking:     []string{},
		NumberJoin:  []string{"и"},
	})
}

// Greek returns the locale for Greek sites.
func Greek() Locale {
	return NewLocale(LocaleConfig{
		Name:         "el",
		DecimalComma: true,
		Units:        greekUnits,
		Qualitative: map[string]string{
			"κατά βούληση": "to taste",
			"όσο χρειάζεται": "as needed",
		},
		Trailing: []string{
			"κατά βούληση", "προαιρετικά", "ψιλοκομμένο", "ψιλοκομμένη",
			"τριμμένο", "τριμμένη",
		},
		Conjunction: []string{"και"},
		Linking:     []string{},
		NumberJoin:  []string{"και"},
	})
}

// Arabic returns the locale for Arabic sites.
func Arabic() Locale {
	return NewLocale(LocaleConfig{
		Name:  "ar",
		Units: arabicUnits,
		Qualitative: map[string]string{
			"حسب الرغبة": "to taste",
			"حسب الحاجة": "as needed",
		},
		Trailing: []string{
			"حسب الرغبة", "اختياري", "مفروم", "مفرومة", "مبشور", "مبشورة",
		},
		Conjunction: []string{"و"},
		Linking:     []string{"من"},
		NumberJoin:  []string{"و"},
	})
}

// Japanese returns the locale for Japanese sites. Lines read
// name-first, so the trailing quantity scan is enabled.
func Japanese() Locale {
	return NewLocale(LocaleConfig{
		Name:             "ja",
		TrailingQuantity: true,
		Units:            japaneseUnits,
		Qualitative: map[string]string{
			"適量": "to taste",
			"少々": UnitPinch,
			"お好みで": "to taste",
		},
		Trailing:    []string{"適量", "お好みで"},
		Conjunction: []string{},
		Linking:     []string{},
		NumberJoin:  []string{},
	})
}

// Korean returns the locale for Korean sites. Lines read name-first,
// so the trailing quantity scan is enabled.
func Korean() Locale {
	return NewLocale(LocaleConfig{
		Name:             "ko",
		TrailingQuantity: true,
		Units:            koreanUnits,
		Qualitative: map[string]string{
			"약간":  UnitPinch,
			"적당량": "to taste",
			"기호에 따라": "to taste",
		},
		Trailing:    []string{"약간", "적당량"},
		Conjunction: []string{},
		Linking:     []string{},
		NumberJoin:  []string{},
	})
}

// Vietnamese returns the locale for Vietnamese sites.
func Vietnamese() Locale {
	return NewLocale(LocaleConfig{
		Name:         "vi",
		DecimalComma: true,
		Units:        vietnameseUnits,
		Qualitative: map[string]string{
			"vừa ăn":    "to taste",
			"tùy khẩu vị": "to taste",
			"một ít":    "some",
		},
		Trailing: []string{
			"vừa ăn", "tùy khẩu vị", "băm nhỏ", "thái lát", "xay nhuyễn",
		},
		Conjunction: []string{"và"},
		Linking:     []string{},
		NumberJoin:  []string{},
	})
}
