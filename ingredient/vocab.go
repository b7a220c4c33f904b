// Package ingredient parses free-text ingredient lines into structured
// quantity/unit/name records. Parsing is total: every input produces a
// record, degrading stepwise from a full quantity+unit+name match down
// to a name-only fallback. Locale differences (decimal separators, unit
// vocabularies, qualitative phrases) are configuration, not code; the
// tokenizer shape is shared by every locale.
package ingredient

// fractions maps Unicode vulgar-fraction glyphs to decimal string
// equivalents. Thirds and sixths round to two decimal places; the loss
// is accepted, matching how the values surface in parsed amounts.
var fractions = map[rune]string{
	'½': "0.5",
	'⅓': "0.33",
	'⅔': "0.67",
	'¼': "0.25",
	'¾': "0.75",
	'⅕': "0.2",
	'⅖': "0.4",
	'⅗': "0.6",
	'⅘': "0.8",
	'⅙': "0.17",
	'⅚': "0.83",
	'⅐': "0.14",
	'⅛': "0.125",
	'⅜': "0.375",
	'⅝': "0.625",
	'⅞': "0.875",
	'⅑': "0.11",
	'⅒': "0.1",
}

// Canonical unit names. Aliases in every locale resolve to these so
// downstream consumers see one vocabulary regardless of source script.
const (
	UnitCup        = "cup"
	UnitTablespoon = "tablespoon"
	UnitTeaspoon   = "teaspoon"
	UnitGram       = "gram"
	UnitKilogram   = "kilogram"
	UnitMilligram  = "milligram"
	UnitMilliliter = "milliliter"
	UnitLiter      = "liter"
	UnitDeciliter  = "deciliter"
	UnitCentiliter = "centiliter"
	UnitOunce      = "ounce"
	UnitPound      = "pound"
	UnitPinch      = "pinch"
	UnitDash       = "dash"
	UnitClove      = "clove"
	UnitSlice      = "slice"
	UnitPiece      = "piece"
	UnitPackage    = "package"
	UnitCan        = "can"
	UnitStick      = "stick"
	UnitGlass      = "glass"
	UnitBunch      = "bunch"
	UnitSprig      = "sprig"
	UnitHandful    = "handful"
)

// metricUnits are aliases shared by most Latin-script locales.
var metricUnits = map[string]string{
	"g":     UnitGram,
	"gr":    UnitGram,
	"gram":  UnitGram,
	"grams": UnitGram,
	"kg":    UnitKilogram,
	"mg":    UnitMilligram,
	"ml":    UnitMilliliter,
	"l":     UnitLiter,
	"dl":    UnitDeciliter,
	"cl":    UnitCentiliter,
}

// englishUnits covers US/UK recipe vocabulary including common
// abbreviations. Keys are compared case-folded with trailing periods
// stripped, so "Tbsp." finds "tbsp".
var englishUnits = mergeUnits(metricUnits, map[string]string{
	"cup":         UnitCup,
	"cups":        UnitCup,
	"c":           UnitCup,
	"tablespoon":  UnitTablespoon,
	"tablespoons": UnitTablespoon,
	"tbsp":        UnitTablespoon,
	"tbs":         UnitTablespoon,
	"tbl":         UnitTablespoon,
	"teaspoon":    UnitTeaspoon,
	"teaspoons":   UnitTeaspoon,
	"tsp":         UnitTeaspoon,
	"gramme":      UnitGram,
	"grammes":     UnitGram,
	"ounce":       UnitOunce,
	"ounces":      UnitOunce,
	"oz":          UnitOunce,
	"pound":       UnitPound,
	"pounds":      UnitPound,
	"lb":          UnitPound,
	"lbs":         UnitPound,
	"liter":       UnitLiter,
	"liters":      UnitLiter,
	"litre":       UnitLiter,
	"litres":      UnitLiter,
	"pinch":       UnitPinch,
	"pinches":     UnitPinch,
	"dash":        UnitDash,
	"dashes":      UnitDash,
	"clove":       UnitClove,
	"cloves":      UnitClove,
	"slice":       UnitSlice,
	"slices":      UnitSlice,
	"piece":       UnitPiece,
	"pieces":      UnitPiece,
	"package":     UnitPackage,
	"packages":    UnitPackage,
	"pkg":         UnitPackage,
	"can":         UnitCan,
	"cans":        UnitCan,
	"stick":       UnitStick,
	"sticks":      UnitStick,
	"bunch":       UnitBunch,
	"bunches":     UnitBunch,
	"sprig":       UnitSprig,
	"sprigs":      UnitSprig,
	"handful":     UnitHandful,
})

var frenchUnits = mergeUnits(metricUnits, map[string]string{
	"tasse":            UnitCup,
	"tasses":           UnitCup,
	"cuillère à soupe": UnitTablespoon,
	"cuillères à soupe": UnitTablespoon,
	"c. à soupe":       UnitTablespoon,
	"c. à s":           UnitTablespoon,
	"cs":               UnitTablespoon,
	"cuillère à café":  UnitTeaspoon,
	"cuillères à café": UnitTeaspoon,
	"c. à café":        UnitTeaspoon,
	"c. à c":           UnitTeaspoon,
	"cc":               UnitTeaspoon,
	"verre":            UnitGlass,
	"verres":           UnitGlass,
	"gramme":           UnitGram,
	"grammes":          UnitGram,
	"litre":            UnitLiter,
	"litres":           UnitLiter,
	"pincée":           UnitPinch,
	"pincées":          UnitPinch,
	"gousse":           UnitClove,
	"gousses":          UnitClove,
	"tranche":          UnitSlice,
	"tranches":         UnitSlice,
	"sachet":           UnitPackage,
	"sachets":          UnitPackage,
	"boîte":            UnitCan,
	"boîtes":           UnitCan,
	"botte":            UnitBunch,
	"brin":             UnitSprig,
	"brins":            UnitSprig,
})

var germanUnits = mergeUnits(metricUnits, map[string]string{
	"tasse":      UnitCup,
	"tassen":     UnitCup,
	"el":         UnitTablespoon,
	"esslöffel":  UnitTablespoon,
	"tl":         UnitTeaspoon,
	"teelöffel":  UnitTeaspoon,
	"gramm":      UnitGram,
	"prise":      UnitPinch,
	"prisen":     UnitPinch,
	"zehe":       UnitClove,
	"zehen":      UnitClove,
	"scheibe":    UnitSlice,
	"scheiben":   UnitSlice,
	"stück":      UnitPiece,
	"packung":    UnitPackage,
	"päckchen":   UnitPackage,
	"dose":       UnitCan,
	"dosen":      UnitCan,
	"bund":       UnitBunch,
	"glas":       UnitGlass,
})

var italianUnits = mergeUnits(metricUnits, map[string]string{
	"tazza":      UnitCup,
	"tazze":      UnitCup,
	"cucchiaio":  UnitTablespoon,
	"cucchiai":   UnitTablespoon,
	"cucchiaino": UnitTeaspoon,
	"cucchiaini": UnitTeaspoon,
	"grammo":     UnitGram,
	"grammi":     UnitGram,
	"litro":      UnitLiter,
	"litri":      UnitLiter,
	"pizzico":    UnitPinch,
	"spicchio":   UnitClove,
	"spicchi":    UnitClove,
	"fetta":      UnitSlice,
	"fette":      UnitSlice,
	"pezzo":      UnitPiece,
	"pezzi":      UnitPiece,
	"bustina":    UnitPackage,
	"bustine":    UnitPackage,
	"scatola":    UnitCan,
	"mazzetto":   UnitBunch,
	"rametto":    UnitSprig,
	"bicchiere":  UnitGlass,
	"bicchieri":  UnitGlass,
})

var polishUnits = mergeUnits(metricUnits, map[string]string{
	"szklanka":  UnitGlass,
	"szklanki":  UnitGlass,
	"szklanek":  UnitGlass,
	"łyżka":     UnitTablespoon,
	"łyżki":     UnitTablespoon,
	"łyżek":     UnitTablespoon,
	"łyżeczka":  UnitTeaspoon,
	"łyżeczki":  UnitTeaspoon,
	"łyżeczek":  UnitTeaspoon,
	"gram":      UnitGram,
	"gramy":     UnitGram,
	"gramów":    UnitGram,
	"szczypta":  UnitPinch,
	"ząbek":     UnitClove,
	"ząbki":     UnitClove,
	"plaster":   UnitSlice,
	"plasterki": UnitSlice,
	"sztuka":    UnitPiece,
	"sztuki":    UnitPiece,
	"szt":       UnitPiece,
	"opakowanie": UnitPackage,
	"puszka":    UnitCan,
	"pęczek":    UnitBunch,
	"gałązka":   UnitSprig,
	"garść":     UnitHandful,
})

var portugueseUnits = mergeUnits(metricUnits, map[string]string{
	"xícara":          UnitCup,
	"xícaras":         UnitCup,
	"chávena":         UnitCup,
	"colher de sopa":  UnitTablespoon,
	"colheres de sopa": UnitTablespoon,
	"colher de chá":   UnitTeaspoon,
	"colheres de chá": UnitTeaspoon,
	"grama":           UnitGram,
	"gramas":          UnitGram,
	"litro":           UnitLiter,
	"litros":          UnitLiter,
	"pitada":          UnitPinch,
	"dente":           UnitClove,
	"dentes":          UnitClove,
	"fatia":           UnitSlice,
	"fatias":          UnitSlice,
	"pacote":          UnitPackage,
	"lata":            UnitCan,
	"copo":            UnitGlass,
	"copos":           UnitGlass,
	"maço":            UnitBunch,
})

var russianUnits = mergeUnits(map[string]string{
	"г":      UnitGram,
	"гр":     UnitGram,
	"грамм":  UnitGram,
	"грамма": UnitGram,
	"граммов": UnitGram,
	"кг":     UnitKilogram,
	"мл":     UnitMilliliter,
	"л":      UnitLiter,
}, map[string]string{
	"стакан":   UnitGlass,
	"стакана":  UnitGlass,
	"стаканов": UnitGlass,
	"ст. л":    UnitTablespoon,
	"ст.л":     UnitTablespoon,
	"ст. ложка": UnitTablespoon,
	"ст. ложки": UnitTablespoon,
	"столовая ложка": UnitTablespoon,
	"столовые ложки": UnitTablespoon,
	"ч. л":     UnitTeaspoon,
	"ч.л":      UnitTeaspoon,
	"ч. ложка": UnitTeaspoon,
	"чайная ложка": UnitTeaspoon,
	"чайные ложки": UnitTeaspoon,
	"щепотка":  UnitPinch,
	"зубчик":   UnitClove,
	"зубчика":  UnitClove,
	"ломтик":   UnitSlice,
	"шт":       UnitPiece,
	"штука":    UnitPiece,
	"штуки":    UnitPiece,
	"банка":    UnitCan,
	"упаковка": UnitPackage,
	"пучок":    UnitBunch,
	"веточка":  UnitSprig,
	"горсть":   UnitHandful,
})

var greekUnits = mergeUnits(metricUnits, map[string]string{
	"φλιτζάνι":  UnitCup,
	"φλιτζάνια": UnitCup,
	"φλ":        UnitCup,
	"κουταλιά":  UnitTablespoon,
	"κουταλιές": UnitTablespoon,
	"κ.σ":       UnitTablespoon,
	"κσ":        UnitTablespoon,
	"κουταλάκι": UnitTeaspoon,
	"κ.γ":       UnitTeaspoon,
	"κγ":        UnitTeaspoon,
	"γραμμάρια": UnitGram,
	"γρ":        UnitGram,
	"πρέζα":     UnitPinch,
	"σκελίδα":   UnitClove,
	"σκελίδες":  UnitClove,
	"φέτα":      UnitSlice,
	"φέτες":     UnitSlice,
	"κομμάτι":   UnitPiece,
	"κομμάτια":  UnitPiece,
	"κονσέρβα":  UnitCan,
	"ματσάκι":   UnitBunch,
	"κλωνάρι":   UnitSprig,
	"ποτήρι":    UnitGlass,
})

var arabicUnits = mergeUnits(metricUnits, map[string]string{
	"كوب":          UnitCup,
	"أكواب":        UnitCup,
	"ملعقة كبيرة":  UnitTablespoon,
	"ملاعق كبيرة":  UnitTablespoon,
	"ملعقة طعام":   UnitTablespoon,
	"ملعقة صغيرة":  UnitTeaspoon,
	"ملاعق صغيرة":  UnitTeaspoon,
	"ملعقة شاي":    UnitTeaspoon,
	"جرام":         UnitGram,
	"غرام":         UnitGram,
	"كيلو":         UnitKilogram,
	"لتر":          UnitLiter,
	"رشة":          UnitPinch,
	"فص":           UnitClove,
	"فصوص":         UnitClove,
	"شريحة":        UnitSlice,
	"شرائح":        UnitSlice,
	"قطعة":         UnitPiece,
	"قطع":          UnitPiece,
	"علبة":         UnitCan,
	"حزمة":         UnitBunch,
	"عود":          UnitSprig,
})

var japaneseUnits = map[string]string{
	"大さじ":   UnitTablespoon,
	"小さじ":   UnitTeaspoon,
	"カップ":   UnitCup,
	"g":      UnitGram,
	"グラム":   UnitGram,
	"kg":     UnitKilogram,
	"ml":     UnitMilliliter,
	"cc":     UnitMilliliter,
	"l":      UnitLiter,
	"個":      UnitPiece,
	"枚":      UnitSlice,
	"片":      UnitClove,
	"本":      UnitPiece,
	"束":      UnitBunch,
	"缶":      UnitCan,
	"袋":      UnitPackage,
	"少々":     UnitPinch,
	"ひとつまみ": UnitPinch,
}

var koreanUnits = map[string]string{
	"큰술":  UnitTablespoon,
	"큰 술": UnitTablespoon,
	"작은술": UnitTeaspoon,
	"작은 술": UnitTeaspoon,
	"티스푼": UnitTeaspoon,
	"컵":   UnitCup,
	"g":   UnitGram,
	"그램":  UnitGram,
	"kg":  UnitKilogram,
	"ml":  UnitMilliliter,
	"리터":  UnitLiter,
	"개":   UnitPiece,
	"쪽":   UnitClove,
	"장":   UnitSlice,
	"줌":   UnitHandful,
	"꼬집":  UnitPinch,
	"캔":   UnitCan,
	"봉지":  UnitPackage,
	"단":   UnitBunch,
}

var vietnameseUnits = mergeUnits(metricUnits, map[string]string{
	"muỗng canh": UnitTablespoon,
	"thìa canh":  UnitTablespoon,
	"muỗng cà phê": UnitTeaspoon,
	"thìa cà phê":  UnitTeaspoon,
	"chén":       UnitCup,
	"cốc":        UnitCup,
	"ly":         UnitGlass,
	"gam":        UnitGram,
	"lít":        UnitLiter,
	"nhúm":       UnitPinch,
	"tép":        UnitClove,
	"lát":        UnitSlice,
	"quả":        UnitPiece,
	"củ":         UnitPiece,
	"hộp":        UnitCan,
	"gói":        UnitPackage,
	"bó":         UnitBunch,
	"nhánh":      UnitSprig,
})

// mergeUnits combines alias tables; later tables win on key clashes.
func mergeUnits(tables ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, t := range tables {
		for k, v := range t {
			out[k] = v
		}
	}
	return out
}
