package ingredient_test

import (
	"testing"

	"github.com/recipedoc/recipedoc/ingredient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_FullPattern(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.English())

	t.Run("vulgar fraction with unit", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("½ cup sugar")
		assert.Equal(t, "sugar", rec.Name)
		assert.Equal(t, 0.5, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "cup", *rec.Units)
	})

	t.Run("mixed number", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("1 1/2 cups flour")
		assert.Equal(t, "flour", rec.Name)
		assert.Equal(t, 1.5, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "cup", *rec.Units)
	})

	t.Run("spelled-out mixed number", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("1 and 1/2 cups flour")
		assert.Equal(t, "flour", rec.Name)
		assert.Equal(t, 1.5, rec.Amount)
	})

	t.Run("glyph attached to integer", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("1½ cups flour")
		assert.Equal(t, 1.5, rec.Amount)
	})

	t.Run("canonicalizes abbreviations", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("2 Tbsp. olive oil")
		assert.Equal(t, "olive oil", rec.Name)
		assert.Equal(t, 2, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "tablespoon", *rec.Units)
	})

	t.Run("drops linking word after unit", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("2 cups of flour")
		assert.Equal(t, "flour", rec.Name)
	})

	t.Run("attached metric unit", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("500g all-purpose flour")
		assert.Equal(t, "all-purpose flour", rec.Name)
		assert.Equal(t, 500, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "gram", *rec.Units)
	})

	t.Run("strips parenthetical aside", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("1 cup (240ml) whole milk")
		assert.Equal(t, "whole milk", rec.Name)
		assert.Equal(t, 1, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "cup", *rec.Units)
	})
}

func TestParser_Parse_BareCount(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.English())

	rec := p.Parse("2 eggs")
	assert.Equal(t, "eggs", rec.Name)
	assert.Equal(t, 2, rec.Amount)
	assert.Nil(t, rec.Units)
}

func TestParser_Parse_UnitWordBoundary(t *testing.T) {
	t.Parallel()

	// "large" must never partially match the unit "l".
	p := ingredient.NewParser(ingredient.English())

	rec := p.Parse("1 large onion")
	assert.Equal(t, "large onion", rec.Name)
	assert.Equal(t, 1, rec.Amount)
	assert.Nil(t, rec.Units)
}

func TestParser_Parse_Qualitative(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.English())

	t.Run("trailing phrase becomes units marker", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("salt to taste")
		assert.Equal(t, "salt", rec.Name)
		assert.Nil(t, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "to taste", *rec.Units)
	})

	t.Run("trailing phrase after comma", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("salt, to taste")
		assert.Equal(t, "salt", rec.Name)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "to taste", *rec.Units)
	})

	t.Run("leading phrase", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("a pinch of nutmeg")
		assert.Equal(t, "nutmeg", rec.Name)
		assert.Nil(t, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "pinch", *rec.Units)
	})

	t.Run("phrase alone falls back to whole line", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("to taste")
		assert.Equal(t, "to taste", rec.Name)
		assert.Nil(t, rec.Units)
	})
}

func TestParser_Parse_TotalFallback(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.English())

	rec := p.Parse("a splash of love")
	assert.Equal(t, "a splash of love", rec.Name)
	assert.Nil(t, rec.Amount)
	assert.Nil(t, rec.Units)
}

func TestParser_Parse_Totality(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.English())

	for _, line := range []string{
		"", "   ", "\t\n", "no digits here", "(melted)", "1", "1/0 cup flour",
		"2-", "———", "½", "and and and",
	} {
		assert.NotPanics(t, func() {
			rec := p.Parse(line)
			_ = rec.Name
		}, "input %q", line)
	}
}

func TestParser_Parse_MalformedFractionKeepsSubstring(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.English())

	rec := p.Parse("1/0 cup flour")
	assert.Equal(t, "flour", rec.Name)
	assert.Equal(t, "1/0", rec.Amount)
	require.NotNil(t, rec.Units)
	assert.Equal(t, "cup", *rec.Units)
}

func TestParser_Parse_RangeKeepsLowerBound(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.English())

	t.Run("attached unit", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("350-400g flour")
		assert.Equal(t, "flour", rec.Name)
		assert.Equal(t, 350, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "gram", *rec.Units)
	})

	t.Run("bare range", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("2-3 apples")
		assert.Equal(t, "apples", rec.Name)
		assert.Equal(t, 2, rec.Amount)
		assert.Nil(t, rec.Units)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		first := p.Parse("350-400g flour")
		second := p.Parse("350-400g flour")
		assert.Equal(t, first, second)
	})
}

func TestParser_Parse_NameCleanup(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.English())

	t.Run("strips trailing participle after comma", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("2 large eggs, beaten")
		assert.Equal(t, "large eggs", rec.Name)
		assert.Equal(t, 2, rec.Amount)
		assert.Nil(t, rec.Units)
	})

	t.Run("strips stacked qualifiers", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("1 cup walnuts, chopped, optional")
		assert.Equal(t, "walnuts", rec.Name)
	})

	t.Run("keeps qualifier that is the whole name", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("(melted)")
		assert.NotEmpty(t, rec.Name)
	})
}

func TestParser_Parse_HyphenatedWordAfterCount(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.English())

	rec := p.Parse("2-egg omelette")
	assert.Equal(t, "2-egg omelette", rec.Name)
}

func TestParser_Normalize_Idempotent(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.French())

	for _, line := range []string{
		"2 1/2 cups all-purpose flour",
		"  ½  cup   sugar ",
		"2,5 dl de crème",
		"1½ tasse de farine",
		"sel au goût",
	} {
		once := p.Normalize(line)
		assert.Equal(t, once, p.Normalize(once), "input %q", line)
	}
}

func TestParser_ParseAll(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.English())

	t.Run("splits conjunction with shared qualifier", func(t *testing.T) {
		t.Parallel()

		recs := p.ParseAll("salt and pepper to taste")
		require.Len(t, recs, 2)

		assert.Equal(t, "salt", recs[0].Name)
		require.NotNil(t, recs[0].Units)
		assert.Equal(t, "to taste", *recs[0].Units)

		assert.Equal(t, "pepper", recs[1].Name)
		require.NotNil(t, recs[1].Units)
		assert.Equal(t, "to taste", *recs[1].Units)
	})

	t.Run("never splits lines with digits", func(t *testing.T) {
		t.Parallel()

		recs := p.ParseAll("2 cups flour and sugar")
		require.Len(t, recs, 1)
	})

	t.Run("single ingredient passes through", func(t *testing.T) {
		t.Parallel()

		recs := p.ParseAll("salt to taste")
		require.Len(t, recs, 1)
		assert.Equal(t, "salt", recs[0].Name)
	})

	t.Run("empty line yields one empty-name record", func(t *testing.T) {
		t.Parallel()

		recs := p.ParseAll("")
		require.Len(t, recs, 1)
		assert.Empty(t, recs[0].Name)
	})
}

func TestParser_Parse_FrenchLocale(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.French())

	t.Run("metric with linking word", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("500 g de farine")
		assert.Equal(t, "farine", rec.Name)
		assert.Equal(t, 500, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "gram", *rec.Units)
	})

	t.Run("comma decimal", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("2,5 dl de crème")
		assert.Equal(t, "crème", rec.Name)
		assert.Equal(t, 2.5, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "deciliter", *rec.Units)
	})

	t.Run("multi-word unit", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("2 cuillères à soupe de sucre")
		assert.Equal(t, "sucre", rec.Name)
		assert.Equal(t, 2, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "tablespoon", *rec.Units)
	})
}

func TestParser_Parse_RussianLocale(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.Russian())

	t.Run("abbreviated spoon unit", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("2 ст. л. сахара")
		assert.Equal(t, "сахара", rec.Name)
		assert.Equal(t, 2, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "tablespoon", *rec.Units)
	})

	t.Run("qualitative phrase", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("соль по вкусу")
		assert.Equal(t, "соль", rec.Name)
		assert.Nil(t, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "to taste", *rec.Units)
	})

	t.Run("piece unit", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("2 шт яйца")
		assert.Equal(t, "яйца", rec.Name)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "piece", *rec.Units)
	})
}

func TestParser_Parse_ItalianLocale(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.Italian())

	rec := p.Parse("sale q.b.")
	assert.Equal(t, "sale", rec.Name)
	assert.Nil(t, rec.Amount)
	require.NotNil(t, rec.Units)
	assert.Equal(t, "to taste", *rec.Units)
}

func TestParser_Parse_JapaneseLocale(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.Japanese())

	t.Run("name-first with attached metric unit", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("薄力粉 100g")
		assert.Equal(t, "薄力粉", rec.Name)
		assert.Equal(t, 100, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "gram", *rec.Units)
	})

	t.Run("spoon unit before numeral", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("砂糖 大さじ2")
		assert.Equal(t, "砂糖", rec.Name)
		assert.Equal(t, 2, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "tablespoon", *rec.Units)
	})

	t.Run("counter suffix", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("卵 2個")
		assert.Equal(t, "卵", rec.Name)
		assert.Equal(t, 2, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "piece", *rec.Units)
	})

	t.Run("qualitative quantity", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("塩 適量")
		assert.Equal(t, "塩", rec.Name)
		assert.Nil(t, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "to taste", *rec.Units)
	})
}

func TestParser_Parse_KoreanLocale(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.Korean())

	rec := p.Parse("버터 1큰술")
	assert.Equal(t, "버터", rec.Name)
	assert.Equal(t, 1, rec.Amount)
	require.NotNil(t, rec.Units)
	assert.Equal(t, "tablespoon", *rec.Units)
}

func TestParser_Parse_ArabicLocale(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.Arabic())

	rec := p.Parse("2 ملعقة كبيرة سكر")
	assert.Equal(t, "سكر", rec.Name)
	assert.Equal(t, 2, rec.Amount)
	require.NotNil(t, rec.Units)
	assert.Equal(t, "tablespoon", *rec.Units)
}

func TestParser_Parse_PolishLocale(t *testing.T) {
	t.Parallel()

	p := ingredient.NewParser(ingredient.Polish())

	t.Run("spoon unit", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("2 łyżki cukru")
		assert.Equal(t, "cukru", rec.Name)
		assert.Equal(t, 2, rec.Amount)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "tablespoon", *rec.Units)
	})

	t.Run("qualitative phrase", func(t *testing.T) {
		t.Parallel()

		rec := p.Parse("sól do smaku")
		assert.Equal(t, "sól", rec.Name)
		require.NotNil(t, rec.Units)
		assert.Equal(t, "to taste", *rec.Units)
	})
}

func TestParser_Parse_BareCountDefaultUnit(t *testing.T) {
	t.Parallel()

	// A locale may opt into a synthetic unit for bare counts.
	loc := ingredient.NewLocale(ingredient.LocaleConfig{
		Name:          "en",
		BareCountUnit: "piece",
		Units:         map[string]string{"cup": "cup"},
	})
	p := ingredient.NewParser(loc)

	rec := p.Parse("2 eggs")
	assert.Equal(t, "eggs", rec.Name)
	require.NotNil(t, rec.Units)
	assert.Equal(t, "piece", *rec.Units)
}
