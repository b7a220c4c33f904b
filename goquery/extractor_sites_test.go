package goquery_test

import (
	"testing"

	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllRecipesExtractor(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<h1 class="article-heading">Classic Pancakes</h1>
<p class="article-subheading">Light and fluffy.</p>
<ul>
	<li class="mntl-structured-ingredients__list-item">2 cups all-purpose flour</li>
	<li class="mntl-structured-ingredients__list-item">1 ½ cups milk</li>
	<li class="mntl-structured-ingredients__list-item">2 eggs</li>
</ul>
<div class="recipe__steps-content"><ol>
	<li><p>Mix dry ingredients.</p></li>
	<li><p>Add wet ingredients and whisk.</p></li>
</ol></div>
<div class="mntl-recipe-details__item--prep-time"><span class="mntl-recipe-details__value">10 mins</span></div>
<div class="mntl-recipe-details__item--cook-time"><span class="mntl-recipe-details__value">15 mins</span></div>
</body></html>`

	e := goquery.NewAllRecipesExtractor()
	assert.Equal(t, "allrecipes", e.Name())

	r, err := e.ExtractAll(html)
	require.NoError(t, err)

	require.NotNil(t, r.DishName)
	assert.Equal(t, "Classic Pancakes", *r.DishName)
	require.NotNil(t, r.PrepTime)
	assert.Equal(t, "10 minutes", *r.PrepTime)
	require.NotNil(t, r.CookTime)
	assert.Equal(t, "15 minutes", *r.CookTime)

	items, err := r.ParsedIngredients()
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "all-purpose flour", items[0].Name)
	assert.EqualValues(t, 2, items[0].Amount)
	require.NotNil(t, items[0].Units)
	assert.Equal(t, "cup", *items[0].Units)

	assert.Equal(t, "milk", items[1].Name)
	assert.EqualValues(t, 1.5, items[1].Amount)

	assert.Equal(t, "eggs", items[2].Name)
	assert.EqualValues(t, 2, items[2].Amount)
	assert.Nil(t, items[2].Units)
}

func TestMarmitonExtractor(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<h1 class="main-title">Quiche lorraine</h1>
<div class="mrtn-recette_ingredients-items">
	<div class="card-ingredient">200 g de lardons</div>
	<div class="card-ingredient">20 cl de crème fraîche</div>
	<div class="card-ingredient">sel, poivre</div>
</div>
<div class="recipe-step-list__container"><p>Étaler la pâte.</p><p>Verser l'appareil.</p></div>
<div class="recipe-primary__item--preparation"><span>15 min</span></div>
<div class="recipe-primary__item--cooking"><span>45 min</span></div>
</body></html>`

	e := goquery.NewMarmitonExtractor()
	assert.Equal(t, "marmiton", e.Name())

	r, err := e.ExtractAll(html)
	require.NoError(t, err)

	require.NotNil(t, r.DishName)
	assert.Equal(t, "Quiche lorraine", *r.DishName)
	require.NotNil(t, r.CookTime)
	assert.Equal(t, "45 minutes", *r.CookTime)

	items, err := r.ParsedIngredients()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(items), 2)

	assert.Equal(t, "lardons", items[0].Name)
	assert.EqualValues(t, 200, items[0].Amount)
	require.NotNil(t, items[0].Units)
	assert.Equal(t, "gram", *items[0].Units)

	assert.Equal(t, "crème fraîche", items[1].Name)
	assert.EqualValues(t, 20, items[1].Amount)
	require.NotNil(t, items[1].Units)
	assert.Equal(t, "centiliter", *items[1].Units)
}

func TestCookpadExtractor(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<h1 class="recipe-title">ふわふわパンケーキ</h1>
<div id="ingredients_list">
	<div class="ingredient_row">薄力粉 100g</div>
	<div class="ingredient_row">砂糖 大さじ2</div>
	<div class="ingredient_row">卵 2個</div>
	<div class="ingredient_row">塩 適量</div>
</div>
<div id="steps"><p class="step_text">粉をふるう。</p><p class="step_text">焼く。</p></div>
</body></html>`

	e := goquery.NewCookpadExtractor()
	assert.Equal(t, "cookpad", e.Name())

	r, err := e.ExtractAll(html)
	require.NoError(t, err)

	require.NotNil(t, r.DishName)
	assert.Equal(t, "ふわふわパンケーキ", *r.DishName)

	items, err := r.ParsedIngredients()
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, "薄力粉", items[0].Name)
	assert.EqualValues(t, 100, items[0].Amount)
	require.NotNil(t, items[0].Units)
	assert.Equal(t, "gram", *items[0].Units)

	assert.Equal(t, "砂糖", items[1].Name)
	assert.EqualValues(t, 2, items[1].Amount)
	require.NotNil(t, items[1].Units)
	assert.Equal(t, "tablespoon", *items[1].Units)

	assert.Equal(t, "卵", items[2].Name)
	assert.EqualValues(t, 2, items[2].Amount)
	require.NotNil(t, items[2].Units)
	assert.Equal(t, "piece", *items[2].Units)

	assert.Equal(t, "塩", items[3].Name)
	assert.Nil(t, items[3].Amount)
	require.NotNil(t, items[3].Units)
	assert.Equal(t, "to taste", *items[3].Units)
}

func TestGenericExtractor(t *testing.T) {
	t.Parallel()

	t.Run("microformat markup", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 itemprop="name">Site-less Stew</h1>
<span itemprop="recipeIngredient">1 lb beef chuck</span>
<span itemprop="recipeIngredient">2 carrots</span>
<div itemprop="recipeInstructions"><li>Brown the beef.</li><li>Simmer.</li></div>
</body></html>`

		e := goquery.NewGenericExtractor()
		assert.Equal(t, "generic", e.Name())

		r, err := e.ExtractAll(html)
		require.NoError(t, err)

		require.NotNil(t, r.DishName)
		assert.Equal(t, "Site-less Stew", *r.DishName)

		items, err := r.ParsedIngredients()
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "beef chuck", items[0].Name)
		require.NotNil(t, items[0].Units)
		assert.Equal(t, "pound", *items[0].Units)
	})

	t.Run("all site constructors satisfy Extractor", func(t *testing.T) {
		t.Parallel()

		extractors := []recipedoc.Extractor{
			goquery.NewAllRecipesExtractor(),
			goquery.NewBBCGoodFoodExtractor(),
			goquery.NewMarmitonExtractor(),
			goquery.NewChefkochExtractor(),
			goquery.NewGialloZafferanoExtractor(),
			goquery.NewKwestiaSmakuExtractor(),
			goquery.NewPovarenokExtractor(),
			goquery.NewArgiroExtractor(),
			goquery.NewShahiyaExtractor(),
			goquery.NewCookpadExtractor(),
			goquery.NewTenThousandRecipeExtractor(),
			goquery.NewMonNgonExtractor(),
		}
		seen := make(map[string]bool)
		for _, e := range extractors {
			name := e.Name()
			assert.NotEmpty(t, name)
			assert.False(t, seen[name], "duplicate extractor name %q", name)
			seen[name] = true
		}
	})
}
