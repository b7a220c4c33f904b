package recipedoc

import "context"

// RecipeWriter persists extracted recipe records.
type RecipeWriter interface {
	// WriteRecipe stores one recipe record under the given relative
	// path. Implementations decide the encoding and the final location.
	WriteRecipe(ctx context.Context, relPath string, recipe *Recipe) error
}
