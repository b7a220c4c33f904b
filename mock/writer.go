package mock

import (
	"context"

	"github.com/recipedoc/recipedoc"
)

var _ recipedoc.RecipeWriter = (*RecipeWriter)(nil)

// RecipeWriter is a mock implementation of recipedoc.RecipeWriter.
type RecipeWriter struct {
	WriteRecipeFn func(ctx context.Context, relPath string, recipe *recipedoc.Recipe) error
}

func (w *RecipeWriter) WriteRecipe(ctx context.Context, relPath string, recipe *recipedoc.Recipe) error {
	return w.WriteRecipeFn(ctx, relPath, recipe)
}
