package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/recipedoc/recipedoc"
	"github.com/recipedoc/recipedoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestWriter_WriteRecipe(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON record with all keys", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		recipe := &recipedoc.Recipe{DishName: strptr("Bibimbap")}
		require.NoError(t, w.WriteRecipe(context.Background(), "10000recipe/bibimbap.html", recipe))

		raw, err := os.ReadFile(filepath.Join(dir, "10000recipe", "bibimbap.json"))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, "Bibimbap", decoded["dish_name"])

		// Null fields stay present in the record.
		for _, key := range []string{"description", "ingredients", "instructions", "category",
			"prep_time", "cook_time", "total_time", "notes", "tags", "image_urls"} {
			v, ok := decoded[key]
			assert.True(t, ok, "missing key %q", key)
			assert.Nil(t, v, "key %q should be null", key)
		}
	})

	t.Run("skips rewrite when content is unchanged", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		recipe := &recipedoc.Recipe{DishName: strptr("Pho")}

		require.NoError(t, w.WriteRecipe(context.Background(), "pho.html", recipe))

		path := filepath.Join(dir, "pho.json")
		before, err := os.Stat(path)
		require.NoError(t, err)

		// Push the mtime into the past so an unwanted rewrite is visible.
		old := time.Now().Add(-time.Hour)
		require.NoError(t, os.Chtimes(path, old, old))

		require.NoError(t, w.WriteRecipe(context.Background(), "pho.html", recipe))
		after, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, after.ModTime().Before(before.ModTime()), "unchanged record was rewritten")
	})

	t.Run("rewrites when content changes", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		require.NoError(t, w.WriteRecipe(context.Background(), "r.html", &recipedoc.Recipe{DishName: strptr("v1")}))
		require.NoError(t, w.WriteRecipe(context.Background(), "r.html", &recipedoc.Recipe{DishName: strptr("v2")}))

		raw, err := os.ReadFile(filepath.Join(dir, "r.json"))
		require.NoError(t, err)
		assert.Contains(t, string(raw), "v2")
	})

	t.Run("nil recipe is invalid", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		err := w.WriteRecipe(context.Background(), "x.html", nil)
		require.Error(t, err)
		assert.Equal(t, recipedoc.EINVALID, recipedoc.ErrorCode(err))
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		w := fs.NewWriter(t.TempDir())
		err := w.WriteRecipe(ctx, "x.html", &recipedoc.Recipe{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRecordPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"allrecipes/pancakes.html", "allrecipes/pancakes.json"},
		{"page.htm", "page.json"},
		{"noext", "noext.json"},
		{"already.json", "already.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fs.RecordPath(tt.in))
	}
}
