// Package fs provides file-based input and output for recipe extraction:
// a writer that stores recipe records as JSON files and a walker that
// feeds saved HTML pages through an extractor registry.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/recipedoc/recipedoc"
)

// Ensure Writer implements recipedoc.RecipeWriter at compile time.
var _ recipedoc.RecipeWriter = (*Writer)(nil)

// Writer writes recipe records as JSON files to a directory. A record
// whose content hash matches the file already on disk is skipped, so
// re-running extraction over an unchanged corpus leaves mtimes alone.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteRecipe encodes the recipe as indented JSON and writes it to
// baseDir/relPath, creating parent directories as needed. The ".json"
// extension replaces the source extension when relPath does not already
// carry it.
func (w *Writer) WriteRecipe(ctx context.Context, relPath string, recipe *recipedoc.Recipe) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if recipe == nil {
		return recipedoc.Errorf(recipedoc.EINVALID, "nil recipe")
	}

	content, err := json.MarshalIndent(recipe, "", "  ")
	if err != nil {
		return recipedoc.Errorf(recipedoc.EINTERNAL, "failed to encode recipe: %v", err)
	}
	content = append(content, '\n')

	fullPath := filepath.Join(w.baseDir, RecordPath(relPath))
	if unchanged(fullPath, content) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, content, 0644)
}

// RecordPath converts a source-relative path to the output record path.
// Example: allrecipes/pancakes.html → allrecipes/pancakes.json
func RecordPath(relPath string) string {
	ext := filepath.Ext(relPath)
	if strings.EqualFold(ext, ".json") {
		return relPath
	}
	return strings.TrimSuffix(relPath, ext) + ".json"
}

// unchanged reports whether the file at path already holds content with
// the same xxhash digest.
func unchanged(path string, content []byte) bool {
	existing, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return xxhash.Sum64(existing) == xxhash.Sum64(content)
}
