package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	main "github.com/recipedoc/recipedoc/cmd/recipedoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "recipedoc")
	assert.Contains(t, stdout.String(), "input-dir")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_ListSites(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--list-sites"}, &stdout, &stderr)

	require.NoError(t, err)
	output := stdout.String()
	for _, site := range []string{
		"allrecipes", "bbcgoodfood", "marmiton", "chefkoch", "giallozafferano",
		"kwestiasmaku", "povarenok", "argiro", "shahiya", "cookpad",
		"10000recipe", "monngon", "generic (fallback)",
	} {
		assert.Contains(t, output, site)
	}
}

func TestMain_Run_UnknownSiteFlag(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--site", "nosuchsite", t.TempDir()}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_ExtractDirectory(t *testing.T) {
	t.Parallel()

	input := t.TempDir()
	output := t.TempDir()

	page := `<html><head><link rel="canonical" href="https://www.allrecipes.com/recipe/1/"></head><body>
<h1 class="article-heading">Banana Bread</h1>
<ul>
	<li class="mntl-structured-ingredients__list-item">2 cups flour</li>
	<li class="mntl-structured-ingredients__list-item">3 ripe bananas</li>
</ul>
</body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(input, "banana-bread.html"), []byte(page), 0644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{input, output}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Processed 1 pages (0 failed)")

	raw, err := os.ReadFile(filepath.Join(output, "banana-bread.json"))
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(raw, &record))
	assert.Equal(t, "Banana Bread", record["dish_name"])
	assert.NotNil(t, record["ingredients"])
}
