// Package recipedoc provides per-website HTML recipe extractors.
// Each supported site has a dedicated extractor that locates a recipe's
// fields (name, ingredients, instructions, times, tags, images) inside a
// preprocessed HTML document and emits a normalized record. The
// ingredient-line parser, which turns free-text quantity+unit+name
// expressions into structured records across many locales, is the
// algorithmic core; everything else is site-specific selector glue.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or concern
// (e.g., goquery/, ingredient/, fs/).
package recipedoc
