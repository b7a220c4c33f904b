package slog

import (
	"log/slog"
	"time"

	"github.com/recipedoc/recipedoc"
)

// Ensure LoggingExtractor implements recipedoc.Extractor.
var _ recipedoc.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with timing and outcome logging.
type LoggingExtractor struct {
	next   recipedoc.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next recipedoc.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractAll delegates to the wrapped extractor and logs the result.
func (e *LoggingExtractor) ExtractAll(html string) (*recipedoc.Recipe, error) {
	begin := time.Now()
	recipe, err := e.next.ExtractAll(html)
	if err != nil {
		e.logger.Error("recipe extraction",
			"extractor", e.next.Name(),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Info("recipe extraction",
		"extractor", e.next.Name(),
		"dish_name", stringValue(recipe.DishName),
		"duration", time.Since(begin),
	)
	return recipe, nil
}

// Name delegates to the wrapped extractor.
func (e *LoggingExtractor) Name() string {
	return e.next.Name()
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
