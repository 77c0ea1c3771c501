package slog

import (
	"log/slog"
	"time"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
)

// Ensure LoggingTeaserParser implements tagesschau.TeaserParser.
var _ tagesschau.TeaserParser = (*LoggingTeaserParser)(nil)

// LoggingTeaserParser wraps a TeaserParser with per-page logging of
// record and skip counts.
type LoggingTeaserParser struct {
	next   tagesschau.TeaserParser
	logger *slog.Logger
}

// NewLoggingTeaserParser creates a new LoggingTeaserParser.
func NewLoggingTeaserParser(next tagesschau.TeaserParser, logger *slog.Logger) *LoggingTeaserParser {
	return &LoggingTeaserParser{next: next, logger: logger}
}

// ParseTeasers delegates to the wrapped parser and logs the operation.
func (p *LoggingTeaserParser) ParseTeasers(html string) (page *tagesschau.ArchivePage, err error) {
	defer func(begin time.Time) {
		teasers, skipped := 0, 0
		if page != nil {
			teasers, skipped = len(page.Teasers), len(page.Skipped)
		}
		p.logger.Info("parse teasers",
			"teasers", teasers,
			"skipped", skipped,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseTeasers(html)
}
