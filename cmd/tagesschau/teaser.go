package main

import (
	"fmt"
	"time"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
	"github.com/Kaschi14/TagesschauScraper/fs"
)

// Run executes the teaser command: fetch one archive listing page, parse
// it, store the records, and optionally write them as a JSON file.
func (c *TeaserCmd) Run(deps *Dependencies) error {
	date, err := time.Parse("2006-01-02", c.Date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: invalid date %q, expected YYYY-MM-DD\n", c.Date)
		return err
	}

	query := tagesschau.ArchiveQuery{
		Date:     date,
		Category: tagesschau.Category(c.Category),
	}

	page, err := deps.Scraper.Archive(deps.Ctx, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tagesschau.ErrorMessage(err))
		return err
	}

	for _, t := range page.Teasers {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", t.PublishedAt.Format(tagesschau.TimeLayout), t.Headline, t.Link)
	}
	fmt.Fprintf(deps.Stdout, "%d teasers", len(page.Teasers))
	if len(page.Skipped) > 0 {
		fmt.Fprintf(deps.Stdout, " (%d skipped)", len(page.Skipped))
	}
	fmt.Fprintln(deps.Stdout)

	if c.Out != "" {
		path, err := fs.NewWriter(c.Out).WriteTeasers(page, query)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "wrote %s\n", path)
	}

	return nil
}
