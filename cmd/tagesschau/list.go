package main

import (
	"fmt"
	"time"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter tagesschau.TeaserFilter
	if c.Date != "" {
		day, err := time.Parse("2006-01-02", c.Date)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: invalid date %q, expected YYYY-MM-DD\n", c.Date)
			return err
		}
		filter.Day = &day
	}

	teasers, err := deps.Teasers.FindTeasers(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tagesschau.ErrorMessage(err))
		return err
	}

	if len(teasers) == 0 {
		fmt.Fprintln(deps.Stdout, "No teasers found. Use 'tagesschau teaser' to scrape some.")
		return nil
	}

	for _, t := range teasers {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", t.ID, t.PublishedAt.Format(tagesschau.TimeLayout), t.Headline, t.Link)
	}

	return nil
}
