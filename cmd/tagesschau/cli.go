package main

import (
	"context"
	"io"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
	"github.com/Kaschi14/TagesschauScraper/scrape"
	"github.com/Kaschi14/TagesschauScraper/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Teasers tagesschau.TeaserService
	Scraper *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Teaser  TeaserCmd  `cmd:"" help:"Scrape archive teasers for a date"`
	Article ArticleCmd `cmd:"" help:"Convert an article page to structured markdown"`
	List    ListCmd    `cmd:"" help:"List stored teasers"`
}

// TeaserCmd is the "teaser" subcommand.
type TeaserCmd struct {
	Date        string `arg:"" help:"Archive date (YYYY-MM-DD)"`
	Category    string `short:"r" name:"category" help:"Ressort filter (e.g. wirtschaft)"`
	Out         string `short:"o" help:"Write the page as JSON below this directory"`
	EnrichTags  bool   `help:"Fetch each article page to fill in missing tags"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent enrichment fetch limit"`
}

// ArticleCmd is the "article" subcommand.
type ArticleCmd struct {
	URL string `arg:"" help:"Article URL"`
	Out string `short:"o" help:"Write markdown below this directory instead of stdout"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Date string `arg:"" optional:"" help:"Filter by publication day (YYYY-MM-DD)"`
}
