package main

import (
	"fmt"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
	"github.com/Kaschi14/TagesschauScraper/fs"
)

// Run executes the article command: fetch one article page, extract its
// body, and render it as structured markdown to stdout or a file.
func (c *ArticleCmd) Run(deps *Dependencies) error {
	rendered, err := deps.Scraper.Article(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tagesschau.ErrorMessage(err))
		return err
	}

	if c.Out == "" {
		fmt.Fprintln(deps.Stdout, rendered.Document.String())
		return nil
	}

	path, err := fs.NewWriter(c.Out).WriteArticle(rendered.Article, rendered.Document)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "wrote %s\n", path)

	return nil
}
