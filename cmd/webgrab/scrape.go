package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/webgrab"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	// Validate the URL before starting a browser.
	if !strings.HasPrefix(c.URL, "http://") && !strings.HasPrefix(c.URL, "https://") {
		err := webgrab.Errorf(webgrab.EINVALID, "URL must start with http:// or https://")
		fmt.Fprintf(deps.Stderr, "error: %s\n", webgrab.ErrorMessage(err))
		return err
	}

	var progress webgrab.ProgressFunc
	if !c.Quiet {
		progress = func(message string, percent int) {
			fmt.Fprintf(deps.Stderr, "[%3d%%] %s\n", percent, message)
		}
	}

	structure, err := deps.Scraper.Run(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webgrab.ErrorMessage(err))
		return err
	}

	if structure.Empty() {
		// Distinct from failure: the page rendered but nothing qualified.
		fmt.Fprintln(deps.Stdout, "No content extracted from the website.")
		return webgrab.Errorf(webgrab.ENOTFOUND, "no content extracted from %s", c.URL)
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d content blocks.\n", len(structure))

	if c.Preview {
		printPreview(deps.Stdout, structure)
		return nil
	}
	return writeArtifacts(deps, structure, c.Format, c.Out)
}
