package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/webgrab"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := c.readInput()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	structure, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webgrab.ErrorMessage(err))
		return err
	}

	if structure.Empty() {
		fmt.Fprintln(deps.Stdout, "No content extracted.")
		return webgrab.Errorf(webgrab.ENOTFOUND, "no content extracted")
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d content blocks.\n", len(structure))

	if c.Preview {
		printPreview(deps.Stdout, structure)
		return nil
	}
	return writeArtifacts(deps, structure, c.Format, c.Out)
}

// readInput reads HTML from the file argument, or stdin when absent or "-".
func (c *ExtractCmd) readInput() (string, error) {
	if c.File == "" || c.File == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(c.File)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", c.File, err)
	}
	return string(data), nil
}
