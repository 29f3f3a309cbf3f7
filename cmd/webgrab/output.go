package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/webgrab"
	"github.com/fwojciec/webgrab/docx"
	"github.com/fwojciec/webgrab/plaintext"
	"golang.org/x/sync/errgroup"
)

// previewBlocks is how many blocks the preview prints before truncating.
const previewBlocks = 10

// printPreview prints the leading blocks of the structure with kind labels.
func printPreview(w io.Writer, s webgrab.Structure) {
	n := min(len(s), previewBlocks)
	for _, block := range s[:n] {
		fmt.Fprintf(w, "[%s] %s\n", block.Kind, block.Text)
	}
	if len(s) > previewBlocks {
		fmt.Fprintf(w, "... and %d more blocks\n", len(s)-previewBlocks)
	}
}

// writeArtifacts renders the requested formats and writes them to outDir.
// In "both" mode the renderers run concurrently; they only read the
// immutable structure.
func writeArtifacts(deps *Dependencies, s webgrab.Structure, format, outDir string) error {
	var renderers []webgrab.Renderer
	switch format {
	case "docx":
		renderers = append(renderers, docx.NewRenderer())
	case "txt":
		renderers = append(renderers, plaintext.NewRenderer())
	default:
		renderers = append(renderers, docx.NewRenderer(), plaintext.NewRenderer())
	}

	artifacts := make([]*webgrab.Artifact, len(renderers))
	var g errgroup.Group
	for i, r := range renderers {
		i, r := i, r
		g.Go(func() error {
			artifact, err := r.Render(s)
			if err != nil {
				return err
			}
			artifacts[i] = artifact
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webgrab.ErrorMessage(err))
		return err
	}

	for _, artifact := range artifacts {
		for _, skip := range artifact.Skipped {
			deps.Logger.Debug("render skip",
				"artifact", artifact.Name,
				"index", skip.Index,
				"kind", skip.Kind,
				"reason", skip.Reason,
			)
		}

		path := filepath.Join(outDir, artifact.Name)
		if err := os.WriteFile(path, artifact.Data, 0644); err != nil {
			fmt.Fprintf(deps.Stderr, "error: writing %s: %v\n", path, err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s (%d bytes)\n", path, len(artifact.Data))
	}
	return nil
}
