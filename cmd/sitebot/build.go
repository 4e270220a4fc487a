package main

import (
	"fmt"

	"github.com/sitewise/sitebot"
)

// Run executes the build command: one corpus build, then its stats.
func (c *BuildCmd) Run(deps *Dependencies) error {
	if err := deps.buildCorpus(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitebot.ErrorMessage(err))
		return err
	}

	stats := deps.Corpus.Stats()
	fmt.Fprintf(deps.Stdout, "state:      %s\n", stats.State)
	fmt.Fprintf(deps.Stdout, "pages:      %d\n", stats.URLCount)
	fmt.Fprintf(deps.Stdout, "chunks:     %d\n", stats.ChunkCount)
	fmt.Fprintf(deps.Stdout, "vocabulary: %d\n", stats.VocabularySize)
	for _, cat := range sitebot.Categories {
		if n := stats.Categories[cat]; n > 0 {
			fmt.Fprintf(deps.Stdout, "  %-14s %d\n", cat, n)
		}
	}
	return nil
}
