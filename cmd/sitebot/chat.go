package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/sitewise/sitebot"
)

// Run executes the chat command: build the corpus, then answer
// questions from stdin until EOF or a farewell.
func (c *ChatCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Building site knowledge base...")
	if err := deps.buildCorpus(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitebot.ErrorMessage(err))
		return err
	}

	stats := deps.Corpus.Stats()
	fmt.Fprintf(deps.Stdout, "Ready: %d pages, %d chunks. Type a question, or 'bye' to leave.\n\n",
		stats.URLCount, stats.ChunkCount)

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "you> ")
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			return scanner.Err()
		}
		message := scanner.Text()
		fmt.Fprintf(deps.Stdout, "bot> %s\n\n", deps.Responder.Respond(message))

		if isFarewell(message) {
			return nil
		}
	}
}

func isFarewell(message string) bool {
	msg := strings.ToLower(strings.TrimSpace(message))
	for _, word := range []string{"bye", "goodbye", "exit", "quit"} {
		if msg == word {
			return true
		}
	}
	return false
}
