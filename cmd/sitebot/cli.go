package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/sitewise/sitebot"
	"github.com/sitewise/sitebot/chat"
	"github.com/sitewise/sitebot/corpus"
)

// Dependencies holds the wired services for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Config     *Config
	Corpus     *corpus.Corpus
	Responder  *chat.Responder
	Discoverer sitebot.URLSource
}

// buildCorpus resolves the page list and runs a corpus build.
func (deps *Dependencies) buildCorpus(ctx context.Context) error {
	urls, discover := deps.Config.pageURLs()
	if discover {
		found, err := deps.Discoverer.DiscoverURLs(ctx, deps.Config.Site.URL)
		if err != nil {
			return err
		}
		urls = found
	}
	if len(urls) == 0 {
		return sitebot.Errorf(sitebot.EINVALID, "no site URLs configured")
	}
	return deps.Corpus.Build(ctx, urls)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" type:"path" help:"Path to YAML config file"`

	Serve ServeCmd `cmd:"" help:"Build the corpus and serve the chat API"`
	Chat  ChatCmd  `cmd:"" help:"Chat with the site from the terminal"`
	Build BuildCmd `cmd:"" help:"Build the corpus once and print its stats"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"HTTP listen address"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct{}

// BuildCmd is the "build" subcommand.
type BuildCmd struct{}
