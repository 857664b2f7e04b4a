package main

import (
	"context"
	"io"
	"log/slog"
	"net"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Listen func(network, addr string) (net.Listener, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Serve ServeCmd `cmd:"" default:"withargs" help:"Index a directory and serve it over HTTP (default)"`
	List  ListCmd  `cmd:"" help:"List the files that would be served"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr   string `short:"a" default:"127.0.0.1:8080" help:"Address to listen on"`
	Root   string `short:"r" default:"." type:"existingdir" help:"Directory to index"`
	Strict bool   `help:"Fail when a subdirectory cannot be read instead of skipping it"`
	Style  string `default:"github" help:"Chroma style for highlighted code blocks"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Root    string `short:"r" default:"." type:"existingdir" help:"Directory to index"`
	Special bool   `short:"s" help:"Only list README, index, home and summary files"`
	Strict  bool   `help:"Fail when a subdirectory cannot be read instead of skipping it"`
}
