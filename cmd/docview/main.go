package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Listen opens the server socket. Replaced in tests.
	Listen func(network, addr string) (net.Listener, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Listen: net.Listen,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Listen: m.Listen,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docview"),
		kong.Description("Browse the documentation under a directory in your web browser."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 {
		if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return kongCtx.Run(deps)
}
