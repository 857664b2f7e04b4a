package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/chardet"
	"github.com/fwojciec/docview/fs"
	"github.com/fwojciec/docview/goldmark"
	"github.com/fwojciec/docview/gorst"
	"github.com/fwojciec/docview/html"
	dvhttp "github.com/fwojciec/docview/http"
	dvslog "github.com/fwojciec/docview/slog"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until deps.Ctx is canceled or
// the server fails.
func (c *ServeCmd) Run(deps *Dependencies) error {
	idx, err := buildIndex(deps, c.Root, c.Strict)
	if err != nil {
		return err
	}
	deps.Logger.Info("indexed",
		"root", c.Root,
		"files", idx.Len(),
		"special", len(idx.SpecialPaths()),
	)

	tmpl, err := html.NewTemplates(idx.SpecialPaths())
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	loader := dvslog.NewLoggingTextLoader(fs.NewTextLoader(idx, chardet.NewDecoder()), deps.Logger)
	dispatcher := &docview.Dispatcher{
		Index:            idx,
		Loader:           loader,
		Markdown:         goldmark.NewRenderer(goldmark.WithStyle(c.Style)),
		RestructuredText: gorst.NewRenderer(),
	}

	server := dvhttp.NewServer()
	server.Addr = c.Addr
	server.Index = idx
	server.Templates = tmpl
	server.Pages = dvslog.NewLoggingPageRenderer(dispatcher, deps.Logger)
	server.Logger = deps.Logger

	ln, err := deps.Listen("tcp", c.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	fmt.Fprintf(deps.Stdout, "Serving %d files from %s at http://%s/\n", idx.Len(), c.Root, ln.Addr())

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		return server.Serve(ln)
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), dvhttp.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
