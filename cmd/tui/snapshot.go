package main

import (
	"flag"
	"fmt"
	"io"

	tui "github.com/grindlemire/tuicss"
)

func runSnapshot(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	width := fs.Int("width", 80, "frame width")
	height := fs.Int("height", 24, "frame height")
	steps := fs.Int("steps", 0, "demo ticks to run before rendering")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *width < 1 || *height < 1 {
		return fmt.Errorf("size must be positive, got %dx%d", *width, *height)
	}

	d := newDashboard()
	term := tui.NewMockTerminal(*width, *height)
	app, err := tui.NewApp(
		tui.WithTerminal(term),
		tui.WithRules(dashboardRules...),
		tui.WithRoot(d.root),
	)
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}
	defer app.Stop()
	for range *steps {
		d.step()
	}
	if err := app.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, term.String()); err != nil {
		return err
	}
	for _, e := range app.Diagnostics().Errors() {
		if _, err := fmt.Fprintf(out, "diagnostic: %v\n", e); err != nil {
			return err
		}
	}
	return nil
}
