package main

import (
	"fmt"
	"io"

	tui "github.com/grindlemire/tuicss"
)

func runConfig(args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: tui config <file>")
	}
	cfg, err := tui.LoadConfig(args[0])
	if err != nil {
		return err
	}
	app, err := tui.NewApp(tui.WithConfig(cfg), tui.WithTerminal(tui.NewMockTerminal(1, 1)))
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	app.Stop()
	_, err = fmt.Fprintf(out, "%s: ok\n", args[0])
	return err
}
