package main

import (
	"flag"
	"fmt"

	tui "github.com/grindlemire/tuicss"
)

func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config file")
	backend := fs.String("backend", "", "terminal backend: ansi or tcell")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := []tui.AppOption{tui.WithRules(dashboardRules...), tui.WithDark(true)}
	if *configPath != "" {
		cfg, err := tui.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		opts = append(opts, tui.WithConfig(cfg))
	}
	if *backend != "" {
		opts = append(opts, tui.WithBackend(*backend))
	}

	d := newDashboard()
	opts = append(opts, tui.WithRoot(d.root))
	app, err := tui.NewApp(opts...)
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}
	if err := d.register(app); err != nil {
		return err
	}
	return app.Run()
}
