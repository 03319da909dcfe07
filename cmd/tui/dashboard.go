package main

import (
	"fmt"
	"time"

	tui "github.com/grindlemire/tuicss"
)

var dashboardRules = []*tui.Rule{
	tui.MustRule("Screen",
		tui.Decl("layers", "default overlay"),
		tui.Decl("color", "white"),
	),
	tui.MustRule("Screen.-dark-mode", tui.Decl("background", "#1e1e2e")),
	tui.MustRule("Screen.-light-mode",
		tui.Decl("background", "#eff1f5"),
		tui.Decl("color", "black"),
	),
	tui.MustRule("#header",
		tui.Decl("dock", "top"),
		tui.Decl("height", "1"),
		tui.Decl("background", "blue"),
		tui.Decl("text-style", "bold"),
		tui.Decl("content-align", "center middle"),
	),
	tui.MustRule("#footer",
		tui.Decl("dock", "bottom"),
		tui.Decl("height", "1"),
		tui.Decl("color", "ansi(245)"),
	),
	tui.MustRule("#tiles",
		tui.Decl("layout", "grid"),
		tui.Decl("grid-size", "3"),
		tui.Decl("grid-gutter", "1"),
		tui.Decl("padding", "1"),
		tui.Decl("height", "1fr"),
	),
	tui.MustRule(".tile",
		tui.Decl("border", "round cyan"),
		tui.Decl("content-align", "center middle"),
		tui.Decl("transition", "background 400ms out_cubic"),
	),
	tui.MustRule(".tile.-hot", tui.Decl("background", "#5f0000")),
	tui.MustRule("#toast",
		tui.Decl("layer", "overlay"),
		tui.Decl("width", "28"),
		tui.Decl("height", "3"),
		tui.Decl("border", "double yellow"),
		tui.Decl("content-align", "center middle"),
		tui.Decl("transition", "offset 300ms out_bounce"),
	),
}

const tileCount = 6

// dashboard is the demo tree: a header, a grid of tiles, a footer and a
// toast on the overlay layer.
type dashboard struct {
	root  *tui.Node
	tiles []*tui.Node
	toast *tui.Node
	ticks int
}

func newDashboard() *dashboard {
	d := &dashboard{}
	for i := range tileCount {
		d.tiles = append(d.tiles, tui.Label(fmt.Sprintf("tile %d\n0", i+1),
			tui.WithID(fmt.Sprintf("tile-%d", i+1)),
			tui.WithClasses("tile"),
			tui.WithBorderTitle(fmt.Sprintf("#%d", i+1)),
		))
	}
	d.toast = tui.Label("tuicss demo", tui.WithID("toast"))
	d.root = tui.NewNode("Screen",
		tui.WithID("screen"),
		tui.WithChildren(
			tui.Label("tuicss", tui.WithID("header")),
			tui.Container(d.tiles, tui.WithID("tiles")),
			tui.Label("ctrl+c quits", tui.WithID("footer")),
			d.toast,
		),
	)
	return d
}

// step advances the demo by one tick: one tile lights up and the toast
// slides along the bottom edge.
func (d *dashboard) step() {
	d.ticks++
	for i, tile := range d.tiles {
		hot := i == d.ticks%len(d.tiles)
		tile.SetClass("-hot", hot)
		if hot {
			tile.SetWidget(tui.NewStatic(fmt.Sprintf("tile %d\n%d", i+1, d.ticks)))
		}
	}
	x := (d.ticks % 4) * 6
	d.toast.SetStyle("offset", fmt.Sprintf("%d 1", x))
}

func (d *dashboard) register(app *tui.App) error {
	app.RegisterAction("toggle-dark", func() error {
		app.Dark().Update(func(v bool) bool { return !v })
		return nil
	})
	app.RegisterAction("step", func() error {
		d.step()
		return nil
	})
	_, err := d.root.SetInterval(time.Second, func() {
		if err := app.RunAction("step"); err != nil {
			app.Stop()
		}
	})
	return err
}
