// Package tui is the rendering core of a styled terminal UI.
//
// An application is a tree of Nodes styled by a Stylesheet of CSS-like rules.
// Each frame the Tree resolves every node's ComputedStyle through the
// cascade, lays the tree out with the internal layout engine, paints it into
// a Frame of Cells and hands the difference from the previous frame to a
// Terminal as WriteOps.
//
// App wraps a Tree with an event loop: mutations posted from other
// goroutines, timers, background tasks, shared State and style transitions
// driven by the Animator.
//
//	app, err := tui.NewApp(
//		tui.WithRules(tui.MustRule("Label", tui.Decl("color", "cyan"))),
//		tui.WithRoot(tui.NewNode("Screen", tui.WithChildren(tui.Label("hello")))),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
package tui
