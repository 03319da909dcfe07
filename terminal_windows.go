//go:build windows

package tui

import (
	"time"

	"golang.org/x/sys/windows"
)

// resizePollInterval is how often the console size is checked; Windows
// consoles have no resize signal.
const resizePollInterval = 250 * time.Millisecond

// getTerminalSize returns the visible console window dimensions.
func getTerminalSize(fd int) (width, height int, err error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 0, 0, err
	}
	width = int(info.Window.Right - info.Window.Left + 1)
	height = int(info.Window.Bottom - info.Window.Top + 1)
	return width, height, nil
}

// notifyResize polls the console size and calls fn when it changes.
func notifyResize(fn func()) (stop func()) {
	done := make(chan struct{})
	out := int(windows.Stdout)
	go func() {
		ticker := time.NewTicker(resizePollInterval)
		defer ticker.Stop()
		lastW, lastH, _ := getTerminalSize(out)
		for {
			select {
			case <-ticker.C:
				w, h, err := getTerminalSize(out)
				if err == nil && (w != lastW || h != lastH) {
					lastW, lastH = w, h
					fn()
				}
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}
