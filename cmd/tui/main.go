// Package main provides the tui command, a small driver for the tuicss
// rendering core.
//
// Usage:
//
//	tui demo [-config file] [-backend ansi|tcell]   Run the interactive demo
//	tui snapshot [-width N] [-height N]             Print one demo frame
//	tui config <file>                               Validate a config file
//	tui help                                        Show help
package main

import (
	"fmt"
	"os"
)

const version = "0.2.0"

const usage = `tui - driver for the tuicss rendering core

Usage:
  tui <command> [options]

Commands:
  demo        Run the demo dashboard until Ctrl+C
  snapshot    Render one demo frame and print it as text
  config      Load a TOML config file and report problems
  version     Print version information
  help        Show this help message

Examples:
  tui demo                          Run with the ANSI backend
  tui demo -backend tcell           Run through tcell
  tui demo -config tuicss.toml      Load settings from a file
  tui snapshot -width 60 -height 20 Print a 60x20 frame
  tui config tuicss.toml            Check a config file

For more information, see https://github.com/grindlemire/tuicss
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "demo":
		if err := runDemo(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "snapshot":
		if err := runSnapshot(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "config":
		if err := runConfig(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("tui version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
