// Package layout implements the box-model layout engine for terminal UIs.
//
// It supports vertical, horizontal and grid arrangements, docking, named
// layers, margin/border/padding, fixed, percentage, fractional and intrinsic
// (auto) dimensions, min/max constraints, offsets and scrollable overflow.
// Types are re-exported through the root tui package for public consumption.
//
// The main entry point is [Calculate], which takes a [Layoutable] tree and
// computes absolute [Rect] positions for each node.
package layout
