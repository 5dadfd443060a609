// Package layout implements the flexbox constraint solver used to compute
// per-node geometry before a tree is flattened into mountable outputs.
//
// It supports row/column directions, justify and align modes, padding,
// margin, gap, min/max constraints, percentage and fixed dimensions, and
// content measurement through [SizeSpec] constraints. Types are re-exported
// through the root mount package for public consumption.
//
// The main entry points are [Calculate] and [CalculateWithSpecs], which take
// a [Layoutable] tree and compute absolute [Rect] positions for each node.
package layout
