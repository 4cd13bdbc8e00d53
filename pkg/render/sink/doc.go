// Package sink provides output format renderers for finalized diagram
// grids.
//
// # Overview
//
// A "sink" transforms a finalized [wave.Grid] into one output format.
// This package provides renderers for:
//
//   - XLSX: spreadsheet workbooks, the diagram's native habitat
//   - SVG: scalable vector graphics for docs and web pages
//   - PNG: raster images at a configurable scale
//   - Text: Unicode line art with ANSI colors for terminals
//   - JSON: grid data export for external tools
//
// All sinks read the same cell model: fills first, then borders, then
// labels, so the drawing order matches what spreadsheets do and the
// visual outputs agree with each other.
//
// # Spreadsheet Output
//
// [RenderXLSX] maps grid cells one-to-one onto worksheet cells. Merged
// spans become merged ranges, border weights map to the spreadsheet
// border enum, and the sheet's own gridlines are hidden so only the
// diagram's lines show:
//
//	data, err := sink.RenderXLSX(grid,
//	    sink.WithSheetName("SPI Transfer"),
//	    sink.WithFrozenLabels(true),
//	)
//
// # Vector and Raster Output
//
// [RenderSVG] draws the grid with a fixed cell geometry that options can
// adjust:
//
//	svg := sink.RenderSVG(grid,
//	    sink.WithTheme(styles.Dark()),
//	    sink.WithTitle("Door Control"),
//	)
//
// [RenderPNG] rasterizes the same layout via [WithPNGLayout] and scales
// it with [WithScale]:
//
//	img, err := sink.RenderPNG(grid,
//	    sink.WithScale(2),
//	    sink.WithPNGLayout(sink.WithTheme(styles.Dark())),
//	)
//
// # Terminal Output
//
// [RenderText] produces one text row per grid row using box-drawing and
// block characters: signal levels become over- and underlines, borders
// become vertical bars, and fills become background colors. Styling can
// be switched off for pipes with [WithTermColor].
//
// # JSON Output
//
// [RenderJSON] exports the grid sparsely: tracks plus every non-empty
// cell with its borders, fill, label, and span. Empty cells are implied,
// which keeps documents small even for wide diagrams.
//
// [wave.Grid]: github.com/mhellwig/wavegrid/pkg/wave.Grid
package sink
