// Package render provides artifact rendering for timing-diagram grids.
//
// # Overview
//
// This package contains the rendering layer that turns a finalized cell
// grid into output artifacts. It provides:
//
//   - Output sinks for every supported format (in [sink] subpackage)
//   - Named visual themes (in [styles] subpackage)
//
// # Sinks
//
// The [sink] subpackage renders a [wave.Grid] into one artifact per call.
// All sinks read the same grid; none of them mutates it.
//
//	xlsx, err := sink.RenderXLSX(g)         // native spreadsheet cells
//	svg := sink.RenderSVG(g)                // standalone vector image
//	png, err := sink.RenderPNG(g)           // rasterized at a scale factor
//	text := sink.RenderText(g)              // ANSI terminal preview
//	data, err := sink.RenderJSON(g)         // grid export for tooling
//
// The XLSX sink is the reference output: border weights, fills, merges,
// and label alignment map one-to-one onto spreadsheet cells. The other
// sinks reproduce the same grid geometry in their own medium.
//
// # Themes
//
// The [styles] subpackage defines the color themes shared by all sinks.
// Themes are resolved by name, with light as the default:
//
//	theme, err := styles.ByName("dark")
//	svg := sink.RenderSVG(g, sink.WithTheme(theme))
//
// [sink]: github.com/mhellwig/wavegrid/pkg/render/sink
// [styles]: github.com/mhellwig/wavegrid/pkg/render/styles
// [wave.Grid]: github.com/mhellwig/wavegrid/pkg/wave
package render
