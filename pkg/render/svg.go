// Package render draws layout snapshots as standalone SVG documents.
//
// The output mirrors the dashboard's pixel geometry: cells are placed with
// the snapshot's cell size and spacing, so a rendered layout lines up with
// what the desktop shell would display. Rendering is pure string assembly
// with no drawing dependencies; the documents open in any browser.
package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/rikardjonsson/pylon/pkg/grid"
	"github.com/rikardjonsson/pylon/pkg/persist"
)

const (
	svgMargin       = 16.0
	svgCornerRadius = 8.0
	svgFontSize     = 13.0

	backgroundFill = "#1e1e2e"
	cellFill       = "#2a2a3c"
	widgetFill     = "#89b4fa"
	disabledFill   = "#585b70"
	textFill       = "#11111b"
)

// SVGOption adjusts rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	showGrid   bool
	showTitles bool
	minRows    int
}

// WithoutGridLines suppresses the empty cell raster behind the widgets.
func WithoutGridLines() SVGOption { return func(r *svgRenderer) { r.showGrid = false } }

// WithoutTitles suppresses the widget title labels.
func WithoutTitles() SVGOption { return func(r *svgRenderer) { r.showTitles = false } }

// WithMinRows forces at least n rows of canvas even when the layout is
// shorter, so sparse layouts on unbounded grids don't collapse to a sliver.
func WithMinRows(n int) SVGOption { return func(r *svgRenderer) { r.minRows = n } }

// RenderSVG draws a snapshot as a complete SVG document.
func RenderSVG(snap *persist.Snapshot, opts ...SVGOption) []byte {
	r := svgRenderer{showGrid: true, showTitles: true, minRows: 4}
	for _, opt := range opts {
		opt(&r)
	}

	cfg := snap.Config
	rows := canvasRows(snap, r.minRows)
	width := float64(cfg.Bounds.Columns)*cfg.Pitch() - cfg.Spacing + 2*svgMargin
	height := float64(rows)*cfg.Pitch() - cfg.Spacing + 2*svgMargin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n", width, height, backgroundFill)

	if r.showGrid {
		renderRaster(&buf, cfg, rows)
	}
	for _, rec := range snap.Items {
		renderWidget(&buf, cfg, rec, r.showTitles)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// canvasRows picks the row count to draw: the configured bound if finite,
// otherwise one row past the lowest occupied cell, floored at minRows.
func canvasRows(snap *persist.Snapshot, minRows int) int {
	if snap.Config.Bounds.RowBounded() {
		return snap.Config.Bounds.Rows
	}
	rows := minRows
	for _, rec := range snap.Items {
		if bottom := rec.Position.Row + rec.Footprint.Height; bottom > rows {
			rows = bottom
		}
	}
	return rows
}

func renderRaster(buf *bytes.Buffer, cfg grid.Config, rows int) {
	for row := 0; row < rows; row++ {
		for col := 0; col < cfg.Bounds.Columns; col++ {
			p := cfg.CellOrigin(grid.Coordinate{Row: row, Col: col})
			fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s"/>`+"\n",
				p.X+svgMargin, p.Y+svgMargin, cfg.CellSize, cfg.CellSize, svgCornerRadius, cellFill)
		}
	}
}

func renderWidget(buf *bytes.Buffer, cfg grid.Config, rec persist.ItemRecord, withTitle bool) {
	frame := cfg.Frame(rec.Footprint, rec.Position)
	fill := widgetFill
	if !rec.Enabled {
		fill = disabledFill
	}
	fmt.Fprintf(buf, `  <rect id="widget-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s"/>`+"\n",
		escape(rec.ID), frame.X+svgMargin, frame.Y+svgMargin, frame.Width, frame.Height, svgCornerRadius, fill)

	if !withTitle {
		return
	}
	title := rec.Title
	if title == "" {
		title = rec.Category
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="%.0f" fill="%s">%s</text>`+"\n",
		frame.X+svgMargin+frame.Width/2, frame.Y+svgMargin+frame.Height/2, svgFontSize, textFill, escape(title))
}

// escape makes a string safe for SVG text and attribute content.
func escape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return ""
	}
	return buf.String()
}
