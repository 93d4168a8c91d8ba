package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

// LayoutMode selects between the stacked and side-by-side arrangements.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota
	LayoutMedium
	LayoutWide
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutNarrow:
		return "Narrow"
	case LayoutMedium:
		return "Medium"
	default:
		return "Wide"
	}
}

// Breakpoint thresholds. Widths at or below the threshold fall into the
// smaller mode.
const (
	narrowMaxWidth float32 = 450
	mediumMaxWidth float32 = 800
)

// LayoutModeForWidth maps a viewport width to its layout mode. Pure
// function, recomputed on every layout pass.
func LayoutModeForWidth(width float32) LayoutMode {
	switch {
	case width <= narrowMaxWidth:
		return LayoutNarrow
	case width <= mediumMaxWidth:
		return LayoutMedium
	default:
		return LayoutWide
	}
}

// Columns returns the grid column count for a layout mode.
func Columns(mode LayoutMode) int {
	switch mode {
	case LayoutNarrow:
		return 1
	case LayoutMedium:
		return 2
	default:
		return 3
	}
}

// responsiveGridLayout arranges its children in a grid whose column count
// is re-derived from the container width on every layout pass, so a window
// resize reflows the grid with no stored state beyond the last column
// count (which only informs MinSize between passes).
type responsiveGridLayout struct {
	lastCols int
}

var _ fyne.Layout = (*responsiveGridLayout)(nil)

// NewResponsiveGrid wraps the given objects in a container that reflows
// between 1, 2 and 3 columns at the breakpoint widths.
func NewResponsiveGrid(objects ...fyne.CanvasObject) *fyne.Container {
	return container.New(&responsiveGridLayout{lastCols: 1}, objects...)
}

func (g *responsiveGridLayout) columns(width float32, count int) int {
	cols := Columns(LayoutModeForWidth(width))
	if cols > count {
		cols = count
	}
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (g *responsiveGridLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}

	pad := theme.Padding()
	cols := g.columns(size.Width, len(objects))
	g.lastCols = cols

	cellWidth := (size.Width - float32(cols-1)*pad) / float32(cols)
	cellHeight := g.maxMinHeight(objects)

	for i, obj := range objects {
		col := i % cols
		row := i / cols
		obj.Resize(fyne.NewSize(cellWidth, cellHeight))
		obj.Move(fyne.NewPos(
			float32(col)*(cellWidth+pad),
			float32(row)*(cellHeight+pad),
		))
	}
}

func (g *responsiveGridLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}

	pad := theme.Padding()
	cols := g.lastCols
	if cols > len(objects) {
		cols = len(objects)
	}
	if cols < 1 {
		cols = 1
	}
	rows := (len(objects) + cols - 1) / cols

	cellWidth := g.maxMinWidth(objects)
	cellHeight := g.maxMinHeight(objects)

	return fyne.NewSize(
		cellWidth*float32(cols)+pad*float32(cols-1),
		cellHeight*float32(rows)+pad*float32(rows-1),
	)
}

func (g *responsiveGridLayout) maxMinWidth(objects []fyne.CanvasObject) float32 {
	var w float32
	for _, obj := range objects {
		if mw := obj.MinSize().Width; mw > w {
			w = mw
		}
	}
	return w
}

func (g *responsiveGridLayout) maxMinHeight(objects []fyne.CanvasObject) float32 {
	var h float32
	for _, obj := range objects {
		if mh := obj.MinSize().Height; mh > h {
			h = mh
		}
	}
	return h
}
