package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
)

func TestLayoutModeForWidth(t *testing.T) {
	cases := []struct {
		width float32
		want  LayoutMode
	}{
		{400, LayoutNarrow},
		{450, LayoutNarrow}, // boundary: at the threshold
		{451, LayoutMedium}, // boundary: just past it
		{600, LayoutMedium},
		{800, LayoutMedium}, // boundary: at the threshold
		{801, LayoutWide},   // boundary: just past it
		{1000, LayoutWide},
	}

	for _, c := range cases {
		if got := LayoutModeForWidth(c.width); got != c.want {
			t.Errorf("width %.0f: expected %s, got %s", c.width, c.want, got)
		}
	}
}

func TestColumns(t *testing.T) {
	if got := Columns(LayoutNarrow); got != 1 {
		t.Errorf("expected 1 column for Narrow, got %d", got)
	}
	if got := Columns(LayoutMedium); got != 2 {
		t.Errorf("expected 2 columns for Medium, got %d", got)
	}
	if got := Columns(LayoutWide); got != 3 {
		t.Errorf("expected 3 columns for Wide, got %d", got)
	}
}

// firstRowWidth counts how many children the grid placed on the top row.
func firstRowWidth(objects []fyne.CanvasObject) int {
	count := 0
	for _, obj := range objects {
		if obj.Position().Y == 0 {
			count++
		}
	}
	return count
}

func TestResponsiveGridReflow(t *testing.T) {
	test.NewApp()

	// Four fixed-size cells, like the project grid.
	cells := make([]fyne.CanvasObject, 4)
	for i := range cells {
		rect := canvas.NewRectangle(color.Transparent)
		rect.SetMinSize(fyne.NewSize(100, 100))
		cells[i] = rect
	}
	grid := NewResponsiveGrid(cells...)

	cases := []struct {
		width float32
		cols  int
	}{
		{400, 1},
		{600, 2},
		{1000, 3},
	}

	for _, c := range cases {
		grid.Resize(fyne.NewSize(c.width, 800))
		if got := firstRowWidth(grid.Objects); got != c.cols {
			t.Errorf("width %.0f: expected %d columns, got %d", c.width, c.cols, got)
		}
	}
}

func TestResponsiveGridFewerObjectsThanColumns(t *testing.T) {
	test.NewApp()

	left := canvas.NewRectangle(color.Transparent)
	left.SetMinSize(fyne.NewSize(100, 100))
	right := canvas.NewRectangle(color.Transparent)
	right.SetMinSize(fyne.NewSize(100, 100))
	grid := NewResponsiveGrid(left, right)

	// Wide mode caps at the object count: two children, two columns.
	grid.Resize(fyne.NewSize(1000, 400))
	if got := firstRowWidth(grid.Objects); got != 2 {
		t.Errorf("expected 2 columns for 2 objects, got %d", got)
	}

	// Narrow stacks them.
	grid.Resize(fyne.NewSize(400, 400))
	if got := firstRowWidth(grid.Objects); got != 1 {
		t.Errorf("expected 1 column when narrow, got %d", got)
	}
}
