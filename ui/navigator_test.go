package ui

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
)

// buildTestScroll lays out five fixed-height sections inside a 400x300
// viewport, mirroring the real layout shape in miniature.
func buildTestScroll(t *testing.T) (*container.Scroll, []fyne.CanvasObject) {
	t.Helper()
	test.NewApp()

	sections := make([]fyne.CanvasObject, 5)
	for i := range sections {
		rect := canvas.NewRectangle(color.Transparent)
		rect.SetMinSize(fyne.NewSize(400, 200))
		sections[i] = rect
	}

	scroll := container.NewVScroll(container.NewVBox(sections...))
	window := test.NewWindow(scroll)
	t.Cleanup(window.Close)
	window.Resize(fyne.NewSize(400, 300))

	return scroll, sections
}

func TestScrollToRegisteredSection(t *testing.T) {
	scroll, sections := buildTestScroll(t)

	nav := NewNavigator(scroll)
	nav.SetDuration(0)
	names := []string{"Home", "About", "Projects", "Skills", "Contact"}
	for i, name := range names {
		nav.Register(name, sections[i])
	}

	max := scroll.Content.Size().Height - scroll.Size().Height
	for i, name := range names {
		if err := nav.ScrollTo(name); err != nil {
			t.Fatalf("ScrollTo(%s) failed: %v", name, err)
		}
		want := sections[i].Position().Y
		if want > max {
			want = max
		}
		if got := scroll.Offset.Y; got != want {
			t.Errorf("%s: expected offset %.1f, got %.1f", name, want, got)
		}
	}
}

func TestScrollToLastSectionClamps(t *testing.T) {
	scroll, sections := buildTestScroll(t)

	nav := NewNavigator(scroll)
	nav.SetDuration(0)
	nav.Register("Contact", sections[4])

	if err := nav.ScrollTo("Contact"); err != nil {
		t.Fatalf("ScrollTo(Contact) failed: %v", err)
	}

	max := scroll.Content.Size().Height - scroll.Size().Height
	if got := scroll.Offset.Y; got != max {
		t.Errorf("expected clamped offset %.1f, got %.1f", max, got)
	}
	if sections[4].Position().Y <= max {
		t.Fatal("test setup: last section should exceed the scrollable range")
	}
}

func TestScrollToUnknownSection(t *testing.T) {
	scroll, sections := buildTestScroll(t)

	nav := NewNavigator(scroll)
	nav.SetDuration(0)
	nav.Register("Home", sections[0])
	nav.Register("About", sections[1])

	if err := nav.ScrollTo("About"); err != nil {
		t.Fatalf("ScrollTo(About) failed: %v", err)
	}
	before := scroll.Offset.Y

	err := nav.ScrollTo("NonexistentSection")
	if !errors.Is(err, ErrSectionNotRegistered) {
		t.Errorf("expected ErrSectionNotRegistered, got %v", err)
	}
	if got := scroll.Offset.Y; got != before {
		t.Errorf("expected offset unchanged at %.1f, got %.1f", before, got)
	}
}

func TestRegisterOverwrites(t *testing.T) {
	scroll, sections := buildTestScroll(t)

	nav := NewNavigator(scroll)
	nav.SetDuration(0)

	// Re-registration replaces the anchor: layout objects are recreated
	// on each full rebuild, so the newest one must win.
	nav.Register("Projects", sections[1])
	nav.Register("Projects", sections[2])

	if err := nav.ScrollTo("Projects"); err != nil {
		t.Fatalf("ScrollTo(Projects) failed: %v", err)
	}
	if got, want := scroll.Offset.Y, sections[2].Position().Y; got != want {
		t.Errorf("expected offset %.1f from latest anchor, got %.1f", want, got)
	}
}

func TestScrollToSupersedesInFlight(t *testing.T) {
	scroll, sections := buildTestScroll(t)

	nav := NewNavigator(scroll)
	nav.SetDuration(200 * time.Millisecond)
	nav.Register("About", sections[1])
	nav.Register("Skills", sections[3])

	if err := nav.ScrollTo("Skills"); err != nil {
		t.Fatalf("ScrollTo(Skills) failed: %v", err)
	}
	firstAnim := nav.anim
	if firstAnim == nil {
		t.Fatal("expected an in-flight animation after ScrollTo")
	}

	// A second request while the first is still running replaces it:
	// last requester wins, nothing queues.
	if err := nav.ScrollTo("About"); err != nil {
		t.Fatalf("ScrollTo(About) failed: %v", err)
	}
	if nav.anim == firstAnim {
		t.Fatal("expected the in-flight animation to be replaced")
	}

	// The offset must settle on the second target, not the first.
	want := sections[1].Position().Y
	deadline := time.Now().Add(2 * time.Second)
	for scroll.Offset.Y != want && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := scroll.Offset.Y; got != want {
		t.Errorf("expected offset to settle at %.1f, got %.1f", want, got)
	}
}

func TestRegistered(t *testing.T) {
	scroll, sections := buildTestScroll(t)

	nav := NewNavigator(scroll)
	nav.Register("Home", sections[0])

	if !nav.Registered("Home") {
		t.Error("expected Home to be registered")
	}
	if nav.Registered("Footer") {
		t.Error("expected Footer to be unregistered")
	}
}

func TestEaseOutQuad(t *testing.T) {
	if got := easeOutQuad(0); got != 0 {
		t.Errorf("expected ease(0) = 0, got %f", got)
	}
	if got := easeOutQuad(1); got != 1 {
		t.Errorf("expected ease(1) = 1, got %f", got)
	}

	// Monotonic over the whole animation.
	prev := float32(0)
	for i := 1; i <= 100; i++ {
		v := easeOutQuad(float32(i) / 100)
		if v < prev {
			t.Fatalf("ease not monotonic at %d/100: %f < %f", i, v, prev)
		}
		prev = v
	}
}
