package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// ErrSectionNotRegistered is returned by ScrollTo when the requested
// section name has no registered anchor. Navigation is simply dropped;
// the scroll position stays where it was.
var ErrSectionNotRegistered = errors.New("section not registered")

// ScrollDuration bounds the section scroll animation.
const ScrollDuration = 400 * time.Millisecond

// Navigator maps section names to their rendered position inside the main
// scroll container and animates the viewport to them.
//
// Anchors are the section canvas objects themselves, not cached offsets:
// the target offset is resolved from the object's current position at
// scroll time, so a relayout (resize, theme change) can never leave a
// stale offset behind.
type Navigator struct {
	scroll *container.Scroll

	// sections is keyed by the human-readable section name. Registration
	// is an idempotent overwrite since section objects are recreated on
	// each full rebuild of the layout.
	sections map[string]fyne.CanvasObject

	// duration of the scroll animation. Zero applies the offset
	// immediately with no animation.
	duration time.Duration

	// anim is the in-flight scroll animation, nil when idle. A new
	// ScrollTo stops it first: last requester wins, nothing queues.
	anim *fyne.Animation
}

// NewNavigator creates a navigator driving the given scroll container.
func NewNavigator(scroll *container.Scroll) *Navigator {
	return &Navigator{
		scroll:   scroll,
		sections: make(map[string]fyne.CanvasObject),
		duration: ScrollDuration,
	}
}

// SetDuration overrides the animation duration. A duration <= 0 makes
// ScrollTo jump to the target without animating.
func (n *Navigator) SetDuration(d time.Duration) {
	n.duration = d
}

// Register associates a section name with its canvas object. Registering
// the same name again overwrites the previous anchor.
func (n *Navigator) Register(name string, section fyne.CanvasObject) {
	n.sections[name] = section
}

// Registered reports whether a section name has an anchor.
func (n *Navigator) Registered(name string) bool {
	_, ok := n.sections[name]
	return ok
}

// ScrollTo animates the scroll offset so the named section's top edge
// lands at the top of the viewport. Unknown names return
// ErrSectionNotRegistered and leave the offset untouched. A request made
// while a previous animation is still running stops that animation and
// replaces it.
func (n *Navigator) ScrollTo(name string) error {
	section, ok := n.sections[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrSectionNotRegistered)
	}

	target := n.clampOffset(section.Position().Y)

	if n.anim != nil {
		n.anim.Stop()
		n.anim = nil
	}

	if n.duration <= 0 {
		n.applyOffset(target)
		return nil
	}

	start := n.scroll.Offset.Y
	log.Printf("[NAV] scrolling to %q (offset %.0f -> %.0f)", name, start, target)

	anim := fyne.NewAnimation(n.duration, func(done float32) {
		t := easeOutQuad(done)
		n.applyOffset(start + (target-start)*t)
	})
	anim.Curve = fyne.AnimationLinear // easing applied above
	n.anim = anim
	anim.Start()

	return nil
}

// clampOffset keeps the target inside the scrollable range, so scrolling
// to the last section aligns it as far up as the content allows.
func (n *Navigator) clampOffset(y float32) float32 {
	max := n.scroll.Content.Size().Height - n.scroll.Size().Height
	if max < 0 {
		max = 0
	}
	if y < 0 {
		return 0
	}
	if y > max {
		return max
	}
	return y
}

func (n *Navigator) applyOffset(y float32) {
	n.scroll.ScrollToOffset(fyne.NewPos(n.scroll.Offset.X, y))
}

// easeOutQuad is a monotonic ease-out curve: fast start, settle at the end.
func easeOutQuad(t float32) float32 {
	return t * (2 - t)
}
