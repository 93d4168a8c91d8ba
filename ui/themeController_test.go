package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestToggleParity(t *testing.T) {
	app := test.NewApp()

	controller := NewThemeController(app, ModeLight)

	// An even number of toggles returns to the original mode.
	for i := 0; i < 4; i++ {
		controller.Toggle()
	}
	if controller.Mode() != ModeLight {
		t.Errorf("expected ModeLight after 4 toggles, got %s", controller.Mode())
	}

	// An odd number yields the other mode.
	controller.Toggle()
	if controller.Mode() != ModeDark {
		t.Errorf("expected ModeDark after 5 toggles, got %s", controller.Mode())
	}
}

func TestToggleNotifiesAllSubscribers(t *testing.T) {
	app := test.NewApp()

	controller := NewThemeController(app, ModeLight)

	var first, second []Mode
	controller.Subscribe(func(m Mode) { first = append(first, m) })
	controller.Subscribe(func(m Mode) { second = append(second, m) })

	controller.Toggle()
	controller.Toggle()

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 notifications each, got %d and %d", len(first), len(second))
	}
	if first[0] != ModeDark || first[1] != ModeLight {
		t.Errorf("expected notifications [Dark Light], got %v", first)
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	app := test.NewApp()

	controller := NewThemeController(app, ModeLight)

	calls := 0
	id := controller.Subscribe(func(Mode) { calls++ })

	controller.Toggle()
	controller.Unsubscribe(id)
	controller.Toggle()

	if calls != 1 {
		t.Errorf("expected 1 call after unsubscribe, got %d", calls)
	}

	// Double unsubscribe is harmless.
	controller.Unsubscribe(id)
	controller.Toggle()
	if calls != 1 {
		t.Errorf("expected no calls after double unsubscribe, got %d", calls)
	}
}

func TestPalettesDiffer(t *testing.T) {
	if SurfaceColor(ModeLight) == SurfaceColor(ModeDark) {
		t.Error("expected light and dark surface colors to differ")
	}
	if TextColor(ModeLight) == TextColor(ModeDark) {
		t.Error("expected light and dark text colors to differ")
	}
}
