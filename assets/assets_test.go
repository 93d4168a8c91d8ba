package assets

import (
	"testing"
)

func TestResourceEmbedded(t *testing.T) {
	res, err := Resource("profile.png")
	if err != nil {
		t.Fatalf("profile.png not embedded: %v", err)
	}
	if res.Name() != "profile.png" {
		t.Errorf("expected resource name profile.png, got %q", res.Name())
	}
	if len(res.Content()) == 0 {
		t.Error("expected non-empty resource content")
	}
}

func TestResourceMissing(t *testing.T) {
	if _, err := Resource("no-such-image.png"); err == nil {
		t.Error("expected error for missing asset")
	}
}

func TestThumbnailFitsBounds(t *testing.T) {
	img, err := Thumbnail("profile.png", 64, 64)
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > 64 || bounds.Dy() > 64 {
		t.Errorf("thumbnail exceeds bounds: %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestAllContentImagesEmbedded(t *testing.T) {
	names := []string{
		"profile.png",
		"project_flash_chat.png",
		"project_clima.png",
		"project_todoey.png",
		"project_bmi.png",
		"skill_flutter.png",
		"skill_go.png",
		"skill_firebase.png",
		"skill_rest.png",
		"skill_design.png",
		"social_github.png",
		"social_linkedin.png",
		"social_twitter.png",
	}

	for _, name := range names {
		if _, err := Image(name); err != nil {
			t.Errorf("asset %q: %v", name, err)
		}
	}
}
