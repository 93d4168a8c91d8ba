// Package assets bundles the portfolio images into the binary and exposes
// them both as raw fyne resources and as pre-sized thumbnails.
// Images are plain PNG files embedded at build time; there is no runtime
// asset loading from disk or network.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"github.com/disintegration/imaging"
)

//go:embed *.png
var files embed.FS

// Resource returns the named embedded image as a fyne resource, suitable
// for icons and canvas images.
func Resource(name string) (fyne.Resource, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("asset %q not embedded: %w", name, err)
	}
	return fyne.NewStaticResource(name, data), nil
}

// Image decodes the named embedded image.
func Image(name string) (image.Image, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("asset %q not embedded: %w", name, err)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("asset %q: decode failed: %w", name, err)
	}
	return img, nil
}

// Thumbnail decodes the named image and scales it down to fit within
// width x height, preserving aspect ratio. Images already inside the
// bounds are returned at their native size.
func Thumbnail(name string, width, height int) (image.Image, error) {
	img, err := Image(name)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	if bounds.Dx() <= width && bounds.Dy() <= height {
		return img, nil
	}
	return imaging.Fit(img, width, height, imaging.Lanczos), nil
}
