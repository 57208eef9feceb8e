// Package render uploads images to an offscreen drawing surface and reads
// them back. Surfaces come from the gogpu/gg backend registry, so a GPU
// backend registered by the host is preferred over the built-in CPU one.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg/surface"
)

// ErrEmptyReadback is returned when a surface yields no pixels on snapshot.
var ErrEmptyReadback = errors.New("render: surface readback returned no pixels")

// CPUBackend is the software surface registered by gogpu/gg itself.
const CPUBackend = "image"

// Backends lists the available surface backends, highest priority first.
func Backends() []string {
	return surface.Available()
}

// RoundTrip draws img onto a freshly allocated surface of the same size,
// flushes it and returns the read-back pixels. backend selects a registered
// surface by name; an empty name picks the best available one.
// The surface is released before RoundTrip returns.
func RoundTrip(img image.Image, backend string) (*image.RGBA, error) {
	if img == nil {
		return nil, errors.New("render: nil image")
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("render: empty image bounds %v", bounds)
	}

	s, err := newSurface(backend, bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	defer s.Close()

	s.Clear(color.Transparent)
	s.DrawImage(img, surface.Pt(0, 0), surface.DefaultDrawImageOptions())

	if err := s.Flush(); err != nil {
		return nil, fmt.Errorf("render: flush surface: %w", err)
	}

	out := s.Snapshot()
	if out == nil {
		return nil, ErrEmptyReadback
	}
	return out, nil
}

func newSurface(backend string, width, height int) (surface.Surface, error) {
	opts := surface.DefaultOptions(width, height)

	var (
		s   surface.Surface
		err error
	)
	if backend == "" {
		s, err = surface.NewSurfaceWithOptions(opts)
	} else {
		s, err = surface.NewSurfaceByNameWithOptions(backend, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("render: create surface %q: %w", backend, err)
	}
	return s, nil
}
