package maps

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"texture-map-generator/internal/algorithms"
	"texture-map-generator/internal/config"
)

// DisplacementMap encodes per-pixel height offsets. Blur is not part of this
// pipeline; the bilateral filter does the smoothing.
type DisplacementMap struct{}

func NewDisplacementMap() *DisplacementMap {
	return &DisplacementMap{}
}

func (d *DisplacementMap) Build(src gocv.Mat, p config.Params) (gocv.Mat, error) {
	p.Blur = image.Point{}

	adjusted, err := adjust(src, p)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer adjusted.Close()

	b := p.Bilateral
	filtered, err := algorithms.ApplyBilateralFilter(adjusted, b.D, b.SigmaColor, b.SigmaSpace)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer filtered.Close()

	return algorithms.Normalize(filtered, 0, 255)
}

func (d *DisplacementMap) Validate(p config.Params) error {
	b := p.Bilateral
	if b.SigmaColor < 0 || b.SigmaSpace < 0 {
		return fmt.Errorf("bilateral sigmas must be non-negative (color %v, space %v): %w",
			b.SigmaColor, b.SigmaSpace, algorithms.ErrInvalidParameter)
	}
	p.Blur = image.Point{}
	return validateAdjustment(p)
}

func (d *DisplacementMap) GetName() string {
	return "Displacement Map"
}

func (d *DisplacementMap) GetDescription() string {
	return "Bilateral-filtered source stretched to [0,255]"
}
