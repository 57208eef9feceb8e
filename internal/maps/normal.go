package maps

import (
	"fmt"
	"math"

	"gocv.io/x/gocv"

	"texture-map-generator/internal/algorithms"
	"texture-map-generator/internal/config"
)

// NormalMap encodes per-pixel surface orientation derived from intensity gradients.
type NormalMap struct{}

func NewNormalMap() *NormalMap {
	return &NormalMap{}
}

// Build packs (x, y, z) = (gx*0.5*I + 0.5, gy*0.5*I + 0.5, 1) into a CV_8UC3
// Mat stored as BGR, so a written PNG holds x in red and z in blue. Channels
// are scaled by 255/peak with peak = max(1, max x, max y).
func (n *NormalMap) Build(src gocv.Mat, p config.Params) (gocv.Mat, error) {
	adjusted, err := adjust(src, p)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer adjusted.Close()

	gx, gy, err := algorithms.Gradients(adjusted)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer gx.Close()
	defer gy.Close()

	half := float32(0.5 * p.EffectiveIntensity())
	for _, g := range []*gocv.Mat{&gx, &gy} {
		g.MultiplyFloat(half)
		g.AddFloat(0.5)
	}

	z := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(1, 0, 0, 0), adjusted.Rows(), adjusted.Cols(), gocv.MatTypeCV32F)
	defer z.Close()

	peak := 1.0
	for _, g := range []gocv.Mat{gx, gy} {
		_, hi, _, _ := gocv.MinMaxLoc(g)
		peak = math.Max(peak, float64(hi))
	}

	scale := float32(255 / peak)
	for _, ch := range []*gocv.Mat{&gx, &gy, &z} {
		ch.MultiplyFloat(scale)
	}

	packed := gocv.NewMat()
	defer packed.Close()
	gocv.Merge([]gocv.Mat{z, gy, gx}, &packed)
	if packed.Empty() {
		return gocv.NewMat(), fmt.Errorf("pack normal channels: no output")
	}

	output := gocv.NewMat()
	packed.ConvertTo(&output, gocv.MatTypeCV8UC3)
	return output, nil
}

func (n *NormalMap) Validate(p config.Params) error {
	if p.Intensity < 0 || math.IsNaN(p.Intensity) || math.IsInf(p.Intensity, 0) {
		return fmt.Errorf("intensity %v must be a finite non-negative number: %w", p.Intensity, algorithms.ErrInvalidParameter)
	}
	return validateAdjustment(p)
}

func (n *NormalMap) GetName() string {
	return "Normal Map"
}

func (n *NormalMap) GetDescription() string {
	return "RGB surface normals from Sobel gradients of the adjusted source"
}
