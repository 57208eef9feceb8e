package maps

import (
	"gocv.io/x/gocv"

	"texture-map-generator/internal/algorithms"
	"texture-map-generator/internal/config"
)

// SpecularMap encodes per-pixel reflectivity as a full-range grayscale image.
type SpecularMap struct{}

func NewSpecularMap() *SpecularMap {
	return &SpecularMap{}
}

func (s *SpecularMap) Build(src gocv.Mat, p config.Params) (gocv.Mat, error) {
	adjusted, err := adjust(src, p)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer adjusted.Close()

	return algorithms.Normalize(adjusted, 0, 255)
}

func (s *SpecularMap) Validate(p config.Params) error {
	return validateAdjustment(p)
}

func (s *SpecularMap) GetName() string {
	return "Specular Map"
}

func (s *SpecularMap) GetDescription() string {
	return "Adjusted, optionally blurred source stretched to [0,255]"
}
