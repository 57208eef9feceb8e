// Package maps builds auxiliary texture maps from a grayscale source.
//
// Each map kind is a Generator registered under its config kind. Generators
// are pure Mat-to-Mat pipelines; the Runner wraps them with file I/O,
// statistics and logging.
package maps

import (
	"fmt"
	"sort"

	"gocv.io/x/gocv"

	"texture-map-generator/internal/algorithms"
	"texture-map-generator/internal/config"
)

// Generator turns an 8-bit grayscale image into one texture map.
type Generator interface {
	// Build returns a new Mat owned by the caller. src is not modified.
	Build(src gocv.Mat, p config.Params) (gocv.Mat, error)
	Validate(p config.Params) error
	GetName() string
	GetDescription() string
}

var generators = make(map[string]Generator)

func Register(kind string, generator Generator) {
	generators[kind] = generator
}

func Get(kind string) (Generator, bool) {
	generator, exists := generators[kind]
	return generator, exists
}

// Kinds returns registered kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(generators))
	for kind := range generators {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func init() {
	Register(config.KindNormal, NewNormalMap())
	Register(config.KindSpecular, NewSpecularMap())
	Register(config.KindDisplacement, NewDisplacementMap())
	Register(config.KindTexture, NewTextureMap())
}

// validateAdjustment checks the brightness, contrast and optional blur shared by every map.
func validateAdjustment(p config.Params) error {
	if err := algorithms.ValidateBrightness(p.Brightness); err != nil {
		return err
	}
	if err := algorithms.ValidateContrast(p.Contrast); err != nil {
		return err
	}
	if p.HasBlur() {
		return algorithms.ValidateKernelSize(p.Blur)
	}
	return nil
}

// adjust applies brightness, contrast and, when requested, the blur kernel.
func adjust(src gocv.Mat, p config.Params) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	adjusted, err := algorithms.ApplyBrightnessContrast(src, p.Brightness, p.Contrast)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("brightness/contrast: %w", err)
	}
	if !p.HasBlur() {
		return adjusted, nil
	}
	defer adjusted.Close()

	blurred, err := algorithms.ApplyGaussianBlur(adjusted, p.Blur)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("blur: %w", err)
	}
	return blurred, nil
}
