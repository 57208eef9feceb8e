// Brightness and contrast adjustment via weighted blends
package algorithms

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// ErrInvalidParameter is returned when a filter parameter is outside its legal domain.
var ErrInvalidParameter = errors.New("invalid parameter")

const (
	minAdjustment = -255
	maxAdjustment = 255

	// Contrast correction constants; the blend slope diverges at contrast == contrastPole.
	contrastPole  = 131
	contrastPivot = 127
)

// ValidateBrightness checks brightness against [-255, 255].
func ValidateBrightness(brightness int) error {
	if brightness < minAdjustment || brightness > maxAdjustment {
		return fmt.Errorf("brightness %d outside [%d, %d]: %w",
			brightness, minAdjustment, maxAdjustment, ErrInvalidParameter)
	}
	return nil
}

// ValidateContrast checks contrast against [-255, 255], excluding the pole at 131.
func ValidateContrast(contrast int) error {
	if contrast < minAdjustment || contrast > maxAdjustment {
		return fmt.Errorf("contrast %d outside [%d, %d]: %w",
			contrast, minAdjustment, maxAdjustment, ErrInvalidParameter)
	}
	if contrast == contrastPole {
		return fmt.Errorf("contrast %d has no finite slope: %w", contrast, ErrInvalidParameter)
	}
	return nil
}

// ApplyBrightness shifts the intensity range of src. Positive values lift the
// shadows towards white, negative values pull the highlights down.
// A brightness of 0 returns an unmodified clone of src.
func ApplyBrightness(src gocv.Mat, brightness int) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}
	if err := ValidateBrightness(brightness); err != nil {
		return gocv.NewMat(), err
	}
	if brightness == 0 {
		return src.Clone(), nil
	}

	shadow, highlight := 0.0, 255.0
	if brightness > 0 {
		shadow = float64(brightness)
	} else {
		highlight = 255 + float64(brightness)
	}
	alpha := (highlight - shadow) / 255
	gamma := shadow

	return blend(src, alpha, gamma)
}

// ApplyContrast stretches or compresses intensities around mid-gray using the
// corrected contrast factor f = 131(c+127) / (127(131-c)).
// A contrast of 0 returns an unmodified clone of src.
func ApplyContrast(src gocv.Mat, contrast int) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}
	if err := ValidateContrast(contrast); err != nil {
		return gocv.NewMat(), err
	}
	if contrast == 0 {
		return src.Clone(), nil
	}

	f := ContrastFactor(contrast)
	return blend(src, f, contrastPivot*(1-f))
}

// ContrastFactor returns the blend slope used by ApplyContrast.
func ContrastFactor(contrast int) float64 {
	c := float64(contrast)
	return contrastPole * (c + contrastPivot) / (contrastPivot * (contrastPole - c))
}

// ApplyBrightnessContrast runs brightness then contrast, releasing the intermediate.
func ApplyBrightnessContrast(src gocv.Mat, brightness, contrast int) (gocv.Mat, error) {
	bright, err := ApplyBrightness(src, brightness)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer bright.Close()

	return ApplyContrast(bright, contrast)
}

// blend computes saturate(src*alpha + gamma) with the source depth preserved.
func blend(src gocv.Mat, alpha, gamma float64) (gocv.Mat, error) {
	output := gocv.NewMat()
	gocv.AddWeighted(src, alpha, src, 0, gamma, &output)
	if output.Empty() {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("weighted blend produced no output")
	}
	return output, nil
}
