// Intensity gradients and range normalization
package algorithms

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Normalize linearly rescales src so that its minimum maps to lo and its
// maximum to hi. The output keeps the depth of src. A constant input
// produces a constant output equal to lo.
func Normalize(src gocv.Mat, lo, hi float64) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	output := gocv.NewMat()
	gocv.Normalize(src, &output, lo, hi, gocv.NormMinMax)
	if output.Empty() {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("normalize produced no output")
	}
	return output, nil
}

// Gradients returns the horizontal and vertical 3x3 Sobel derivatives of src
// as CV_32F Mats, each rescaled to [0,1]. The caller owns both results.
func Gradients(src gocv.Mat) (gocv.Mat, gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	gx, err := unitSobel(src, 1, 0)
	if err != nil {
		return gocv.NewMat(), gocv.NewMat(), fmt.Errorf("horizontal gradient: %w", err)
	}

	gy, err := unitSobel(src, 0, 1)
	if err != nil {
		gx.Close()
		return gocv.NewMat(), gocv.NewMat(), fmt.Errorf("vertical gradient: %w", err)
	}

	return gx, gy, nil
}

func unitSobel(src gocv.Mat, dx, dy int) (gocv.Mat, error) {
	raw := gocv.NewMat()
	defer raw.Close()

	if err := gocv.Sobel(src, &raw, gocv.MatTypeCV32F, dx, dy, 3, 1, 0, gocv.BorderDefault); err != nil {
		return gocv.NewMat(), err
	}
	return Normalize(raw, 0, 1)
}
