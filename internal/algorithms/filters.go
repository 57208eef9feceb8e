// Smoothing filters used ahead of map generation
package algorithms

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// ValidateKernelSize checks that both kernel dimensions are odd and positive.
func ValidateKernelSize(ksize image.Point) error {
	if ksize.X < 1 || ksize.Y < 1 || ksize.X%2 == 0 || ksize.Y%2 == 0 {
		return fmt.Errorf("kernel size %dx%d must be odd and positive: %w", ksize.X, ksize.Y, ErrInvalidParameter)
	}
	return nil
}

// ApplyGaussianBlur smooths src with a ksize Gaussian kernel. Sigma is derived
// from the kernel dimensions. A 1x1 kernel leaves the image unchanged.
func ApplyGaussianBlur(src gocv.Mat, ksize image.Point) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}
	if err := ValidateKernelSize(ksize); err != nil {
		return gocv.NewMat(), err
	}

	output := gocv.NewMat()
	if err := gocv.GaussianBlur(src, &output, ksize, 0, 0, gocv.BorderDefault); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("gaussian blur: %w", err)
	}
	return output, nil
}

// ApplyBilateralFilter performs edge-preserving smoothing. d is the diameter of
// each pixel neighborhood; sigmaColor and sigmaSpace weight neighbors by
// intensity and spatial distance respectively.
func ApplyBilateralFilter(src gocv.Mat, d int, sigmaColor, sigmaSpace float64) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	output := gocv.NewMat()
	if err := gocv.BilateralFilter(src, &output, d, sigmaColor, sigmaSpace); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("bilateral filter: %w", err)
	}
	return output, nil
}
