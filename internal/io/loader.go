// Image loading and saving for the map generators
package io

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"texture-map-generator/internal/core"
)

var supportedFormats = []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp"}

// ImageLoader handles image file operations
type ImageLoader struct {
	logger logrus.FieldLogger
}

func NewImageLoader(logger logrus.FieldLogger) *ImageLoader {
	return &ImageLoader{
		logger: logger,
	}
}

// LoadImageGrayscale reads path as a single-channel 8-bit image.
func (il *ImageLoader) LoadImageGrayscale(path string) (gocv.Mat, error) {
	il.logger.WithField("filepath", path).Debug("Loading image as grayscale")

	if !IsSupportedImageFormat(path) {
		return gocv.NewMat(), fmt.Errorf("unsupported image format: %s", path)
	}

	mat := gocv.IMRead(path, gocv.IMReadGrayScale)
	if mat.Empty() {
		mat.Close()
		return gocv.NewMat(), fmt.Errorf("failed to load image: %s", path)
	}

	if err := core.ValidateImage(mat); err != nil {
		mat.Close()
		return gocv.NewMat(), fmt.Errorf("invalid image %s: %w", path, err)
	}

	il.logger.WithFields(core.Describe(mat, path).Fields()).
		WithField("filepath", path).
		Info("Grayscale image loaded successfully")

	return mat, nil
}

// SaveImage writes mat to path, creating the parent directory if needed.
// An existing file is overwritten.
func (il *ImageLoader) SaveImage(mat gocv.Mat, path string) error {
	il.logger.WithField("filepath", path).Debug("Saving image")

	if mat.Empty() {
		return fmt.Errorf("cannot save empty image")
	}

	if !IsSupportedImageFormat(path) {
		return fmt.Errorf("unsupported image format: %s", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if ok := gocv.IMWrite(path, mat); !ok {
		return fmt.Errorf("failed to save image: %s", path)
	}

	il.logger.WithFields(core.Describe(mat, path).Fields()).
		WithField("filepath", path).
		Info("Image saved successfully")

	return nil
}

// IsSupportedImageFormat reports whether path has an extension gocv can read and write.
func IsSupportedImageFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}
