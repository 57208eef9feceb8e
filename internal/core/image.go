// Image validation and metadata shared by the loader and the generators
package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

// MaxDimension bounds either side of an accepted image.
const MaxDimension = 16384

// ImageMetadata contains image information
type ImageMetadata struct {
	Width    int
	Height   int
	Channels int
	Type     gocv.MatType
	Format   string
}

// Describe collects metadata for mat, taking the format from path's extension.
func Describe(mat gocv.Mat, path string) ImageMetadata {
	return ImageMetadata{
		Width:    mat.Cols(),
		Height:   mat.Rows(),
		Channels: mat.Channels(),
		Type:     mat.Type(),
		Format:   getFormatFromPath(path),
	}
}

// Fields renders the metadata as log fields.
func (m ImageMetadata) Fields() logrus.Fields {
	return logrus.Fields{
		"width":    m.Width,
		"height":   m.Height,
		"channels": m.Channels,
		"type":     int(m.Type),
		"format":   m.Format,
	}
}

// ValidateImage validates an OpenCV Mat for basic requirements
func ValidateImage(mat gocv.Mat) error {
	if mat.Empty() {
		return fmt.Errorf("image is empty")
	}

	if mat.Cols() <= 0 || mat.Rows() <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", mat.Cols(), mat.Rows())
	}

	channels := mat.Channels()
	if channels < 1 || channels > 4 {
		return fmt.Errorf("unsupported channel count: %d", channels)
	}

	if mat.Cols() > MaxDimension || mat.Rows() > MaxDimension {
		return fmt.Errorf("image too large: %dx%d (max: %d)", mat.Cols(), mat.Rows(), MaxDimension)
	}

	return nil
}

func getFormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}
