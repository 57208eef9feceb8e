package maps

import (
	"fmt"

	"gocv.io/x/gocv"

	"texture-map-generator/internal/config"
	"texture-map-generator/internal/render"
)

// TextureMap is the adjusted source expanded to four channels and passed
// through an offscreen surface, as the viewer samples it.
type TextureMap struct{}

func NewTextureMap() *TextureMap {
	return &TextureMap{}
}

// Build returns a CV_8UC4 Mat read back from the surface named by p.Backend.
func (t *TextureMap) Build(src gocv.Mat, p config.Params) (gocv.Mat, error) {
	adjusted, err := adjust(src, p)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer adjusted.Close()

	expanded := gocv.NewMat()
	defer expanded.Close()
	if err := gocv.CvtColor(adjusted, &expanded, gocv.ColorGrayToBGRA); err != nil {
		return gocv.NewMat(), fmt.Errorf("expand to four channels: %w", err)
	}

	upload, err := expanded.ToImage()
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("convert for upload: %w", err)
	}

	readback, err := render.RoundTrip(upload, p.Backend)
	if err != nil {
		return gocv.NewMat(), err
	}

	output, err := gocv.ImageToMatRGBA(readback)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("convert readback: %w", err)
	}
	return output, nil
}

func (t *TextureMap) Validate(p config.Params) error {
	return validateAdjustment(p)
}

func (t *TextureMap) GetName() string {
	return "Texture Map"
}

func (t *TextureMap) GetDescription() string {
	return "Adjusted source round-tripped through an offscreen RGBA surface"
}
