package maps

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"texture-map-generator/internal/algorithms"
	"texture-map-generator/internal/config"
	"texture-map-generator/internal/render"
)

func constantMat(t *testing.T, rows, cols int, value float64) gocv.Mat {
	t.Helper()
	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(value, 0, 0, 0), rows, cols, gocv.MatTypeCV8U)
	t.Cleanup(func() { mat.Close() })
	return mat
}

// craterMat is a dark disc on a mid-gray plate, enough structure for every gradient.
func craterMat(t *testing.T, size int) gocv.Mat {
	t.Helper()
	mat := gocv.NewMatWithSize(size, size, gocv.MatTypeCV8U)
	c := size / 2
	for r := 0; r < size; r++ {
		for col := 0; col < size; col++ {
			v := uint8(60 + 4*col)
			if (r-c)*(r-c)+(col-c)*(col-c) < (size/4)*(size/4) {
				v = 20
			}
			mat.SetUCharAt(r, col, v)
		}
	}
	t.Cleanup(func() { mat.Close() })
	return mat
}

func build(t *testing.T, kind string, src gocv.Mat, p config.Params) gocv.Mat {
	t.Helper()
	generator, ok := Get(kind)
	require.True(t, ok, kind)
	require.NoError(t, generator.Validate(p))

	out, err := generator.Build(src, p)
	require.NoError(t, err)
	t.Cleanup(func() { out.Close() })
	return out
}

func sampleRange(t *testing.T, mat gocv.Mat) (float32, float32) {
	t.Helper()
	require.Equal(t, 1, mat.Channels())
	lo, hi, _, _ := gocv.MinMaxLoc(mat)
	return lo, hi
}

func TestRegisteredKinds(t *testing.T) {
	assert.Equal(t, []string{
		config.KindDisplacement,
		config.KindNormal,
		config.KindSpecular,
		config.KindTexture,
	}, Kinds())

	_, ok := Get("albedo")
	assert.False(t, ok)
}

func TestNormalMapFlatSource(t *testing.T) {
	src := constantMat(t, 8, 8, 100)

	out := build(t, config.KindNormal, src, config.Params{Blur: image.Pt(3, 3)})
	require.Equal(t, 3, out.Channels())
	require.Equal(t, 8, out.Rows())
	require.Equal(t, 8, out.Cols())

	for r := 0; r < out.Rows(); r++ {
		for c := 0; c < out.Cols(); c++ {
			bgr := out.GetVecbAt(r, c)
			assert.Equal(t, uint8(255), bgr[0], "blue at (%d,%d)", r, c)
			assert.InDelta(t, 127.5, float64(bgr[1]), 1, "green at (%d,%d)", r, c)
			assert.InDelta(t, 127.5, float64(bgr[2]), 1, "red at (%d,%d)", r, c)
		}
	}
}

func TestNormalMapTexturedSource(t *testing.T) {
	src := craterMat(t, 32)

	out := build(t, config.KindNormal, src, config.Params{
		Brightness: 30,
		Contrast:   20,
		Blur:       image.Pt(3, 3),
		Intensity:  3,
	})
	require.Equal(t, 3, out.Channels())
	assert.Equal(t, gocv.MatTypeCV8UC3, out.Type())

	planes := gocv.Split(out)
	defer func() {
		for _, p := range planes {
			p.Close()
		}
	}()

	top := float32(0)
	for _, p := range planes {
		lo, hi, _, _ := gocv.MinMaxLoc(p)
		assert.GreaterOrEqual(t, lo, float32(0))
		assert.LessOrEqual(t, hi, float32(255))
		if hi > top {
			top = hi
		}
	}
	assert.Equal(t, float32(255), top)
}

func TestSpecularMapStretchesRange(t *testing.T) {
	src := craterMat(t, 16)

	out := build(t, config.KindSpecular, src, config.Params{Brightness: 20, Contrast: 30, Blur: image.Pt(1, 1)})
	lo, hi := sampleRange(t, out)
	assert.Equal(t, float32(0), lo)
	assert.Equal(t, float32(255), hi)
}

func TestSpecularMapConstantSource(t *testing.T) {
	src := constantMat(t, 8, 8, 100)

	out := build(t, config.KindSpecular, src, config.Params{Blur: image.Pt(3, 3)})
	lo, hi := sampleRange(t, out)
	assert.Equal(t, lo, hi)
}

func TestDisplacementMapStretchesRange(t *testing.T) {
	src := craterMat(t, 16)

	out := build(t, config.KindDisplacement, src, config.Params{
		Brightness: 20,
		Contrast:   50,
		Bilateral:  config.Bilateral{D: 5, SigmaColor: 75, SigmaSpace: 75},
	})
	lo, hi := sampleRange(t, out)
	assert.Equal(t, float32(0), lo)
	assert.Equal(t, float32(255), hi)
}

func TestDisplacementMapConstantSource(t *testing.T) {
	src := constantMat(t, 8, 8, 100)

	out := build(t, config.KindDisplacement, src, config.Params{
		Bilateral: config.Bilateral{D: 1, SigmaColor: 1, SigmaSpace: 1},
	})
	lo, hi := sampleRange(t, out)
	assert.Equal(t, lo, hi)
}

func TestTextureMapRoundTrip(t *testing.T) {
	src := craterMat(t, 12)
	p := config.Params{Brightness: -10, Contrast: 30, Backend: render.CPUBackend}

	out := build(t, config.KindTexture, src, p)
	require.Equal(t, 4, out.Channels())

	adjusted, err := algorithms.ApplyBrightnessContrast(src, p.Brightness, p.Contrast)
	require.NoError(t, err)
	defer adjusted.Close()

	for r := 0; r < out.Rows(); r++ {
		for c := 0; c < out.Cols(); c++ {
			want := adjusted.GetUCharAt(r, c)
			px := out.GetVecbAt(r, c)
			assert.Equal(t, []uint8{want, want, want, 255}, []uint8{px[0], px[1], px[2], px[3]}, "pixel (%d,%d)", r, c)
		}
	}
}

func TestTextureMapUnknownBackend(t *testing.T) {
	src := constantMat(t, 4, 4, 50)
	generator, _ := Get(config.KindTexture)

	_, err := generator.Build(src, config.Params{Backend: "missing"})
	assert.Error(t, err)
}

func TestEvenBlurIsRejected(t *testing.T) {
	p := config.Params{Blur: image.Pt(2, 2)}
	src := constantMat(t, 8, 8, 100)

	for _, kind := range []string{config.KindNormal, config.KindSpecular, config.KindTexture} {
		generator, _ := Get(kind)
		assert.Truef(t, errors.Is(generator.Validate(p), algorithms.ErrInvalidParameter), "validate %s", kind)

		_, err := generator.Build(src, p)
		assert.Truef(t, errors.Is(err, algorithms.ErrInvalidParameter), "build %s", kind)
	}

	displacement, _ := Get(config.KindDisplacement)
	assert.NoError(t, displacement.Validate(config.Params{Blur: image.Pt(2, 2), Bilateral: config.Bilateral{D: 1}}))
}

func TestValidateRejectsBadParameters(t *testing.T) {
	normal, _ := Get(config.KindNormal)
	assert.True(t, errors.Is(normal.Validate(config.Params{Intensity: -1}), algorithms.ErrInvalidParameter))
	assert.True(t, errors.Is(normal.Validate(config.Params{Contrast: 131}), algorithms.ErrInvalidParameter))

	displacement, _ := Get(config.KindDisplacement)
	bad := config.Params{Bilateral: config.Bilateral{D: 3, SigmaColor: -1, SigmaSpace: 10}}
	assert.True(t, errors.Is(displacement.Validate(bad), algorithms.ErrInvalidParameter))

	specular, _ := Get(config.KindSpecular)
	assert.True(t, errors.Is(specular.Validate(config.Params{Brightness: -300}), algorithms.ErrInvalidParameter))
}

func TestBuildRejectsEmptySource(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	for _, kind := range Kinds() {
		generator, _ := Get(kind)
		_, err := generator.Build(empty, config.Params{Backend: render.CPUBackend})
		assert.Errorf(t, err, "kind %s", kind)
	}
}
