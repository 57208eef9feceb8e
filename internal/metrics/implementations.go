// Concrete implementations of output statistics
package metrics

import (
	"fmt"
	"math"

	"gocv.io/x/gocv"
)

// Minimum is the smallest sample across all channels
type Minimum struct{}

func NewMinimum() *Minimum { return &Minimum{} }

func (m *Minimum) Calculate(img gocv.Mat) (float64, error) {
	lo, _, err := channelRange(img)
	return lo, err
}

func (m *Minimum) GetName() string              { return "Minimum" }
func (m *Minimum) GetDescription() string       { return "Smallest sample value" }
func (m *Minimum) GetRange() (float64, float64) { return 0, 255 }

// Maximum is the largest sample across all channels
type Maximum struct{}

func NewMaximum() *Maximum { return &Maximum{} }

func (m *Maximum) Calculate(img gocv.Mat) (float64, error) {
	_, hi, err := channelRange(img)
	return hi, err
}

func (m *Maximum) GetName() string              { return "Maximum" }
func (m *Maximum) GetDescription() string       { return "Largest sample value" }
func (m *Maximum) GetRange() (float64, float64) { return 0, 255 }

// Mean is the average sample value, averaged over channels
type Mean struct{}

func NewMean() *Mean { return &Mean{} }

func (m *Mean) Calculate(img gocv.Mat) (float64, error) {
	if img.Empty() {
		return 0, fmt.Errorf("empty image")
	}

	mean := img.Mean()
	vals := []float64{mean.Val1, mean.Val2, mean.Val3, mean.Val4}
	channels := img.Channels()
	if channels > len(vals) {
		return 0, fmt.Errorf("unsupported channel count: %d", channels)
	}

	sum := 0.0
	for _, v := range vals[:channels] {
		sum += v
	}
	return sum / float64(channels), nil
}

func (m *Mean) GetName() string              { return "Mean" }
func (m *Mean) GetDescription() string       { return "Average sample value" }
func (m *Mean) GetRange() (float64, float64) { return 0, 255 }

// Contrast is the spread between the darkest and brightest samples
type Contrast struct{}

func NewContrast() *Contrast { return &Contrast{} }

func (c *Contrast) Calculate(img gocv.Mat) (float64, error) {
	lo, hi, err := channelRange(img)
	if err != nil {
		return 0, err
	}
	return hi - lo, nil
}

func (c *Contrast) GetName() string              { return "Contrast" }
func (c *Contrast) GetDescription() string       { return "Difference between maximum and minimum sample" }
func (c *Contrast) GetRange() (float64, float64) { return 0, 255 }

// channelRange returns the min and max over every channel of img.
func channelRange(img gocv.Mat) (float64, float64, error) {
	if img.Empty() {
		return 0, 0, fmt.Errorf("empty image")
	}

	if img.Channels() == 1 {
		lo, hi, _, _ := gocv.MinMaxLoc(img)
		return float64(lo), float64(hi), nil
	}

	planes := gocv.Split(img)
	defer func() {
		for _, p := range planes {
			p.Close()
		}
	}()

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range planes {
		pLo, pHi, _, _ := gocv.MinMaxLoc(p)
		lo = math.Min(lo, float64(pLo))
		hi = math.Max(hi, float64(pHi))
	}
	return lo, hi, nil
}
