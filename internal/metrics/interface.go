// Output statistics for generated texture maps
package metrics

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Metric defines the interface for single-image statistics
type Metric interface {
	// Calculate computes the metric value over every channel of img
	Calculate(img gocv.Mat) (float64, error)

	GetName() string
	GetDescription() string

	// GetRange returns the value range (min, max) for 8-bit images
	GetRange() (float64, float64)
}

// Evaluator manages and calculates multiple metrics
type Evaluator struct {
	metrics map[string]Metric
}

// NewEvaluator creates a new metrics evaluator with the default metrics registered
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		metrics: make(map[string]Metric),
	}
	e.RegisterDefaultMetrics()
	return e
}

// RegisterDefaultMetrics registers all default metrics
func (e *Evaluator) RegisterDefaultMetrics() {
	e.Register("min", NewMinimum())
	e.Register("max", NewMaximum())
	e.Register("mean", NewMean())
	e.Register("contrast", NewContrast())
}

// Register registers a metric
func (e *Evaluator) Register(name string, metric Metric) {
	e.metrics[name] = metric
}

// Calculate calculates a specific metric
func (e *Evaluator) Calculate(name string, img gocv.Mat) (float64, error) {
	metric, exists := e.metrics[name]
	if !exists {
		return 0, fmt.Errorf("metric not found: %s", name)
	}
	return metric.Calculate(img)
}

// CalculateAll calculates all registered metrics, skipping any that fail
func (e *Evaluator) CalculateAll(img gocv.Mat) map[string]float64 {
	results := make(map[string]float64)
	for name, metric := range e.metrics {
		if value, err := metric.Calculate(img); err == nil {
			results[name] = value
		}
	}
	return results
}

// MetricInfo provides metadata about a metric
type MetricInfo struct {
	Name        string
	Description string
	Range       [2]float64 // [min, max]
}

// GetMetricInfo returns information about all metrics
func (e *Evaluator) GetMetricInfo() map[string]MetricInfo {
	info := make(map[string]MetricInfo)
	for name, metric := range e.metrics {
		lo, hi := metric.GetRange()
		info[name] = MetricInfo{
			Name:        metric.GetName(),
			Description: metric.GetDescription(),
			Range:       [2]float64{lo, hi},
		}
	}
	return info
}

// Analysis flags outputs that are unlikely to be useful as texture maps.
type Analysis struct {
	Flat      bool // every sample has the same value
	FullRange bool // samples span the whole [0,255] scale
	Issues    []string
}

// Analyze interprets the values returned by CalculateAll.
func Analyze(values map[string]float64) Analysis {
	analysis := Analysis{Issues: make([]string, 0)}

	lo, hasMin := values["min"]
	hi, hasMax := values["max"]
	if !hasMin || !hasMax {
		analysis.Issues = append(analysis.Issues, "range metrics unavailable")
		return analysis
	}

	analysis.Flat = lo == hi
	analysis.FullRange = lo == 0 && hi == 255

	if analysis.Flat {
		analysis.Issues = append(analysis.Issues, "output is constant")
	} else if !analysis.FullRange {
		analysis.Issues = append(analysis.Issues, fmt.Sprintf("output spans [%.0f, %.0f] only", lo, hi))
	}

	return analysis
}
