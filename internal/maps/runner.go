package maps

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"texture-map-generator/internal/config"
	imgio "texture-map-generator/internal/io"
	"texture-map-generator/internal/metrics"
)

// Runner executes jobs: load, build, measure, save.
type Runner struct {
	loader    *imgio.ImageLoader
	evaluator *metrics.Evaluator
	logger    logrus.FieldLogger
}

func NewRunner(logger logrus.FieldLogger) *Runner {
	return &Runner{
		loader:    imgio.NewImageLoader(logger),
		evaluator: metrics.NewEvaluator(),
		logger:    logger,
	}
}

// Run generates a single map and writes it to job.Output.
func (r *Runner) Run(job config.Job) error {
	start := time.Now()
	log := r.logger.WithFields(logrus.Fields{
		"job":  job.Name,
		"kind": job.Kind,
	})

	generator, exists := Get(job.Kind)
	if !exists {
		return fmt.Errorf("job %s: generator not found: %s", job.Name, job.Kind)
	}
	if err := generator.Validate(job.Params); err != nil {
		return fmt.Errorf("job %s: invalid parameters: %w", job.Name, err)
	}

	log.WithFields(logrus.Fields{
		"generator":  generator.GetName(),
		"input":      job.Input,
		"brightness": job.Params.Brightness,
		"contrast":   job.Params.Contrast,
	}).Info("Generating map")
	log.Debug(generator.GetDescription())

	src, err := r.loader.LoadImageGrayscale(job.Input)
	if err != nil {
		return fmt.Errorf("job %s: %w", job.Name, err)
	}
	defer src.Close()

	output, err := generator.Build(src, job.Params)
	if err != nil {
		return fmt.Errorf("job %s: %w", job.Name, err)
	}
	defer output.Close()

	stats := r.evaluator.CalculateAll(output)
	fields := logrus.Fields{}
	for name, value := range stats {
		fields[name] = value
	}
	if analysis := metrics.Analyze(stats); analysis.Flat {
		log.WithFields(fields).Warn("Generated map is constant")
	} else if len(analysis.Issues) > 0 {
		log.WithFields(fields).WithField("issues", analysis.Issues).Debug("Map statistics")
	}

	if err := r.loader.SaveImage(output, job.Output); err != nil {
		return fmt.Errorf("job %s: %w", job.Name, err)
	}

	log.WithFields(fields).WithFields(logrus.Fields{
		"output":   job.Output,
		"channels": output.Channels(),
		"duration": time.Since(start).String(),
	}).Info("Map generated")

	return nil
}

// RunAll runs jobs in order and stops at the first failure.
func (r *Runner) RunAll(jobs []config.Job) error {
	if err := config.Validate(jobs); err != nil {
		return err
	}

	for _, job := range jobs {
		if err := r.Run(job); err != nil {
			return err
		}
	}
	return nil
}

// Metrics describes the statistics each run logs.
func (r *Runner) Metrics() map[string]metrics.MetricInfo {
	return r.evaluator.GetMetricInfo()
}
