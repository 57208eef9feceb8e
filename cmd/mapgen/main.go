// Texture map generator - builds the moon viewer's normal, specular,
// displacement and texture maps from a single grayscale source.

package main

import (
	"flag"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"texture-map-generator/internal/config"
	"texture-map-generator/internal/maps"
	"texture-map-generator/internal/render"
)

const (
	AppName    = "Texture Map Generator"
	AppVersion = "1.0.0"
)

func main() {
	debugMode := flag.Bool("debug", false, "Enable debug mode with verbose logging")
	flag.Parse()

	logger := initLogger(*debugMode)
	logger.WithFields(logrus.Fields{
		"version":    AppVersion,
		"debug_mode": *debugMode,
	}).Info("Starting " + AppName)

	runner := maps.NewRunner(logger)
	metricNames := make([]string, 0)
	for _, info := range runner.Metrics() {
		metricNames = append(metricNames, info.Name)
	}
	sort.Strings(metricNames)

	logger.WithFields(logrus.Fields{
		"generators":       maps.Kinds(),
		"surface_backends": render.Backends(),
		"metrics":          metricNames,
	}).Debug("Registered backends")

	start := time.Now()
	jobs := config.Defaults()
	if err := runner.RunAll(jobs); err != nil {
		logger.WithError(err).Fatal("Map generation failed")
	}

	logger.WithFields(logrus.Fields{
		"maps":     len(jobs),
		"duration": time.Since(start).String(),
	}).Info("All maps generated")
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
