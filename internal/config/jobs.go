// Package config holds the fixed job table for the map generator.
package config

import (
	"fmt"
	"image"
)

// Map kinds understood by the generator registry.
const (
	KindNormal       = "normal"
	KindSpecular     = "specular"
	KindDisplacement = "displacement"
	KindTexture      = "texture"
)

// DefaultInput is the source image every default job reads.
const DefaultInput = "images/moon8192px.jpg"

// Bilateral holds edge-preserving filter settings.
type Bilateral struct {
	D          int     // neighborhood diameter
	SigmaColor float64 // range sigma
	SigmaSpace float64 // spatial sigma
}

// Params are the per-job filter settings. Zero values disable optional
// stages: no blur when Blur is the zero point, unit intensity when Intensity
// is 0, best available surface when Backend is empty.
type Params struct {
	Brightness int
	Contrast   int
	Blur       image.Point
	Intensity  float64
	Bilateral  Bilateral
	Backend    string
}

// HasBlur reports whether a blur kernel was requested.
func (p Params) HasBlur() bool {
	return p.Blur != image.Point{}
}

// EffectiveIntensity returns Intensity, or 1 when unset.
func (p Params) EffectiveIntensity() float64 {
	if p.Intensity == 0 {
		return 1
	}
	return p.Intensity
}

// Job describes one map to generate.
type Job struct {
	Name   string
	Kind   string
	Input  string
	Output string
	Params Params
}

// Defaults returns the job table used to build the moon viewer assets.
func Defaults() []Job {
	return []Job{
		{
			Name:   "normal_map",
			Kind:   KindNormal,
			Input:  DefaultInput,
			Output: "maps/normal_map.png",
			Params: Params{Brightness: 30, Contrast: 20, Blur: image.Pt(3, 3), Intensity: 3.0},
		},
		{
			Name:   "specular_map",
			Kind:   KindSpecular,
			Input:  DefaultInput,
			Output: "maps/specular_map.png",
			Params: Params{Brightness: 20, Contrast: 30, Blur: image.Pt(1, 1)},
		},
		{
			Name:   "displacement_map",
			Kind:   KindDisplacement,
			Input:  DefaultInput,
			Output: "maps/displacement_map.png",
			Params: Params{
				Brightness: 20,
				Contrast:   50,
				Bilateral:  Bilateral{D: 1, SigmaColor: 1, SigmaSpace: 1},
			},
		},
		{
			Name:   "texture_map",
			Kind:   KindTexture,
			Input:  DefaultInput,
			Output: "maps/texture_map.png",
			Params: Params{Brightness: -10, Contrast: 30},
		},
	}
}

// Validate checks the structural integrity of a job table. Filter parameter
// ranges are checked by the generators themselves.
func Validate(jobs []Job) error {
	if len(jobs) == 0 {
		return fmt.Errorf("no jobs configured")
	}

	names := make(map[string]bool, len(jobs))
	outputs := make(map[string]string, len(jobs))
	for i, job := range jobs {
		switch {
		case job.Name == "":
			return fmt.Errorf("job %d: name is required", i)
		case job.Input == "":
			return fmt.Errorf("job %s: input path is required", job.Name)
		case job.Output == "":
			return fmt.Errorf("job %s: output path is required", job.Name)
		case job.Input == job.Output:
			return fmt.Errorf("job %s: output would overwrite the input", job.Name)
		}

		switch job.Kind {
		case KindNormal, KindSpecular, KindDisplacement, KindTexture:
		default:
			return fmt.Errorf("job %s: unknown kind %q", job.Name, job.Kind)
		}

		if names[job.Name] {
			return fmt.Errorf("duplicate job name: %s", job.Name)
		}
		names[job.Name] = true

		if other, ok := outputs[job.Output]; ok {
			return fmt.Errorf("jobs %s and %s write the same output %s", other, job.Name, job.Output)
		}
		outputs[job.Output] = job.Name
	}

	return nil
}
