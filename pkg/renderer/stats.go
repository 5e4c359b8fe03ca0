package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of output pixels
	Rays        int           // Primary rays cast, including supersamples
	Hits        int           // Primary rays that hit a shape
	Duration    time.Duration // Wall time of the render
}

// HitRatio returns the fraction of rays that hit a shape
func (s RenderStats) HitRatio() float64 {
	if s.Rays == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Rays)
}

// add accumulates ray counts from a tile
func (s *RenderStats) add(other RenderStats) {
	s.Rays += other.Rays
	s.Hits += other.Hits
}

// CalculateAverageLuminance returns the mean luminance of an image in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 65535.0
		}
	}
	return total / float64(bounds.Dx()*bounds.Dy())
}
