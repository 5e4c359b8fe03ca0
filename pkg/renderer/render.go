package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"runtime"
	"time"

	"github.com/df07/go-implicit-raytracer/pkg/core"
	"github.com/df07/go-implicit-raytracer/pkg/geometry"
	"github.com/nfnt/resize"
	"golang.org/x/sync/errgroup"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	TileSize    int       // Tile edge in (supersampled) pixels
	NumWorkers  int       // Concurrent tiles, 0 means runtime.NumCPU()
	Supersample int       // Rays per pixel edge, downscaled with Lanczos3
	TMin        float64   // Lower bound of every primary ray interval
	TMax        float64   // Upper bound of every primary ray interval
	Background  core.Vec3 // Color of rays that hit nothing
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:    32,
		NumWorkers:  0,
		Supersample: 1,
		TMin:        core.CastEpsilon,
		TMax:        math.Inf(1),
		Background:  core.NewVec3(0.05, 0.05, 0.08),
	}
}

// Renderer casts one primary ray per (sub)pixel into a shape and shades the
// nearest hit. Tiles are rendered concurrently and write disjoint pixels.
type Renderer struct {
	shape  geometry.Shape
	camera CameraConfig
	shader Shader
	config RenderConfig
	logger core.Logger
}

// NewRenderer creates a renderer. A nil shader selects NormalShader and a nil
// logger discards output.
func NewRenderer(shape geometry.Shape, camera CameraConfig, shader Shader, config RenderConfig, logger core.Logger) (*Renderer, error) {
	if shape == nil {
		return nil, fmt.Errorf("renderer: nil shape")
	}
	if camera.Width <= 0 || camera.Height <= 0 {
		return nil, fmt.Errorf("renderer: invalid image size %dx%d", camera.Width, camera.Height)
	}
	if camera.HFov <= 0 || camera.HFov >= 180 {
		return nil, fmt.Errorf("renderer: invalid field of view %g", camera.HFov)
	}
	if shader == nil {
		shader = NormalShader{}
	}
	if logger == nil {
		logger = discardLogger{}
	}
	if config.Supersample < 1 {
		config.Supersample = 1
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if config.TMax <= config.TMin {
		config.TMax = math.Inf(1)
	}

	return &Renderer{
		shape:  shape,
		camera: camera,
		shader: shader,
		config: config,
		logger: logger,
	}, nil
}

// Render produces the image. It stops scheduling tiles once ctx is done and
// returns the context error.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	ss := r.config.Supersample

	cameraConfig := r.camera
	cameraConfig.Width *= ss
	cameraConfig.Height *= ss
	camera := NewCamera(cameraConfig)

	img := image.NewRGBA(image.Rect(0, 0, cameraConfig.Width, cameraConfig.Height))
	tiles := NewTileGrid(cameraConfig.Width, cameraConfig.Height, r.config.TileSize)
	tileStats := make([]RenderStats, len(tiles))

	r.logger.Printf("Rendering %dx%d (%dx supersample) in %d tiles with %d workers\n",
		r.camera.Width, r.camera.Height, ss, len(tiles), r.config.NumWorkers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.NumWorkers)
	for _, tile := range tiles {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tileStats[tile.ID] = r.renderTile(camera, tile, img)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{TotalPixels: r.camera.Width * r.camera.Height}
	for _, ts := range tileStats {
		stats.add(ts)
	}

	if ss > 1 {
		img = downscale(img, r.camera.Width, r.camera.Height)
	}

	stats.Duration = time.Since(start)
	r.logger.Printf("Rendered %d rays (%.1f%% hits) in %v\n", stats.Rays, 100*stats.HitRatio(), stats.Duration)
	return img, stats, nil
}

// renderTile shades every pixel inside the tile bounds
func (r *Renderer) renderTile(camera *Camera, tile Tile, img *image.RGBA) RenderStats {
	var stats RenderStats
	for j := tile.Bounds.Min.Y; j < tile.Bounds.Max.Y; j++ {
		for i := tile.Bounds.Min.X; i < tile.Bounds.Max.X; i++ {
			c, hit := r.RayColor(camera.GetRay(i, j))
			stats.Rays++
			if hit {
				stats.Hits++
			}
			img.SetRGBA(i, j, vec3ToColor(c))
		}
	}
	return stats
}

// RayColor returns the linear color seen along a ray and whether it hit
func (r *Renderer) RayColor(ray core.Ray) (core.Vec3, bool) {
	hit, ok := r.shape.Hit(ray, r.config.TMin, r.config.TMax)
	if !ok {
		return r.config.Background, false
	}
	return r.shader.Shade(ray, hit), true
}

// vec3ToColor converts a linear color to RGBA with gamma 2 and clamping
func vec3ToColor(c core.Vec3) color.RGBA {
	c = core.NewVec3(
		math.Sqrt(math.Max(0, c.X)),
		math.Sqrt(math.Max(0, c.Y)),
		math.Sqrt(math.Max(0, c.Z)),
	).Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}

// downscale resizes the supersampled image to the output size
func downscale(src *image.RGBA, width, height int) *image.RGBA {
	resized := resize.Resize(uint(width), uint(height), src, resize.Lanczos3)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), resized, resized.Bounds().Min, draw.Src)
	return dst
}
