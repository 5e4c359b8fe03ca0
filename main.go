package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-implicit-raytracer/pkg/core"
	"github.com/df07/go-implicit-raytracer/pkg/renderer"
	"github.com/df07/go-implicit-raytracer/pkg/scene"
)

// Config holds command line options
type Config struct {
	SceneType   string
	Width       int
	Height      int
	Workers     int
	TileSize    int
	Supersample int
	Shader      string
	OutputRoot  string
}

func main() {
	config := Config{}

	// Parse command line flags
	flag.StringVar(&config.SceneType, "scene", "algebraic", "Scene type: "+strings.Join(scene.Names(), ", "))
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 uses the scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height in pixels (0 uses the scene default)")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.IntVar(&config.TileSize, "tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	flag.IntVar(&config.Supersample, "supersample", 1, "Rays per pixel edge")
	flag.StringVar(&config.Shader, "shader", "headlight", "Shader: 'headlight' or 'normal'")
	flag.StringVar(&config.OutputRoot, "output", "output", "Root directory for rendered images")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := renderer.NewDefaultLogger()
	if err := run(ctx, config, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Implicit Surface Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.List() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
}

func run(ctx context.Context, config Config, logger core.Logger) error {
	logger.Printf("Starting Implicit Surface Raytracer...\n")

	selectedScene, err := createScene(config.SceneType)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene with %d shapes\n", selectedScene.Name, selectedScene.GetPrimitiveCount())

	shader, ok := renderer.ShaderByName(config.Shader)
	if !ok {
		return fmt.Errorf("unknown shader %q", config.Shader)
	}

	cameraConfig := selectedScene.Camera
	if config.Width > 0 {
		cameraConfig.Width = config.Width
	}
	if config.Height > 0 {
		cameraConfig.Height = config.Height
	}

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.NumWorkers = config.Workers
	renderConfig.TileSize = config.TileSize
	renderConfig.Supersample = config.Supersample
	renderConfig.Background = selectedScene.Background

	rt, err := renderer.NewRenderer(selectedScene, cameraConfig, shader, renderConfig, logger)
	if err != nil {
		return err
	}

	img, _, err := rt.Render(ctx)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	outputDir := createOutputDir(config.OutputRoot, config.SceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds the named scene
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene given")
	}
	return scene.New(sceneType)
}

// createOutputDir returns the directory renders of a scene are written to
func createOutputDir(root, sceneType string) string {
	return filepath.Join(root, filepath.Base(sceneType))
}
