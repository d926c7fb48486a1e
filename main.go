package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

func main() {
	// Parse command line flags
	sceneFlag := flag.String("scene", "default", "Scene: 'default', 'mirrors', or a path to a .yaml scene file")
	width := flag.Int("width", 1024, "Image width in pixels")
	height := flag.Int("height", 768, "Image height in pixels")
	fov := flag.Float64("fov", 60, "Vertical field of view in degrees")
	depth := flag.Int("depth", 4, "Maximum recursion depth")
	workers := flag.Int("workers", 1, "Number of render workers")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	record := flag.String("record", "", "Optional directory for a render recording bundle")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Four spheres (ivory, glass, rubber, mirror) under three lights")
		fmt.Println("  mirrors - Two facing mirror spheres, exercises the recursion cap")
		fmt.Println("  <path>  - A .yaml scene file")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
		return
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	selectedScene, sceneName, err := loadScene(*sceneFlag)
	if err != nil {
		logger.Fatalf("Error loading scene: %v", err)
	}

	config := tracer.DefaultConfig()
	config.MaxDepth = *depth

	camera := renderer.NewCamera(*width, *height, *fov*math.Pi/180)
	r := renderer.NewRenderer(selectedScene, camera, config, logger)

	var rec *renderer.Recorder
	var progress renderer.ProgressFunc
	if *record != "" {
		rec, err = renderer.NewRecorder(*record, sceneName, *width, *height)
		if err != nil {
			logger.Fatalf("Error creating recorder: %v", err)
		}
		defer rec.Close()
		progress = func(fb *renderer.Framebuffer, rowsDone int) {
			if err := rec.RecordEvent("rows_done", rowsDone); err != nil {
				logger.Printf("Recorder error: %v", err)
			}
		}
	}

	logger.Printf("Rendering %s at %dx%d with %d worker(s)...", sceneName, *width, *height, *workers)
	startTime := time.Now()
	fb := r.RenderParallel(*workers, progress)
	renderTime := time.Since(startTime)
	logger.Printf("Render completed in %v", renderTime)

	if rec != nil {
		if err := rec.RecordFrame(fb); err != nil {
			logger.Printf("Recorder error: %v", err)
		}
		logger.Printf("Recording saved to %s", rec.Dir())
	}

	outputDir := filepath.Join("output", sceneName)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		logger.Fatalf("Error creating output directory: %v", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, *format))

	file, err := os.Create(filename)
	if err != nil {
		logger.Fatalf("Error creating file: %v", err)
	}
	defer file.Close()

	switch *format {
	case "ppm":
		err = fb.WritePPM(file)
	case "png":
		err = fb.WritePNG(file)
	default:
		logger.Fatalf("Unknown output format: %s", *format)
	}
	if err != nil {
		logger.Fatalf("Error saving image: %v", err)
	}

	logger.Printf("Render saved as %s", filename)
}

// loadScene resolves a scene flag value to a scene: a built-in name or a
// YAML file path.
func loadScene(name string) (*scene.Scene, string, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene(), "default", nil
	case "mirrors":
		return scene.NewMirrorScene(), "mirrors", nil
	}
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		s, err := scene.LoadFile(name)
		if err != nil {
			return nil, "", err
		}
		base := strings.TrimSuffix(strings.TrimSuffix(filepath.Base(name), ".yaml"), ".yml")
		return s, base, nil
	}
	return nil, "", fmt.Errorf("unknown scene %q", name)
}
