package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName  string
	width      int
	spp        int
	depth      int
	seed       int64
	workers    int
	format     loaders.Format
	out        string
	textureDir string
	list       bool
	help       bool

	// set records which flags were given explicitly
	set map[string]bool
}

func parseFlags(args []string, output io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{set: make(map[string]bool)}
	var format string

	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {} // run prints its own help
	fs.StringVar(&opts.sceneName, "scene", "basic", "Scene to render (see -list)")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels; height follows the scene's aspect ratio (0 = scene default)")
	fs.IntVar(&opts.spp, "spp", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	fs.Int64Var(&opts.seed, "seed", renderer.DefaultRenderConfig().Seed, "Seed for scene construction and sampling")
	fs.IntVar(&opts.workers, "workers", 0, "Number of render workers (0 = number of CPUs)")
	fs.StringVar(&format, "format", "png", "Output format: png or ppm")
	fs.StringVar(&opts.out, "out", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	fs.StringVar(&opts.textureDir, "texture-dir", ".", "Directory containing image textures such as earthmap.png")
	fs.BoolVar(&opts.list, "list", false, "List available scenes and exit")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	parsed, err := loaders.ParseFormat(format)
	if err != nil {
		return nil, fs, err
	}
	opts.format = parsed

	return opts, fs, nil
}

// renderConfig starts from the scene's recommended settings and applies overrides
func renderConfig(def scene.Definition, opts *options) (renderer.RenderConfig, error) {
	config := def.Config
	if opts.width > 0 {
		config.Width = opts.width
		config.Height = max(1, int(float64(opts.width)/def.AspectRatio()))
	}
	if opts.spp > 0 {
		config.SamplesPerPixel = opts.spp
	}
	if opts.depth > 0 {
		config.MaxDepth = opts.depth
	}
	if opts.set["seed"] {
		config.Seed = opts.seed
	}
	if opts.workers > 0 {
		config.NumWorkers = opts.workers
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid settings for scene %q: %w", def.Name, err)
	}
	return config, nil
}

// createScene looks up and builds the named scene with the command line overrides
func createScene(opts *options) (*renderer.Scene, error) {
	def, err := scene.Lookup(opts.sceneName)
	if err != nil {
		return nil, err
	}

	config, err := renderConfig(def, opts)
	if err != nil {
		return nil, err
	}

	return def.Build(scene.Options{Config: config, TextureDir: opts.textureDir}), nil
}

// outputPath returns the -out value or a timestamped file under output/<scene>/
func outputPath(opts *options, now time.Time) string {
	if opts.out != "" {
		return opts.out
	}
	filename := fmt.Sprintf("render_%s.%s", now.Format("20060102_150405"), opts.format)
	return filepath.Join("output", opts.sceneName, filename)
}

func printSceneList(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, d := range scene.All() {
		fmt.Fprintf(w, "  %-16s %s: %s (%dx%d, %d spp)\n", d.Name, d.DisplayName(), d.Description, d.Config.Width, d.Config.Height, d.Config.SamplesPerPixel)
	}
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	printSceneList(w)
}

// run is main without the process exit, so it can be tested
func run(args []string, stdout io.Writer, logger core.Logger) error {
	opts, fs, err := parseFlags(args, stdout)
	if errors.Is(err, flag.ErrHelp) {
		printHelp(stdout, fs)
		return nil
	}
	if err != nil {
		return err
	}

	if opts.help {
		printHelp(stdout, fs)
		return nil
	}
	if opts.list {
		printSceneList(stdout)
		return nil
	}

	logger.Printf("Building scene %q...\n", opts.sceneName)
	s, err := createScene(opts)
	if err != nil {
		return err
	}
	s.SetLogger(logger)

	buf := make([]byte, 3*s.Width*s.Height)
	if _, err := s.Render(buf); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	path := outputPath(opts, time.Now())
	if err := loaders.SaveImage(path, opts.format, buf, s.Width, s.Height); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", path)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
