// Command bvdemo renders a rotating textured cube with the burning
// software rasterizer, either to PNG files or into a window.
//
// Usage:
//
//	bvdemo [-config scene.yaml] [-output out.png] [-frames n] [-view]
//
// With more than one frame the output name gets a frame number before
// its extension.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/gogpu/burning"
)

func main() {
	var (
		config  = flag.String("config", "", "YAML scene file")
		output  = flag.String("output", "", "PNG output path")
		frames  = flag.Int("frames", 0, "number of frames to render")
		width   = flag.Int("width", 0, "render width")
		height  = flag.Int("height", 0, "render height")
		view    = flag.Bool("view", false, "show the scene in a window")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	burning.SetLogger(logger)

	cfg, err := LoadConfig(*config)
	if err != nil {
		logger.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *frames > 0 {
		cfg.Frames = *frames
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}

	if err := run(&cfg, *view, logger); err != nil {
		logger.Error("bvdemo", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg *Config, view bool, logger *slog.Logger) error {
	format, ok := burning.ParseColorFormat(cfg.Format)
	if !ok {
		return fmt.Errorf("unknown color format %q", cfg.Format)
	}
	d, err := burning.NewDriver(cfg.Width, cfg.Height,
		burning.WithColorFormat(format),
		burning.WithPerspectiveCorrection(*cfg.Perspective))
	if err != nil {
		return err
	}
	sc, err := newScene(d, cfg)
	if err != nil {
		return err
	}

	gc, gz := d.GPUFormats()
	logger.Debug("scene ready",
		slog.Any("textures", d.TextureNames()),
		slog.Any("gpu_color", gc),
		slog.Any("gpu_depth", gz))

	if view {
		return runViewer(d, sc)
	}

	pb := progressbar.Default(int64(cfg.Frames), "rendering")
	defer pb.Close()

	for i := range cfg.Frames {
		if err := sc.render(d, i, cfg.Frames); err != nil {
			return err
		}
		path := frameName(cfg.Output, i, cfg.Frames)
		if err := d.SavePNG(path); err != nil {
			return err
		}
		logger.Debug("frame written", slog.String("path", path),
			slog.Int("drawn", d.Stats().Drawn))
		_ = pb.Add(1)
	}
	return nil
}

// frameName returns out unchanged for a single frame and out with a
// zero-padded frame number before the extension otherwise.
func frameName(out string, i, n int) string {
	if n <= 1 {
		return out
	}
	ext := filepath.Ext(out)
	digits := len(fmt.Sprint(n - 1))
	return fmt.Sprintf("%s_%0*d%s", strings.TrimSuffix(out, ext), digits, i, ext)
}
