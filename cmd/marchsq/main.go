// Command marchsq generates a random binary sample grid and traces the
// contours between "on" and "off" samples using marching squares.
//
// Three images are written: the sample grid itself, the contour lines on
// a black background, and the contour lines drawn over the sample grid.
// Optionally, the result is also written as a PDF file.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/field"
	"seehuhn.de/go/contour/render"
)

func main() {
	var (
		width     = flag.Int("width", 640, "image width in pixels")
		height    = flag.Int("height", 480, "image height in pixels")
		dx        = flag.Int("dx", 10, "horizontal spacing of the sample points")
		dy        = flag.Int("dy", 10, "vertical spacing of the sample points")
		seed      = flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
		gridOut   = flag.String("grid", "marching_grid.png", "output file for the sample grid (empty to skip)")
		linesOut  = flag.String("lines", "marching_lines.png", "output file for the contour lines (empty to skip)")
		overlay   = flag.String("overlay", "marching_grid_lines.png", "output file for lines over the grid (empty to skip)")
		pdfOut    = flag.String("pdf", "", "output PDF file (empty to skip)")
		scale     = flag.Int("scale", 1, "integer magnification of the output images")
		lineWidth = flag.Float64("line-width", 1, "contour line width, in sample grid pixels")
		verbose   = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	contour.SetLogger(logger)

	cfg := config{
		width:     *width,
		height:    *height,
		dx:        *dx,
		dy:        *dy,
		seed:      *seed,
		gridOut:   *gridOut,
		linesOut:  *linesOut,
		overlay:   *overlay,
		pdfOut:    *pdfOut,
		scale:     *scale,
		lineWidth: *lineWidth,
	}
	if err := run(cfg, logger); err != nil {
		logger.Error("marchsq failed", "error", err)
		os.Exit(1)
	}
}

type config struct {
	width, height int
	dx, dy        int
	seed          uint64
	gridOut       string
	linesOut      string
	overlay       string
	pdfOut        string
	scale         int
	lineWidth     float64
}

func (c *config) check() error {
	switch {
	case c.width < 1 || c.height < 1:
		return fmt.Errorf("invalid image size %dx%d", c.width, c.height)
	case c.dx < 1 || c.dy < 1:
		return fmt.Errorf("invalid sample spacing %dx%d", c.dx, c.dy)
	case c.scale < 1:
		return fmt.Errorf("invalid scale factor %d", c.scale)
	case c.lineWidth <= 0:
		return fmt.Errorf("invalid line width %g", c.lineWidth)
	}
	for _, name := range []string{c.gridOut, c.linesOut, c.overlay} {
		if name == "" {
			continue
		}
		if _, err := render.FormatFromName(name); err != nil {
			return err
		}
	}
	return nil
}

func run(cfg config, logger *slog.Logger) (err error) {
	if err = cfg.check(); err != nil {
		return err
	}

	f := field.New(cfg.width, cfg.height, cfg.dx, cfg.dy, cfg.seed)
	grid := field.Lattice(cfg.width, cfg.height, cfg.dx, cfg.dy)
	logger.Info("sample grid generated",
		slog.Int("width", cfg.width),
		slog.Int("height", cfg.height),
		slog.Int("cols", grid.Cols),
		slog.Int("rows", grid.Rows),
		slog.Uint64("seed", cfg.seed))

	k := cfg.scale
	toDevice := render.PixelCentres(float64(k))
	scaledGrid := render.Scale(f.Img, k)

	var sinks []contour.Sink
	var lines, over *render.Canvas
	if cfg.linesOut != "" {
		lines = render.NewCanvas(cfg.width*k, cfg.height*k)
		lines.Transform = toDevice
		lines.LineWidth = cfg.lineWidth
		sinks = append(sinks, lines)
	}
	if cfg.overlay != "" {
		over = render.NewCanvasFrom(scaledGrid)
		over.Transform = toDevice
		over.LineWidth = cfg.lineWidth
		sinks = append(sinks, over)
	}
	var doc *render.PDF
	if cfg.pdfOut != "" {
		doc, err = render.CreatePDF(cfg.pdfOut, float64(cfg.width), float64(cfg.height))
		if err != nil {
			return err
		}
		defer func() {
			// finish the file on error paths, the result is discarded
			if err != nil {
				_ = doc.Close()
			}
		}()
		doc.LineWidth = cfg.lineWidth
		doc.SampleSize = min(float64(cfg.dx), float64(cfg.dy)) / 4
		markSamples(doc, f, cfg)
		sinks = append(sinks, doc)
	}

	start := time.Now()
	stats, err := contour.March(f, grid, contour.SinkFunc(func(a, b vec.Vec2) {
		for _, s := range sinks {
			s.DrawSegment(a, b)
		}
	}))
	if err != nil {
		return err
	}
	logger.Info("contours traced",
		slog.Int("cells", stats.Cells),
		slog.Int("segments", stats.Segments),
		slog.Int("saddles", stats.Saddles),
		slog.Duration("elapsed", time.Since(start)))
	for _, code := range contour.Codes {
		logger.Debug("cells per code",
			slog.Int("code", int(code)),
			slog.Int("count", stats.ByCode[code]))
	}

	if cfg.gridOut != "" {
		if err := writeImage(logger, cfg.gridOut, scaledGrid); err != nil {
			return err
		}
	}
	if lines != nil {
		if err := writeImage(logger, cfg.linesOut, lines.Image()); err != nil {
			return err
		}
	}
	if over != nil {
		if err := writeImage(logger, cfg.overlay, over.Image()); err != nil {
			return err
		}
	}
	if doc != nil {
		if err := doc.Close(); err != nil {
			return fmt.Errorf("%s: %w", cfg.pdfOut, err)
		}
		logger.Info("wrote file", slog.String("name", cfg.pdfOut))
	}
	return nil
}

// markSamples shows every "on" sample point of the lattice in the PDF.
func markSamples(doc *render.PDF, f *field.Image, cfg config) {
	for y := cfg.dy; y < cfg.height-1; y += cfg.dy {
		for x := cfg.dx; x < cfg.width-1; x += cfg.dx {
			p := vec.Vec2{X: float64(x), Y: float64(y)}
			if on, err := f.Sample(p); err == nil && on {
				doc.MarkSample(p)
			}
		}
	}
}

func writeImage(logger *slog.Logger, name string, img image.Image) error {
	if err := render.WriteFile(name, img); err != nil {
		return err
	}
	logger.Info("wrote file", slog.String("name", name))
	return nil
}
