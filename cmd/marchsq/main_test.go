package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testConfig(dir string) config {
	return config{
		width:     64,
		height:    48,
		dx:        10,
		dy:        10,
		seed:      1,
		gridOut:   filepath.Join(dir, "grid.png"),
		linesOut:  filepath.Join(dir, "lines.png"),
		overlay:   filepath.Join(dir, "overlay.bmp"),
		pdfOut:    filepath.Join(dir, "contours.pdf"),
		scale:     2,
		lineWidth: 1,
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := run(cfg, logger); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{cfg.gridOut, cfg.linesOut, cfg.overlay, cfg.pdfOut} {
		fi, err := os.Stat(name)
		if err != nil {
			t.Error(err)
		} else if fi.Size() == 0 {
			t.Errorf("%s: empty file", name)
		}
	}
}

// TestRunClosesPDF checks that the PDF file is completed when writing one
// of the images fails.
func TestRunClosesPDF(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.gridOut = filepath.Join(dir, "missing", "grid.png")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := run(cfg, logger); err == nil {
		t.Fatal("expected an error for the unwritable image")
	}

	data, err := os.ReadFile(cfg.pdfOut)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("PDF header missing")
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		t.Error("PDF file was not finished")
	}
}

func TestCheck(t *testing.T) {
	bad := []func(*config){
		func(c *config) { c.width = 0 },
		func(c *config) { c.dy = 0 },
		func(c *config) { c.scale = 0 },
		func(c *config) { c.lineWidth = 0 },
		func(c *config) { c.linesOut = "lines.jpg" },
	}
	for i, modify := range bad {
		cfg := testConfig("")
		modify(&cfg)
		if err := cfg.check(); err == nil {
			t.Errorf("%d: invalid configuration accepted", i)
		}
	}
	cfg := testConfig("")
	if err := cfg.check(); err != nil {
		t.Errorf("valid configuration rejected: %v", err)
	}
}
