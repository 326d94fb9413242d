package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCaptureFromPixelsFlipsRows(t *testing.T) {
	// A 1x2 frame delivered bottom row first: red below, green above.
	pixels := []byte{
		255, 0, 0, 255,
		0, 255, 0, 255,
	}

	sc := NewScreenshotCapture(t.TempDir(), "test")
	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode screenshot: %v", err)
	}

	// The PNG is top-down, so green lands on the first row.
	r, g, _, _ := img.At(0, 0).RGBA()
	if r != 0 || g != 0xffff {
		t.Errorf("expected green at (0,0), got r=%d g=%d", r, g)
	}
	r, g, _, _ = img.At(0, 1).RGBA()
	if r != 0xffff || g != 0 {
		t.Errorf("expected red at (0,1), got r=%d g=%d", r, g)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "test")

	if _, err := sc.CaptureFromPixels(make([]byte, 3), 2, 2); err == nil {
		t.Error("expected error for short pixel data, got nil")
	}
}

func TestCaptureFilename(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "tetherbox")

	path, err := sc.CaptureFromPixels(make([]byte, 4), 1, 1)
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("expected screenshot under %s, got %s", dir, path)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "tetherbox_") || !strings.HasSuffix(base, ".png") {
		t.Errorf("unexpected screenshot name %s", base)
	}
}
