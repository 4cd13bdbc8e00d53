package sink

import (
	"bytes"
	"image/png"
	"testing"
)

func decodePNG(t *testing.T, data []byte) (w, h int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.DecodeConfig() error: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestRenderPNG_DefaultScale(t *testing.T) {
	data, err := RenderPNG(testGrid(t))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	// Default geometry is 434x192 at scale 1; default scale is 2.
	if w, h := decodePNG(t, data); w != 868 || h != 384 {
		t.Errorf("image = %dx%d, want 868x384", w, h)
	}
}

func TestRenderPNG_Scale1(t *testing.T) {
	data, err := RenderPNG(testGrid(t), WithScale(1))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	if w, h := decodePNG(t, data); w != 434 || h != 192 {
		t.Errorf("image = %dx%d, want 434x192", w, h)
	}
}

func TestRenderPNG_TitleBand(t *testing.T) {
	data, err := RenderPNG(testGrid(t),
		WithScale(1), WithPNGLayout(WithTitle("Door Control")))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	if w, h := decodePNG(t, data); w != 434 || h != 222 {
		t.Errorf("image = %dx%d, want 434x222", w, h)
	}
}
