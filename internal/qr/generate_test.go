package qr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	qrcode "github.com/skip2/go-qrcode"
)

// decodePNG decodes rendered image bytes or fails the test
func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	return img
}

// rgbAt returns the 8-bit RGB components of the pixel at (x, y)
func rgbAt(img image.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"l", qrcode.Low},
		{"M", qrcode.Medium},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"q", qrcode.High},
		{"H", qrcode.Highest},
		{"h", qrcode.Highest},
		{"", qrcode.Medium},
		{"X", qrcode.Medium},
		{"high", qrcode.Medium},
		{" l ", qrcode.Medium},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestGenerate_Dimensions(t *testing.T) {
	tests := []struct {
		name    string
		boxSize int
		border  int
	}{
		{"defaults", 10, 4},
		{"single pixel modules", 1, 0},
		{"wide border", 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Generate("hello", Options{BoxSize: tt.boxSize, Border: tt.border, Level: qrcode.Medium})
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			wantSide := (img.Modules + 2*tt.border) * tt.boxSize
			if img.Width != wantSide || img.Height != wantSide {
				t.Errorf("size: got %dx%d, want %dx%d", img.Width, img.Height, wantSide, wantSide)
			}

			decoded := decodePNG(t, img.PNG)
			bounds := decoded.Bounds()
			if bounds.Dx() != wantSide || bounds.Dy() != wantSide {
				t.Errorf("PNG size: got %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), wantSide, wantSide)
			}
		})
	}
}

func TestGenerate_MinimalVersion(t *testing.T) {
	// Short content fits the smallest symbol at medium error correction
	img, err := Generate("hello", Options{BoxSize: 1, Level: qrcode.Medium})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if img.Version != 1 {
		t.Errorf("Version: got %d, want 1", img.Version)
	}
	if img.Modules != 21 {
		t.Errorf("Modules: got %d, want 21", img.Modules)
	}
}

func TestGenerate_ErrorCorrectionGrowth(t *testing.T) {
	text := strings.Repeat("x", 100)

	low, err := Generate(text, Options{BoxSize: 1, Level: qrcode.Low})
	if err != nil {
		t.Fatalf("Generate at low level failed: %v", err)
	}
	high, err := Generate(text, Options{BoxSize: 1, Level: qrcode.Highest})
	if err != nil {
		t.Fatalf("Generate at highest level failed: %v", err)
	}

	if high.Modules <= low.Modules {
		t.Errorf("highest level should need a larger symbol: low=%d, high=%d", low.Modules, high.Modules)
	}
}

func TestGenerate_DefaultColors(t *testing.T) {
	img, err := Generate("hello", Options{BoxSize: 2, Border: 1, Level: qrcode.Medium})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	decoded := decodePNG(t, img.PNG)

	// Corner pixel sits in the quiet zone
	if r, g, b := rgbAt(decoded, 0, 0); r != 255 || g != 255 || b != 255 {
		t.Errorf("quiet zone pixel: got (%d,%d,%d), want (255,255,255)", r, g, b)
	}
	// First module inside the border belongs to a finder pattern, always dark
	if r, g, b := rgbAt(decoded, 2, 2); r != 0 || g != 0 || b != 0 {
		t.Errorf("finder pixel: got (%d,%d,%d), want (0,0,0)", r, g, b)
	}
}

func TestGenerate_CustomColors(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}

	img, err := Generate("hello", Options{BoxSize: 2, Border: 1, Level: qrcode.Medium, Fill: red, Back: blue})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	decoded := decodePNG(t, img.PNG)

	if r, g, b := rgbAt(decoded, 0, 0); r != 0 || g != 0 || b != 255 {
		t.Errorf("quiet zone pixel: got (%d,%d,%d), want (0,0,255)", r, g, b)
	}
	if r, g, b := rgbAt(decoded, 2, 2); r != 255 || g != 0 || b != 0 {
		t.Errorf("finder pixel: got (%d,%d,%d), want (255,0,0)", r, g, b)
	}
}

func TestGenerate_ZeroBorder(t *testing.T) {
	img, err := Generate("hello", Options{BoxSize: 1, Border: 0, Level: qrcode.Medium})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if img.Width != img.Modules {
		t.Errorf("zero border should remove the quiet zone: width=%d, modules=%d", img.Width, img.Modules)
	}

	// Without a quiet zone the corner pixel is the finder pattern itself
	decoded := decodePNG(t, img.PNG)
	if r, g, b := rgbAt(decoded, 0, 0); r != 0 || g != 0 || b != 0 {
		t.Errorf("corner pixel: got (%d,%d,%d), want (0,0,0)", r, g, b)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := Options{BoxSize: 3, Border: 2, Level: qrcode.High}

	first, err := Generate("same input", opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := Generate("same input", opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !bytes.Equal(first.PNG, second.PNG) {
		t.Error("identical inputs should produce identical PNG bytes")
	}
}

func TestGenerate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts Options
	}{
		{"zero box size", "hi", Options{BoxSize: 0}},
		{"negative box size", "hi", Options{BoxSize: -3}},
		{"negative border", "hi", Options{BoxSize: 1, Border: -1}},
		{"content too long", strings.Repeat("a", 4000), Options{BoxSize: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(tt.text, tt.opts); err == nil {
				t.Error("Generate should fail")
			}
		})
	}
}
