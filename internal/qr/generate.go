package qr

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Options control how a QR code is rendered.
type Options struct {
	BoxSize int                  // edge length of one module in pixels, must be positive
	Border  int                  // quiet zone width in modules, zero disables it
	Level   qrcode.RecoveryLevel // Reed-Solomon error correction strength
	Fill    color.Color          // module color, nil means black
	Back    color.Color          // background color, nil means white
}

// Image is a rendered QR code.
type Image struct {
	PNG     []byte // encoded image data
	Width   int    // pixels
	Height  int    // pixels
	Modules int    // symbol side length in modules, quiet zone excluded
	Version int    // QR symbol version (1-40)
}

// ParseLevel maps an error correction letter to its recovery level:
// L (7%), M (15%), Q (25%) or H (30%), case-insensitive. Anything else,
// including the empty string, falls back to M.
func ParseLevel(s string) qrcode.RecoveryLevel {
	switch strings.ToUpper(s) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// Generate encodes text and renders it according to opts.
func Generate(text string, opts Options) (*Image, error) {
	if opts.BoxSize <= 0 {
		return nil, fmt.Errorf("box size must be positive, got %d", opts.BoxSize)
	}
	if opts.Border < 0 {
		return nil, fmt.Errorf("border must not be negative, got %d", opts.Border)
	}

	fill := opts.Fill
	if fill == nil {
		fill = color.Black
	}
	back := opts.Back
	if back == nil {
		back = color.White
	}

	code, err := qrcode.New(text, opts.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to encode text: %w", err)
	}
	code.DisableBorder = true
	modules := code.Bitmap()

	canvas := renderModules(modules, opts.BoxSize, opts.Border, fill, back)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	bounds := canvas.Bounds()
	return &Image{
		PNG:     buf.Bytes(),
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Modules: len(modules),
		Version: code.VersionNumber,
	}, nil
}
