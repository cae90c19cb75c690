// Package qr renders QR codes as PNG images.
//
// Encoding is delegated to github.com/skip2/go-qrcode, which picks the
// smallest symbol version that can hold the content at the requested error
// correction level. Rasterization happens here: every dark module becomes a
// BoxSize x BoxSize pixel block, and a quiet zone of Border modules is added
// on each side, so the output is always a square of
//
//	(modules + 2*border) * boxSize
//
// pixels. The library's own quiet zone is disabled so that Border is honored
// exactly, including zero.
//
// Colors accept hex descriptors (#RGB, #RGBA, #RRGGBB, #RRGGBBAA) and SVG
// color names ("black", "red", "navy"). Rendering is deterministic: the same
// inputs always produce the same PNG bytes.
package qr
