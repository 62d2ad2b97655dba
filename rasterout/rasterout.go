// Package rasterout rasterizes a qrcodegen.QRCode to PNG or JPEG at a
// requested pixel scale, with configurable colors and optional finder
// pattern highlighting.
//
// Like svgout, this is an external collaborator of the core encoder: it
// only reads a symbol's Size, Version, and GetModule.
package rasterout

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/grkuntzmd/qrcodegen"
)

// Options controls how a symbol is rasterized.
type Options struct {
	Scale         int         // Pixels per module (minimum 1).
	Border        int         // Quiet-zone width, in modules.
	Foreground    color.Color // Color of dark modules (default black).
	Background    color.Color // Color of light modules (default white).
	HighlightFind color.Color // If non-nil, finder patterns are drawn in this color instead of Foreground.
}

func (o Options) normalized() Options {
	if o.Scale < 1 {
		o.Scale = 1
	}
	if o.Foreground == nil {
		o.Foreground = color.Black
	}
	if o.Background == nil {
		o.Background = color.White
	}

	return o
}

// ParseHexColor converts a "#RRGGBB" string to an RGB color.
//
// Returns a *qrcodegen.QRError{InvalidArgument} if s is not exactly 7
// characters starting with '#', or contains non-hex digits.
func ParseHexColor(s string) (color.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return nil, &qrcodegen.QRError{Kind: qrcodegen.InvalidArgument, Msg: fmt.Sprintf("rasterout: malformed hex color %q", s)}
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, &qrcodegen.QRError{Kind: qrcodegen.InvalidArgument, Msg: fmt.Sprintf("rasterout: malformed hex color %q: %v", s, err)}
	}

	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// buildImage builds the rasterized image for sym under opts.
func buildImage(sym *qrcodegen.QRCode, opts Options) image.Image {
	opts = opts.normalized()
	dim := (sym.Size + 2*opts.Border) * opts.Scale

	img := image.NewRGBA(image.Rect(0, 0, dim, dim))
	for py := 0; py < dim; py++ {
		for px := 0; px < dim; px++ {
			img.Set(px, py, opts.Background)
		}
	}

	for r := 0; r < sym.Size; r++ {
		for c := 0; c < sym.Size; c++ {
			if !sym.GetModule(c, r) {
				continue
			}

			fg := opts.Foreground
			if opts.HighlightFind != nil && isFinderModule(sym.Size, c, r) {
				fg = opts.HighlightFind
			}

			startX := (c + opts.Border) * opts.Scale
			startY := (r + opts.Border) * opts.Scale
			for dy := 0; dy < opts.Scale; dy++ {
				for dx := 0; dx < opts.Scale; dx++ {
					img.Set(startX+dx, startY+dy, fg)
				}
			}
		}
	}

	return img
}

// isFinderModule reports whether (x, y) lies within one of the three 8x8
// finder-plus-separator regions at the symbol's corners.
func isFinderModule(size, x, y int) bool {
	inTopLeft := x < 8 && y < 8
	inTopRight := x >= size-8 && y < 8
	inBottomLeft := x < 8 && y >= size-8

	return inTopLeft || inTopRight || inBottomLeft
}

// PNG rasterizes sym to a PNG-encoded byte slice.
func PNG(sym *qrcodegen.QRCode, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, buildImage(sym, opts)); err != nil {
		return nil, fmt.Errorf("rasterout: encode PNG: %w", err)
	}

	return buf.Bytes(), nil
}

// JPEG rasterizes sym to a JPEG-encoded byte slice at the given quality
// (1-100).
func JPEG(sym *qrcodegen.QRCode, opts Options, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, buildImage(sym, opts), &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("rasterout: encode JPEG: %w", err)
	}

	return buf.Bytes(), nil
}
