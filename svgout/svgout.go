// Package svgout renders a qrcodegen.QRCode as a standalone SVG document.
//
// It is an external collaborator of the core encoder: it only reads a
// symbol's Size and GetModule, and never reaches into the encoder's
// internals.
package svgout

import (
	"fmt"
	"strings"

	"github.com/grkuntzmd/qrcodegen"
)

// Render returns an SVG 1.1 document for sym with the given quiet-zone
// border, in modules. The viewBox covers size + 2*border units, and every
// dark module becomes one 1x1 path rectangle.
//
// Returns a *qrcodegen.QRError{InvalidArgument} if border is negative.
func Render(sym *qrcodegen.QRCode, border int) (string, error) {
	if border < 0 {
		return "", &qrcodegen.QRError{Kind: qrcodegen.InvalidArgument, Msg: fmt.Sprintf("svgout: border must be non-negative, got %d", border)}
	}

	size := sym.Size
	dim := size + border*2

	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %d %d\" stroke=\"none\">\n", dim, dim)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")

	first := true
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if sym.GetModule(x, y) {
				if !first {
					sb.WriteString(" ")
				}
				first = false
				fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
			}
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
