// Command qrdemo encodes a piece of text into a QR Code and writes it out
// as SVG (and, optionally, PNG), using the qrcodegen core and its
// external svgout/rasterout formatters. It is itself an external
// collaborator of the core: a CLI wrapper, out of the core's scope per
// spec.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/pkg/browser"

	"github.com/grkuntzmd/qrcodegen"
	"github.com/grkuntzmd/qrcodegen/rasterout"
	"github.com/grkuntzmd/qrcodegen/svgout"
)

func main() {
	var (
		ecl    = flag.String("ecl", "medium", "error correction level: low, medium, quartile, high")
		border = flag.Int("border", 4, "quiet zone width, in modules")
		out    = flag.String("out", "qrcode.svg", "output SVG path")
		png    = flag.String("png", "", "optional output PNG path")
		scale  = flag.Int("scale", 8, "pixels per module for PNG output")
		open   = flag.Bool("open", false, "open the generated SVG in a browser")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: qrdemo [flags] <text>")
	}

	level, err := parseEcl(*ecl)
	if err != nil {
		log.Fatal(err)
	}

	sym, err := qrcodegen.EncodeText(flag.Arg(0), level)
	if err != nil {
		log.Fatalf("encode: %v", err)
	}

	svg, err := svgout.Render(sym, *border)
	if err != nil {
		log.Fatalf("render svg: %v", err)
	}
	if err := os.WriteFile(*out, []byte(svg), 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("wrote %s (version %d, mask %d)", *out, sym.Version, sym.Mask)

	if *png != "" {
		data, err := rasterout.PNG(sym, rasterout.Options{Scale: *scale, Border: *border})
		if err != nil {
			log.Fatalf("render png: %v", err)
		}
		if err := os.WriteFile(*png, data, 0o644); err != nil {
			log.Fatalf("write %s: %v", *png, err)
		}
		log.Printf("wrote %s", *png)
	}

	if *open {
		if err := browser.OpenFile(*out); err != nil {
			log.Fatalf("open %s: %v", *out, err)
		}
	}
}

func parseEcl(s string) (qrcodegen.Ecl, error) {
	switch s {
	case "low":
		return qrcodegen.Low, nil
	case "medium":
		return qrcodegen.Medium, nil
	case "quartile":
		return qrcodegen.Quartile, nil
	case "high":
		return qrcodegen.High, nil
	default:
		return 0, &qrcodegen.QRError{Kind: qrcodegen.InvalidArgument, Msg: "unknown error correction level " + s}
	}
}
