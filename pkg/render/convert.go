package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/matzehuels/planforge/pkg/errors"
)

// installHint names the package that ships the rsvg-convert binary the
// exporters shell out to.
const installHint = "requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin"

// ToPDF converts an SVG drawing to PDF using rsvg-convert.
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, "pdf")
}

// ToPNG converts an SVG drawing to PNG at the given zoom factor. A zoom
// of 2 doubles the raster resolution. Non-positive zooms fall back to 1.
func ToPNG(svg []byte, zoom float64) ([]byte, error) {
	if zoom <= 0 {
		zoom = 1
	}
	return rsvgConvert(svg, "png", "-z", fmt.Sprintf("%.2f", zoom))
}

// rsvgConvert pipes the SVG through rsvg-convert and returns the
// converted bytes.
func rsvgConvert(svg []byte, format string, extra ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "%s export %s", format, installHint)
	}

	cmd := exec.Command("rsvg-convert", append([]string{"-f", format}, extra...)...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rsvg-convert failed: %s", bytes.TrimSpace(stderr.Bytes()))
	}
	return out.Bytes(), nil
}
