package export

import (
	"fmt"
	"image/color"

	"github.com/go-pdf/fpdf"
)

func setDrawColor(pdf *fpdf.Fpdf, c color.NRGBA) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func setFillColor(pdf *fpdf.Fpdf, c color.NRGBA) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

// alpha returns the opacity of c in [0, 1].
func alpha(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

// hexColor formats c as #rrggbb for SVG attributes.
func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
