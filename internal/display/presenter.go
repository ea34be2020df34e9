// Package display presents rendered frames on the terminal and owns the
// display resources for the lifetime of a clock session.
//
// A frame is drawn at full logical resolution (1280x720 by default) and
// downsampled onto a grid of braille cells, each holding 2x4 dots. The image
// is scaled uniformly so the face stays round, and centered in the grid.
package display

import (
	"image"
	"image/color"
	"math"
	"os"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

const (
	dotsPerCol = 2
	dotsPerRow = 4
)

// Presenter converts frames to terminal text.
type Presenter struct {
	background color.RGBA
	colored    bool
	styles     map[color.RGBA]lipgloss.Style
	canvas     canvas.Model
}

// NewPresenter returns a Presenter treating background as empty space.
// When colored is false cells are emitted without escape sequences.
func NewPresenter(background color.RGBA, colored bool) *Presenter {
	return &Presenter{
		background: background,
		colored:    colored,
		styles:     make(map[color.RGBA]lipgloss.Style),
		canvas:     canvas.New(0, 0),
	}
}

// Render downsamples img onto a cols x rows grid and returns it as rows
// newline-separated lines. A dot is lit when any pixel it covers differs
// from the background. Empty grids render as an empty string.
func (p *Presenter) Render(img *image.RGBA, cols, rows int) string {
	if cols <= 0 || rows <= 0 || img.Rect.Empty() {
		return ""
	}

	if p.canvas.Width() != cols || p.canvas.Height() != rows {
		p.canvas = canvas.New(cols, rows)
	} else {
		p.canvas.Clear()
	}

	dots, fg := p.rasterize(img, cols, rows)
	for cy, line := range dots.BraillePatterns() {
		for cx, r := range line {
			if r == runes.BrailleBlockOffset {
				continue
			}
			graph.DrawBrailleRune(&p.canvas, canvas.Point{X: cx, Y: cy}, r, p.style(fg[cy*cols+cx]))
		}
	}
	return p.canvas.View()
}

// rasterize maps every non-background pixel to its braille dot. Each cell
// takes the color of its pixel furthest from the background, so antialiased
// edges do not dim a cell that also holds a fully covered pixel.
func (p *Presenter) rasterize(img *image.RGBA, cols, rows int) (*runes.PatternDotsGrid, []color.RGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	dotW, dotH := cols*dotsPerCol, rows*dotsPerRow
	dots := runes.NewPatternDotsGrid(dotW, dotH)
	fg := make([]color.RGBA, cols*rows)
	strength := make([]int, cols*rows)

	scale := math.Max(float64(w)/float64(dotW), float64(h)/float64(dotH))
	offX := (float64(dotW) - float64(w)/scale) / 2
	offY := (float64(dotH) - float64(h)/scale) / 2

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		dy := int(float64(y)/scale + offY)
		if dy < 0 || dy >= dotH {
			continue
		}
		for x := 0; x < w; x++ {
			i := x * 4
			px := color.RGBA{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
			if px == p.background {
				continue
			}
			dx := int(float64(x)/scale + offX)
			if dx < 0 || dx >= dotW {
				continue
			}
			dots.Set(dx, dy)
			c := (dy/dotsPerRow)*cols + dx/dotsPerCol
			if d := distance(px, p.background); d > strength[c] {
				strength[c] = d
				fg[c] = px
			}
		}
	}
	return dots, fg
}

// distance is the per-channel absolute difference between a and b.
func distance(a, b color.RGBA) int {
	return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B) + absDiff(a.A, b.A)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// style returns the cached foreground style for c, or a plain style when
// color is off.
func (p *Presenter) style(c color.RGBA) lipgloss.Style {
	if !p.colored {
		return lipgloss.NewStyle()
	}
	if s, ok := p.styles[c]; ok {
		return s
	}
	cc, _ := colorful.MakeColor(c)
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(cc.Hex()))
	p.styles[c] = s
	return s
}

// CheckNoColor respects the NO_COLOR environment variable.
// Call this before the first frame is rendered.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns false if NO_COLOR is set (any value, including
// empty) or TERM=dumb. See https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
