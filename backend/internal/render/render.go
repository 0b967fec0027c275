// Package render rasterises board shapes into preview images.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/drawdeck-dev/drawdeck/shared/domain"
)

// Stage dimensions match the client canvas, so previews keep proportions.
const (
	StageWidth  = 900
	StageHeight = 600
)

var background = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}

// Thumbnail draws the shape list at stage size and downscales it to
// width x height.
func Thumbnail(shapes domain.Shapes, width, height int) *image.RGBA {
	stage := Stage(shapes)

	thumb := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), stage, stage.Bounds(), xdraw.Over, nil)
	return thumb
}

// Stage draws the shape list at full canvas size.
func Stage(shapes domain.Shapes) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, StageWidth, StageHeight))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	for _, s := range shapes {
		switch s.Type {
		case domain.ShapeRect:
			drawRect(canvas, s)
		case domain.ShapePen:
			drawStroke(canvas, s)
		}
	}
	return canvas
}

func drawRect(canvas *image.RGBA, s domain.Shape) {
	if s.Rect == nil {
		return
	}
	fill := parseHexColor(s.Fill, domain.DefaultFill)
	stroke := parseHexColor(s.Stroke, domain.DefaultStroke)

	r := image.Rect(
		int(math.Round(s.Rect.X)),
		int(math.Round(s.Rect.Y)),
		int(math.Round(s.Rect.X+s.Rect.Width)),
		int(math.Round(s.Rect.Y+s.Rect.Height)),
	).Intersect(canvas.Bounds())
	if r.Empty() {
		return
	}

	draw.Draw(canvas, r, &image.Uniform{fill}, image.Point{}, draw.Src)

	// 1px outline
	for x := r.Min.X; x < r.Max.X; x++ {
		canvas.Set(x, r.Min.Y, stroke)
		canvas.Set(x, r.Max.Y-1, stroke)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		canvas.Set(r.Min.X, y, stroke)
		canvas.Set(r.Max.X-1, y, stroke)
	}
}

func drawStroke(canvas *image.RGBA, s domain.Shape) {
	if s.Pen == nil || len(s.Pen.Points) < 2 {
		return
	}
	stroke := parseHexColor(s.Stroke, domain.DefaultStroke)
	radius := int(math.Max(1, s.Pen.StrokeWidth/2))

	points := s.Pen.Points
	// single dot
	if len(points) == 2 {
		drawDot(canvas, int(points[0]), int(points[1]), radius, stroke)
		return
	}
	for i := 0; i+3 < len(points); i += 2 {
		drawSegment(canvas,
			int(math.Round(points[i])), int(math.Round(points[i+1])),
			int(math.Round(points[i+2])), int(math.Round(points[i+3])),
			radius, stroke)
	}
}

// drawSegment is Bresenham's line with a round brush, an approximation of
// the client's round cap/join stroke.
func drawSegment(canvas *image.RGBA, x0, y0, x1, y1, radius int, c color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		drawDot(canvas, x0, y0, radius, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func drawDot(canvas *image.RGBA, cx, cy, radius int, c color.Color) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) <= radius*radius {
				if image.Pt(x, y).In(canvas.Bounds()) {
					canvas.Set(x, y, c)
				}
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// parseHexColor parses #rgb and #rrggbb, falling back when malformed.
func parseHexColor(s, fallback string) color.RGBA {
	c, ok := tryParseHexColor(s)
	if ok {
		return c
	}
	c, _ = tryParseHexColor(fallback)
	return c
}

func tryParseHexColor(s string) (color.RGBA, bool) {
	hexVal := func(b byte) (int, bool) {
		switch {
		case b >= '0' && b <= '9':
			return int(b - '0'), true
		case b >= 'a' && b <= 'f':
			return int(b-'a') + 10, true
		case b >= 'A' && b <= 'F':
			return int(b-'A') + 10, true
		}
		return 0, false
	}

	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, false
	}
	var vals []int
	for i := 1; i < len(s); i++ {
		v, ok := hexVal(s[i])
		if !ok {
			return color.RGBA{}, false
		}
		vals = append(vals, v)
	}
	switch len(vals) {
	case 3:
		return color.RGBA{
			R: uint8(vals[0]*16 + vals[0]),
			G: uint8(vals[1]*16 + vals[1]),
			B: uint8(vals[2]*16 + vals[2]),
			A: 0xff,
		}, true
	case 6:
		return color.RGBA{
			R: uint8(vals[0]*16 + vals[1]),
			G: uint8(vals[2]*16 + vals[3]),
			B: uint8(vals[4]*16 + vals[5]),
			A: 0xff,
		}, true
	}
	return color.RGBA{}, false
}
