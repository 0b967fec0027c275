package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"net/http"

	internal_errors "github.com/drawdeck-dev/drawdeck/shared/errors"
)

type ShapeType string

const (
	ShapeRect ShapeType = "rect"
	ShapePen  ShapeType = "pen"
)

// Wire defaults, matching what clients send when fields are omitted.
const (
	DefaultFill        = "#93c5fd"
	DefaultStroke      = "#1f2937"
	DefaultStrokeWidth = 3
	DefaultLineCap     = "round"
	DefaultLineJoin    = "round"
)

type RectAttrs struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

type PenAttrs struct {
	Points      []float64 // flat [x1,y1,x2,y2,...]
	StrokeWidth float64
	LineCap     string
	LineJoin    string
}

// Shape is a tagged union: exactly one of Rect/Pen is populated,
// selected by Type.
type Shape struct {
	Id     string
	Type   ShapeType
	Fill   string
	Stroke string
	Rect   *RectAttrs
	Pen    *PenAttrs
}

// shapeJSON is the flat wire representation shared with the canvas client.
type shapeJSON struct {
	Id   string    `json:"id"`
	Type ShapeType `json:"type"`

	// rect fields
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`

	// pen fields
	Points      []float64 `json:"points,omitempty"`
	StrokeWidth *float64  `json:"strokeWidth,omitempty"`
	LineCap     string    `json:"lineCap,omitempty"`
	LineJoin    string    `json:"lineJoin,omitempty"`

	Fill   string `json:"fill,omitempty"`
	Stroke string `json:"stroke,omitempty"`
}

func validationError(format string, args ...any) error {
	return &internal_errors.ErrorWithStatusCode{
		Message:    fmt.Sprintf(format, args...),
		StatusCode: http.StatusBadRequest,
	}
}

// Validate checks the union invariant: the variant matching Type is set
// and the other one is not.
func (s *Shape) Validate() error {
	if s.Id == "" {
		return validationError("shape is missing an id")
	}
	switch s.Type {
	case ShapeRect:
		if s.Rect == nil {
			return validationError("rect shape %q has no rect fields", s.Id)
		}
		if s.Pen != nil {
			return validationError("rect shape %q carries pen fields", s.Id)
		}
	case ShapePen:
		if s.Pen == nil {
			return validationError("pen shape %q has no pen fields", s.Id)
		}
		if s.Rect != nil {
			return validationError("pen shape %q carries rect fields", s.Id)
		}
		if len(s.Pen.Points)%2 != 0 {
			return validationError("pen shape %q has an odd point count", s.Id)
		}
	default:
		return validationError("shape %q has unknown type %q", s.Id, s.Type)
	}
	return nil
}

func (s Shape) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	out := shapeJSON{Id: s.Id, Type: s.Type, Fill: s.Fill, Stroke: s.Stroke}
	switch s.Type {
	case ShapeRect:
		out.X = &s.Rect.X
		out.Y = &s.Rect.Y
		out.Width = &s.Rect.Width
		out.Height = &s.Rect.Height
	case ShapePen:
		points := s.Pen.Points
		if points == nil {
			points = []float64{}
		}
		out.Points = points
		out.StrokeWidth = &s.Pen.StrokeWidth
		out.LineCap = s.Pen.LineCap
		out.LineJoin = s.Pen.LineJoin
	}
	return json.Marshal(out)
}

func (s *Shape) UnmarshalJSON(data []byte) error {
	var raw shapeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed := Shape{Id: raw.Id, Type: raw.Type, Fill: raw.Fill, Stroke: raw.Stroke}
	switch raw.Type {
	case ShapeRect:
		if raw.Points != nil || raw.StrokeWidth != nil {
			return validationError("rect shape %q carries pen fields", raw.Id)
		}
		rect := RectAttrs{}
		if raw.X != nil {
			rect.X = *raw.X
		}
		if raw.Y != nil {
			rect.Y = *raw.Y
		}
		if raw.Width != nil {
			rect.Width = *raw.Width
		}
		if raw.Height != nil {
			rect.Height = *raw.Height
		}
		parsed.Rect = &rect
	case ShapePen:
		if raw.X != nil || raw.Y != nil || raw.Width != nil || raw.Height != nil {
			return validationError("pen shape %q carries rect fields", raw.Id)
		}
		pen := PenAttrs{
			Points:      raw.Points,
			StrokeWidth: DefaultStrokeWidth,
			LineCap:     DefaultLineCap,
			LineJoin:    DefaultLineJoin,
		}
		if pen.Points == nil {
			pen.Points = []float64{}
		}
		if raw.StrokeWidth != nil {
			pen.StrokeWidth = *raw.StrokeWidth
		}
		if raw.LineCap != "" {
			pen.LineCap = raw.LineCap
		}
		if raw.LineJoin != "" {
			pen.LineJoin = raw.LineJoin
		}
		parsed.Pen = &pen
	default:
		return validationError("shape %q has unknown type %q", raw.Id, raw.Type)
	}
	// fill and stroke default for both variants, like the stored schema
	if parsed.Fill == "" {
		parsed.Fill = DefaultFill
	}
	if parsed.Stroke == "" {
		parsed.Stroke = DefaultStroke
	}

	if err := parsed.Validate(); err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Shapes is the ordered shape list embedded in a board. It maps to a
// single jsonb column, preserving client ordering.
type Shapes []Shape

func (s Shapes) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for i := range s {
		if err := s[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[s[i].Id]; dup {
			return validationError("duplicate shape id %q", s[i].Id)
		}
		seen[s[i].Id] = struct{}{}
	}
	return nil
}

// Value implements driver.Valuer for the jsonb shapes column.
func (s Shapes) Value() (driver.Value, error) {
	if s == nil {
		s = Shapes{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for the jsonb shapes column.
func (s *Shapes) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*s = Shapes{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Shapes", src)
	}
	return json.Unmarshal(data, s)
}
