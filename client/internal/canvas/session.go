// Package canvas models the board editing session: the in-memory shape
// list, the pen drawing state machine, and selection/transform state.
// Rendering itself is left to the UI layer.
package canvas

import (
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/drawdeck-dev/drawdeck/shared/domain"
)

// Mode is the drawing-mode state machine.
type Mode int

const (
	// ModeSelect: clicks select and transform rectangles.
	ModeSelect Mode = iota
	// ModePenIdle: pen tool armed, waiting for pointer-down.
	ModePenIdle
	// ModePenDrawing: pointer is down, moves extend the active stroke.
	ModePenDrawing
)

// Defaults for newly inserted shapes, matching the board stage.
const (
	rectDefaultX      = 80
	rectDefaultY      = 200
	rectDefaultWidth  = 160
	rectDefaultHeight = 100

	penStroke = "#ffffff"

	// MinRectSize is the smallest width/height a resize can produce.
	MinRectSize = 20
)

// Session holds the editable shape state for one open board.
// All methods are safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	shapes   []domain.Shape
	selected string
	mode     Mode
	dirty    bool
	gen      uint64
	onChange func()
	newId    func(prefix string) string
}

func NewSession() *Session {
	return &Session{
		newId: func(prefix string) string { return prefix + "-" + uuid.NewString() },
	}
}

// SetOnChange registers a hook fired after every shape mutation,
// typically a Saver's NotifyChange.
func (s *Session) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Load replaces the shape list with the server's copy and resets
// interaction state. Does not mark the session dirty.
func (s *Session) Load(shapes domain.Shapes) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shapes = append([]domain.Shape(nil), shapes...)
	s.selected = ""
	s.mode = ModeSelect
	s.dirty = false
	s.gen++
}

// Shapes returns a copy of the current shape list in z-order.
func (s *Session) Shapes() domain.Shapes {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(domain.Shapes(nil), s.shapes...)
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Selected returns the id of the shape targeted for transforms, or "".
func (s *Session) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Dirty reports whether there are unsaved edits.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// markDirty must be called with the lock held; the hook runs unlocked.
func (s *Session) markDirty() func() {
	s.dirty = true
	s.gen++
	hook := s.onChange
	return func() {
		if hook != nil {
			hook()
		}
	}
}

// Snapshot returns a copy of the shape list together with the change
// generation it reflects, for ClearDirtyIfUnchanged.
func (s *Session) Snapshot() (domain.Shapes, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(domain.Shapes(nil), s.shapes...), s.gen
}

// ClearDirtyIfUnchanged clears the dirty flag only when no mutation landed
// after gen. An edit made while a save was in flight keeps the session
// dirty so the next flush picks it up.
func (s *Session) ClearDirtyIfUnchanged(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		return false
	}
	s.dirty = false
	return true
}

// TogglePen switches the pen tool on or off. Any active stroke ends and
// the selection is cleared.
func (s *Session) TogglePen() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = ""
	if s.mode == ModeSelect {
		s.mode = ModePenIdle
	} else {
		s.mode = ModeSelect
	}
}

// PointerDown starts a stroke when the pen is armed. In select mode a
// pointer-down on empty canvas clears the selection.
func (s *Session) PointerDown(x, y float64) {
	s.mu.Lock()

	if s.mode != ModePenIdle {
		s.selected = ""
		s.mu.Unlock()
		return
	}

	stroke := domain.Shape{
		Id:     s.newId("pen"),
		Type:   domain.ShapePen,
		Stroke: penStroke,
		Pen: &domain.PenAttrs{
			Points:      []float64{x, y},
			StrokeWidth: domain.DefaultStrokeWidth,
			LineCap:     domain.DefaultLineCap,
			LineJoin:    domain.DefaultLineJoin,
		},
	}
	s.shapes = append(s.shapes, stroke)
	s.mode = ModePenDrawing
	s.selected = ""
	notify := s.markDirty()
	s.mu.Unlock()
	notify()
}

// PointerMove extends the active stroke. Point sequences only ever grow
// between pointer-down and pointer-up.
func (s *Session) PointerMove(x, y float64) {
	s.mu.Lock()

	if s.mode != ModePenDrawing || len(s.shapes) == 0 {
		s.mu.Unlock()
		return
	}
	last := &s.shapes[len(s.shapes)-1]
	if last.Type != domain.ShapePen || last.Pen == nil {
		s.mu.Unlock()
		return
	}

	last.Pen.Points = append(last.Pen.Points, x, y)
	notify := s.markDirty()
	s.mu.Unlock()
	notify()
}

// PointerUp finishes the active stroke. The stroke stays on the board but
// is no longer an editable target.
func (s *Session) PointerUp() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModePenDrawing {
		s.mode = ModePenIdle
	}
}

// AddRect inserts a rectangle at the default position and size. Unlike pen
// strokes this is an immediate action, not a drag gesture, and the new
// rect is immediately selectable.
func (s *Session) AddRect() string {
	s.mu.Lock()

	rect := domain.Shape{
		Id:     s.newId("rect"),
		Type:   domain.ShapeRect,
		Fill:   domain.DefaultFill,
		Stroke: domain.DefaultStroke,
		Rect: &domain.RectAttrs{
			X:      rectDefaultX,
			Y:      rectDefaultY,
			Width:  rectDefaultWidth,
			Height: rectDefaultHeight,
		},
	}
	s.shapes = append(s.shapes, rect)
	s.selected = ""
	s.mode = ModeSelect
	notify := s.markDirty()
	s.mu.Unlock()
	notify()

	return rect.Id
}

// Select targets a rectangle for dragging/resizing. Pen strokes are not
// hit-testable, so selecting one is a no-op; an empty id clears the
// selection.
func (s *Session) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.selected = ""
		return false
	}
	for i := range s.shapes {
		if s.shapes[i].Id == id && s.shapes[i].Type == domain.ShapeRect {
			s.selected = id
			return true
		}
	}
	return false
}

// DragSelectedTo moves the selected rectangle to a new position.
func (s *Session) DragSelectedTo(x, y float64) bool {
	s.mu.Lock()

	rect := s.selectedRect()
	if rect == nil {
		s.mu.Unlock()
		return false
	}
	rect.X = x
	rect.Y = y
	notify := s.markDirty()
	s.mu.Unlock()
	notify()
	return true
}

// ResizeSelected applies transform scale factors to the selected
// rectangle. The result is stored as plain width/height (scale reset to 1)
// and both dimensions are clamped to MinRectSize, so zero or negative
// factors can never collapse or invert the rect.
func (s *Session) ResizeSelected(x, y, scaleX, scaleY float64) bool {
	s.mu.Lock()

	rect := s.selectedRect()
	if rect == nil {
		s.mu.Unlock()
		return false
	}
	rect.X = x
	rect.Y = y
	rect.Width = math.Max(MinRectSize, rect.Width*scaleX)
	rect.Height = math.Max(MinRectSize, rect.Height*scaleY)
	notify := s.markDirty()
	s.mu.Unlock()
	notify()
	return true
}

// selectedRect must be called with the lock held.
func (s *Session) selectedRect() *domain.RectAttrs {
	if s.selected == "" {
		return nil
	}
	for i := range s.shapes {
		if s.shapes[i].Id == s.selected && s.shapes[i].Type == domain.ShapeRect {
			return s.shapes[i].Rect
		}
	}
	return nil
}
