package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawdeck-dev/drawdeck/shared/domain"
)

func TestLoadResetsState(t *testing.T) {
	s := NewSession()
	s.AddRect()
	s.TogglePen()

	s.Load(domain.Shapes{
		{Id: "rect-1", Type: domain.ShapeRect, Rect: &domain.RectAttrs{X: 1, Y: 2, Width: 30, Height: 40}},
	})

	assert.Equal(t, ModeSelect, s.Mode())
	assert.Empty(t, s.Selected())
	assert.False(t, s.Dirty(), "loading the server copy is not an edit")
	require.Len(t, s.Shapes(), 1)
	assert.Equal(t, "rect-1", s.Shapes()[0].Id)
}

func TestTogglePen(t *testing.T) {
	s := NewSession()
	assert.Equal(t, ModeSelect, s.Mode())

	s.TogglePen()
	assert.Equal(t, ModePenIdle, s.Mode())

	s.TogglePen()
	assert.Equal(t, ModeSelect, s.Mode())
}

func TestTogglePenEndsActiveStroke(t *testing.T) {
	s := NewSession()
	s.TogglePen()
	s.PointerDown(10, 10)
	require.Equal(t, ModePenDrawing, s.Mode())

	s.TogglePen()
	assert.Equal(t, ModeSelect, s.Mode())

	// moves after the toggle don't extend the finished stroke
	s.PointerMove(20, 20)
	shapes := s.Shapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, []float64{10, 10}, shapes[0].Pen.Points)
}

func TestPenStrokeLifecycle(t *testing.T) {
	s := NewSession()
	s.TogglePen()

	s.PointerDown(10, 20)
	assert.Equal(t, ModePenDrawing, s.Mode())
	s.PointerMove(11, 21)
	s.PointerMove(12, 22)
	s.PointerUp()
	assert.Equal(t, ModePenIdle, s.Mode())

	shapes := s.Shapes()
	require.Len(t, shapes, 1)
	stroke := shapes[0]
	assert.Equal(t, domain.ShapePen, stroke.Type)
	assert.Equal(t, "#ffffff", stroke.Stroke)
	require.NotNil(t, stroke.Pen)
	assert.Equal(t, []float64{10, 20, 11, 21, 12, 22}, stroke.Pen.Points)
	assert.Equal(t, float64(domain.DefaultStrokeWidth), stroke.Pen.StrokeWidth)
	assert.Equal(t, domain.DefaultLineCap, stroke.Pen.LineCap)

	// a second pointer-down starts a fresh stroke
	s.PointerDown(50, 50)
	assert.Len(t, s.Shapes(), 2)
}

func TestPointerMoveWithoutActiveStrokeIsNoop(t *testing.T) {
	s := NewSession()
	s.PointerMove(5, 5)
	assert.Empty(t, s.Shapes())

	s.TogglePen()
	s.PointerMove(5, 5)
	assert.Empty(t, s.Shapes(), "pen armed but pointer not down")
}

func TestPenStrokesAreNotSelectable(t *testing.T) {
	s := NewSession()
	s.TogglePen()
	s.PointerDown(10, 10)
	s.PointerUp()

	strokeId := s.Shapes()[0].Id
	assert.False(t, s.Select(strokeId))
	assert.Empty(t, s.Selected())
}

func TestAddRectDefaults(t *testing.T) {
	s := NewSession()
	id := s.AddRect()

	shapes := s.Shapes()
	require.Len(t, shapes, 1)
	rect := shapes[0]
	assert.Equal(t, id, rect.Id)
	assert.Equal(t, domain.ShapeRect, rect.Type)
	assert.Equal(t, domain.DefaultFill, rect.Fill)
	assert.Equal(t, domain.DefaultStroke, rect.Stroke)
	require.NotNil(t, rect.Rect)
	assert.Equal(t, float64(80), rect.Rect.X)
	assert.Equal(t, float64(200), rect.Rect.Y)
	assert.Equal(t, float64(160), rect.Rect.Width)
	assert.Equal(t, float64(100), rect.Rect.Height)
	assert.True(t, s.Dirty())

	assert.True(t, s.Select(id), "new rects are immediately selectable")
}

func TestAddRectWhilePenActive(t *testing.T) {
	s := NewSession()
	s.TogglePen()
	s.AddRect()

	assert.Equal(t, ModeSelect, s.Mode(), "inserting a rect drops back to select mode")
}

func TestDragSelected(t *testing.T) {
	s := NewSession()
	id := s.AddRect()

	assert.False(t, s.DragSelectedTo(5, 5), "nothing selected yet")

	require.True(t, s.Select(id))
	require.True(t, s.DragSelectedTo(300, 400))

	rect := s.Shapes()[0].Rect
	assert.Equal(t, float64(300), rect.X)
	assert.Equal(t, float64(400), rect.Y)
	assert.Equal(t, float64(160), rect.Width, "dragging never resizes")
}

func TestResizeSelected(t *testing.T) {
	testCases := []struct {
		name       string
		scaleX     float64
		scaleY     float64
		wantWidth  float64
		wantHeight float64
	}{
		{"grow", 2, 1.5, 320, 150},
		{"shrink above minimum", 0.5, 0.5, 80, 50},
		{"shrink below minimum clamps", 0.01, 0.01, MinRectSize, MinRectSize},
		{"zero scale clamps", 0, 0, MinRectSize, MinRectSize},
		{"negative scale clamps", -1, -1, MinRectSize, MinRectSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession()
			id := s.AddRect()
			require.True(t, s.Select(id))

			require.True(t, s.ResizeSelected(10, 20, tc.scaleX, tc.scaleY))

			rect := s.Shapes()[0].Rect
			assert.Equal(t, float64(10), rect.X)
			assert.Equal(t, float64(20), rect.Y)
			assert.Equal(t, tc.wantWidth, rect.Width)
			assert.Equal(t, tc.wantHeight, rect.Height)
		})
	}
}

func TestSelectUnknownOrEmpty(t *testing.T) {
	s := NewSession()
	id := s.AddRect()

	assert.False(t, s.Select("missing"))

	require.True(t, s.Select(id))
	assert.False(t, s.Select(""))
	assert.Empty(t, s.Selected())
}

func TestPointerDownInSelectModeClearsSelection(t *testing.T) {
	s := NewSession()
	id := s.AddRect()
	require.True(t, s.Select(id))

	s.PointerDown(500, 500)
	assert.Empty(t, s.Selected())
	assert.Len(t, s.Shapes(), 1, "no stroke starts in select mode")
}

func TestOnChangeFiresOnMutations(t *testing.T) {
	s := NewSession()
	calls := 0
	s.SetOnChange(func() { calls++ })

	s.AddRect()
	assert.Equal(t, 1, calls)

	s.TogglePen()
	s.PointerDown(1, 1)
	s.PointerMove(2, 2)
	assert.Equal(t, 3, calls)

	s.Load(nil)
	assert.Equal(t, 3, calls, "loading is not a mutation")
}
