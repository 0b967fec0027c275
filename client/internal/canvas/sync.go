package canvas

import (
	"sync"
	"time"

	"github.com/drawdeck-dev/drawdeck/shared/domain"
)

// ShapeSaver persists a board's shape list; satisfied by the API client.
type ShapeSaver interface {
	SaveShapes(boardId string, shapes domain.Shapes) error
}

// Saver debounces shape persistence: rapid edits coalesce into one save
// that fires after the session has been quiet for the configured delay.
// Board edits are local-first; the server copy trails by at most delay.
type Saver struct {
	session *Session
	api     ShapeSaver
	boardId string
	delay   time.Duration
	onError func(error)

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// NewSaver wires a saver to a session. onError receives flush failures
// (the UI surfaces them); it may be nil.
func NewSaver(session *Session, api ShapeSaver, boardId string, delay time.Duration, onError func(error)) *Saver {
	s := &Saver{
		session: session,
		api:     api,
		boardId: boardId,
		delay:   delay,
		onError: onError,
	}
	session.SetOnChange(s.NotifyChange)
	return s
}

// NotifyChange restarts the debounce window.
func (s *Saver) NotifyChange() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		if err := s.Flush(); err != nil && s.onError != nil {
			s.onError(err)
		}
	})
}

// Flush saves immediately if there are unsaved edits. Used on page leave
// and by the debounce timer. The shape list and its generation are
// snapshotted before the request: an edit that lands while the save is in
// flight keeps the session dirty and is carried by the next flush.
func (s *Saver) Flush() error {
	if !s.session.Dirty() {
		return nil
	}

	shapes, gen := s.session.Snapshot()
	if err := s.api.SaveShapes(s.boardId, shapes); err != nil {
		return err
	}
	s.session.ClearDirtyIfUnchanged(gen)
	return nil
}

// Close stops the pending timer. A final Flush is the caller's choice.
func (s *Saver) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
