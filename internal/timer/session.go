package timer

import (
	"errors"
	"time"

	"github.com/whlan02/TimerForWork/internal/models"
)

// State identifies where a session is in its lifecycle.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

var (
	ErrAlreadyRunning = errors.New("timer: session already running")
	ErrNotRunning     = errors.New("timer: no running session")
	ErrNotPaused      = errors.New("timer: session is not paused")
	ErrNoSession      = errors.New("timer: no active session")
	ErrNothingToSave  = errors.New("timer: nothing to save")
)

// Session owns a single timing session: Idle -> Running -> Paused -> Running
// -> Idle. Invalid transitions return an error and leave state unchanged.
// Not safe for concurrent use; the UI event loop is its only caller.
type Session struct {
	state        State
	startedAt    time.Time     // first Start of this session
	lastResumeAt time.Time     // set while Running
	accumulated  time.Duration // running time collected before the last resume
	now          func() time.Time
}

// NewSession returns an idle session using the wall clock.
func NewSession() *Session {
	return &Session{now: time.Now}
}

// NewSessionWithClock lets tests drive transitions without sleeping.
func NewSessionWithClock(now func() time.Time) *Session {
	return &Session{now: now}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// StartedAt returns the time of the first Start, zero while Idle.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Start begins a new session.
func (s *Session) Start() error {
	if s.state != Idle {
		return ErrAlreadyRunning
	}
	now := s.now()
	s.startedAt = now
	s.lastResumeAt = now
	s.accumulated = 0
	s.state = Running
	return nil
}

// Pause freezes elapsed-time accumulation.
func (s *Session) Pause() error {
	if s.state != Running {
		return ErrNotRunning
	}
	s.accumulated += s.now().Sub(s.lastResumeAt)
	s.state = Paused
	return nil
}

// Resume continues accumulation after a Pause.
func (s *Session) Resume() error {
	if s.state != Paused {
		return ErrNotPaused
	}
	s.lastResumeAt = s.now()
	s.state = Running
	return nil
}

// Elapsed returns the tracked time so far. Sub-second precision is kept
// for display; truncation to whole seconds happens only on Save.
func (s *Session) Elapsed() time.Duration {
	switch s.state {
	case Running:
		return s.accumulated + s.now().Sub(s.lastResumeAt)
	case Paused:
		return s.accumulated
	default:
		return 0
	}
}

// Snapshot returns the record Save would produce without ending the
// session. Callers that persist the record themselves use this so a
// failed write leaves the session intact for a retry.
func (s *Session) Snapshot(note string) (models.TimeRecord, error) {
	if s.state == Idle {
		return models.TimeRecord{}, ErrNothingToSave
	}
	elapsed := s.Elapsed()
	if elapsed < time.Second {
		return models.TimeRecord{}, ErrNothingToSave
	}
	return models.NewRecordWithElapsed(s.startedAt, s.now(), elapsed, note), nil
}

// Save finalizes the session into a TimeRecord and resets to Idle.
// Rejected while Idle or when the truncated elapsed time is zero.
func (s *Session) Save(note string) (models.TimeRecord, error) {
	rec, err := s.Snapshot(note)
	if err != nil {
		return models.TimeRecord{}, err
	}
	s.reset()
	return rec, nil
}

// Cancel discards the session without emitting a record.
func (s *Session) Cancel() error {
	if s.state == Idle {
		return ErrNoSession
	}
	s.reset()
	return nil
}

func (s *Session) reset() {
	*s = Session{now: s.now}
}
