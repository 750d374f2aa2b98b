package race

import (
	"errors"
	"strings"
	"sync"
	"time"

	"typing-race-backend/internal/scoring"

	"github.com/jonboulle/clockwork"
)

type State string

const (
	StateIdle      State = "idle"
	StateTyping    State = "typing"
	StateSubmitted State = "submitted"
)

var (
	ErrBulkInput        = errors.New("bulk text insertion is not allowed, type the text manually")
	ErrTextMismatch     = errors.New("typed text does not match the paragraph")
	ErrNotStarted       = errors.New("race has not been started")
	ErrAlreadySubmitted = errors.New("result already submitted")
)

// DefaultBulkInputLimit is the maximum rune growth accepted in a single input
// event. Large enough for autocorrect and IME bursts, far too small for a
// pasted paragraph.
const DefaultBulkInputLimit = 16

// Machine tracks one player's transcription of one paragraph. A rejected
// finish attempt is not sticky: the machine stays in StateTyping and the
// player may retry.
type Machine struct {
	mu        sync.Mutex
	paragraph string
	clock     clockwork.Clock
	bulkLimit int

	state     State
	startedAt time.Time
	typed     string
}

func NewMachine(paragraph string, clock clockwork.Clock, bulkLimit int) *Machine {
	if bulkLimit <= 0 {
		bulkLimit = DefaultBulkInputLimit
	}
	return &Machine{
		paragraph: paragraph,
		clock:     clock,
		bulkLimit: bulkLimit,
		state:     StateIdle,
	}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine) StartedAt() (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startedAt, m.state != StateIdle
}

// Start records the first keystroke. Calling it again while typing is a
// no-op returning the original start time, so reconnecting clients keep
// their clock.
func (m *Machine) Start() (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateSubmitted {
		return time.Time{}, ErrAlreadySubmitted
	}
	if m.state == StateIdle {
		m.state = StateTyping
		m.startedAt = m.clock.Now()
	}
	return m.startedAt, nil
}

// Type records an input event carrying the full typed text so far. The first
// event starts the clock. An event that grows the text beyond the bulk limit
// is refused without changing state: the input surface accepts sequential
// keystrokes, not pasted answers.
func (m *Machine) Type(input string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.typeLocked(input)
}

func (m *Machine) typeLocked(input string) error {
	if m.state == StateSubmitted {
		return ErrAlreadySubmitted
	}
	if growth := len([]rune(input)) - len([]rune(m.typed)); growth > m.bulkLimit {
		return ErrBulkInput
	}
	if m.state == StateIdle {
		m.state = StateTyping
		m.startedAt = m.clock.Now()
	}
	m.typed = input
	return nil
}

type Result struct {
	TypedText       string
	StartedAt       time.Time
	FinishedAt      time.Time
	TimeTakenMs     int64
	AccuracyPercent float64
	WordsPerMinute  float64
}

// Finish attempts the submission. The typed text must equal the paragraph
// after trimming leading and trailing whitespace; interior differences are
// a mismatch. A mismatch leaves the machine in StateTyping.
func (m *Machine) Finish(typed string) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateSubmitted:
		return nil, ErrAlreadySubmitted
	case StateIdle:
		return nil, ErrNotStarted
	}

	// The final text passes through the same input boundary as progress
	// events, so a finish request cannot smuggle in a pasted paragraph.
	if err := m.typeLocked(typed); err != nil {
		return nil, err
	}

	if strings.TrimSpace(typed) != strings.TrimSpace(m.paragraph) {
		return nil, ErrTextMismatch
	}

	finishedAt := m.clock.Now()
	timeTaken, err := scoring.Elapsed(m.startedAt, finishedAt)
	if err != nil {
		return nil, err
	}
	accuracy, err := scoring.Accuracy(m.paragraph, typed)
	if err != nil {
		return nil, err
	}
	wpm, err := scoring.WordsPerMinute(typed, timeTaken)
	if err != nil {
		return nil, err
	}

	m.state = StateSubmitted
	return &Result{
		TypedText:       typed,
		StartedAt:       m.startedAt,
		FinishedAt:      finishedAt,
		TimeTakenMs:     timeTaken,
		AccuracyPercent: accuracy,
		WordsPerMinute:  wpm,
	}, nil
}

// Reopen reverts a submitted machine to typing. Called when persisting the
// result failed, so the racer can retry instead of being stuck behind
// ErrAlreadySubmitted with no recorded result.
func (m *Machine) Reopen() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateSubmitted {
		m.state = StateTyping
	}
}
