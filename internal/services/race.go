package services

import (
	"errors"

	"typing-race-backend/internal/models"
	"typing-race-backend/internal/race"
)

var (
	ErrRaceNotActive  = errors.New("race is not active")
	ErrResultRecorded = errors.New("result already recorded for this entry")
)

// RaceService drives the per-player transcription machines against the
// persisted session and registry state. Each entry runs its machine
// independently; the only shared input is the immutable paragraph.
type RaceService struct {
	sessions *SessionService
	players  *PlayerService
	races    *race.Manager
}

func NewRaceService(sessions *SessionService, players *PlayerService, races *race.Manager) *RaceService {
	return &RaceService{sessions: sessions, players: players, races: races}
}

// entryInActiveSession loads the entry and checks that its session is active.
// Typing is locked until the countdown fires and after the race concludes.
func (s *RaceService) entryInActiveSession(entryID string) (*models.PlayerEntry, *models.GameSession, error) {
	entry, err := s.players.GetEntry(entryID)
	if err != nil {
		return nil, nil, err
	}
	if entry.Finished() {
		return nil, nil, ErrResultRecorded
	}

	session, err := s.sessions.GetSession(entry.GameSessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Status != models.SessionStatusActive {
		return nil, nil, ErrRaceNotActive
	}
	return entry, session, nil
}

// StartTyping records the entry's first keystroke.
func (s *RaceService) StartTyping(entryID string) error {
	entry, session, err := s.entryInActiveSession(entryID)
	if err != nil {
		return err
	}

	m := s.races.Get(entry.ID, session.Paragraph)
	startedAt, err := m.Start()
	if err != nil {
		return err
	}
	return s.players.MarkTypingStarted(entry.ID, startedAt)
}

// Progress feeds one input event into the entry's machine. The first event
// starts the clock; a paste-sized jump in the text is refused.
func (s *RaceService) Progress(entryID, typedText string) error {
	entry, session, err := s.entryInActiveSession(entryID)
	if err != nil {
		return err
	}

	m := s.races.Get(entry.ID, session.Paragraph)
	wasIdle := m.State() == race.StateIdle
	if err := m.Type(typedText); err != nil {
		return err
	}
	if wasIdle {
		if startedAt, ok := m.StartedAt(); ok {
			return s.players.MarkTypingStarted(entry.ID, startedAt)
		}
	}
	return nil
}

// FinishRace attempts the submission. On a mismatch the machine stays in the
// typing state and the caller may retry; on success the result is persisted
// and placements across the session's finishers are recomputed.
func (s *RaceService) FinishRace(entryID, typedText string) (*models.PlayerEntry, error) {
	entry, session, err := s.entryInActiveSession(entryID)
	if err != nil {
		return nil, err
	}

	m := s.races.Get(entry.ID, session.Paragraph)
	result, err := m.Finish(typedText)
	if err != nil {
		return nil, err
	}

	// A store failure here must not strand the racer behind a submitted
	// machine: reopen it so a manual retry can run the submission again.
	if err := s.players.RecordResult(entry.ID, result); err != nil {
		m.Reopen()
		return nil, err
	}
	s.races.Forget(entry.ID)

	// The result is durable at this point. A placement failure is not
	// retryable through the machine; the sweeper repairs placements when it
	// closes the session.
	if err := s.players.ApplyPlacements(session.ID); err != nil {
		return nil, err
	}

	return s.players.GetEntry(entry.ID)
}
