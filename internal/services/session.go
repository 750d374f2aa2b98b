package services

import (
	"errors"
	"time"

	"typing-race-backend/internal/models"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrParagraphTooShort = errors.New("paragraph must be at least 20 characters")
	ErrInvalidWaitTime   = errors.New("wait time must be between 10 and 300 seconds")
	ErrAlreadyStarted    = errors.New("race already started")
	ErrAlreadyFinished   = errors.New("session already finished")
)

const (
	MinParagraphLen = 20
	MinWaitSeconds  = 10
	MaxWaitSeconds  = 300
)

// DefaultParagraph is used when a create request does not supply its own text.
const DefaultParagraph = "FeesType is the ultimate coin for speed and skill a crypto that rewards the fastest hands on the keyboard. Unlike other tokens that sit idle in your wallet, FeesType brings competition to the blockchain. The concept is simple: every transaction comes with a fee, and if you're the fastest typer, you win the fees. It's a test of reflexes, precision, and timing turning what's normally just a boring transaction cost into a real-time game of profit. In the world of FeesType, the sharpest typers don't just type fast they earn fast."

type SessionService struct {
	db         *gorm.DB
	clock      clockwork.Clock
	raceWindow time.Duration
}

// NewSessionService builds the session lifecycle service. raceWindow is how
// long an activated session may run before it is considered stale.
func NewSessionService(db *gorm.DB, clock clockwork.Clock, raceWindow time.Duration) *SessionService {
	return &SessionService{db: db, clock: clock, raceWindow: raceWindow}
}

func (s *SessionService) CreateSession(paragraph string, waitSeconds int) (*models.GameSession, error) {
	if paragraph == "" {
		paragraph = DefaultParagraph
	}
	if len([]rune(paragraph)) < MinParagraphLen {
		return nil, ErrParagraphTooShort
	}
	if waitSeconds < MinWaitSeconds || waitSeconds > MaxWaitSeconds {
		return nil, ErrInvalidWaitTime
	}

	session := models.GameSession{
		Paragraph: paragraph,
		Status:    models.SessionStatusWaiting,
		EndsAt:    s.clock.Now().Add(time.Duration(waitSeconds) * time.Second),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// expireStale reclassifies open sessions whose deadline has passed as
// finished. While waiting, the deadline is the join countdown; once active it
// is the end of the race window set at activation. Runs before any session is
// handed to an observer.
func (s *SessionService) expireStale() {
	s.db.Model(&models.GameSession{}).
		Where("status IN ? AND ends_at <= ?",
			[]string{models.SessionStatusWaiting, models.SessionStatusActive}, s.clock.Now()).
		Update("status", models.SessionStatusFinished)
}

func (s *SessionService) GetSession(sessionID string) (*models.GameSession, error) {
	s.expireStale()

	var session models.GameSession
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

// GetCurrentSession picks the authoritative open session. If several open
// sessions coexist the most recently created one wins and the rest are
// ignored for player-facing flows.
func (s *SessionService) GetCurrentSession() (*models.GameSession, error) {
	s.expireStale()

	var session models.GameSession
	if err := s.db.Where("status IN ?",
		[]string{models.SessionStatusWaiting, models.SessionStatusActive}).
		Order("created_at DESC").
		First(&session).Error; err != nil {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *SessionService) ListOpenSessions() ([]models.GameSession, error) {
	s.expireStale()

	var sessions []models.GameSession
	if err := s.db.Where("status IN ?",
		[]string{models.SessionStatusWaiting, models.SessionStatusActive}).
		Order("created_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// Activate moves a waiting session to active, either because its countdown
// hit zero or because a privileged caller forced it. The deadline is advanced
// by the race window so the running race is not immediately stale.
func (s *SessionService) Activate(sessionID string) (*models.GameSession, error) {
	var session models.GameSession
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		return nil, ErrSessionNotFound
	}

	switch session.Status {
	case models.SessionStatusActive:
		return nil, ErrAlreadyStarted
	case models.SessionStatusFinished:
		return nil, ErrAlreadyFinished
	}

	now := s.clock.Now()
	session.Status = models.SessionStatusActive
	session.StartedAt = &now
	session.EndsAt = now.Add(s.raceWindow)
	if err := s.db.Save(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// Finish concludes a session. Status only moves forward, so finishing a
// finished session is an error rather than a silent overwrite.
func (s *SessionService) Finish(sessionID string) (*models.GameSession, error) {
	var session models.GameSession
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		return nil, ErrSessionNotFound
	}

	if session.Status == models.SessionStatusFinished {
		return nil, ErrAlreadyFinished
	}

	session.Status = models.SessionStatusFinished
	if err := s.db.Save(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// ActivateDue starts every waiting session whose countdown has elapsed.
// Called by the sweeper each tick; observers crossing the deadline between
// ticks see the session expire lazily instead, which the casual-race domain
// tolerates.
func (s *SessionService) ActivateDue() ([]models.GameSession, error) {
	now := s.clock.Now()

	var due []models.GameSession
	if err := s.db.Where("status = ? AND ends_at <= ?",
		models.SessionStatusWaiting, now).Find(&due).Error; err != nil {
		return nil, err
	}

	activated := make([]models.GameSession, 0, len(due))
	for i := range due {
		due[i].Status = models.SessionStatusActive
		due[i].StartedAt = &now
		due[i].EndsAt = now.Add(s.raceWindow)
		if err := s.db.Save(&due[i]).Error; err != nil {
			return activated, err
		}
		activated = append(activated, due[i])
	}
	return activated, nil
}

// FinishOverdue closes active sessions whose race window has elapsed.
func (s *SessionService) FinishOverdue() ([]models.GameSession, error) {
	now := s.clock.Now()

	var overdue []models.GameSession
	if err := s.db.Where("status = ? AND ends_at <= ?",
		models.SessionStatusActive, now).Find(&overdue).Error; err != nil {
		return nil, err
	}

	finished := make([]models.GameSession, 0, len(overdue))
	for i := range overdue {
		overdue[i].Status = models.SessionStatusFinished
		if err := s.db.Save(&overdue[i]).Error; err != nil {
			return finished, err
		}
		finished = append(finished, overdue[i])
	}
	return finished, nil
}
