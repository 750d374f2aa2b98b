package services

import (
	"errors"
	"strings"
	"time"

	"typing-race-backend/internal/models"
	"typing-race-backend/internal/race"
	"typing-race-backend/internal/scoring"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

var (
	ErrSessionNotJoinable = errors.New("session is not accepting registrations")
	ErrUnknownEntry       = errors.New("player entry not found")
	ErrInvalidNickname    = errors.New("nickname must be 1-20 characters")
	ErrWalletRequired     = errors.New("wallet address is required")
)

const MaxNicknameLen = 20

type PlayerService struct {
	db       *gorm.DB
	sessions *SessionService
	clock    clockwork.Clock
}

func NewPlayerService(db *gorm.DB, sessions *SessionService, clock clockwork.Clock) *PlayerService {
	return &PlayerService{db: db, sessions: sessions, clock: clock}
}

// Register adds a player to a waiting session. Registration after the race
// has started is refused: every racer starts from the same line.
func (s *PlayerService) Register(sessionID, nickname, walletAddress string) (*models.PlayerEntry, error) {
	nickname = strings.TrimSpace(nickname)
	walletAddress = strings.TrimSpace(walletAddress)

	if nickname == "" || len([]rune(nickname)) > MaxNicknameLen {
		return nil, ErrInvalidNickname
	}
	if walletAddress == "" {
		return nil, ErrWalletRequired
	}

	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionStatusWaiting {
		return nil, ErrSessionNotJoinable
	}

	entry := models.PlayerEntry{
		GameSessionID: session.ID,
		Nickname:      nickname,
		WalletAddress: walletAddress,
		JoinedAt:      s.clock.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *PlayerService) GetEntry(entryID string) (*models.PlayerEntry, error) {
	var entry models.PlayerEntry
	if err := s.db.First(&entry, "id = ?", entryID).Error; err != nil {
		return nil, ErrUnknownEntry
	}
	return &entry, nil
}

func (s *PlayerService) Count(sessionID string) (int, error) {
	var count int64
	if err := s.db.Model(&models.PlayerEntry{}).
		Where("game_session_id = ?", sessionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *PlayerService) ListEntries(sessionID string) ([]models.PlayerEntry, error) {
	var entries []models.PlayerEntry
	if err := s.db.Where("game_session_id = ?", sessionID).
		Order("joined_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// MarkTypingStarted stamps the entry's first keystroke so a reconnecting
// client can resume its clock.
func (s *PlayerService) MarkTypingStarted(entryID string, startedAt time.Time) error {
	result := s.db.Model(&models.PlayerEntry{}).
		Where("id = ? AND started_typing_at IS NULL", entryID).
		Update("started_typing_at", startedAt)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// RecordResult persists one race submission: typed text and the timing triple
// in a single update, so an entry is never half-finished. Not idempotent; the
// race machine only calls it on the one submitted transition.
func (s *PlayerService) RecordResult(entryID string, res *race.Result) error {
	var entry models.PlayerEntry
	if err := s.db.First(&entry, "id = ?", entryID).Error; err != nil {
		return ErrUnknownEntry
	}

	return s.db.Model(&entry).Updates(map[string]interface{}{
		"typed_text":        res.TypedText,
		"started_typing_at": res.StartedAt,
		"finished_at":       res.FinishedAt,
		"time_taken_ms":     res.TimeTakenMs,
		"accuracy_percent":  res.AccuracyPercent,
		"words_per_minute":  res.WordsPerMinute,
	}).Error
}

// Finishers returns the session's finished entries in submission order.
func (s *PlayerService) Finishers(sessionID string) ([]models.PlayerEntry, error) {
	var entries []models.PlayerEntry
	if err := s.db.Where("game_session_id = ? AND time_taken_ms IS NOT NULL", sessionID).
		Order("finished_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ApplyPlacements recomputes dense ranks over the session's finishers and
// persists them. Entries without a recorded time receive no placement.
func (s *PlayerService) ApplyPlacements(sessionID string) error {
	entries, err := s.Finishers(sessionID)
	if err != nil {
		return err
	}

	finishers := make([]scoring.Finisher, len(entries))
	for i, e := range entries {
		finishers[i] = scoring.Finisher{ID: e.ID, TimeTakenMs: *e.TimeTakenMs}
	}
	placements := scoring.RankPlacements(finishers)

	tx := s.db.Begin()
	for id, placement := range placements {
		if err := tx.Model(&models.PlayerEntry{}).
			Where("id = ?", id).
			Update("placement", placement).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit().Error
}

// Results returns the podium: finishers ordered by placement.
func (s *PlayerService) Results(sessionID string) ([]models.PlayerEntry, error) {
	var entries []models.PlayerEntry
	if err := s.db.Where("game_session_id = ? AND placement IS NOT NULL", sessionID).
		Order("placement ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
