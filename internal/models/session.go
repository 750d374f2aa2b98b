package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GameSession struct {
	ID        string        `gorm:"type:uuid;primaryKey" json:"id"`
	Paragraph string        `gorm:"type:text;not null" json:"paragraph"`
	Status    string        `gorm:"size:20;not null;default:'waiting';index" json:"status"`
	StartedAt *time.Time    `json:"started_at,omitempty"`
	EndsAt    time.Time     `gorm:"not null" json:"ends_at"`
	Players   []PlayerEntry `gorm:"foreignKey:GameSessionID;constraint:OnDelete:CASCADE" json:"players,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

const (
	SessionStatusWaiting  = "waiting"
	SessionStatusActive   = "active"
	SessionStatusFinished = "finished"
)

func (s *GameSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Open reports whether the session still accepts player-facing traffic.
func (s *GameSession) Open() bool {
	return s.Status == SessionStatusWaiting || s.Status == SessionStatusActive
}
