package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerEntry is one player's registration within a session. The timing
// fields are written together in a single update on race completion, so an
// entry is either fully unfinished or fully finished.
type PlayerEntry struct {
	ID              string     `gorm:"type:uuid;primaryKey" json:"id"`
	GameSessionID   string     `gorm:"type:uuid;not null;index" json:"game_session_id"`
	Nickname        string     `gorm:"size:20;not null" json:"nickname"`
	WalletAddress   string     `gorm:"size:255;not null" json:"wallet_address"`
	TypedText       *string    `gorm:"type:text" json:"typed_text,omitempty"`
	StartedTypingAt *time.Time `json:"started_typing_at,omitempty"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
	TimeTakenMs     *int64     `json:"time_taken_ms,omitempty"`
	AccuracyPercent *float64   `json:"accuracy_percent,omitempty"`
	WordsPerMinute  *float64   `json:"words_per_minute,omitempty"`
	Placement       *int       `json:"placement,omitempty"`
	JoinedAt        time.Time  `json:"joined_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (p *PlayerEntry) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p *PlayerEntry) Finished() bool {
	return p.TimeTakenMs != nil
}
