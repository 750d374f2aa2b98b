package services

import (
	"log"
	"time"

	"typing-race-backend/internal/ws"

	"github.com/jonboulle/clockwork"
)

// Sweeper re-evaluates session deadlines on a fixed cadence: waiting
// sessions whose countdown elapsed are activated, active sessions whose race
// window elapsed are finished. Observers also re-check lazily, so a missed
// tick delays a transition by at most one interval.
type Sweeper struct {
	sessions *SessionService
	players  *PlayerService
	hub      *ws.Hub
	clock    clockwork.Clock
	interval time.Duration

	stopCh chan struct{}
}

func NewSweeper(sessions *SessionService, players *PlayerService, hub *ws.Hub, clock clockwork.Clock, interval time.Duration) *Sweeper {
	return &Sweeper{
		sessions: sessions,
		players:  players,
		hub:      hub,
		clock:    clock,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (w *Sweeper) Start() {
	go w.loop()
	log.Printf("[Sweeper] started (interval: %s)", w.interval)
}

func (w *Sweeper) Stop() {
	close(w.stopCh)
	log.Println("[Sweeper] stopped")
}

func (w *Sweeper) loop() {
	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.Chan():
			w.Tick()
		}
	}
}

// Tick runs one sweep. Exported so tests can drive deadlines with a fake
// clock instead of waiting out the ticker.
func (w *Sweeper) Tick() {
	activated, err := w.sessions.ActivateDue()
	if err != nil {
		log.Printf("[Sweeper] activate due: %v", err)
	}
	for _, session := range activated {
		log.Printf("[Sweeper] session %s activated", session.ID)
		w.hub.Broadcast(session.ID, ws.WSMessage{
			Type: ws.EventSessionActivated,
			Data: map[string]interface{}{"session_id": session.ID, "status": session.Status},
		})
	}

	finished, err := w.sessions.FinishOverdue()
	if err != nil {
		log.Printf("[Sweeper] finish overdue: %v", err)
	}
	for _, session := range finished {
		log.Printf("[Sweeper] session %s finished (race window elapsed)", session.ID)
		// Closing sweep also repairs placements for any result whose
		// placement update failed at submission time.
		if err := w.players.ApplyPlacements(session.ID); err != nil {
			log.Printf("[Sweeper] apply placements for session %s: %v", session.ID, err)
		}
		w.hub.Broadcast(session.ID, ws.WSMessage{
			Type: ws.EventSessionFinished,
			Data: map[string]interface{}{"session_id": session.ID, "status": session.Status},
		})
		w.hub.Broadcast(session.ID, ws.WSMessage{
			Type: ws.EventPlacementsUpdated,
			Data: map[string]interface{}{"session_id": session.ID},
		})
	}
}
