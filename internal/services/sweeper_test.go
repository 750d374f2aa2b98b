package services

import (
	"testing"
	"time"

	"typing-race-backend/internal/models"
	"typing-race-backend/internal/race"
)

// The closing sweep assigns placements to any recorded result that is still
// missing one, so a placement update lost at submission time heals when the
// race window elapses.
func TestSweeperFinalizesPlacements(t *testing.T) {
	f := newRaceFixture(t)
	session, err := f.sessions.CreateSession(testParagraph, 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	entry, err := f.players.Register(session.ID, "racer", "0x1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := f.sessions.Activate(session.ID); err != nil {
		t.Fatalf("activate: %v", err)
	}

	start := f.clock.Now()
	err = f.players.RecordResult(entry.ID, &race.Result{
		TypedText:       testParagraph,
		StartedAt:       start,
		FinishedAt:      start.Add(2 * time.Second),
		TimeTakenMs:     2000,
		AccuracyPercent: 100,
		WordsPerMinute:  120,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	f.clock.Advance(10 * time.Minute)
	f.sweeper.Tick()

	got, err := f.sessions.GetSession(session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Status != models.SessionStatusFinished {
		t.Fatalf("expected finished after the race window, got %s", got.Status)
	}

	placed, err := f.players.GetEntry(entry.ID)
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	if placed.Placement == nil || *placed.Placement != 1 {
		t.Error("expected the closing sweep to assign placement 1")
	}
}
