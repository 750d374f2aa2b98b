package services

import (
	"errors"
	"testing"
	"time"

	"typing-race-backend/internal/models"
	"typing-race-backend/internal/race"
	"typing-race-backend/internal/ws"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

type raceFixture struct {
	db       *gorm.DB
	sessions *SessionService
	players  *PlayerService
	races    *RaceService
	sweeper  *Sweeper
	clock    *clockwork.FakeClock
}

func newRaceFixture(t *testing.T) *raceFixture {
	t.Helper()
	db := newTestDB(t)
	clock := clockwork.NewFakeClock()
	sessions := NewSessionService(db, clock, 10*time.Minute)
	players := NewPlayerService(db, sessions, clock)
	races := NewRaceService(sessions, players, race.NewManager(clock, 0))
	sweeper := NewSweeper(sessions, players, ws.NewHub(), clock, time.Second)
	return &raceFixture{db: db, sessions: sessions, players: players, races: races, sweeper: sweeper, clock: clock}
}

// typeThrough drives progress events in keystroke-sized chunks.
func (f *raceFixture) typeThrough(t *testing.T, entryID, text string) {
	t.Helper()
	runes := []rune(text)
	for i := 8; i < len(runes); i += 8 {
		if err := f.races.Progress(entryID, string(runes[:i])); err != nil {
			t.Fatalf("progress: %v", err)
		}
	}
	if err := f.races.Progress(entryID, text); err != nil {
		t.Fatalf("progress: %v", err)
	}
}

func TestTypingLockedUntilActive(t *testing.T) {
	f := newRaceFixture(t)
	session, _ := f.sessions.CreateSession(testParagraph, 60)
	entry, _ := f.players.Register(session.ID, "early", "0x1")

	if err := f.races.StartTyping(entry.ID); !errors.Is(err, ErrRaceNotActive) {
		t.Errorf("expected ErrRaceNotActive while waiting, got %v", err)
	}
	if err := f.races.Progress(entry.ID, "T"); !errors.Is(err, ErrRaceNotActive) {
		t.Errorf("expected ErrRaceNotActive for progress while waiting, got %v", err)
	}
	if _, err := f.races.FinishRace(entry.ID, testParagraph); !errors.Is(err, ErrRaceNotActive) {
		t.Errorf("expected ErrRaceNotActive for finish while waiting, got %v", err)
	}
}

func TestBulkInputRejectedAtServiceBoundary(t *testing.T) {
	f := newRaceFixture(t)
	session, _ := f.sessions.CreateSession(testParagraph, 60)
	entry, _ := f.players.Register(session.ID, "paster", "0x1")
	if _, err := f.sessions.Activate(session.ID); err != nil {
		t.Fatalf("activate: %v", err)
	}

	if err := f.races.Progress(entry.ID, testParagraph); !errors.Is(err, race.ErrBulkInput) {
		t.Errorf("expected ErrBulkInput on pasted paragraph, got %v", err)
	}

	// A finish with no prior keystrokes cannot smuggle the answer in either.
	if _, err := f.races.FinishRace(entry.ID, testParagraph); !errors.Is(err, race.ErrNotStarted) {
		t.Errorf("expected ErrNotStarted, got %v", err)
	}
}

func TestFirstKeystrokePersisted(t *testing.T) {
	f := newRaceFixture(t)
	session, _ := f.sessions.CreateSession(testParagraph, 60)
	entry, _ := f.players.Register(session.ID, "racer", "0x1")
	if _, err := f.sessions.Activate(session.ID); err != nil {
		t.Fatalf("activate: %v", err)
	}

	if err := f.races.StartTyping(entry.ID); err != nil {
		t.Fatalf("start: %v", err)
	}

	got, _ := f.players.GetEntry(entry.ID)
	if got.StartedTypingAt == nil || !got.StartedTypingAt.Equal(f.clock.Now()) {
		t.Error("expected started_typing_at stamped on the first keystroke")
	}
}

// The full scenario: countdown elapses, one clean run and one typo-retry run,
// placements assigned by elapsed time.
func TestRaceEndToEnd(t *testing.T) {
	f := newRaceFixture(t)

	session, err := f.sessions.CreateSession(testParagraph, 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	p1, err := f.players.Register(session.ID, "P1", "0x1")
	if err != nil {
		t.Fatalf("register P1: %v", err)
	}
	p2, err := f.players.Register(session.ID, "P2", "0x2")
	if err != nil {
		t.Fatalf("register P2: %v", err)
	}

	// Countdown elapses; the sweeper activates the session.
	f.clock.Advance(10 * time.Second)
	f.sweeper.Tick()

	got, _ := f.sessions.GetSession(session.ID)
	if got.Status != models.SessionStatusActive {
		t.Fatalf("expected active after the deadline, got %s", got.Status)
	}

	// Both racers start typing at the gun.
	if err := f.races.StartTyping(p1.ID); err != nil {
		t.Fatalf("P1 start: %v", err)
	}
	if err := f.races.StartTyping(p2.ID); err != nil {
		t.Fatalf("P2 start: %v", err)
	}

	// P2 is faster but typos an interior character.
	typo := "The quikc brown fox jumps over the lazy dog"
	f.typeThrough(t, p2.ID, typo)
	f.clock.Advance(1500 * time.Millisecond)
	if _, err := f.races.FinishRace(p2.ID, typo); !errors.Is(err, race.ErrTextMismatch) {
		t.Fatalf("expected mismatch for P2, got %v", err)
	}
	if entry, _ := f.players.GetEntry(p2.ID); entry.Finished() {
		t.Fatal("rejected submission must not record a result")
	}

	// P1 finishes cleanly at 2000ms.
	f.typeThrough(t, p1.ID, testParagraph)
	f.clock.Advance(500 * time.Millisecond)
	done1, err := f.races.FinishRace(p1.ID, testParagraph)
	if err != nil {
		t.Fatalf("P1 finish: %v", err)
	}
	if *done1.TimeTakenMs != 2000 {
		t.Errorf("expected P1 at 2000ms, got %d", *done1.TimeTakenMs)
	}
	if *done1.AccuracyPercent != 100.0 {
		t.Errorf("expected P1 accuracy 100, got %f", *done1.AccuracyPercent)
	}

	// P2 corrects the typo and retries at 3000ms.
	f.clock.Advance(time.Second)
	if err := f.races.Progress(p2.ID, testParagraph); err != nil {
		t.Fatalf("P2 correction: %v", err)
	}
	done2, err := f.races.FinishRace(p2.ID, testParagraph)
	if err != nil {
		t.Fatalf("P2 retry: %v", err)
	}
	if *done2.TimeTakenMs != 3000 {
		t.Errorf("expected P2 at 3000ms, got %d", *done2.TimeTakenMs)
	}
	if *done2.AccuracyPercent != 100.0 {
		t.Errorf("expected P2 accuracy 100, got %f", *done2.AccuracyPercent)
	}

	// A second submission for the same entry is refused.
	if _, err := f.races.FinishRace(p1.ID, testParagraph); !errors.Is(err, ErrResultRecorded) {
		t.Errorf("expected ErrResultRecorded, got %v", err)
	}

	results, err := f.players.Results(session.ID)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 finishers, got %d", len(results))
	}
	if results[0].Nickname != "P1" || *results[0].Placement != 1 {
		t.Errorf("expected P1 first, got %s at %d", results[0].Nickname, *results[0].Placement)
	}
	if results[1].Nickname != "P2" || *results[1].Placement != 2 {
		t.Errorf("expected P2 second, got %s at %d", results[1].Nickname, *results[1].Placement)
	}
}

// A store failure during submission must leave the machine retryable, not
// stuck behind an already-submitted refusal with no recorded result.
func TestFinishRetriesAfterStoreFailure(t *testing.T) {
	f := newRaceFixture(t)
	session, _ := f.sessions.CreateSession(testParagraph, 60)
	entry, _ := f.players.Register(session.ID, "racer", "0x1")
	if _, err := f.sessions.Activate(session.ID); err != nil {
		t.Fatalf("activate: %v", err)
	}

	f.typeThrough(t, entry.ID, testParagraph)
	f.clock.Advance(2 * time.Second)

	// Break the result columns so RecordResult fails mid-submission.
	if err := f.db.Migrator().DropColumn(&models.PlayerEntry{}, "typed_text"); err != nil {
		t.Fatalf("drop column: %v", err)
	}
	if _, err := f.races.FinishRace(entry.ID, testParagraph); err == nil {
		t.Fatal("expected a store error")
	}

	got, _ := f.players.GetEntry(entry.ID)
	if got.Finished() {
		t.Fatal("failed submission must not leave a recorded result")
	}

	// Store recovers; the manual retry must succeed with the same clock.
	if err := f.db.AutoMigrate(&models.PlayerEntry{}); err != nil {
		t.Fatalf("restore column: %v", err)
	}
	done, err := f.races.FinishRace(entry.ID, testParagraph)
	if err != nil {
		t.Fatalf("retry after store recovery: %v", err)
	}
	if *done.TimeTakenMs != 2000 {
		t.Errorf("expected 2000ms on retry, got %d", *done.TimeTakenMs)
	}
	if *done.Placement != 1 {
		t.Errorf("expected placement 1, got %d", *done.Placement)
	}
}

func TestFinishAfterSessionClosed(t *testing.T) {
	f := newRaceFixture(t)
	session, _ := f.sessions.CreateSession(testParagraph, 60)
	entry, _ := f.players.Register(session.ID, "racer", "0x1")
	if _, err := f.sessions.Activate(session.ID); err != nil {
		t.Fatalf("activate: %v", err)
	}

	f.typeThrough(t, entry.ID, testParagraph)
	f.clock.Advance(2 * time.Second)

	if _, err := f.sessions.Finish(session.ID); err != nil {
		t.Fatalf("finish session: %v", err)
	}

	if _, err := f.races.FinishRace(entry.ID, testParagraph); !errors.Is(err, ErrRaceNotActive) {
		t.Errorf("expected ErrRaceNotActive after closure, got %v", err)
	}
}
