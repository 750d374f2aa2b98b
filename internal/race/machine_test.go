package race_test

import (
	"testing"
	"time"

	"typing-race-backend/internal/race"

	"github.com/jonboulle/clockwork"
	. "github.com/smartystreets/goconvey/convey"
)

const paragraph = "The quick brown fox jumps over the lazy dog"

// typeThrough feeds text into the machine in keystroke-sized chunks, the way
// a client reports progress.
func typeThrough(m *race.Machine, text string) error {
	runes := []rune(text)
	for i := 8; ; i += 8 {
		if i >= len(runes) {
			return m.Type(text)
		}
		if err := m.Type(string(runes[:i])); err != nil {
			return err
		}
	}
}

func TestMachineTransitions(t *testing.T) {
	Convey("Given a fresh machine", t, func() {
		clock := clockwork.NewFakeClock()
		m := race.NewMachine(paragraph, clock, 0)

		Convey("It starts idle", func() {
			So(m.State(), ShouldEqual, race.StateIdle)
		})

		Convey("The first input event starts the clock", func() {
			So(m.Type("T"), ShouldBeNil)
			So(m.State(), ShouldEqual, race.StateTyping)
			startedAt, ok := m.StartedAt()
			So(ok, ShouldBeTrue)
			So(startedAt, ShouldEqual, clock.Now())
		})

		Convey("Start is idempotent while typing", func() {
			first, err := m.Start()
			So(err, ShouldBeNil)
			clock.Advance(time.Second)
			again, err := m.Start()
			So(err, ShouldBeNil)
			So(again, ShouldEqual, first)
		})

		Convey("Finishing before any keystroke is refused", func() {
			_, err := m.Finish(paragraph)
			So(err, ShouldEqual, race.ErrNotStarted)
			So(m.State(), ShouldEqual, race.StateIdle)
		})
	})
}

func TestMachineFinish(t *testing.T) {
	Convey("Given a machine mid-race", t, func() {
		clock := clockwork.NewFakeClock()
		m := race.NewMachine(paragraph, clock, 0)
		So(typeThrough(m, paragraph), ShouldBeNil)
		clock.Advance(2 * time.Second)

		Convey("Exact text succeeds and yields the metrics", func() {
			res, err := m.Finish(paragraph)
			So(err, ShouldBeNil)
			So(res.TimeTakenMs, ShouldEqual, 2000)
			So(res.AccuracyPercent, ShouldEqual, 100.0)
			So(res.WordsPerMinute, ShouldEqual, 270.0)
			So(m.State(), ShouldEqual, race.StateSubmitted)
		})

		Convey("Trailing whitespace is forgiven", func() {
			So(m.Type(paragraph+"  "), ShouldBeNil)
			res, err := m.Finish(paragraph + "  ")
			So(err, ShouldBeNil)
			So(res.AccuracyPercent, ShouldEqual, 100.0)
		})

		Convey("A second submission is refused", func() {
			_, err := m.Finish(paragraph)
			So(err, ShouldBeNil)
			_, err = m.Finish(paragraph)
			So(err, ShouldEqual, race.ErrAlreadySubmitted)
		})

		Convey("Reopen makes a submitted machine retryable", func() {
			_, err := m.Finish(paragraph)
			So(err, ShouldBeNil)
			m.Reopen()
			So(m.State(), ShouldEqual, race.StateTyping)

			clock.Advance(time.Second)
			res, err := m.Finish(paragraph)
			So(err, ShouldBeNil)
			So(res.TimeTakenMs, ShouldEqual, 3000)
		})
	})

	Convey("Given a machine with a one-character interior typo", t, func() {
		clock := clockwork.NewFakeClock()
		m := race.NewMachine(paragraph, clock, 0)
		typo := "The quikc brown fox jumps over the lazy dog"
		So(typeThrough(m, typo), ShouldBeNil)
		clock.Advance(1500 * time.Millisecond)

		Convey("The finish attempt is rejected and the machine keeps typing", func() {
			_, err := m.Finish(typo)
			So(err, ShouldEqual, race.ErrTextMismatch)
			So(m.State(), ShouldEqual, race.StateTyping)

			Convey("Retrying with the corrected text then succeeds", func() {
				clock.Advance(1500 * time.Millisecond)
				So(m.Type(paragraph), ShouldBeNil)
				res, err := m.Finish(paragraph)
				So(err, ShouldBeNil)
				So(res.TimeTakenMs, ShouldEqual, 3000)
				So(res.AccuracyPercent, ShouldEqual, 100.0)
			})
		})
	})
}

func TestMachineBulkInput(t *testing.T) {
	Convey("Given a fresh machine", t, func() {
		clock := clockwork.NewFakeClock()
		m := race.NewMachine(paragraph, clock, 0)

		Convey("Pasting the whole paragraph in one event is refused", func() {
			So(m.Type(paragraph), ShouldEqual, race.ErrBulkInput)
			So(m.State(), ShouldEqual, race.StateIdle)
		})

		Convey("Sequential keystrokes up to the limit are fine", func() {
			So(m.Type("The quic"), ShouldBeNil)
			So(m.Type("The quick brown "), ShouldBeNil)
		})

		Convey("A paste-sized jump mid-race is refused without losing progress", func() {
			So(m.Type("The quic"), ShouldBeNil)
			So(m.Type(paragraph), ShouldEqual, race.ErrBulkInput)
			So(m.State(), ShouldEqual, race.StateTyping)
		})

		Convey("Deleting text is always allowed", func() {
			So(m.Type("The quic"), ShouldBeNil)
			So(m.Type("The"), ShouldBeNil)
		})
	})
}

func TestManager(t *testing.T) {
	Convey("Given a manager", t, func() {
		clock := clockwork.NewFakeClock()
		mg := race.NewManager(clock, 0)

		Convey("Get returns the same machine for the same entry", func() {
			a := mg.Get("entry-1", paragraph)
			b := mg.Get("entry-1", paragraph)
			So(a, ShouldEqual, b)
			So(mg.Len(), ShouldEqual, 1)
		})

		Convey("Forget drops the machine", func() {
			mg.Get("entry-1", paragraph)
			mg.Forget("entry-1")
			So(mg.Len(), ShouldEqual, 0)
		})
	})
}
