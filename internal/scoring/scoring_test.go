package scoring_test

import (
	"testing"
	"time"

	"typing-race-backend/internal/scoring"

	. "github.com/smartystreets/goconvey/convey"
)

func TestElapsed(t *testing.T) {
	Convey("Given two timestamps", t, func() {
		start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

		Convey("When the finish is after the start", func() {
			ms, err := scoring.Elapsed(start, start.Add(2*time.Second))
			So(err, ShouldBeNil)
			So(ms, ShouldEqual, 2000)
		})

		Convey("When the timestamps are equal", func() {
			ms, err := scoring.Elapsed(start, start)
			So(err, ShouldBeNil)
			So(ms, ShouldEqual, 0)
		})

		Convey("When the finish precedes the start", func() {
			_, err := scoring.Elapsed(start, start.Add(-time.Millisecond))
			So(err, ShouldEqual, scoring.ErrInvalidTiming)
		})
	})
}

func TestAccuracy(t *testing.T) {
	Convey("Given a reference paragraph", t, func() {
		reference := "The quick brown fox"

		Convey("Typing it exactly scores 100", func() {
			acc, err := scoring.Accuracy(reference, reference)
			So(err, ShouldBeNil)
			So(acc, ShouldEqual, 100.0)
		})

		Convey("Flipping one character drops the score by exactly one character's worth", func() {
			typed := []rune(reference)
			typed[4] = 'Q'
			acc, err := scoring.Accuracy(reference, string(typed))
			So(err, ShouldBeNil)
			So(acc, ShouldAlmostEqual, 100.0-100.0/float64(len([]rune(reference))))
		})

		Convey("Characters typed past the reference are ignored", func() {
			acc, err := scoring.Accuracy(reference, reference+" and more garbage")
			So(err, ShouldBeNil)
			So(acc, ShouldEqual, 100.0)
		})

		Convey("Missing trailing characters count as mismatches", func() {
			acc, err := scoring.Accuracy("abcd", "ab")
			So(err, ShouldBeNil)
			So(acc, ShouldEqual, 50.0)
		})

		Convey("An empty reference is an error", func() {
			_, err := scoring.Accuracy("", "anything")
			So(err, ShouldEqual, scoring.ErrEmptyReference)
		})
	})
}

func TestWordsPerMinute(t *testing.T) {
	Convey("Given a typed text", t, func() {
		Convey("Word count is whitespace-delimited tokens over elapsed minutes", func() {
			wpm, err := scoring.WordsPerMinute("one two three four five six", 30000)
			So(err, ShouldBeNil)
			So(wpm, ShouldEqual, 12.0)
		})

		Convey("Extra whitespace does not inflate the count", func() {
			wpm, err := scoring.WordsPerMinute("  one   two  ", 60000)
			So(err, ShouldBeNil)
			So(wpm, ShouldEqual, 2.0)
		})

		Convey("Zero elapsed time is an error", func() {
			_, err := scoring.WordsPerMinute("one", 0)
			So(err, ShouldEqual, scoring.ErrZeroElapsed)
		})

		Convey("Negative elapsed time is an error", func() {
			_, err := scoring.WordsPerMinute("one", -5)
			So(err, ShouldEqual, scoring.ErrZeroElapsed)
		})
	})
}

func TestRankPlacements(t *testing.T) {
	Convey("Given finishers in submission order", t, func() {
		finishers := []scoring.Finisher{
			{ID: "A", TimeTakenMs: 1000},
			{ID: "B", TimeTakenMs: 1000},
			{ID: "C", TimeTakenMs: 500},
		}

		Convey("Ranks are dense and ascending by time, ties broken by submission order", func() {
			placements := scoring.RankPlacements(finishers)
			So(placements, ShouldResemble, map[string]int{"C": 1, "A": 2, "B": 3})
		})

		Convey("The input slice is left untouched", func() {
			scoring.RankPlacements(finishers)
			So(finishers[0].ID, ShouldEqual, "A")
			So(finishers[2].ID, ShouldEqual, "C")
		})

		Convey("No finishers yields no placements", func() {
			So(scoring.RankPlacements(nil), ShouldBeEmpty)
		})
	})
}
