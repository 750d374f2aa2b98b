package scoring

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidTiming  = errors.New("finish time precedes start time")
	ErrEmptyReference = errors.New("reference text is empty")
	ErrZeroElapsed    = errors.New("elapsed time must be positive")
)

// Elapsed returns the millisecond difference between two timestamps.
func Elapsed(startedAt, finishedAt time.Time) (int64, error) {
	if finishedAt.Before(startedAt) {
		return 0, ErrInvalidTiming
	}
	return finishedAt.Sub(startedAt).Milliseconds(), nil
}

// Accuracy compares typed against reference rune by rune. Runes typed past
// the end of the reference are ignored; missing runes count as mismatches.
func Accuracy(reference, typed string) (float64, error) {
	refRunes := []rune(reference)
	if len(refRunes) == 0 {
		return 0, ErrEmptyReference
	}
	typedRunes := []rune(typed)

	correct := 0
	for i, r := range refRunes {
		if i < len(typedRunes) && typedRunes[i] == r {
			correct++
		}
	}
	return 100 * float64(correct) / float64(len(refRunes)), nil
}

// WordsPerMinute counts whitespace-delimited words in text over elapsedMs.
func WordsPerMinute(text string, elapsedMs int64) (float64, error) {
	if elapsedMs <= 0 {
		return 0, ErrZeroElapsed
	}
	words := len(strings.Fields(text))
	return float64(words) / (float64(elapsedMs) / 60000), nil
}

type Finisher struct {
	ID          string
	TimeTakenMs int64
}

// RankPlacements assigns dense ranks 1..N ascending by time taken. The sort
// is stable, so ties keep their submission order.
func RankPlacements(finishers []Finisher) map[string]int {
	ranked := make([]Finisher, len(finishers))
	copy(ranked, finishers)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].TimeTakenMs < ranked[b].TimeTakenMs
	})

	placements := make(map[string]int, len(ranked))
	for i, f := range ranked {
		placements[f.ID] = i + 1
	}
	return placements
}
