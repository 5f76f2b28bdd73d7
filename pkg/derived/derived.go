// Package derived computes the per-log figures shown next to a cycle's logs.
// Every function works on the full, unordered set of a cycle's logs.
package derived

import (
	"errors"
	"fmt"
	"sort"

	"growlog/entities"
)

var ErrLogNotInCycle = errors.New("log not found among its cycle's logs")

// chronological keeps logs of the target's cycle ordered by date, then id.
func chronological(logs []entities.Log, cycleID string) []entities.Log {
	out := make([]entities.Log, 0, len(logs))
	for _, l := range logs {
		if l.CycleID == cycleID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func position(ordered []entities.Log, target entities.Log) (int, bool) {
	for i, l := range ordered {
		if l.ID == target.ID {
			return i + 1, true
		}
	}
	return 0, false
}

// DayInCycle is the 1-based rank of target among its cycle's logs.
func DayInCycle(logs []entities.Log, target entities.Log) (int, error) {
	if n, ok := position(chronological(logs, target.CycleID), target); ok {
		return n, nil
	}
	return 0, fmt.Errorf("log %d in cycle %s: %w", target.ID, target.CycleID, ErrLogNotInCycle)
}

// DayInPhase ranks target among the logs sharing its cycle and phase.
// A log that cannot be found counts as day 1.
func DayInPhase(logs []entities.Log, target entities.Log) int {
	same := make([]entities.Log, 0, len(logs))
	for _, l := range chronological(logs, target.CycleID) {
		if l.Phase == target.Phase {
			same = append(same, l)
		}
	}
	if n, ok := position(same, target); ok {
		return n
	}
	return 1
}

// PreviousLog is the cycle's log with the largest id below target's, or nil.
func PreviousLog(logs []entities.Log, target entities.Log) *entities.Log {
	var prev *entities.Log
	for i := range logs {
		l := &logs[i]
		if l.CycleID != target.CycleID || l.ID >= target.ID {
			continue
		}
		if prev == nil || l.ID > prev.ID {
			prev = l
		}
	}
	return prev
}

// CalibrationStreak counts the uncalibrated logs walking back from target
// (inclusive) by descending id, stopping at the first calibrated one.
// It is nil when target itself was calibrated.
func CalibrationStreak(logs []entities.Log, target entities.Log) *int {
	back := make([]entities.Log, 0, len(logs))
	for _, l := range logs {
		if l.CycleID == target.CycleID && l.ID <= target.ID {
			back = append(back, l)
		}
	}
	sort.Slice(back, func(i, j int) bool { return back[i].ID > back[j].ID })

	n := 0
	for _, l := range back {
		if l.Calibrated() {
			break
		}
		n++
	}
	if n == 0 {
		return nil
	}
	return &n
}

// LogLabel renders "name - day n"; without a day only the name is shown.
func LogLabel(c *entities.Cycle, day *int) string {
	if day == nil {
		return c.DisplayName()
	}
	return fmt.Sprintf("%s - day %d", c.DisplayName(), *day)
}
