package tui

import (
	"time"

	"github.com/vovakirdan/chicken-road/internal/core"
)

// HoldTracker turns terminal key repeats into press and release edges.
// Terminals report only key-down (and auto-repeats), so a direction counts
// as held until no repeat has arrived for a while. A fresh press gets a
// longer grace period to cover the delay before the first repeat.
type HoldTracker struct {
	release     time.Duration
	firstRepeat time.Duration

	held     [4]bool
	deadline [4]time.Time
}

// NewHoldTracker creates a tracker. release is the gap between repeats
// that ends a hold; firstRepeat is the minimum hold after a fresh press.
func NewHoldTracker(release, firstRepeat time.Duration) *HoldTracker {
	return &HoldTracker{
		release:     release,
		firstRepeat: max(release, firstRepeat),
	}
}

// Press records a key-down or repeat for d at now.
// It reports whether this starts a new hold, and the opposite direction
// if pressing d released it.
func (h *HoldTracker) Press(d core.Direction, now time.Time) (started bool, released []core.Direction) {
	if opp := d.Opposite(); h.held[opp] {
		h.held[opp] = false
		released = append(released, opp)
	}

	if h.held[d] {
		h.deadline[d] = now.Add(h.release)
		return false, released
	}

	h.held[d] = true
	h.deadline[d] = now.Add(h.firstRepeat)
	return true, released
}

// Expire releases every direction whose deadline has passed.
func (h *HoldTracker) Expire(now time.Time) []core.Direction {
	var released []core.Direction
	for _, d := range core.Directions {
		if h.held[d] && !now.Before(h.deadline[d]) {
			h.held[d] = false
			released = append(released, d)
		}
	}
	return released
}

// Reset forgets all holds.
func (h *HoldTracker) Reset() {
	h.held = [4]bool{}
}
