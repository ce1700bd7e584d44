// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "github.com/danielhkuo/evote/models"

// VotingWindow gates when votes are accepted. The zero value is unset.
type VotingWindow struct {
	set    bool
	window models.VotingWindow
}

// SetDates replaces the window wholesale. On ErrInvalidRange the previous
// window, or the unset state, is kept.
func (w *VotingWindow) SetDates(start, end int64) error {
	if end <= start {
		return ErrInvalidRange
	}
	w.set = true
	w.window = models.VotingWindow{Start: start, End: end}
	return nil
}

func (w *VotingWindow) GetDates() (models.VotingWindow, error) {
	if !w.set {
		return models.VotingWindow{}, ErrUnset
	}
	return w.window, nil
}

// IsOpen reports whether now falls inside the window, bounds included.
func (w *VotingWindow) IsOpen(now int64) bool {
	return w.set && w.window.Start <= now && now <= w.window.End
}
