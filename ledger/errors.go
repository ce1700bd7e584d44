// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidRange = errors.New("end must be after start")
	ErrUnset        = errors.New("voting dates not set")
	ErrNotFound     = errors.New("candidate not found")
	ErrVotingClosed = errors.New("voting is closed")
	ErrAlreadyVoted = errors.New("voter has already voted")

	ErrUnauthorized = errors.New("caller not authorized")
	ErrWindowLocked = errors.New("voting window is locked once votes exist")
	ErrTampered     = errors.New("stored state does not match journal")
)
