// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "sort"

// VoterLedger records which identities have voted. Unseen identities have
// not voted.
type VoterLedger struct {
	voted map[string]bool
}

func (v *VoterLedger) HasVoted(voterID string) bool {
	return v.voted[voterID]
}

// MarkVoted sets the flag for voterID. The flag is never reset.
func (v *VoterLedger) MarkVoted(voterID string) error {
	if v.voted[voterID] {
		return ErrAlreadyVoted
	}
	if v.voted == nil {
		v.voted = make(map[string]bool)
	}
	v.voted[voterID] = true
	return nil
}

func (v *VoterLedger) Count() int {
	return len(v.voted)
}

// IDs returns every identity that has voted, sorted.
func (v *VoterLedger) IDs() []string {
	ids := make([]string, 0, len(v.voted))
	for id := range v.voted {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
