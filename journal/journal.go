// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package journal

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// GenesisHash is the PrevHash of the first entry.
const GenesisHash = "0000000000000000000000000000000000000000000000000000000000000000"

var ErrBrokenChain = errors.New("journal chain broken")

// Entry is one committed ledger mutation.
type Entry struct {
	Seq      int64  `json:"seq"`
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Payload  []byte `json:"payload"`
	PrevHash string `json:"prev_hash"`
	Hash     string `json:"hash"`
}

// Head returns the hash and sequence number a new entry chains onto.
func Head(entries []Entry) (string, int64) {
	if len(entries) == 0 {
		return GenesisHash, 0
	}
	last := entries[len(entries)-1]
	return last.Hash, last.Seq
}

// Next builds the entry following (prevHash, prevSeq). The payload is JSON
// encoded and covered by the hash.
func Next(prevHash string, prevSeq int64, kind string, payload any) (Entry, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to encode %s payload: %w", kind, err)
	}

	e := Entry{
		Seq:      prevSeq + 1,
		ID:       uuid.NewString(),
		Kind:     kind,
		Payload:  data,
		PrevHash: prevHash,
	}
	e.Hash = ComputeHash(e)
	return e, nil
}

// ComputeHash hashes every field of e except Hash itself.
func ComputeHash(e Entry) string {
	h := sha256.New()
	h.Write([]byte(e.PrevHash))
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.FormatInt(e.Seq, 10)))
	h.Write([]byte{'|'})
	h.Write([]byte(e.ID))
	h.Write([]byte{'|'})
	h.Write([]byte(e.Kind))
	h.Write([]byte{'|'})
	h.Write(e.Payload)
	return hex.EncodeToString(h.Sum(nil))
}

// Verify walks the chain from genesis. It returns nil if every entry is
// sequential, links to its predecessor and hashes to its recorded Hash.
func Verify(entries []Entry) error {
	prev := GenesisHash
	for i, e := range entries {
		want := int64(i + 1)
		if e.Seq != want {
			return fmt.Errorf("%w: entry %d has seq %d", ErrBrokenChain, want, e.Seq)
		}
		if e.PrevHash != prev {
			return fmt.Errorf("%w: entry %d does not link to its predecessor", ErrBrokenChain, e.Seq)
		}
		if ComputeHash(e) != e.Hash {
			return fmt.Errorf("%w: entry %d hash mismatch", ErrBrokenChain, e.Seq)
		}
		prev = e.Hash
	}
	return nil
}

// Decode unmarshals the entry payload into v.
func (e Entry) Decode(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("failed to decode %s entry %d: %w", e.Kind, e.Seq, err)
	}
	return nil
}
