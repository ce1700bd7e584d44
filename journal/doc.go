// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package journal implements the hash-chained record of ledger mutations.

Each entry stores the SHA-256 of its predecessor, so editing, removing or
reordering any committed entry breaks the chain:

	prev, seq := journal.Head(entries)
	e, err := journal.Next(prev, seq, "vote.cast", payload)

	if err := journal.Verify(entries); err != nil {
		// errors.Is(err, journal.ErrBrokenChain)
	}

The hash covers PrevHash, Seq, ID, Kind and the JSON payload. The first entry
links to GenesisHash.
*/
package journal
