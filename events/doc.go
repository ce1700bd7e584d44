// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package events broadcasts committed ledger mutations to live clients.

Hub implements ledger.Notifier, so it is wired in as the ledger's Notifier:

	hub := events.NewHub(logger)
	l, err := ledger.Open(ctx, ledger.Options{Store: store, Notifier: hub})

Clients connect with a websocket (ServeWS) or server-sent events (ServeSSE).
Each message is a JSON-encoded models.LedgerEvent:

	{"type":"vote.cast","seq":7,"candidate":{"id":1,"name":"Alice","party":"Red","vote_count":3}}

Events never carry voter identities. Publish does not block: a client that
falls behind by more than its buffer misses events and can resynchronize from
GET /candidates.
*/
package events
