// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/models"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.Clients() != n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d clients, have %d", n, h.Clients())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_PublishSubscribe(t *testing.T) {
	h := newTestHub()
	a, unsubA := h.Subscribe()
	b, unsubB := h.Subscribe()
	defer unsubB()

	if h.Clients() != 2 {
		t.Fatalf("Clients() = %d, want 2", h.Clients())
	}

	h.Publish(models.LedgerEvent{Type: models.EventWindowSet, Seq: 1, Window: &models.VotingWindow{Start: 1, End: 2}})

	for _, ch := range []<-chan []byte{a, b} {
		var got models.LedgerEvent
		if err := json.Unmarshal(<-ch, &got); err != nil {
			t.Fatalf("unmarshal error = %v", err)
		}
		if got.Type != models.EventWindowSet || got.Window.End != 2 {
			t.Errorf("received %+v", got)
		}
	}

	unsubA()
	unsubA() // second call is a no-op
	if _, ok := <-a; ok {
		t.Error("channel not closed after unsubscribe")
	}
	if h.Clients() != 1 {
		t.Errorf("Clients() = %d, want 1", h.Clients())
	}
}

func TestHub_SlowClientDoesNotBlock(t *testing.T) {
	h := newTestHub()
	_, unsub := h.Subscribe()
	defer unsub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < clientBuffer*3; i++ {
			h.Publish(models.LedgerEvent{Type: models.EventVoteCast, Seq: int64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full client")
	}
}

func TestHub_AsLedgerNotifier(t *testing.T) {
	h := newTestHub()
	ch, unsub := h.Subscribe()
	defer unsub()

	ctx := context.Background()
	l := ledger.New(ledger.Options{Notifier: h, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	l.AddCandidate(ctx, ledger.Caller{}, "Alice", "Red")
	l.SetDates(ctx, ledger.Caller{}, 100, 200)
	l.Vote(ctx, 1, "secret-voter", 150)

	for _, want := range []string{models.EventCandidateAdded, models.EventWindowSet, models.EventVoteCast} {
		data := <-ch
		if strings.Contains(string(data), "secret-voter") {
			t.Errorf("event leaked voter id: %s", data)
		}
		var got models.LedgerEvent
		json.Unmarshal(data, &got)
		if got.Type != want {
			t.Errorf("event type = %s, want %s", got.Type, want)
		}
	}
}

func TestServeWS(t *testing.T) {
	h := newTestHub()
	srv := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	waitForClients(t, h, 1)

	c := models.Candidate{ID: 1, Name: "Alice", Party: "Red", VoteCount: 1}
	h.Publish(models.LedgerEvent{Type: models.EventVoteCast, Seq: 4, Candidate: &c})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got models.LedgerEvent
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if got.Type != models.EventVoteCast || got.Seq != 4 || got.Candidate.VoteCount != 1 {
		t.Errorf("received %+v", got)
	}

	conn.Close()
	waitForClients(t, h, 0)
}

func TestServeWS_RejectsPlainHTTP(t *testing.T) {
	h := newTestHub()
	req := httptest.NewRequest("GET", "/events", nil)
	w := httptest.NewRecorder()

	h.ServeWS(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if h.Clients() != 0 {
		t.Error("failed upgrade left a subscriber behind")
	}
}

func TestServeSSE(t *testing.T) {
	h := newTestHub()
	srv := httptest.NewServer(http.HandlerFunc(h.ServeSSE))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %s", ct)
	}

	waitForClients(t, h, 1)
	h.Publish(models.LedgerEvent{Type: models.EventCandidateAdded, Seq: 1})

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("read error = %v", err)
		}
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			var got models.LedgerEvent
			if err := json.Unmarshal([]byte(strings.TrimSpace(data)), &got); err != nil {
				t.Fatalf("unmarshal error = %v", err)
			}
			if got.Type != models.EventCandidateAdded {
				t.Errorf("event type = %s", got.Type)
			}
			return
		}
	}
}
