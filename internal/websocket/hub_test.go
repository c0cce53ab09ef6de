package websocket

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockClient creates a Client with a send channel but no real connection.
func mockClient(hub *Hub) *Client {
	return &Client{
		hub:  hub,
		send: make(chan []byte, sendBufferSize),
	}
}

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case data := <-c.send:
		var got Message
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		return got
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for message")
	}
	return Message{}
}

func TestRegisterUnregister(t *testing.T) {
	hub := NewHub(testLogger())

	c1 := mockClient(hub)
	c2 := mockClient(hub)
	hub.Register(c1)
	hub.Register(c2)

	if got := hub.ClientCount(); got != 2 {
		t.Fatalf("expected 2 clients, got %d", got)
	}

	hub.Unregister(c1)
	if got := hub.ClientCount(); got != 1 {
		t.Fatalf("expected 1 client after unregister, got %d", got)
	}

	hub.Unregister(c2)
	hub.Unregister(c2)
	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestBroadcastStateUpdated(t *testing.T) {
	hub := NewHub(testLogger())

	c1 := mockClient(hub)
	c2 := mockClient(hub)
	hub.Register(c1)
	hub.Register(c2)
	defer hub.Unregister(c1)
	defer hub.Unregister(c2)

	hub.Broadcast(NewMessage("state", "updated", "list-1", map[string]any{"mode": "view"}))

	for _, c := range []*Client{c1, c2} {
		got := receive(t, c)
		if got.Type != "state_updated" {
			t.Errorf("expected type state_updated, got %s", got.Type)
		}
		if got.ID != "list-1" {
			t.Errorf("expected id list-1, got %q", got.ID)
		}
		if got.Seq != 1 {
			t.Errorf("expected seq 1, got %d", got.Seq)
		}
		if got.Extra["mode"] != "view" {
			t.Errorf("expected extra mode view, got %v", got.Extra["mode"])
		}
	}
}

func TestBroadcastSequenceIncreases(t *testing.T) {
	hub := NewHub(testLogger())
	c := mockClient(hub)
	hub.Register(c)
	defer hub.Unregister(c)

	for i := 1; i <= 3; i++ {
		hub.Broadcast(NewMessage("state", "updated", "", nil))
		if got := receive(t, c); got.Seq != uint64(i) {
			t.Errorf("broadcast %d: seq = %d", i, got.Seq)
		}
	}
	if hub.Seq() != 3 {
		t.Errorf("Seq() = %d, want 3", hub.Seq())
	}
}

func TestBroadcastEmptyHub(t *testing.T) {
	hub := NewHub(testLogger())
	hub.Broadcast(NewMessage("state", "updated", "", nil))
	if hub.Seq() != 1 {
		t.Errorf("Seq() = %d, want 1", hub.Seq())
	}
}

func TestBroadcastFullBuffer(t *testing.T) {
	hub := NewHub(testLogger())

	c := mockClient(hub)
	hub.Register(c)
	defer hub.Unregister(c)

	for i := 0; i < sendBufferSize; i++ {
		hub.Broadcast(NewMessage("test", "fill", "", nil))
	}
	hub.Broadcast(NewMessage("test", "dropped", "", nil))

	count := 0
	for len(c.send) > 0 {
		<-c.send
		count++
	}
	if count != sendBufferSize {
		t.Errorf("expected %d messages, got %d", sendBufferSize, count)
	}
}

func TestGreetCarriesCurrentSeq(t *testing.T) {
	hub := NewHub(testLogger())
	hub.Broadcast(NewMessage("state", "updated", "", nil))
	hub.Broadcast(NewMessage("state", "updated", "", nil))

	c := mockClient(hub)
	c.greet()

	got := receive(t, c)
	if got.Type != "session_hello" {
		t.Errorf("expected type session_hello, got %s", got.Type)
	}
	if got.Seq != 2 {
		t.Errorf("expected seq 2, got %d", got.Seq)
	}
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage("list", "deleted", "abc", nil)
	if msg.Type != "list_deleted" {
		t.Errorf("expected type list_deleted, got %s", msg.Type)
	}
	if msg.Entity != "list" || msg.Action != "deleted" || msg.ID != "abc" {
		t.Errorf("unexpected message %+v", msg)
	}
}

func TestConcurrentAccess(t *testing.T) {
	hub := NewHub(testLogger())
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := mockClient(hub)
			hub.Register(c)
			hub.Broadcast(NewMessage("test", "concurrent", "", nil))
			for {
				select {
				case <-c.send:
				default:
					hub.Unregister(c)
					return
				}
			}
		}()
	}

	wg.Wait()

	if got := hub.ClientCount(); got != 0 {
		t.Errorf("expected 0 clients after concurrent test, got %d", got)
	}
	if got := hub.Seq(); got != 20 {
		t.Errorf("expected seq 20, got %d", got)
	}
}
