package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

func dialHub(t *testing.T, h *Hub) (*websocket.Conn, func()) {
	t.Helper()

	e := echo.New()
	h.Register(e)
	srv := httptest.NewServer(e)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/reel"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial: %v", err)
	}

	// Registration happens just after the handshake completes.
	deadline := time.Now().Add(2 * time.Second)
	for h.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(time.Millisecond)
	}

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func TestHub_BroadcastsReelFrames(t *testing.T) {
	h := NewHub(nil)
	conn, cleanup := dialHub(t, h)
	defer cleanup()

	h.Clear()
	h.Append([]string{"Alice", "Bob"})
	h.CollapseToWinner()

	want := []Frame{
		{Type: frameClear},
		{Type: frameAppend, Items: []string{"Alice", "Bob"}},
		{Type: frameSettle},
	}
	for _, w := range want {
		var got Frame
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if err := conn.ReadJSON(&got); err != nil {
			t.Fatalf("read frame: %v", err)
		}
		if got.Type != w.Type || len(got.Items) != len(w.Items) {
			t.Fatalf("frame %+v, want %+v", got, w)
		}
		for i := range w.Items {
			if got.Items[i] != w.Items[i] {
				t.Fatalf("frame items %v, want %v", got.Items, w.Items)
			}
		}
	}
}

func TestHub_SpinFrameCarriesDuration(t *testing.T) {
	h := NewHub(nil)
	conn, cleanup := dialHub(t, h)
	defer cleanup()

	done := make(chan error, 1)
	go func() {
		done <- h.Spin(context.Background(), 20*time.Millisecond)
	}()

	var got Frame
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if got.Type != frameSpin || got.DurationMS != 20 {
		t.Fatalf("unexpected spin frame: %+v", got)
	}
	if err := <-done; err != nil {
		t.Fatalf("spin returned %v", err)
	}
}

func TestHub_SpinWaitsFullDuration(t *testing.T) {
	h := NewHub(nil)

	start := time.Now()
	if err := h.Spin(context.Background(), 30*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("spin returned after %v, before the animation ended", elapsed)
	}
}

func TestHub_SpinCancellation(t *testing.T) {
	h := NewHub(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := h.Spin(ctx, time.Minute); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	connCh := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		connCh <- c
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	peer, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer peer.Close()
	server := <-connCh
	defer server.Close()

	h := NewHub(nil)
	// A client with a stuck writer: no writePump drains its channel.
	cl := &client{conn: server, out: make(chan Frame, 1)}
	h.register(cl)

	h.Clear() // fills the buffer
	h.Clear() // overflows: client must be dropped

	if n := h.ClientCount(); n != 0 {
		t.Fatalf("expected slow client to be dropped, have %d clients", n)
	}

	// The channel is closed so a late writePump would terminate.
	select {
	case _, ok := <-cl.out:
		if !ok {
			return // drained buffered frame then closed, or closed directly
		}
		if _, ok := <-cl.out; ok {
			t.Fatal("outgoing channel not closed after drop")
		}
	case <-time.After(time.Second):
		t.Fatal("outgoing channel not closed after drop")
	}
}
