package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cfs-ui/cfs-docs/internal/search"
)

type wsClientMessage struct {
	Type  string `json:"type"`
	Query string `json:"query"`
}

type wsServerMessage struct {
	Type    string `json:"type"` // status, error
	Event   string `json:"event,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Loading bool   `json:"loading,omitempty"`

	// DebounceMS tells the client how long the server waits after the
	// last keystroke before answering.
	DebounceMS int64 `json:"debounceMs,omitempty"`
}

type wsResultsMessage struct {
	Type        string          `json:"type"` // always "results"
	Seq         uint64          `json:"seq"`
	Query       string          `json:"query"`
	Results     []search.Result `json:"results"`
	Suggestions []string        `json:"suggestions,omitempty"`
	Loading     bool            `json:"loading,omitempty"`
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     allowWSOrigin,
}

func allowWSOrigin(r *http.Request) bool {
	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil || originURL.Host == "" {
		return false
	}

	return strings.EqualFold(originURL.Host, r.Host)
}

type wsConnWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func newWSConnWriter(conn *websocket.Conn) *wsConnWriter {
	return &wsConnWriter{conn: conn}
}

func (w *wsConnWriter) WriteJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.conn.WriteJSON(v)
}

// writeIfCurrent writes msg only while gen is the latest search on this
// connection. The check and the write happen under the same lock so a
// result cannot slip out after a newer query cleared the list.
func (w *wsConnWriter) writeIfCurrent(d *search.Debouncer, gen uint64, msg wsResultsMessage) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !d.IsCurrent(gen) {
		return nil
	}
	_ = w.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.conn.WriteJSON(msg)
}

// handleSearchWS runs live search: each query message restarts the
// debounce timer and only the last query of a burst is answered.
func (s *Server) handleSearchWS(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	writer := newWSConnWriter(conn)
	debouncer := search.NewDebouncer(s.cfg.Debounce)
	defer debouncer.Stop()

	// Close the socket when the server shuts down so the read loop exits.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-s.baseCtx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	_, loading := s.content.NavItems()
	_ = writer.WriteJSON(wsServerMessage{
		Type:       "status",
		Event:      "connected",
		Loading:    loading,
		DebounceMS: debouncer.Delay().Milliseconds(),
	})
	if loading {
		// Results sent so far were title-only; let the client re-ask.
		go func() {
			select {
			case <-s.content.Done():
				_ = writer.WriteJSON(wsServerMessage{Type: "status", Event: "content_loaded"})
			case <-stop:
			}
		}()
	}

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(
				err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				webLog.Warn("websocket_closed_unexpectedly", slog.String("error", err.Error()))
			}
			return
		}

		var msg wsClientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			_ = writer.WriteJSON(wsServerMessage{
				Type:    "error",
				Code:    "INVALID_MESSAGE",
				Message: "invalid json payload",
			})
			continue
		}

		switch msg.Type {
		case "ping":
			_ = writer.WriteJSON(wsServerMessage{Type: "status", Event: "pong"})
		case "query":
			s.scheduleSearch(writer, debouncer, msg.Query)
		default:
			_ = writer.WriteJSON(wsServerMessage{
				Type:    "error",
				Code:    "UNSUPPORTED_MESSAGE",
				Message: "supported message types: ping,query",
			})
		}
	}
}

func (s *Server) scheduleSearch(writer *wsConnWriter, debouncer *search.Debouncer, query string) {
	// An emptied box closes the dropdown right away.
	if query == "" {
		gen := debouncer.Cancel()
		_ = writer.writeIfCurrent(debouncer, gen, wsResultsMessage{
			Type:    "results",
			Seq:     gen,
			Query:   query,
			Results: []search.Result{},
		})
		return
	}

	debouncer.Trigger(func(gen uint64) {
		resp := s.runSearch(query)
		err := writer.writeIfCurrent(debouncer, gen, wsResultsMessage{
			Type:        "results",
			Seq:         gen,
			Query:       query,
			Results:     resp.Results,
			Suggestions: resp.Suggestions,
			Loading:     resp.Loading,
		})
		if err != nil {
			webLog.Debug("ws_search_write_failed", slog.String("error", err.Error()))
		}
	})
}
