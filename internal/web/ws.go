package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"termfolio/internal/commands"
	"termfolio/internal/model"
	"termfolio/internal/terminal"
)

// SessionFactory creates the terminal of one websocket connection. Windows
// opened by its commands must go to the given opener.
type SessionFactory func(windows commands.WindowOpener) (*terminal.Terminal, error)

const readTimeout = 120 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WSMessage is a client message.
type WSMessage struct {
	Type    string          `json:"type"`    // "key", "ping"
	Payload json.RawMessage `json:"payload"` // Message-specific payload
}

// WSKeyPayload is a key event; Key uses the terminal key names.
type WSKeyPayload struct {
	Key  string `json:"key"`
	Text string `json:"text,omitempty"`
}

// WSResponse is a server message.
type WSResponse struct {
	Type    string `json:"type"`    // "frame", "window", "error", "pong"
	Payload any    `json:"payload"` // Response-specific payload
}

// Frame is the full terminal state sent after every change.
type Frame struct {
	Prompt      string                `json:"prompt"`
	PromptError bool                  `json:"promptError"`
	Buffer      string                `json:"buffer"`
	Cursor      int                   `json:"cursor"`
	Hints       []model.Cell          `json:"hints"`
	Entries     []model.ExecutedEntry `json:"entries"`
	Pending     []string              `json:"pending"`
}

// WSErrorPayload represents an error payload.
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Session events, all handled by the connection loop.
type keyEvent struct{ key terminal.Key }

type pingEvent struct{}

type badEvent struct{ code, message string }

type windowEvent struct{ window model.Window }

type doneEvent struct {
	sub *terminal.Submission
	res model.CommandResult
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	logger := slog.With("session", id, "remote", conn.RemoteAddr().String())
	logger.Info("WebSocket connection established")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan any, 16)
	send := func(ev any) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}

	term, err := s.sessions(commands.WindowFunc(func(win model.Window) {
		send(windowEvent{window: win})
	}))
	if err != nil {
		logger.Error("Could not create session", "error", err)
		_ = conn.WriteJSON(WSResponse{Type: "error", Payload: WSErrorPayload{Code: "session", Message: err.Error()}})
		return
	}

	go s.readLoop(ctx, cancel, conn, send, logger)

	execute := func(sub *terminal.Submission) {
		if sub == nil {
			return
		}
		go func() {
			send(doneEvent{sub: sub, res: term.Execute(ctx, sub)})
		}()
	}

	if err := term.Init(ctx); err != nil {
		logger.Warn("Could not load working directory", "error", err)
	}
	if s.opts.Welcome != "" {
		execute(term.Submit(s.opts.Welcome))
	}
	if err := conn.WriteJSON(frameOf(term)); err != nil {
		return
	}

	for {
		var ev any
		select {
		case <-ctx.Done():
			logger.Info("WebSocket connection closed")
			return
		case ev = <-events:
		}

		var resp WSResponse
		switch ev := ev.(type) {
		case pingEvent:
			resp = WSResponse{Type: "pong"}
		case badEvent:
			resp = WSResponse{Type: "error", Payload: WSErrorPayload{Code: ev.code, Message: ev.message}}
		case windowEvent:
			resp = WSResponse{Type: "window", Payload: ev.window}
		case keyEvent:
			execute(term.HandleKey(ev.key))
			resp = frameOf(term)
		case doneEvent:
			execute(term.Complete(ev.sub, ev.res))
			resp = frameOf(term)
		}

		if err := conn.WriteJSON(resp); err != nil {
			logger.Warn("WebSocket write failed", "error", err)
			return
		}
	}
}

// readLoop decodes client messages into session events.
func (s *Server) readLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, send func(any), logger *slog.Logger) {
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Error("WebSocket read error", "error", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(readTimeout))

		switch msg.Type {
		case "ping":
			send(pingEvent{})
		case "key":
			var payload WSKeyPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				send(badEvent{code: "invalid_payload", message: "Invalid key payload"})
				continue
			}
			key := terminal.KeyFromName(payload.Key, payload.Text)
			if key.Type == terminal.KeyUnknown {
				send(badEvent{code: "unknown_key", message: "Unknown key: " + payload.Key})
				continue
			}
			send(keyEvent{key: key})
		default:
			send(badEvent{code: "unknown_type", message: "Unknown message type: " + msg.Type})
		}

		if ctx.Err() != nil {
			return
		}
	}
}

func frameOf(term *terminal.Terminal) WSResponse {
	pending := term.Pending()
	inputs := make([]string, len(pending))
	for i, p := range pending {
		inputs[i] = p.Input
	}
	return WSResponse{Type: "frame", Payload: Frame{
		Prompt:      terminal.PromptText(term.Path()),
		PromptError: term.PromptError(),
		Buffer:      term.Buffer(),
		Cursor:      term.Cursor(),
		Hints:       term.Hints(),
		Entries:     term.Entries(),
		Pending:     inputs,
	}}
}
