package v1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/game"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS already gates the API; the stream carries no credentials
	CheckOrigin: func(*http.Request) bool { return true },
}

// streamedKeys are the event context keys forwarded to clients, per type
var streamedKeys = map[string][]string{
	game.EventPhaseChanged: {game.KeyFromPhase, game.KeyToPhase},
	game.EventCombatTurnResolved: {
		game.KeyTurn, game.KeyRoll, game.KeyAction, game.KeyTargetIndex,
		game.KeyDamageTaken, game.KeyMonsterHP, game.KeyMonsterDefeated,
	},
}

// EventMessage is one streamed game event
type EventMessage struct {
	Type     string         `json:"type"`
	SourceID string         `json:"sourceId,omitempty"`
	Data     map[string]any `json:"data"`
}

func toMessage(evt events.Event) EventMessage {
	msg := EventMessage{
		Type: evt.Type(),
		Data: make(map[string]any),
	}
	if src := evt.Source(); src != nil {
		msg.SourceID = src.GetID()
	}
	for _, key := range streamedKeys[evt.Type()] {
		if v, ok := evt.Context().Get(key); ok {
			msg.Data[key] = v
		}
	}
	return msg
}

// Events upgrades to a WebSocket and streams session events until the client
// goes away. Slow clients drop events rather than block the session.
func (h *Handler) Events(c *gin.Context) {
	ctx := c.Request.Context()
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.WarnContext(ctx, "failed to upgrade event stream", "error", err)
		return
	}

	bus := h.service.EventBus()
	send := make(chan []byte, sendBuffer)
	done := make(chan struct{})

	forward := func(_ context.Context, evt events.Event) error {
		payload, err := json.Marshal(toMessage(evt))
		if err != nil {
			return err
		}
		select {
		case send <- payload:
		case <-done:
		default:
			slog.Warn("event stream client is slow, dropping event", "type", evt.Type())
		}
		return nil
	}

	var subs []string
	for eventType := range streamedKeys {
		subs = append(subs, bus.SubscribeFunc(eventType, 0, forward))
	}

	slog.InfoContext(ctx, "event stream opened", "remote", c.ClientIP())

	go readPump(conn, done)
	writePump(conn, send, done)

	for _, id := range subs {
		if err := bus.Unsubscribe(id); err != nil {
			slog.Warn("failed to unsubscribe event stream", "error", err)
		}
	}
	slog.Info("event stream closed")
}

// readPump drains client frames so pongs and close frames are processed
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("event stream read error", "error", err)
			}
			return
		}
	}
}

func writePump(conn *websocket.Conn, send <-chan []byte, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case payload := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
