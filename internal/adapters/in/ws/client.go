package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"delify/internal/notifications"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	sendBuffer     = 32
)

// inboundMessage is what clients send to manage their subscriptions.
//
//	{"type": "join_user_room", "id": "<externalUID>"}
//	{"type": "join_room", "id": "<restaurantID>"}
type inboundMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// outboundMessage is one pushed event.
type outboundMessage struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Client is one websocket connection attached to the hub. A buffered send
// channel decouples fan-out from the socket: when the buffer is full the
// event is dropped for this client rather than blocking the publisher.
//
// The mutex guards send against the disconnect race: publishers holding a
// membership snapshot taken before Unregister may still call Deliver, so the
// channel is only closed under the same lock that Deliver sends under.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan outboundMessage
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// Deliver queues an event for the client. Never blocks; events arriving on a
// full buffer or after disconnect are dropped.
func (c *Client) Deliver(event string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	select {
	case c.send <- outboundMessage{Event: event, Payload: payload}:
	default:
		c.logger.Debug("send buffer full, event dropped", "event", event)
	}
}

// closeSend shuts the send channel exactly once, after which Deliver
// becomes a no-op.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// readPump consumes subscription messages until the connection dies, then
// detaches the client from the hub.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.closeSend()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("connection closed unexpectedly", "error", err)
			}
			return
		}

		var msg inboundMessage
		if err = json.Unmarshal(raw, &msg); err != nil {
			c.logger.Debug("malformed channel message dropped", "error", err)
			continue
		}

		c.handle(msg)
	}
}

func (c *Client) handle(msg inboundMessage) {
	if msg.ID == "" {
		return
	}

	switch msg.Type {
	case "join_user_room":
		c.hub.Join(c, notifications.UserKey(msg.ID))
	case "join_room":
		c.hub.Join(c, notifications.RestaurantKey(msg.ID))
	default:
		c.logger.Debug("unknown channel message type", "type", msg.Type)
	}
}

// writePump serializes queued events onto the socket and keeps the
// connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The push channel carries no credentials and browsers connect from the
	// separately hosted frontend.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Handler upgrades HTTP requests to websocket sessions on the hub.
type Handler struct {
	hub    *Hub
	logger *slog.Logger
}

// NewHandler creates the websocket upgrade handler.
func NewHandler(hub *Hub, logger *slog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger.With("component", "ws_handler"),
	}
}

// Serve handles GET /ws.
func (h *Handler) Serve(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan outboundMessage, sendBuffer),
		logger: h.logger,
	}
	h.hub.Register(client)

	go client.writePump()
	go client.readPump()
	return nil
}
