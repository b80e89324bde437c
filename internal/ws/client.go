package ws

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/guttosm/food-details-service/internal/logger"
	"github.com/guttosm/food-details-service/internal/screen"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Clients only send control frames.
	maxMessageSize = 512

	// Snapshots a slow client may lag behind before older ones are dropped.
	sendBuffer = 8
)

// ErrUpgrade is returned when the websocket handshake fails. The upgrader has
// already answered the request.
var ErrUpgrade = errors.New("websocket upgrade failed")

// ErrHubClosed is returned once the hub has been shut down.
var ErrHubClosed = errors.New("websocket hub is closed")

// Subscriber yields the snapshots of a mounted screen.
type Subscriber interface {
	Subscribe(sessionID string, buffer int) (<-chan screen.Snapshot, func(), error)
}

// RenderFunc turns a snapshot into the JSON value sent to the client.
type RenderFunc func(screen.Snapshot) interface{}

// Upgrader accepts connections from any origin; CORS is enforced on the REST routes.
var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one websocket stream of a screen session.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	sessionID string
	updates   <-chan screen.Snapshot
	cancel    func()
	render    RenderFunc
	closeOnce sync.Once
}

// Serve subscribes to the session and upgrades the request. A subscribe error
// is returned before anything is written so the caller can answer it; the
// stream ends when the screen is closed or the peer goes away.
func Serve(hub *Hub, sub Subscriber, render RenderFunc, sessionID string, w http.ResponseWriter, r *http.Request) error {
	updates, cancel, err := sub.Subscribe(sessionID, sendBuffer)
	if err != nil {
		return err
	}

	conn, err := Upgrader.Upgrade(w, r, nil)
	if err != nil {
		cancel()
		return fmt.Errorf("%w: %v", ErrUpgrade, err)
	}

	c := &Client{
		hub:       hub,
		conn:      conn,
		sessionID: sessionID,
		updates:   updates,
		cancel:    cancel,
		render:    render,
	}
	if !hub.register(c) {
		cancel()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return ErrHubClosed
	}

	log := logger.Logger()
	log.Debug().Str("session_id", sessionID).Msg("Screen stream opened")

	go c.WritePump()
	go c.ReadPump()
	return nil
}

// ReadPump waits for the peer to go away. Clients don't send messages; reading
// keeps pong handling alive.
func (c *Client) ReadPump() {
	defer c.close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log := logger.Logger()
				log.Warn().Err(err).Str("session_id", c.sessionID).Msg("Screen stream read failed")
			}
			return
		}
	}
}

// WritePump sends every snapshot as a JSON text message and pings the peer.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case snap, ok := <-c.updates:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The screen was unmounted.
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "screen closed"))
				return
			}
			if err := c.conn.WriteJSON(c.render(snap)); err != nil {
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

// goAway tells the peer the server is stopping, then closes the stream.
func (c *Client) goAway() {
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
		time.Now().Add(writeWait))
	c.close()
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		c.cancel()
		_ = c.conn.Close()
		c.hub.unregister(c)
		log := logger.Logger()
		log.Debug().Str("session_id", c.sessionID).Msg("Screen stream closed")
	})
}
