// Package transportws is the Transport Adapter: it wraps one gofiber
// websocket connection as the opaque session handle the rest of the system
// treats as a black box, translating the wire `{type, data}` envelope to
// and from internal/router calls. Grounded on the teacher's
// internal/room/player.go Player.ReadPump/WritePump — same ctx/cancel/once
// cleanup, same 256-buffered send channel, same 54s ping ticker — but with
// the protocol switch moved out into the Event Router and ownership of the
// secret word never crossing into this package.
package transportws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/Prince5723/scribble-backend/internal/router"
	"github.com/Prince5723/scribble-backend/logger"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 256
)

// wireMessage is the inbound/outbound envelope, identical in shape to the
// teacher's WSMessage.
type wireMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Conn is one connected client's session handle. The Event Router only
// ever sees it as an opaque `any` value compared by identity.
type Conn struct {
	ws   *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func newConn(ws *websocket.Conn) *Conn {
	return &Conn{
		ws:   ws,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

func (c *Conn) cleanup() {
	c.once.Do(func() {
		close(c.done)
		c.ws.Close()
	})
}

// enqueue marshals one outbound event as a wireMessage and queues it for
// WritePump. A full send buffer or a closed connection drops the message
// rather than blocking the connection's goroutine.
func (c *Conn) enqueue(eventType string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("transportws: marshal payload event=%s err=%v", eventType, err)
		return
	}
	msg, err := json.Marshal(wireMessage{Type: eventType, Data: data})
	if err != nil {
		logger.Error("transportws: marshal envelope event=%s err=%v", eventType, err)
		return
	}
	select {
	case c.send <- msg:
	case <-c.done:
	default:
		logger.Error("transportws: send buffer full, dropping event=%s", eventType)
	}
}

// ReadPump decodes inbound frames and dispatches them to r until the
// connection closes, then unregisters the session.
func (c *Conn) ReadPump(r *router.Router) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("transportws: readPump panic: %v", rec)
		}
		c.cleanup()
		r.OnDisconnect(c)
	}()

	for {
		select {
		case <-c.done:
			return
		default:
		}

		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			return
		}

		var msg wireMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			logger.Info("transportws: dropping malformed frame err=%v", err)
			continue
		}
		r.Dispatch(c, msg.Type, msg.Data)
	}
}

// WritePump drains the send buffer to the socket and keeps the connection
// alive with periodic pings. It runs on the goroutine that accepted the
// connection, exactly like the teacher's pl.WritePump().
func (c *Conn) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.cleanup()
	}()

	for {
		select {
		case <-c.done:
			return
		case msg, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
