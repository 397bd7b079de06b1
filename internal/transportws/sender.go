package transportws

import (
	"github.com/gofiber/contrib/websocket"

	"github.com/Prince5723/scribble-backend/internal/router"
)

// Sender implements router.EventSender by resolving a session handle back
// to the *Conn that produced it. It holds no state of its own — sessions
// only ever originate from Accept in this package.
type Sender struct{}

// Send queues payload for eventType on session's connection. A session of
// any other concrete type (only possible from a misbehaving test double)
// is silently ignored.
func (Sender) Send(session any, eventType string, payload any) {
	conn, ok := session.(*Conn)
	if !ok {
		return
	}
	conn.enqueue(eventType, payload)
}

// Accept wraps a newly upgraded websocket connection as a session handle
// and runs its read/write pumps against r. It blocks until the connection
// closes, matching the teacher's `pl.WritePump()`-in-the-handler pattern,
// so cmd/server calls this directly inside websocket.New's handler.
func Accept(ws *websocket.Conn, r *router.Router) {
	c := newConn(ws)
	r.OnConnect(c)
	go c.ReadPump(r)
	c.WritePump()
}
