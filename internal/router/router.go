// Package router implements the Event Router: it demultiplexes inbound
// transport events to the engines and composes the resulting outbound
// broadcasts (spec.md §4.9). Every mutation for a given room runs inside
// that room's single actor goroutine, fed by a buffered inbox channel —
// the concrete realization of §5's per-room serialization contract,
// generalizing the teacher's Room.Run Register/Unregister/Broadcast select
// loop into one channel of tagged closures so that client events, timer
// callbacks, and drawing-relay flushes all serialize through the same
// point.
package router

import (
	"sync"
	"time"

	"github.com/Prince5723/scribble-backend/internal/drawing"
	"github.com/Prince5723/scribble-backend/internal/player"
	"github.com/Prince5723/scribble-backend/internal/room"
	"github.com/Prince5723/scribble-backend/internal/score"
	"github.com/Prince5723/scribble-backend/internal/timersvc"
	"github.com/Prince5723/scribble-backend/logger"
)

// EventSender is the transport-facing half of the Event Router: it delivers
// one named event to one session handle. transportws implements this over
// a websocket connection; tests implement it over an in-memory recorder.
type EventSender interface {
	Send(session any, eventType string, payload any)
}

type task func()

type actor struct {
	inbox chan task
}

// Router owns every engine and the per-room actor table. It is the single
// `Server`-scoped object the spec's §9 "avoid ambient globals" note asks
// for; cmd/server constructs exactly one.
type Router struct {
	mu     sync.Mutex
	actors map[string]*actor

	players *player.Registry
	rooms   *room.Registry
	timers  *timersvc.Service
	relay   *drawing.Relay
	scores  *score.Engine
	sender  EventSender
}

// NewRouter wires a Router against the given registries, Timer Service, and
// transport sender. It constructs its own Drawing Relay and Score Engine,
// since those are private implementation details of the routing layer.
func NewRouter(players *player.Registry, rooms *room.Registry, timers *timersvc.Service, sender EventSender) *Router {
	r := &Router{
		actors:  make(map[string]*actor),
		players: players,
		rooms:   rooms,
		timers:  timers,
		scores:  score.NewEngine(),
		sender:  sender,
	}
	r.relay = drawing.NewRelay(func(code string, after time.Duration) {
		time.AfterFunc(after, func() {
			r.postToRoom(code, func() { r.flushDrawingBatch(code) })
		})
	})
	return r
}

// postToRoom enqueues fn on roomCode's actor, lazily starting the actor's
// goroutine on first use. Enqueue order is preserved, which is what gives
// §5's "broadcasts emitted by processing one inbound event are delivered
// in emission order" its implementation.
func (r *Router) postToRoom(code string, fn task) {
	r.mu.Lock()
	a, ok := r.actors[code]
	if !ok {
		a = &actor{inbox: make(chan task, 256)}
		r.actors[code] = a
		go r.runActor(a)
	}
	r.mu.Unlock()
	a.inbox <- fn
}

func (r *Router) runActor(a *actor) {
	for fn := range a.inbox {
		r.safeRun(fn)
	}
}

// safeRun recovers a panicking task so one room's bad state can never take
// down the process (spec.md §7: "the system never panics the process for
// a single room").
func (r *Router) safeRun(fn task) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("router: recovered panic in room actor: %v", rec)
		}
	}()
	fn()
}

// stopActor tears down a room's actor. Idempotent: stopping an actor that
// was already stopped, or never started, is a no-op.
func (r *Router) stopActor(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.actors[code]
	if !ok {
		return
	}
	delete(r.actors, code)
	close(a.inbox)
}

// cleanupRoom discards every piece of cross-engine state keyed by a room
// that is going away, then stops its actor.
func (r *Router) cleanupRoom(code string) {
	r.timers.StopTimer(code)
	r.relay.ResetRoom(code)
	r.scores.ResetRoom(code)
	r.stopActor(code)
}

// Shutdown cancels every pending timer — called from cmd/server on
// SIGTERM/SIGINT before the transport listener closes.
func (r *Router) Shutdown() {
	r.timers.StopAll()
}
