// Package timersvc implements the Timer Service: a per-room single-slot
// countdown with tick and expiry callbacks (spec.md §4.5). At most one
// timer is ever active per room; starting a new one implicitly cancels
// whatever was running.
package timersvc

import (
	"sync"
	"time"

	"github.com/Prince5723/scribble-backend/logger"
)

// Kind distinguishes the two timer purposes named in the spec, plus the
// inter-round pause the Event Router registers here so it can be
// cancelled like any other timer (spec.md §9).
type Kind string

const (
	KindWordSelection Kind = "word_selection"
	KindDrawing       Kind = "drawing"
	KindInterRound    Kind = "interround"
)

// WordSelectionDuration is the fixed 15s countdown for picking a word.
const WordSelectionDuration = 15 * time.Second

// Ticker abstracts a real time.Ticker so tests can inject a fake clock.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory mints Tickers. The production factory wraps time.NewTicker;
// grounded on rakaoran-GuessTheObject's NewTickerGen/ticker seam.
type TickerFactory interface {
	NewTicker(d time.Duration) Ticker
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// RealTickerFactory is the production TickerFactory.
type RealTickerFactory struct{}

func (RealTickerFactory) NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

type activeTimer struct {
	done chan struct{}
	once sync.Once
}

func (a *activeTimer) cancel() {
	a.once.Do(func() { close(a.done) })
}

// Service is the process-wide Timer Service.
type Service struct {
	mu      sync.Mutex
	timers  map[string]*activeTimer
	tickers TickerFactory
}

// NewService constructs a Timer Service backed by real wall-clock tickers.
func NewService() *Service {
	return &Service{
		timers:  make(map[string]*activeTimer),
		tickers: RealTickerFactory{},
	}
}

// NewServiceWithTickerFactory is used by tests to inject a fake clock.
func NewServiceWithTickerFactory(f TickerFactory) *Service {
	return &Service{
		timers:  make(map[string]*activeTimer),
		tickers: f,
	}
}

// StartTimer cancels any prior timer for roomCode, then starts a new one
// that calls onTick(remainingSeconds) once per elapsed second
// (remaining strictly decreasing) and exactly one onExpiry() at
// durationSeconds after start. Both callbacks run on the Service's internal
// goroutine for this room's timer — callers that need to stay on a room's
// own actor goroutine must have onTick/onExpiry post back into that room's
// inbox rather than touching room state directly.
func (s *Service) StartTimer(roomCode string, kind Kind, duration time.Duration, onTick func(remaining int), onExpiry func()) {
	s.mu.Lock()
	if prior, ok := s.timers[roomCode]; ok {
		prior.cancel()
	}
	at := &activeTimer{done: make(chan struct{})}
	s.timers[roomCode] = at
	s.mu.Unlock()

	totalSeconds := int(duration / time.Second)
	if totalSeconds < 1 {
		totalSeconds = 1
	}

	go s.run(roomCode, kind, at, totalSeconds, onTick, onExpiry)
}

func (s *Service) run(roomCode string, kind Kind, at *activeTimer, totalSeconds int, onTick func(int), onExpiry func()) {
	ticker := s.tickers.NewTicker(time.Second)
	defer ticker.Stop()

	elapsed := 0
	for {
		select {
		case <-at.done:
			return
		case <-ticker.C():
			elapsed++
			select {
			case <-at.done:
				return
			default:
			}
			if elapsed >= totalSeconds {
				s.safeCall(roomCode, kind, "expiry", func() { onExpiry() })
				s.clearIfCurrent(roomCode, at)
				return
			}
			remaining := totalSeconds - elapsed
			s.safeCall(roomCode, kind, "tick", func() { onTick(remaining) })
		}
	}
}

func (s *Service) clearIfCurrent(roomCode string, at *activeTimer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.timers[roomCode]; ok && cur == at {
		delete(s.timers, roomCode)
	}
}

func (s *Service) safeCall(roomCode string, kind Kind, phase string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("timersvc: recovered panic room=%s kind=%s phase=%s panic=%v", roomCode, kind, phase, r)
		}
	}()
	fn()
}

// StopTimer cancels any pending ticks and expiry for roomCode. Idempotent:
// calling it twice, or calling it when no timer is running, is a no-op.
// Cancellation is eventual — no callback fires after the room's timer
// goroutine observes the close, which happens promptly since every select
// checks done first.
func (s *Service) StopTimer(roomCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if at, ok := s.timers[roomCode]; ok {
		at.cancel()
		delete(s.timers, roomCode)
	}
}

// StopAll cancels every active timer — used on process shutdown.
func (s *Service) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for code, at := range s.timers {
		at.cancel()
		delete(s.timers, code)
	}
}
