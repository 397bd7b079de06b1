// Package apperr defines the shared vocabulary of expected error kinds that
// flow out of the engines (spec.md §7). These are not exception types —
// every kind here is an anticipated outcome of adversarial or racy client
// input, surfaced to the originating client via room_error / room_settings_error
// / game_error and never propagated to other clients.
package apperr

import "errors"

// Kind identifies one of the fixed, spec-enumerated error outcomes.
type Kind string

const (
	InvalidPayload    Kind = "invalid_payload"
	NotFound          Kind = "not_found"
	AlreadyIn         Kind = "already_in"
	NotWaiting        Kind = "not_waiting"
	Full              Kind = "full"
	Duplicate         Kind = "duplicate"
	TooSmall          Kind = "too_small"
	NotOwner          Kind = "not_owner"
	TooFewPlayers     Kind = "too_few_players"
	WrongPhase        Kind = "wrong_phase"
	NotDrawer         Kind = "not_drawer"
	DrawerCannotGuess Kind = "drawer_cannot_guess"
	AlreadyGuessed    Kind = "already_guessed"
	InvalidName       Kind = "invalid_name"
	TooLong           Kind = "too_long"
	TooShort          Kind = "too_short"
	NoWord            Kind = "no_word"
	IDExhausted       Kind = "id_exhausted"
	UnknownPhase      Kind = "unknown_phase"
)

// Error is the concrete error type carrying a Kind. Engines never need
// richer error values than this — the kind alone is the entire contract
// the Event Router surfaces to clients.
type Error struct {
	Kind Kind
}

func (e *Error) Error() string { return string(e.Kind) }

// New constructs an *Error for the given kind.
func New(k Kind) error { return &Error{Kind: k} }

// Is reports whether err (or something it wraps) is an *Error of kind k.
func Is(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}

// KindOf extracts the Kind from err if it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
