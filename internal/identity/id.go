// Package identity mints the two kinds of opaque identifiers the rest of
// the system treats as unique by construction: player ids and room codes.
// Room codes use crypto/rand with an unbiased index pick, the same
// approach the word package uses for option sampling, rather than a biased
// shuffle-via-comparator.
package identity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"

	"github.com/Prince5723/scribble-backend/internal/apperr"
)

const (
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeLength   = 6
	maxCodeAttempts  = 100
)

// NewPlayerID mints a globally unique opaque player identifier.
func NewPlayerID() string {
	return uuid.NewString()
}

// NewRoomCode mints a 6-character uppercase-alphanumeric room code, retrying
// on collision (as reported by exists) up to maxCodeAttempts times before
// returning an apperr.IDExhausted error.
func NewRoomCode(exists func(code string) bool) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := randomCode()
		if err != nil {
			return "", fmt.Errorf("identity: generate room code: %w", err)
		}
		if !exists(code) {
			return code, nil
		}
	}
	return "", apperr.New(apperr.IDExhausted)
}

func randomCode() (string, error) {
	var sb strings.Builder
	sb.Grow(roomCodeLength)
	alphabetSize := big.NewInt(int64(len(roomCodeAlphabet)))
	for i := 0; i < roomCodeLength; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		sb.WriteByte(roomCodeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}
