package services

import "errors"

// Setup-time failures surfaced to HTTP callers. In-game socket actions that
// fail validation are dropped silently instead; only valid moves are ever
// broadcast.
var (
	// ErrInvalidInput marks a malformed or out-of-range payload.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks an unknown game code or id.
	ErrNotFound = errors.New("game not found")
	// ErrConflict marks a request that contradicts current game state,
	// such as joining a full game or joining one's own game.
	ErrConflict = errors.New("conflict")
)
