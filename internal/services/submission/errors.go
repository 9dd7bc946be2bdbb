package submission

import "errors"

// Define errors
var (
	ErrSessionNotFound    = errors.New("reconciliation session not found")
	ErrSessionExpired     = errors.New("reconciliation session expired")
	ErrInvalidState       = errors.New("operation not valid in current session state")
	ErrNotEnoughPlayers   = errors.New("could not read enough player names from the screenshot")
	ErrNoResolvedPlayers  = errors.New("at least one registered player is required to confirm")
	ErrInvalidPlayerIndex = errors.New("player index out of range")
	ErrUnknownField       = errors.New("unknown field")
	ErrInvalidFieldInput  = errors.New("invalid field input")
)
