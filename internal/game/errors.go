package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove rejects a move by the wrong player, in the wrong phase or
	// stage, or one the phase does not allow.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPayload rejects a move whose arguments are unusable: a card not
	// in hand, a duplicate selection, a bid out of range.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrUnsupportedPlayers is returned by Setup for player counts without a deck.
	ErrUnsupportedPlayers = errors.New("unsupported player count")
)

// MoveError describes a rejected move. It unwraps to ErrIllegalMove or
// ErrInvalidPayload.
type MoveError struct {
	Err      error
	Kind     MoveKind
	PlayerID int
	Reason   string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%v: %s by player %d: %s", e.Err, e.Kind, e.PlayerID, e.Reason)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

func illegal(kind MoveKind, player int, format string, args ...any) error {
	return &MoveError{Err: ErrIllegalMove, Kind: kind, PlayerID: player, Reason: fmt.Sprintf(format, args...)}
}

func invalid(kind MoveKind, player int, format string, args ...any) error {
	return &MoveError{Err: ErrInvalidPayload, Kind: kind, PlayerID: player, Reason: fmt.Sprintf(format, args...)}
}

// InvariantViolation is the panic value raised when the engine finds itself in
// a state its rules cannot produce. It is a programming fault, not a rejection.
type InvariantViolation struct {
	Reason string
}

func (v InvariantViolation) Error() string {
	return "invariant violation: " + v.Reason
}

func violate(format string, args ...any) {
	panic(InvariantViolation{Reason: fmt.Sprintf(format, args...)})
}
