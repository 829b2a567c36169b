package game

import "fmt"

// InvalidMoveError reports a move that is not a member of the legal move
// set. It signals a programmer error in the caller and is never silently
// corrected.
type InvalidMoveError struct {
	Move Move
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move: %s is not in the legal move set", e.Move)
}

// TerminalStateError reports a search request on a board where the active
// player has no legal moves, normally because the game is already decided.
// Callers should consult IsTerminal before asking for a move.
type TerminalStateError struct {
	Winner Player
	Won    bool
}

func (e *TerminalStateError) Error() string {
	if e.Won {
		return fmt.Sprintf("terminal state: %s has already won", e.Winner)
	}
	return "terminal state: no legal moves for the active player"
}
