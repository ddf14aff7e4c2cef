package game

// PlayerAction is the outcome of handling one input event.
type PlayerAction int

const (
	// DidntTakeTurn means the input consumed no game time (bumped a wall, unknown key).
	DidntTakeTurn PlayerAction = iota
	// TookTurn means the player acted; the world advances one tick.
	TookTurn
	// Exit ends the game loop.
	Exit
)

// String returns a human-readable action name.
func (a PlayerAction) String() string {
	switch a {
	case DidntTakeTurn:
		return "didnt_take_turn"
	case TookTurn:
		return "took_turn"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}
