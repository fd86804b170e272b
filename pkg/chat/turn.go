// Package chat holds the conversation model and the session that drives it.
package chat

// Role is the sender of a turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleModel
}

// Turn is one message unit in the conversation.
type Turn struct {
	Role Role
	Text string
}

// UserTurn builds a user turn.
func UserTurn(text string) Turn { return Turn{Role: RoleUser, Text: text} }

// ModelTurn builds a model turn.
func ModelTurn(text string) Turn { return Turn{Role: RoleModel, Text: text} }

// Transcript is an append-only, ordered list of turns.
type Transcript struct {
	turns []Turn
}

// NewTranscript returns a transcript seeded with turns.
func NewTranscript(turns ...Turn) *Transcript {
	t := &Transcript{}
	t.turns = append(t.turns, turns...)
	return t
}

// Append adds a turn at the end.
func (t *Transcript) Append(turn Turn) {
	t.turns = append(t.turns, turn)
}

// Turns returns a copy of the turns in order.
func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of turns.
func (t *Transcript) Len() int {
	return len(t.turns)
}
