package models

// Principal is the authenticated identity decoded from a verified token.
// It is derived state, never persisted, and is the unit of every
// authorization decision.
type Principal struct {
	ID   uint64
	Role Role
}
