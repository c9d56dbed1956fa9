package models

// RegistrySnapshot is the single record the session registry persists:
// every live session keyed by recipe ID, plus which one (if any) is in
// the foreground. Nothing else about the registry is durable.
type RegistrySnapshot struct {
	// Sessions maps a recipe ID to its cooking session
	Sessions map[string]*CookingSession `json:"sessions"`

	// ActiveSessionID is the recipe ID of the foreground session, or
	// empty when no session is in the foreground
	ActiveSessionID string `json:"activeSessionId,omitempty"`
}

// EmptySnapshot returns a snapshot with no sessions and no foreground
func EmptySnapshot() *RegistrySnapshot {
	return &RegistrySnapshot{
		Sessions: make(map[string]*CookingSession),
	}
}
