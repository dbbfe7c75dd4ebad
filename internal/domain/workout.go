package domain

// Workout is a suggested training protocol.
type Workout struct {
	Identity
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
