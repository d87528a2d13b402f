package models

// Building is a dormitory building. Static reference data, never mutated.
type Building struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
