package sqlite

import "time"

// Slot is one row of kv_slots: a named, whole-value string.
type Slot struct {
	Name      string
	Value     string
	UpdatedAt time.Time
}
