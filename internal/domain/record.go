package domain

// Record pairs a store key with its entry, preserving mapping order.
type Record struct {
	Key   string
	Entry TimeEntry
}
