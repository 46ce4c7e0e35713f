package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanSlot scans a single slot from a database row
func ScanSlot(scanner Scanner) (*Slot, error) {
	slot := &Slot{}
	var updatedAt string

	if err := scanner.Scan(&slot.Name, &slot.Value, &updatedAt); err != nil {
		return nil, err
	}

	t, err := ParseTimeFromDB(updatedAt)
	if err != nil {
		return nil, err
	}
	slot.UpdatedAt = t

	return slot, nil
}

// ScanSlots scans multiple slots from database rows
func ScanSlots(rows Rows) ([]*Slot, error) {
	var slots []*Slot
	for rows.Next() {
		slot, err := ScanSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}
