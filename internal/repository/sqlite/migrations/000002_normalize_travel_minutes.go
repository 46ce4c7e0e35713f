package migrations

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"ponto/internal/logging"
	"ponto/internal/store"
)

func init() {
	RegisterGoMigration(2, Up_000002_normalize_travel_minutes, Down_000002_normalize_travel_minutes)
}

// Up_000002_normalize_travel_minutes rewrites every slot so that "viagem" is
// stored as a number. Older imported records kept it as a string.
// Slots that do not hold a timesheet mapping are left untouched.
func Up_000002_normalize_travel_minutes(tx *sql.Tx) error {
	type slot struct {
		name  string
		value string
	}
	var slots []slot

	rows, err := tx.Query("SELECT slot, value FROM kv_slots")
	if err != nil {
		return fmt.Errorf("failed to query slots: %w", err)
	}
	for rows.Next() {
		var s slot
		if err := rows.Scan(&s.name, &s.value); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan slot: %w", err)
		}
		slots = append(slots, s)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("error iterating slots: %w", err)
	}
	rows.Close()

	stmt, err := tx.Prepare("UPDATE kv_slots SET value = ? WHERE slot = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare slot update statement: %w", err)
	}
	defer stmt.Close()

	updated := 0
	for _, s := range slots {
		entries := store.NewEntries()
		if err := json.Unmarshal([]byte(s.value), entries); err != nil {
			logging.Debugf("slot %q skipped: %v", s.name, err)
			continue
		}

		normalized, err := json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to encode slot %q: %w", s.name, err)
		}
		if string(normalized) == s.value {
			continue
		}

		if _, err := stmt.Exec(string(normalized), s.name); err != nil {
			return fmt.Errorf("failed to update slot %q: %w", s.name, err)
		}
		updated++
	}

	logging.Debugf("normalized %d of %d slots", updated, len(slots))
	return nil
}

// Down_000002_normalize_travel_minutes is a no-op: numeric travel minutes are
// read back correctly by every version.
func Down_000002_normalize_travel_minutes(tx *sql.Tx) error {
	return nil
}
