// Package logging writes the per-action audit trail. Every action a server
// session executes lands in the action_log table, whether or not the session
// is ever saved as a full recording.
package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-action
// LogAction writes one audit entry to the action_log table.
func LogAction(db *sql.DB, entry ActionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO action_log (session_id, seq, action, cloud_id, target_cloud_id, field, success, message, rng_calls, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.Seq,
		entry.Action,
		nullIfEmpty(entry.CloudID),
		nullIfEmpty(entry.TargetCloudID),
		nullIfEmpty(entry.Field),
		entry.Success,
		nullIfEmpty(entry.Message),
		entry.RNGCalls,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log action: %w", err)
	}
	return nil
}

// #endregion log-action

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
