package logging

import "time"

// #region action-entry
// ActionEntry is a single row in the action_log table: one executed action
// with enough context to audit a session after the fact.
type ActionEntry struct {
	SessionID     string
	Seq           int
	Action        string
	CloudID       string
	TargetCloudID string
	Field         string
	Success       bool
	Message       string
	RNGCalls      int
	CreatedAt     time.Time
}

// #endregion action-entry
