// Package session defines the recorded-session format that replays are
// checked against, and its SQLite persistence.
package session

import (
	"time"

	"github.com/jpritikin/urbb-web-sub002/internal/conference"
	"github.com/jpritikin/urbb-web-sub002/internal/orchestrator"
)

// #region recorded-types

// ActionAdvanceIntervals is the pseudo-action id used to record time
// advancement between therapist actions, so a replay consumes the RNG in
// the same places the live run did.
const ActionAdvanceIntervals = "advance_intervals"

// RNGCounts carries the RNG call counts around one recorded step.
type RNGCounts struct {
	Model int `json:"model"`
}

// RecordedAction is one step of a recorded session, tagged with the RNG
// call count before and after execution and a post-action snapshot.
type RecordedAction struct {
	Action        string                     `json:"action"`
	CloudID       string                     `json:"cloudId,omitempty"`
	TargetCloudID string                     `json:"targetCloudId,omitempty"`
	Field         string                     `json:"field,omitempty"`
	Count         int                        `json:"count,omitempty"` // interval count for advance_intervals
	RNGBefore     RNGCounts                  `json:"rngBefore"`
	RNGAfter      RNGCounts                  `json:"rngAfter"`
	ModelState    conference.SerializedModel `json:"modelState"`
	Timers        orchestrator.State         `json:"timers"`
}

// Recording is a full recorded session.
type Recording struct {
	Version      int                         `json:"version"`
	CodeVersion  string                      `json:"codeVersion"`
	Platform     string                      `json:"platform"`
	ModelSeed    int64                       `json:"modelSeed"`
	Timestamp    time.Time                   `json:"timestamp"`
	InitialModel conference.SerializedModel  `json:"initialModel"`
	Actions      []RecordedAction            `json:"actions"`
	FinalModel   *conference.SerializedModel `json:"finalModel,omitempty"`
}

// FormatVersion is the current recording format version.
const FormatVersion = 1

// #endregion recorded-types
