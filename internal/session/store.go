package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jpritikin/urbb-web-sub002/internal/conference"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id    TEXT PRIMARY KEY,
	code_version  TEXT NOT NULL,
	platform      TEXT NOT NULL,
	model_seed    INTEGER NOT NULL,
	created_at    TEXT NOT NULL,
	initial_model TEXT NOT NULL,
	final_model   TEXT
);

CREATE TABLE IF NOT EXISTS session_actions (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id      TEXT NOT NULL,
	seq             INTEGER NOT NULL,
	action          TEXT NOT NULL,
	cloud_id        TEXT,
	target_cloud_id TEXT,
	field           TEXT,
	count           INTEGER NOT NULL DEFAULT 0,
	rng_before      INTEGER NOT NULL,
	rng_after       INTEGER NOT NULL,
	model_state     TEXT NOT NULL,
	timers          TEXT,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE INDEX IF NOT EXISTS idx_session_actions_session
ON session_actions(session_id, seq);

CREATE TABLE IF NOT EXISTS action_log (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id      TEXT NOT NULL,
	seq             INTEGER NOT NULL,
	action          TEXT NOT NULL,
	cloud_id        TEXT,
	target_cloud_id TEXT,
	field           TEXT,
	success         INTEGER NOT NULL,
	message         TEXT,
	rng_calls       INTEGER NOT NULL DEFAULT 0,
	created_at      TEXT NOT NULL
);
`

// #endregion schema

// #region store

// Store persists recorded sessions in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other tools.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store

// #region save

// SaveRecording writes a recording and all its steps atomically, returning
// the generated session id.
func (s *Store) SaveRecording(rec Recording) (string, error) {
	id := uuid.New().String()

	initJSON, err := json.Marshal(rec.InitialModel)
	if err != nil {
		return "", fmt.Errorf("marshal initial model: %w", err)
	}
	var finalPtr interface{}
	if rec.FinalModel != nil {
		finalJSON, err := json.Marshal(rec.FinalModel)
		if err != nil {
			return "", fmt.Errorf("marshal final model: %w", err)
		}
		finalPtr = string(finalJSON)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO sessions (session_id, code_version, platform, model_seed, created_at, initial_model, final_model)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, rec.CodeVersion, rec.Platform, rec.ModelSeed,
		rec.Timestamp.Format(time.RFC3339Nano), string(initJSON), finalPtr,
	)
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}

	for i, a := range rec.Actions {
		stateJSON, err := json.Marshal(a.ModelState)
		if err != nil {
			return "", fmt.Errorf("marshal step %d: %w", i, err)
		}
		timersJSON, err := json.Marshal(a.Timers)
		if err != nil {
			return "", fmt.Errorf("marshal step %d timers: %w", i, err)
		}
		_, err = tx.Exec(
			`INSERT INTO session_actions
			 (session_id, seq, action, cloud_id, target_cloud_id, field, count, rng_before, rng_after, model_state, timers)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, i, a.Action,
			nullIfEmpty(a.CloudID), nullIfEmpty(a.TargetCloudID), nullIfEmpty(a.Field),
			a.Count, a.RNGBefore.Model, a.RNGAfter.Model, string(stateJSON), string(timersJSON),
		)
		if err != nil {
			return "", fmt.Errorf("insert step %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// #endregion save

// #region load

// LoadRecording reads a full recording by session id.
func (s *Store) LoadRecording(id string) (Recording, error) {
	var rec Recording
	var createdStr, initJSON string
	var finalJSON sql.NullString

	err := s.db.QueryRow(
		`SELECT code_version, platform, model_seed, created_at, initial_model, final_model
		 FROM sessions WHERE session_id = ?`, id,
	).Scan(&rec.CodeVersion, &rec.Platform, &rec.ModelSeed, &createdStr, &initJSON, &finalJSON)
	if err != nil {
		return Recording{}, fmt.Errorf("get session %s: %w", id, err)
	}
	rec.Version = FormatVersion
	rec.Timestamp, _ = time.Parse(time.RFC3339Nano, createdStr)
	if err := json.Unmarshal([]byte(initJSON), &rec.InitialModel); err != nil {
		return Recording{}, fmt.Errorf("unmarshal initial model: %w", err)
	}
	if finalJSON.Valid {
		var final conference.SerializedModel
		if err := json.Unmarshal([]byte(finalJSON.String), &final); err != nil {
			return Recording{}, fmt.Errorf("unmarshal final model: %w", err)
		}
		rec.FinalModel = &final
	}

	rows, err := s.db.Query(
		`SELECT action, cloud_id, target_cloud_id, field, count, rng_before, rng_after, model_state, timers
		 FROM session_actions WHERE session_id = ? ORDER BY seq ASC`, id,
	)
	if err != nil {
		return Recording{}, fmt.Errorf("query steps: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a RecordedAction
		var cloudID, targetID, field sql.NullString
		var stateJSON string
		var timersJSON sql.NullString
		if err := rows.Scan(&a.Action, &cloudID, &targetID, &field, &a.Count,
			&a.RNGBefore.Model, &a.RNGAfter.Model, &stateJSON, &timersJSON); err != nil {
			return Recording{}, fmt.Errorf("scan step: %w", err)
		}
		a.CloudID = cloudID.String
		a.TargetCloudID = targetID.String
		a.Field = field.String
		if err := json.Unmarshal([]byte(stateJSON), &a.ModelState); err != nil {
			return Recording{}, fmt.Errorf("unmarshal step state: %w", err)
		}
		if timersJSON.Valid {
			if err := json.Unmarshal([]byte(timersJSON.String), &a.Timers); err != nil {
				return Recording{}, fmt.Errorf("unmarshal step timers: %w", err)
			}
		}
		rec.Actions = append(rec.Actions, a)
	}
	return rec, rows.Err()
}

// SessionInfo summarizes one stored session.
type SessionInfo struct {
	ID          string
	CodeVersion string
	ModelSeed   int64
	CreatedAt   time.Time
	ActionCount int
}

// ListSessions returns the most recent stored sessions.
func (s *Store) ListSessions(limit int) ([]SessionInfo, error) {
	rows, err := s.db.Query(
		`SELECT s.session_id, s.code_version, s.model_seed, s.created_at,
		        (SELECT COUNT(*) FROM session_actions a WHERE a.session_id = s.session_id)
		 FROM sessions s ORDER BY s.created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var infos []SessionInfo
	for rows.Next() {
		var info SessionInfo
		var createdStr string
		if err := rows.Scan(&info.ID, &info.CodeVersion, &info.ModelSeed, &createdStr, &info.ActionCount); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		info.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// #endregion load

// #region helpers

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
