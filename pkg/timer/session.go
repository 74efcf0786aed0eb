package timer

import (
	"encoding/json"
	"time"

	"podo/pkg/storage"
	"podo/pkg/utils"
)

// StorageKey is the logical key the session history is stored under.
const StorageKey = "pomodoro-sessions"

// Session records one naturally completed countdown. Aborted or reset
// countdowns never produce a record.
type Session struct {
	ID          string    `json:"id"`
	Type        Mode      `json:"type"`
	Duration    int       `json:"duration"` // configured length in seconds
	CompletedAt time.Time `json:"completedAt"`
	TaskID      string    `json:"taskId,omitempty"`
}

// Log is the append-only session history.
type Log struct {
	storage  storage.Store
	sessions []Session
}

// NewLog loads the session history from storage.
func NewLog(st storage.Store) (*Log, error) {
	l := &Log{storage: st}

	data, ok, err := st.Read(StorageKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(data, &l.sessions); err != nil {
			return nil, err
		}
	}

	utils.Log("Loaded %d sessions from storage", len(l.sessions))

	return l, nil
}

// Append records a completed session.
func (l *Log) Append(s Session) error {
	next := append(append([]Session{}, l.sessions...), s)

	data, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := l.storage.Write(StorageKey, data); err != nil {
		return err
	}

	l.sessions = next
	return nil
}

// All returns the full session history, oldest first.
func (l *Log) All() []Session {
	return append([]Session{}, l.sessions...)
}
