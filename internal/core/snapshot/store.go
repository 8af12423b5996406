package snapshot

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/chatbot"
)

// Snapshot is the compact cross-visit copy of a session used to
// personalize a return visit.
type Snapshot struct {
	ContactInfo       chatbot.ContactInfo `json:"contact_info"`
	ServicesDiscussed []string            `json:"services_discussed"`
	PainPoints        []string            `json:"pain_points"`
	ConversationStage chatbot.Stage       `json:"conversation_stage"`
	LastVisit         time.Time           `json:"last_visit"`
	VisitCount        int                 `json:"visit_count"`
}

// Store persists snapshots to a local sqlite file. Everything here is
// best-effort: callers log and swallow errors, the chat never depends
// on a snapshot being readable.
type Store struct {
	db        *sql.DB
	retention time.Duration
}

// NewStore opens (and creates if needed) the snapshot database and
// purges rows older than the retention window.
func NewStore(path string, retentionDays int) (*Store, error) {
	if retentionDays <= 0 {
		retentionDays = 30
	}

	db, err := sql.Open("sqlite", "file:"+path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS chat_snapshots (
			session_key TEXT PRIMARY KEY,
			payload     TEXT NOT NULL,
			updated_at  TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}

	s := &Store{
		db:        db,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
	}
	_ = s.purgeExpired()
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts the snapshot for a session key.
func (s *Store) Save(key string, snap Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO chat_snapshots (session_key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(session_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, key, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load returns the snapshot for a key, or nil when none exists or the
// stored one fell outside the retention window.
func (s *Store) Load(key string) (*Snapshot, error) {
	_ = s.purgeExpired()

	var payload string
	err := s.db.QueryRow(`SELECT payload FROM chat_snapshots WHERE session_key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return &snap, nil
}

func (s *Store) purgeExpired() error {
	cutoff := time.Now().UTC().Add(-s.retention)
	_, err := s.db.Exec(`DELETE FROM chat_snapshots WHERE updated_at < ?`, cutoff)
	return err
}
