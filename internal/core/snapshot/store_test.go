package snapshot

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/chatbot"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "snapshots.db"), 30)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	snap := Snapshot{
		ContactInfo:       chatbot.ContactInfo{Name: "Jane Doe", Email: "jane@ex.com"},
		ServicesDiscussed: []string{"AI Automation"},
		PainPoints:        []string{"Manual processes"},
		ConversationStage: chatbot.StageClosing,
		LastVisit:         time.Now().UTC().Truncate(time.Second),
		VisitCount:        2,
	}
	require.NoError(t, s.Save("session-1", snap))

	got, err := s.Load("session-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap.ContactInfo, got.ContactInfo)
	assert.Equal(t, snap.ServicesDiscussed, got.ServicesDiscussed)
	assert.Equal(t, 2, got.VisitCount)
}

func TestLoadMissingReturnsNil(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Load("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("k", Snapshot{VisitCount: 1}))
	require.NoError(t, s.Save("k", Snapshot{VisitCount: 2}))

	got, err := s.Load("k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.VisitCount)
}

func TestRetentionPurgesOldRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")

	s, err := NewStore(path, 7)
	require.NoError(t, err)
	require.NoError(t, s.Save("old", Snapshot{VisitCount: 1}))

	// age the row past the window directly
	_, err = s.db.Exec(`UPDATE chat_snapshots SET updated_at = ?`,
		time.Now().UTC().Add(-8*24*time.Hour))
	require.NoError(t, err)
	s.Close()

	s, err = NewStore(path, 7)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load("old")
	require.NoError(t, err)
	assert.Nil(t, got, "rows older than the retention window are dropped")
}
