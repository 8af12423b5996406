package repositories

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/models"
)

// ErrContextNotFound is returned when no context exists for a session id.
var ErrContextNotFound = errors.New("session context not found")

// ContextStore persists widget session contexts. Backed by Postgres by
// default, Redis when SESSION_STORE=redis.
type ContextStore interface {
	Save(ctx context.Context, sessionID string, payload []byte) error
	Get(ctx context.Context, sessionID string) ([]byte, error)
}

type contextRepo struct {
	db *gorm.DB
}

func NewContextRepo(db *gorm.DB) ContextStore {
	return &contextRepo{db: db}
}

func (r *contextRepo) Save(ctx context.Context, sessionID string, payload []byte) error {
	record := models.SessionContext{
		SessionID: sessionID,
		Payload:   datatypes.JSON(payload),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&record).Error
}

func (r *contextRepo) Get(ctx context.Context, sessionID string) ([]byte, error) {
	var record models.SessionContext
	err := r.db.WithContext(ctx).First(&record, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContextNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(record.Payload), nil
}
