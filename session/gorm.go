package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pawcare-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps sessions in the sessions table of the application database,
// so they are shared between instances and survive restarts.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormStore creates the sessions table when it is missing.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.SessionRecord{}); err != nil {
		return nil, fmt.Errorf("migrate sessions: %w", err)
	}
	return &GormStore{db: db, now: time.Now}, nil
}

func (s *GormStore) Get(ctx context.Context, token string) (*Data, error) {
	var rec models.SessionRecord
	err := s.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, s.now()).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var data Data
	if err := json.Unmarshal([]byte(rec.Data), &data); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &data, nil
}

func (s *GormStore) Set(ctx context.Context, token string, data Data, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	rec := models.SessionRecord{
		Token:     token,
		Data:      string(raw),
		ExpiresAt: s.now().Add(ttl),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "expires_at"}),
		}).
		Create(&rec).Error
}

func (s *GormStore) Destroy(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Where("token = ?", token).Delete(&models.SessionRecord{}).Error
}

func (s *GormStore) DeleteExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Where("expires_at <= ?", s.now()).Delete(&models.SessionRecord{})
	return res.RowsAffected, res.Error
}
