package store

import (
	"context"
	"time"

	"pawcare-backend/models"
)

func (s *GormStore) CreateNotificationLog(ctx context.Context, entry *models.NotificationLog) error {
	if entry.SentAt.IsZero() {
		entry.SentAt = time.Now()
	}
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *GormStore) GetNotificationLogs(ctx context.Context, limit int) ([]models.NotificationLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var rows []models.NotificationLog
	err := s.db.WithContext(ctx).Order("sent_at DESC, id DESC").Limit(limit).Find(&rows).Error
	return rows, err
}
