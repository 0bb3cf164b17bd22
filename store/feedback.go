package store

import (
	"context"

	"pawcare-backend/models"
)

func (s *GormStore) CreateFeedback(ctx context.Context, fb *models.Feedback) (uint, error) {
	if err := s.db.WithContext(ctx).Create(fb).Error; err != nil {
		return 0, translate(err)
	}
	return fb.ID, nil
}

func (s *GormStore) GetAllFeedback(ctx context.Context) ([]models.Feedback, error) {
	var rows []models.Feedback
	err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error
	return rows, err
}

// GetPublicFeedback returns the entries the customer allowed to be shown.
func (s *GormStore) GetPublicFeedback(ctx context.Context) ([]models.Feedback, error) {
	var rows []models.Feedback
	err := s.db.WithContext(ctx).
		Where("public = ?", true).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) GetFeedbackByID(ctx context.Context, id uint) (*models.Feedback, error) {
	return first[models.Feedback](ctx, s.db, "id = ?", id)
}
