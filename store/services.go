package store

import (
	"context"

	"pawcare-backend/models"
)

func (s *GormStore) CreateService(ctx context.Context, svc *models.Service) (uint, error) {
	if err := s.db.WithContext(ctx).Create(svc).Error; err != nil {
		return 0, translate(err)
	}
	return svc.ID, nil
}

func (s *GormStore) GetAllServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := s.db.WithContext(ctx).Order("id ASC").Find(&services).Error
	return services, err
}

func (s *GormStore) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	return first[models.Service](ctx, s.db, "id = ?", id)
}

func (s *GormStore) UpdateService(ctx context.Context, id uint, in models.ServiceUpdate) (bool, error) {
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.DurationMinutes != nil {
		updates["duration_minutes"] = *in.DurationMinutes
	}
	if len(updates) == 0 {
		return false, nil
	}

	res := s.db.WithContext(ctx).Model(&models.Service{}).Where("id = ?", id).Updates(updates)
	return applied(ctx, res, &models.Service{}, "id = ?", id)
}

func (s *GormStore) CountServices(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Service{}).Count(&n).Error
	return n, err
}
