package store

import (
	"context"

	"pawcare-backend/models"
)

func (s *GormStore) CreatePet(ctx context.Context, pet *models.Pet) (uint, error) {
	if err := s.db.WithContext(ctx).Create(pet).Error; err != nil {
		return 0, translate(err)
	}
	return pet.ID, nil
}

func (s *GormStore) GetPetsByCustomer(ctx context.Context, customerID uint) ([]models.Pet, error) {
	var pets []models.Pet
	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&pets).Error
	return pets, err
}
