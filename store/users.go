package store

import (
	"context"

	"pawcare-backend/models"
)

func (s *GormStore) CreateUser(ctx context.Context, customerID uint, email, passwordHash string) (uint, error) {
	u := models.User{CustomerID: customerID, Email: email, PasswordHash: passwordHash}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return 0, translate(err)
	}
	return u.ID, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return first[models.User](ctx, s.db, "email = ?", email)
}

func (s *GormStore) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return first[models.User](ctx, s.db, "id = ?", id)
}

func (s *GormStore) GetUserByCustomerID(ctx context.Context, customerID uint) (*models.User, error) {
	return first[models.User](ctx, s.db, "customer_id = ?", customerID)
}

func (s *GormStore) UpdateUserPassword(ctx context.Context, id uint, passwordHash string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password_hash", passwordHash)
	return applied(ctx, res, &models.User{}, "id = ?", id)
}

// UpdateUserEmail keeps the login email in step with the customer record.
func (s *GormStore) UpdateUserEmail(ctx context.Context, customerID uint, email string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("customer_id = ?", customerID).Update("email", email)
	return applied(ctx, res, &models.User{}, "customer_id = ?", customerID)
}
