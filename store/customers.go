package store

import (
	"context"

	"pawcare-backend/models"
)

func (s *GormStore) CreateCustomer(ctx context.Context, name, email, phone string) (uint, error) {
	c := models.Customer{Name: name, Email: email, Phone: phone}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return 0, translate(err)
	}
	return c.ID, nil
}

func (s *GormStore) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return first[models.Customer](ctx, s.db, "email = ?", email)
}

func (s *GormStore) GetCustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	return first[models.Customer](ctx, s.db, "id = ?", id)
}

// UpdateCustomer applies the non-nil fields of in. It reports false when
// there was nothing to apply or no customer has that id.
func (s *GormStore) UpdateCustomer(ctx context.Context, id uint, in models.CustomerUpdate) (bool, error) {
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.ProfilePicture != nil {
		updates["profile_picture"] = *in.ProfilePicture
	}
	if len(updates) == 0 {
		return false, nil
	}

	res := s.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Updates(updates)
	return applied(ctx, res, &models.Customer{}, "id = ?", id)
}

// GetAllCustomers lists customers newest first, each with its portal account
// email when one exists.
func (s *GormStore) GetAllCustomers(ctx context.Context) ([]models.CustomerWithAccount, error) {
	var rows []models.CustomerWithAccount
	err := s.db.WithContext(ctx).
		Table("customers").
		Select("customers.*, users.email AS user_email").
		Joins("LEFT JOIN users ON users.customer_id = customers.id").
		Order("customers.created_at DESC, customers.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Registered = rows[i].UserEmail != nil
	}
	return rows, nil
}
