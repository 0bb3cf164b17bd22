package store

import (
	"context"

	"pawcare-backend/models"
)

func (s *GormStore) CreateAdmin(ctx context.Context, admin *models.Admin) (uint, error) {
	if err := s.db.WithContext(ctx).Create(admin).Error; err != nil {
		return 0, translate(err)
	}
	return admin.ID, nil
}

func (s *GormStore) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return first[models.Admin](ctx, s.db, "username = ?", username)
}

func (s *GormStore) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return first[models.Admin](ctx, s.db, "email = ?", email)
}

func (s *GormStore) GetAdminByID(ctx context.Context, id uint) (*models.Admin, error) {
	return first[models.Admin](ctx, s.db, "id = ?", id)
}

func (s *GormStore) UpdateAdmin(ctx context.Context, username string, in models.AdminUpdate) (bool, error) {
	updates := map[string]any{}
	if in.Username != nil {
		updates["username"] = *in.Username
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.ProfilePicture != nil {
		updates["profile_picture"] = *in.ProfilePicture
	}
	if len(updates) == 0 {
		return false, nil
	}

	res := s.db.WithContext(ctx).Model(&models.Admin{}).Where("username = ?", username).Updates(updates)
	key := username
	if in.Username != nil {
		key = *in.Username
	}
	return applied(ctx, res, &models.Admin{}, "username = ?", key)
}

func (s *GormStore) UpdateAdminPassword(ctx context.Context, username, passwordHash string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.Admin{}).Where("username = ?", username).Update("password_hash", passwordHash)
	return applied(ctx, res, &models.Admin{}, "username = ?", username)
}

func (s *GormStore) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Admin{}).Count(&n).Error
	return n, err
}
