package store

import (
	"context"
	"fmt"

	"pawcare-backend/logger"
	"pawcare-backend/models"
	"pawcare-backend/utils"
)

// Seed is the reference data written into an empty database.
type Seed struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string // plaintext, hashed here before it is stored
	Services      []models.Service
}

type InitResult struct {
	AdminCreated   bool
	ServicesSeeded int
}

// Init creates missing tables and seeds the default services and admin.
// Running it against an initialised database changes nothing.
func (s *GormStore) Init(ctx context.Context, seed Seed) (InitResult, error) {
	var res InitResult

	err := s.db.WithContext(ctx).AutoMigrate(
		&models.Customer{},
		&models.Pet{},
		&models.Service{},
		&models.Booking{},
		&models.User{},
		&models.Admin{},
		&models.Feedback{},
		&models.NotificationLog{},
	)
	if err != nil {
		return res, fmt.Errorf("migrate schema: %w", err)
	}

	services, err := s.CountServices(ctx)
	if err != nil {
		return res, err
	}
	if services == 0 {
		for _, svc := range seed.Services {
			svc := svc
			if _, err := s.CreateService(ctx, &svc); err != nil {
				return res, fmt.Errorf("seed service %q: %w", svc.Name, err)
			}
			res.ServicesSeeded++
		}
		s.log.Info("services initialized", logger.Fields{"count": res.ServicesSeeded})
	}

	admins, err := s.CountAdmins(ctx)
	if err != nil {
		return res, err
	}
	if admins == 0 {
		hash, err := utils.HashPassword(seed.AdminPassword)
		if err != nil {
			return res, fmt.Errorf("hash default admin password: %w", err)
		}
		if _, err := s.CreateAdmin(ctx, &models.Admin{
			Username:     seed.AdminUsername,
			Email:        seed.AdminEmail,
			PasswordHash: hash,
		}); err != nil {
			return res, fmt.Errorf("seed admin: %w", err)
		}
		res.AdminCreated = true
		s.log.Info("default admin account initialized", logger.Fields{"username": seed.AdminUsername})
	}

	return res, nil
}
