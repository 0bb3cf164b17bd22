package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"pawcare-backend/config"
	"pawcare-backend/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormStore implements Store on any GORM dialector.
type GormStore struct {
	db  *gorm.DB
	log logger.Logger
}

var _ Store = (*GormStore)(nil)

// Open connects to the configured engine. The engine is fixed for the life of
// the returned store.
func Open(cfg config.DatabaseConfig, log logger.Logger) (*GormStore, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == config.DriverSQLite {
		// a single connection serialises writers and keeps :memory: databases alive
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	log.Info("database connected", logger.Fields{"driver": cfg.Driver})
	return New(db, log), nil
}

func New(db *gorm.DB, log logger.Logger) *GormStore {
	return &GormStore{db: db, log: log}
}

// DB exposes the handle so other persistence (the session store) can share the pool.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newGormLogger() gormlogger.Interface {
	return gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx, log: s.log})
	})
}

// first loads the first row matching query, or nil when there is none.
func first[T any](ctx context.Context, db *gorm.DB, query any, args ...any) (*T, error) {
	var out T
	err := db.WithContext(ctx).Where(query, args...).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// applied reports whether an UPDATE touched an existing row. MySQL reports zero
// affected rows when the new values equal the old ones, so a zero count is
// confirmed against the table before it is taken as "no such row".
func applied(ctx context.Context, res *gorm.DB, model any, query any, args ...any) (bool, error) {
	if res.Error != nil {
		return false, translate(res.Error)
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	var n int64
	if err := res.Session(&gorm.Session{NewDB: true}).WithContext(ctx).Model(model).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key")
}
