package session

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	s, err := NewGormStore(db)
	require.NoError(t, err)
	return s
}

func TestStores(t *testing.T) {
	impls := map[string]func(t *testing.T, clk *clock) Store{
		"memory": func(t *testing.T, clk *clock) Store {
			s := NewMemoryStore()
			s.now = clk.now
			return s
		},
		"gorm": func(t *testing.T, clk *clock) Store {
			s := newTestGormStore(t)
			s.now = clk.now
			return s
		},
	}

	for name, build := range impls {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			clk := &clock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
			s := build(t, clk)

			got, err := s.Get(ctx, "missing")
			require.NoError(t, err)
			assert.Nil(t, got)

			data := Data{AdminAuthenticated: true, AdminUsername: "admin"}
			require.NoError(t, s.Set(ctx, "tok", data, time.Hour))

			got, err = s.Get(ctx, "tok")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, data, *got)

			// overwrite keeps a single session under the token
			data.CustomerAuthenticated = true
			data.CustomerID = 7
			require.NoError(t, s.Set(ctx, "tok", data, time.Hour))
			got, err = s.Get(ctx, "tok")
			require.NoError(t, err)
			assert.Equal(t, uint(7), got.CustomerID)

			require.NoError(t, s.Set(ctx, "short", Data{CustomerAuthenticated: true}, time.Minute))
			clk.t = clk.t.Add(2 * time.Minute)

			got, err = s.Get(ctx, "short")
			require.NoError(t, err)
			assert.Nil(t, got, "expired session must not load")

			n, err := s.DeleteExpired(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)

			require.NoError(t, s.Destroy(ctx, "tok"))
			got, err = s.Get(ctx, "tok")
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}
