package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"scibind/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache, err := NewRedisCache("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache, mr
}

func expectBinderLookup(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT \* FROM "binders" WHERE slug = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "owner_id", "event_id", "old"}).
			AddRow(1, "abc123", 3, 7, false))
	mock.ExpectQuery(`SELECT \* FROM "events" WHERE "events"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "material_type", "division"}).
			AddRow(7, "Anatomy", "binder", "c"))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(3, "alice", "alice@example.com"))
}

func TestBinderStoreFindBySlugPreloads(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	expectBinderLookup(mock)

	b, err := NewBinderStore(db).FindBySlug(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", b.Slug)
	assert.Equal(t, models.MaterialTypeBinder, b.Event.MaterialType)
	assert.Equal(t, "Anatomy Binder - alice", b.Label())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBinderStoreFindBySlugErrors(t *testing.T) {
	t.Run("unknown slug", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "binders" WHERE slug = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "slug"}))

		_, err := NewBinderStore(db).FindBySlug(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrBinderNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		boom := errors.New("connection reset")
		mock.ExpectQuery(`SELECT \* FROM "binders" WHERE slug = \$1`).WillReturnError(boom)

		_, err := NewBinderStore(db).FindBySlug(context.Background(), "abc123")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrBinderNotFound)
	})
}

func TestGetOrSet(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	calls := 0
	fetch := func() (string, error) {
		calls++
		return "fresh", nil
	}

	v, err := GetOrSet(cache, ctx, "k", 5*time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
	assert.True(t, mr.Exists("k"))
	assert.Equal(t, 5*time.Minute, mr.TTL("k"))

	v, err = GetOrSet(cache, ctx, "k", 5*time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
	assert.Equal(t, 1, calls)
}

func TestGetOrSetDoesNotCacheErrors(t *testing.T) {
	cache, mr := newTestCache(t)
	boom := errors.New("db down")

	_, err := GetOrSet(cache, context.Background(), "k", time.Minute, func() (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("k"))
}

func TestGetOrSetServesWhenRedisIsDown(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	v, err := GetOrSet(cache, context.Background(), "k", time.Minute, func() (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
}

func TestCachedBinderStoreHit(t *testing.T) {
	cache, _ := newTestCache(t)
	cached := &models.Binder{Slug: "abc123", Event: models.Event{Name: "Anatomy"}, Owner: models.User{Username: "alice"}}
	require.NoError(t, cache.Set(context.Background(), binderCacheKey("abc123"), cached, time.Minute))

	// a nil database would panic if the store were consulted
	store := NewCachedBinderStore(NewBinderStore(nil), cache, time.Minute)
	b, err := store.FindBySlug(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Anatomy Binder - alice", b.Label())
}

func TestCachedBinderStoreMissLoadsOnce(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	expectBinderLookup(mock)
	cache, mr := newTestCache(t)

	store := NewCachedBinderStore(NewBinderStore(db), cache, time.Minute)
	for i := 0; i < 2; i++ {
		b, err := store.FindBySlug(context.Background(), "abc123")
		require.NoError(t, err)
		assert.Equal(t, "Anatomy Binder - alice", b.Label())
	}

	assert.True(t, mr.Exists(binderCacheKey("abc123")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadEvents(t *testing.T) {
	events := []models.Event{
		{Name: "Anatomy", MaterialType: models.MaterialTypeCheatSheet, Division: models.DivisionC},
		{Name: "Forensics", MaterialType: models.MaterialTypeBinder, Division: models.DivisionB},
	}

	t.Run("inserts into empty table", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "events"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`INSERT INTO "events"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
		mock.ExpectCommit()

		require.NoError(t, LoadEvents(db, events))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refuses when events exist", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "events"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectRollback()

		assert.ErrorIs(t, LoadEvents(db, events), ErrEventsAlreadyLoaded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count failure rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "events"`).WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		assert.ErrorIs(t, LoadEvents(db, events), sql.ErrConnDone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
