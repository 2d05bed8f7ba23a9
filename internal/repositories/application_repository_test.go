package repositories

import (
	"testing"

	"sahyogjeevan/database"
	"sahyogjeevan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestApplicationCreate(t *testing.T) {
	db := newRepoDB(t)
	repo := NewApplicationRepository(db)

	app := &models.Application{JobID: 1, WorkerID: 2}
	require.NoError(t, repo.Create(app))
	assert.NotZero(t, app.ID)
}

// The duplicate check rides entirely on the (job_id, worker_id) unique
// index, so two applies for the same pair collapse to one row no matter
// how they interleave.
func TestApplicationCreate_DuplicateMapped(t *testing.T) {
	db := newRepoDB(t)
	repo := NewApplicationRepository(db)

	require.NoError(t, repo.Create(&models.Application{JobID: 1, WorkerID: 2}))

	err := repo.Create(&models.Application{JobID: 1, WorkerID: 2})
	assert.ErrorIs(t, err, ErrDuplicateApplication)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplicationCreate_DifferentWorkersAllowed(t *testing.T) {
	db := newRepoDB(t)
	repo := NewApplicationRepository(db)

	require.NoError(t, repo.Create(&models.Application{JobID: 1, WorkerID: 2}))
	require.NoError(t, repo.Create(&models.Application{JobID: 1, WorkerID: 3}))
	require.NoError(t, repo.Create(&models.Application{JobID: 2, WorkerID: 2}))
}
