package repositories_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"modelboard_backend/internal/models"
)

// openTestDB connects to the Postgres instance named by TEST_DATABASE_URL
// and returns a migrated, empty database. Tests that need a real database
// are skipped when the variable is unset so the rest of the suite stays
// runnable anywhere.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database-backed tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err, "connect to test database")

	err = db.AutoMigrate(
		&models.ModelProfile{},
		&models.PhotographerProfile{},
		&models.Review{},
	)
	require.NoError(t, err, "migrate test database")

	truncateAll(t, db)
	t.Cleanup(func() { truncateAll(t, db) })

	return db
}

func truncateAll(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Exec("TRUNCATE TABLE model_reviews, models, photographers RESTART IDENTITY CASCADE").Error
	require.NoError(t, err, "truncate test tables")
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }
