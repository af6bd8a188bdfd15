package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/telconnect/telecom-network/internal/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestJWTSecret signs tokens in every test that needs an authenticated call.
const TestJWTSecret = "test-secret-key"

// TestDatabase holds the in-memory SQLite connection used by integration
// tests. The real models run on SQLite directly; uuid.UUID values are
// stored as text through their Valuer/Scanner implementations.
type TestDatabase struct {
	DB *gorm.DB
}

// SetupTestDatabase creates an isolated in-memory SQLite database and runs
// the real migrations against it.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()

	// Unique DSN per setup so suites never share tables
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return &TestDatabase{DB: db}
}

// Teardown closes the test database connection.
func (td *TestDatabase) Teardown(t *testing.T) {
	t.Helper()

	sqlDB, err := td.DB.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close database: %v", err)
	}
}

// CleanDatabase deletes all records from every table for test isolation.
func CleanDatabase(t *testing.T, db *gorm.DB) {
	t.Helper()

	for _, table := range []string{"comments", "posts", "jobs", "resources", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}
