package testhelpers

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory SQLite database with the application schema.
// The tables are created with explicit SQL because the Postgres column
// defaults (gen_random_uuid, jsonb) do not exist in SQLite; services set IDs
// themselves, so the defaults are never needed here.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	schema := `
	CREATE TABLE recipes (
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME,
		title TEXT NOT NULL,
		description TEXT,
		description_i18n TEXT DEFAULT '{}',
		ingredients TEXT NOT NULL DEFAULT '[]',
		ingredient_names_i18n TEXT DEFAULT '{}',
		steps TEXT NOT NULL DEFAULT '[]',
		steps_i18n TEXT DEFAULT '{}',
		dietary_tags TEXT NOT NULL DEFAULT '[]',
		allergen_free TEXT NOT NULL DEFAULT '[]',
		prep_time INTEGER,
		cook_time INTEGER,
		servings INTEGER,
		difficulty TEXT,
		image_url TEXT
	);

	CREATE TABLE device_profiles (
		device_id TEXT PRIMARY KEY,
		created_at DATETIME,
		updated_at DATETIME,
		schema_version INTEGER NOT NULL,
		profile TEXT NOT NULL DEFAULT '{}',
		measurement_preference TEXT NOT NULL DEFAULT 'system',
		default_servings INTEGER NOT NULL DEFAULT 0,
		has_completed_onboarding BOOLEAN NOT NULL DEFAULT false
	);

	CREATE TABLE recipe_favorites (
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		device_id TEXT NOT NULL,
		recipe_id TEXT NOT NULL,
		UNIQUE (device_id, recipe_id)
	);`

	if err := db.Exec(schema).Error; err != nil {
		t.Fatalf("failed to create test tables: %v", err)
	}

	return db
}
