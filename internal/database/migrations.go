package database

import (
	"database/sql"
	"fmt"
	"sort"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Up      string
	Down    string
}

// Migrations contains all database migrations
var Migrations = []Migration{
	{
		Version: 1,
		Up: `
			CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

			CREATE TABLE IF NOT EXISTS admins (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				email VARCHAR(255) UNIQUE NOT NULL,
				password_hash VARCHAR(255) NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW()
			);

			CREATE INDEX IF NOT EXISTS idx_admins_email ON admins(email);
		`,
		Down: `
			DROP TABLE IF EXISTS admins;
		`,
	},
	{
		Version: 2,
		Up: `
			CREATE TABLE IF NOT EXISTS episodes (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				title VARCHAR(200) NOT NULL,
				description TEXT,
				guest VARCHAR(255),
				spotify_link TEXT,
				youtube_link TEXT,
				apple_link TEXT,
				amazon_link TEXT,
				tags TEXT[],
				thumbnail_url TEXT,
				duration VARCHAR(50),
				publish_date DATE,
				featured BOOLEAN NOT NULL DEFAULT false,
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW()
			);

			CREATE INDEX IF NOT EXISTS idx_episodes_publish_date ON episodes(publish_date DESC);
			CREATE INDEX IF NOT EXISTS idx_episodes_featured ON episodes(featured);
		`,
		Down: `
			DROP TABLE IF EXISTS episodes;
		`,
	},
	{
		Version: 3,
		Up: `
			CREATE TABLE IF NOT EXISTS reels (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				embed_url TEXT NOT NULL,
				caption VARCHAR(500),
				thumbnail_url TEXT,
				instagram_id VARCHAR(255),
				publish_date DATE,
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW()
			);

			CREATE INDEX IF NOT EXISTS idx_reels_publish_date ON reels(publish_date DESC);
		`,
		Down: `
			DROP TABLE IF EXISTS reels;
		`,
	},
	{
		Version: 4,
		Up: `
			CREATE TABLE IF NOT EXISTS sponsors (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				name VARCHAR(255) NOT NULL,
				logo_url TEXT,
				description TEXT,
				website_link TEXT,
				featured BOOLEAN NOT NULL DEFAULT false,
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW()
			);

			CREATE INDEX IF NOT EXISTS idx_sponsors_featured_name ON sponsors(featured DESC, name ASC);
		`,
		Down: `
			DROP TABLE IF EXISTS sponsors;
		`,
	},
	{
		Version: 5,
		Up: `
			CREATE TABLE IF NOT EXISTS subscribers (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				email VARCHAR(255) UNIQUE NOT NULL,
				mobile VARCHAR(50),
				marketing_consent BOOLEAN NOT NULL DEFAULT false,
				privacy_consent BOOLEAN NOT NULL DEFAULT false,
				subscribed_at TIMESTAMP NOT NULL DEFAULT NOW(),
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			);

			CREATE INDEX IF NOT EXISTS idx_subscribers_email ON subscribers(email);
			CREATE INDEX IF NOT EXISTS idx_subscribers_created_at ON subscribers(created_at);
		`,
		Down: `
			DROP TABLE IF EXISTS subscribers;
		`,
	},
	{
		Version: 6,
		Up: `
			CREATE TABLE IF NOT EXISTS admin_activities (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				admin_id UUID NOT NULL REFERENCES admins(id) ON DELETE CASCADE,
				activity_type VARCHAR(50) NOT NULL,
				description TEXT NOT NULL,
				metadata JSONB,
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			);

			CREATE INDEX IF NOT EXISTS idx_admin_activities_created_at ON admin_activities(created_at DESC);
			CREATE INDEX IF NOT EXISTS idx_admin_activities_admin ON admin_activities(admin_id);
		`,
		Down: `
			DROP TABLE IF EXISTS admin_activities;
		`,
	},
	{
		Version: 7,
		Up: `
			CREATE TABLE IF NOT EXISTS schema_migrations (
				version INT PRIMARY KEY,
				applied_at TIMESTAMP NOT NULL DEFAULT NOW()
			);
		`,
		Down: `
			DROP TABLE IF EXISTS schema_migrations;
		`,
	},
}

// RunMigrations runs all pending migrations
func RunMigrations(db *sql.DB) error {
	// Ensure migrations table exists
	if err := ensureMigrationsTable(db); err != nil {
		return err
	}

	// Get current version
	currentVersion, err := getCurrentVersion(db)
	if err != nil {
		return err
	}

	// Run pending migrations in ascending order by version
	sorted := make([]Migration, len(Migrations))
	copy(sorted, Migrations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Version < sorted[j].Version })

	for _, migration := range sorted {
		if migration.Version <= currentVersion {
			continue
		}

		fmt.Printf("Running migration %d...\n", migration.Version)

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		if _, err := tx.Exec(migration.Up); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to run migration %d: %w", migration.Version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES ($1)", migration.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		fmt.Printf("Migration %d completed\n", migration.Version)
	}

	return nil
}

func ensureMigrationsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func getCurrentVersion(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}
