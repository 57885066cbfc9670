package db

import (
	"context"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// PortalTables lists every table created by the migrations.
var PortalTables = []string{
	Tables.User.Name, Tables.CourseCategory.Name, Tables.Course.Name, Tables.TrainingMaterial.Name,
	Tables.Certification.Name, Tables.UserCourseProgress.Name, Tables.JobCategory.Name, Tables.Job.Name,
	Tables.SavedJob.Name, Tables.ScrapingSource.Name, Tables.ScrapingLog.Name, Tables.EquipmentCategory.Name,
	Tables.Listing.Name, Tables.KnowledgeCategory.Name, Tables.KnowledgeArticle.Name, Tables.LicenseType.Name,
	Tables.LicenseRequirement.Name, Tables.TestMaterial.Name, Tables.DrivingSchool.Name, Tables.TrainingProgram.Name,
	Tables.MechanicsLessonCategory.Name, Tables.MechanicsLesson.Name,
}

// ResetPublicSchema drops and recreates the public schema
func ResetPublicSchema(ctx context.Context, database *pg.DB) error {
	_, err := database.ExecContext(ctx, `DROP SCHEMA IF EXISTS public CASCADE; CREATE SCHEMA public;`)
	if err != nil {
		return fmt.Errorf("reset public schema: %w", err)
	}
	return nil
}

// RunMigrations applies the embedded goose migrations to the database at dsn.
func RunMigrations(ctx context.Context, dsn string) error {
	opt, err := pg.ParseURL(dsn)
	if err != nil {
		return fmt.Errorf("parse connection string: %w", err)
	}

	sqldb, err := OpenSQL(opt)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	return Migrate(ctx, sqldb, MigrateUp)
}

// EnsureTablesExist verifies that the specified tables exist in the database
func EnsureTablesExist(ctx context.Context, database *pg.DB, tables []string) error {
	for _, tbl := range tables {
		var exists bool
		_, err := database.QueryOneContext(ctx, pg.Scan(&exists), `
			SELECT EXISTS (
				SELECT 1
				FROM information_schema.tables
				WHERE table_schema = 'public' AND table_name = ?
			)`, tbl)
		if err != nil {
			return fmt.Errorf("check table %s exists: %w", tbl, err)
		}
		if !exists {
			return fmt.Errorf("table %q does not exist after migrations", tbl)
		}
	}
	return nil
}

// SetupTestDB connects to dsn, recreates the schema and loads fixtures.
func SetupTestDB(ctx context.Context, dsn string) (*pg.DB, error) {
	opt, err := pg.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	database := pg.Connect(opt)

	steps := []struct {
		name string
		fn   func() error
	}{
		{"connect", func() error { return database.Ping(ctx) }},
		{"reset schema", func() error { return ResetPublicSchema(ctx, database) }},
		{"run migrations", func() error { return RunMigrations(ctx, dsn) }},
		{"verify schema", func() error { return EnsureTablesExist(ctx, database, PortalTables) }},
		{"load fixtures", func() error { return LoadFixtures(ctx, database) }},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("failed to %s: %w", s.name, err)
		}
	}

	return database, nil
}
