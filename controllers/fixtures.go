package controllers

import (
	"time"

	"github.com/CongregationConsole/models"
	"github.com/DATA-DOG/go-sqlmock"
)

// Test fixture data for use in tests

var fixtureTime = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

var programColumns = []string{
	"program_id", "slug", "name", "description", "icon", "image_url", "color", "category",
	"version", "total_days", "duration", "level", "published", "datetime_create", "datetime_update",
}

var prayerRequestColumns = []string{
	"prayer_request_id", "request", "author", "status", "prayer_count", "is_private", "category",
	"datetime_create", "datetime_update",
}

// MockProgramCreate is a minimal valid program payload.
func MockProgramCreate(slug string) models.ProgramCreate {
	return models.ProgramCreate{Slug: slug, Name: "Programa " + slug}
}

// MockProgramRows returns one programs row as the database would.
func MockProgramRows(id int, slug string, totalDays int, published bool) *sqlmock.Rows {
	return sqlmock.NewRows(programColumns).AddRow(
		id, slug, "Programa "+slug, nil, models.DefaultProgramIcon, nil, models.DefaultProgramColor,
		models.DefaultProgramCategory, models.DefaultProgramVersion, totalDays, nil,
		models.DefaultProgramLevel, published, fixtureTime, fixtureTime,
	)
}

// MockPrayerRequestRows returns one prayer_requests row.
func MockPrayerRequestRows(id int, status string, count int) *sqlmock.Rows {
	return sqlmock.NewRows(prayerRequestColumns).AddRow(
		id, "Por la salud de mi madre", "Ana", status, count, false,
		models.DefaultPrayerCategory, fixtureTime, fixtureTime,
	)
}
