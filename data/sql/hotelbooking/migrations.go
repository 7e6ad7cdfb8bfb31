package hotelbooking

import (
	"embed"

	"github.com/stayforge/hotel-booking-service/pkg/sql"
)

//go:embed *.sql
var migrationFiles embed.FS

var Migrations sql.MigrationSource = sql.FSMigrations(migrationFiles)
