// Package migrations embeds the schema for every SQL store driver.
package migrations

import "embed"

// FS holds postgres/*.sql and sqlite/*.sql in golang-migrate naming.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)
