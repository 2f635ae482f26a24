// Package newsletter exposes build-time embedded assets shared by the
// binaries, currently the goose SQL migrations.
package newsletter

import "embed"

// Migrations contains the SQL migration files applied by the migrate command
// and by storage integration tests.
//
//go:embed migrations/*.sql
var Migrations embed.FS
