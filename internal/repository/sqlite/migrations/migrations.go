// Package migrations embeds the ordered schema migration files applied by
// goose at store open.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
