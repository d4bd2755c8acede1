// Package migrations embeds the SQL schema migrations.
package migrations

import "embed"

// FS содержит файлы миграций *.up.sql / *.down.sql
//
//go:embed *.sql
var FS embed.FS
