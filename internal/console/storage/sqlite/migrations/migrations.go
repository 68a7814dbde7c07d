// Package migrations embeds the console schema migrations.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
