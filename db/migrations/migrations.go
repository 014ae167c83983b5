// Package migrations embeds the goose SQL migrations for the question bank.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
