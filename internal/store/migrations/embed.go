// Package migrations embeds the schema and seed data of the state store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
