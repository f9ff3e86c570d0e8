// Package migrations embeds the goose migration set shipped with the server
// binary. The database schema and stored procedure bodies are maintained by
// the database team; only the baseline lives here.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
