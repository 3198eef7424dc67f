// Package migrations embeds the schema of every storage backend.
package migrations

import "embed"

// FS holds one directory of golang-migrate files per backend.
//
//go:embed mysql/*.sql sqlite/*.sql clickhouse/*.sql
var FS embed.FS
