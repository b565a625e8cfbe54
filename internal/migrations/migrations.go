// Package migrations : SQL миграции postgres, встроенные в бинарник для goose
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
