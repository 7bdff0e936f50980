// Package root exposes files embedded at the repository root.
package root

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
