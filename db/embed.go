// Package db embeds the SQL migrations so the pixelbinctl binary carries its
// schema with it.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
