// Package migrations embeds the SQL schema so tests and tooling do not depend
// on the working directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
