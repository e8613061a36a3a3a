// Package schemas embeds the JSON Schema contracts for request bodies and published events.
package schemas

import "embed"

//go:embed requests events
var SchemasFS embed.FS
