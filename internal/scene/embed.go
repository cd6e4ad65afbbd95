package scene

import "embed"

// schemaFS embeds the document schema at build time.
//
//go:embed scene.schema.json
var schemaFS embed.FS
