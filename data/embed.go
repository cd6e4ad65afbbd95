// Package data holds the built-in scene templates.
package data

import "embed"

// dataFS embeds all JSON files from the data directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// FS returns the embedded filesystem containing the templates.
func FS() embed.FS {
	return dataFS
}
