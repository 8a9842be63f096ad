// Package assets embeds the default game dictionary.
package assets

import "embed"

//go:embed dictionary.json
var FS embed.FS

// Dictionary returns the raw embedded dictionary JSON.
func Dictionary() ([]byte, error) {
	return FS.ReadFile("dictionary.json")
}
