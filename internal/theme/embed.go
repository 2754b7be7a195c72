// Package theme provides embedded display themes: the glyphs and colors
// used to draw the labyrinth map.
package theme

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
