// Package web embeds the console's HTML templates.
package web

import "embed"

//go:embed templates/*.tmpl
var Templates embed.FS
