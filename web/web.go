// Package web embeds the HTML templates and static assets served by the
// HTTP surface.
package web

import "embed"

//go:embed templates
var TemplateFiles embed.FS

//go:embed static
var StaticFiles embed.FS
