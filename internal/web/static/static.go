package static

import "embed"

// FS exposes portal static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS
