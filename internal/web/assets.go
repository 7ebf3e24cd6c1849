package web

import (
	"net/http"

	"github.com/tradelane/tradelane/internal/web/static"
)

// staticHandler serves the embedded static assets.
func staticHandler() http.Handler {
	return http.FileServer(http.FS(static.FS))
}
