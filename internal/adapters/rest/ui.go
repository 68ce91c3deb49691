package rest

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed web
var webFS embed.FS

// uiHandler serves the embedded single-page UI at the root.
func uiHandler() http.Handler {
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		// embed guarantees the directory exists; this cannot fail at runtime.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
