package web

import (
	"embed"
	"net/http"
)

//go:embed index.html styles.css app.js
var content embed.FS

// FS returns a http.FileSystem that serves the embedded browser client.
func FS() http.FileSystem {
	return http.FS(content)
}
