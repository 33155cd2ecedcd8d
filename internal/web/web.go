// Package web serves the embedded quiz frontend.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/saulo-duarte/devllmops-quiz/internal/config"
)

//go:embed static
var staticFS embed.FS

func assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Index writes static/index.html.
func Index(w http.ResponseWriter, r *http.Request) {
	page, err := fs.ReadFile(assets(), "index.html")
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to read embedded index.html")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// Static serves the embedded assets; mount it with the prefix stripped.
// Directories are reported as missing so the file server never lists them.
func Static() http.Handler {
	return http.FileServer(http.FS(filesOnly{assets()}))
}

type filesOnly struct {
	fsys fs.FS
}

func (f filesOnly) Open(name string) (fs.File, error) {
	file, err := f.fsys.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return file, nil
}
