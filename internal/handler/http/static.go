package http

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-todo-server/internal/logger"
	"github.com/MKhiriev/go-todo-server/internal/utils"
)

const indexFile = "index.html"

// index answers GET / with the index.html of the public directory.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.publicDir, indexFile))
}

// static serves files of the public directory for any path no route
// matched. Directories are only served through their index.html; other
// methods than GET and HEAD get a JSON 404. An explicit .../index.html path
// is answered with the file itself, where http.FileServer would redirect.
func (h *Handler) static() http.HandlerFunc {
	root := publicFS{http.Dir(h.publicDir)}
	fileServer := http.FileServer(root)

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			logger.FromRequest(r).Debug().Str("path", r.URL.Path).Msg("no route matched")
			utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		if strings.HasSuffix(r.URL.Path, "/"+indexFile) {
			serveFile(w, r, root, r.URL.Path)
			return
		}

		fileServer.ServeHTTP(w, r)
	}
}

func serveFile(w http.ResponseWriter, r *http.Request, root http.FileSystem, name string) {
	f, err := root.Open(path.Clean(name))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil || stat.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, stat.Name(), stat.ModTime(), f)
}

// publicFS hides directories that have no index.html, so the file server
// never renders a listing.
type publicFS struct {
	fs http.FileSystem
}

func (p publicFS) Open(name string) (http.File, error) {
	f, err := p.fs.Open(name)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !stat.IsDir() {
		return f, nil
	}

	index, err := p.fs.Open(path.Join(name, indexFile))
	if err != nil {
		_ = f.Close()
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fs.ErrNotExist
		}
		return nil, err
	}
	_ = index.Close()

	return f, nil
}
