package engine

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// IndexFile is the SPA shell served for unrecognized paths.
const IndexFile = "index.html"

// Assets serves files from the frontend directory.
type Assets struct {
	dir string
}

// NewAssets creates an Assets rooted at dir.
func NewAssets(dir string) *Assets {
	return &Assets{dir: dir}
}

// Dir returns the frontend directory.
func (a *Assets) Dir() string {
	return a.dir
}

// Lookup resolves a URL path to a regular file under the frontend directory.
// The root path and directories never match.
func (a *Assets) Lookup(urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)
	if clean == "/" {
		return "", false
	}
	file := filepath.Join(a.dir, filepath.FromSlash(clean))
	info, err := os.Stat(file)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return file, true
}

// ServeFile writes file to w, honouring conditional and range requests.
func (a *Assets) ServeFile(w http.ResponseWriter, r *http.Request, file string) {
	f, err := os.Open(file)
	if err != nil {
		http.Error(w, "Unhandled internal error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		http.Error(w, "Unhandled internal error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// Index reads the SPA shell.
func (a *Assets) Index() ([]byte, error) {
	return os.ReadFile(filepath.Join(a.dir, IndexFile))
}
