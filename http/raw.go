package http

import (
	"errors"
	"io"
	iofs "io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"strconv"

	"github.com/fwojciec/docview"
	"github.com/gabriel-vasile/mimetype"
)

// serveRaw streams the indexed file p unchanged.
func (s *Server) serveRaw(w http.ResponseWriter, r *http.Request, p string) {
	f, err := os.Open(s.Index.FilePath(p))
	if errors.Is(err, iofs.ErrNotExist) {
		s.Error(w, r, docview.Errorf(docview.ENOTFOUND, "file %q not found", p))
		return
	} else if err != nil {
		s.Error(w, r, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType(p, f))
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, f); err != nil {
		s.Logger.Warn("raw copy interrupted", "path", p, "err", err)
	}
}

// contentType guesses the media type of p from its extension, falling back
// to sniffing the content. f is rewound before returning.
func contentType(p string, f io.ReadSeeker) string {
	if ct := mime.TypeByExtension(path.Ext(p)); ct != "" {
		return ct
	}

	mt, err := mimetype.DetectReader(f)
	if _, serr := f.Seek(0, io.SeekStart); serr != nil || err != nil {
		return "application/octet-stream"
	}
	return mt.String()
}
