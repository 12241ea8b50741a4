package media

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// FromMultipart pulls the named file out of a multipart form. Returns nil
// data when the field is absent so callers can treat the image as optional.
// Reads at most one byte past the size limit; the validator rejects the rest.
func FromMultipart(r *http.Request, field string) (data []byte, ext, contentType string, err error) {
	if err = r.ParseMultipartForm(8 << 20); err != nil {
		return nil, "", "", err
	}
	file, hdr, ferr := r.FormFile(field)
	if ferr != nil {
		return nil, "", "", nil
	}
	defer file.Close()

	data, err = io.ReadAll(io.LimitReader(file, MaxBytes+1))
	if err != nil {
		return nil, "", "", err
	}
	ext = strings.ToLower(filepath.Ext(hdr.Filename))
	contentType = hdr.Header.Get("Content-Type")
	return data, ext, contentType, nil
}
