package httpapi

import (
	"mime/multipart"
	"net/http"
)

// formFile pulls the "file" part out of a multipart request. The parse
// ceiling is generous; the uploader enforces the real size limit.
func (s *Server) formFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, bool) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		WriteError(w, http.StatusBadRequest, "A file upload is required")
		return nil, nil, false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "A file upload is required")
		return nil, nil, false
	}
	return file, header, true
}
