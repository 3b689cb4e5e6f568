package services

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Upload feature folders under the upload root.
const (
	FeatureProducts  = "Products"
	FeatureNews      = "News"
	FeatureSolutions = "Solutions"
	FeatureSlides    = "Slides"
	FeaturePages     = "Pages"
	FeatureDocuments = "TechnicalDocs"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var documentExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Uploader stages multipart files under <Root>/<Feature>/<uuid>_<name> and
// hands back the relative URL the static file server exposes.
type Uploader struct {
	Root     string
	MaxBytes int64
}

func NewUploader(root string, maxBytes int64) *Uploader {
	return &Uploader{Root: root, MaxBytes: maxBytes}
}

func (u *Uploader) SaveImage(feature, filename string, size int64, body io.Reader) (string, error) {
	return u.save(feature, filename, size, body, imageExtensions, "Only jpg, jpeg and png files are allowed")
}

func (u *Uploader) SaveDocument(feature, filename string, size int64, body io.Reader) (string, error) {
	return u.save(feature, filename, size, body, documentExtensions, "Only pdf, doc and docx files are allowed")
}

func (u *Uploader) save(feature, filename string, size int64, body io.Reader, allowed map[string]bool, extMessage string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowed[ext] {
		return "", ErrBadRequest(extMessage)
	}
	if size <= 0 {
		return "", ErrBadRequest("File is empty")
	}
	if size > u.MaxBytes {
		return "", ErrBadRequest("File exceeds the 10 MB limit")
	}
	dir := filepath.Join(u.Root, feature)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + "_" + sanitizeFilename(filename)
	target := filepath.Join(dir, name)
	file, err := os.Create(target)
	if err != nil {
		return "", err
	}
	written, err := io.Copy(file, io.LimitReader(body, u.MaxBytes+1))
	_ = file.Close()
	if err != nil {
		_ = os.Remove(target)
		return "", err
	}
	if written == 0 {
		_ = os.Remove(target)
		return "", ErrBadRequest("File is empty")
	}
	if written > u.MaxBytes {
		_ = os.Remove(target)
		return "", ErrBadRequest("File exceeds the 10 MB limit")
	}
	return "/uploads/" + feature + "/" + name, nil
}

// Remove deletes a previously staged upload given its public URL. Unknown
// or foreign paths are ignored.
func (u *Uploader) Remove(url string) {
	rel, ok := strings.CutPrefix(url, "/uploads/")
	if !ok {
		return
	}
	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return
	}
	_ = os.Remove(filepath.Join(u.Root, rel))
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "_")
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
