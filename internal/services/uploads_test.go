package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveImageWritesFile(t *testing.T) {
	root := t.TempDir()
	u := NewUploader(root, 10<<20)

	url, err := u.SaveImage(FeatureProducts, "front view.PNG", 5, strings.NewReader("hello"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/Products/"))
	assert.True(t, strings.HasSuffix(url, "_front_view.PNG"))

	content, err := os.ReadFile(filepath.Join(root, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestSaveImageRejectsExtension(t *testing.T) {
	u := NewUploader(t.TempDir(), 10<<20)
	_, err := u.SaveImage(FeatureProducts, "script.exe", 5, strings.NewReader("x"))
	var svcErr ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 400, svcErr.Status)
}

func TestSaveDocumentRejectsImageExtension(t *testing.T) {
	u := NewUploader(t.TempDir(), 10<<20)
	_, err := u.SaveDocument(FeatureDocuments, "photo.png", 5, strings.NewReader("x"))
	assert.Error(t, err)
}

func TestSaveImageRejectsOversize(t *testing.T) {
	u := NewUploader(t.TempDir(), 16)
	_, err := u.SaveImage(FeatureNews, "big.jpg", 17, strings.NewReader("x"))
	var svcErr ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 400, svcErr.Status)
}

func TestSaveImageRejectsEmpty(t *testing.T) {
	u := NewUploader(t.TempDir(), 16)
	_, err := u.SaveImage(FeatureNews, "empty.jpg", 0, strings.NewReader(""))
	assert.Error(t, err)
}

func TestRemoveDeletesStagedFile(t *testing.T) {
	root := t.TempDir()
	u := NewUploader(root, 10<<20)
	url, err := u.SaveImage(FeatureSlides, "slide.jpg", 4, strings.NewReader("data"))
	require.NoError(t, err)

	target := filepath.Join(root, strings.TrimPrefix(url, "/uploads/"))
	u.Remove(url)
	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRemoveIgnoresForeignPaths(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(root, "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	u := NewUploader(filepath.Join(root, "uploads"), 10<<20)
	u.Remove("/uploads/../outside.txt")
	u.Remove("/elsewhere/outside.txt")

	_, err := os.Stat(outside)
	assert.NoError(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "report-v2.pdf", sanitizeFilename("report-v2.pdf"))
	assert.Equal(t, "my_file.jpg", sanitizeFilename("my file.jpg"))
	assert.Equal(t, "passwd", sanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "file", sanitizeFilename("???"))
}
