package filestorage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a real multipart.FileHeader by writing and re-parsing
// a form, the same shape gin hands to handlers.
func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSaveFileWithPath(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "")
	require.NoError(t, err)

	fh := makeFileHeader(t, "report.pdf", "file content")
	ref, err := storage.SaveFileWithPath(fh, "documents")
	require.NoError(t, err)

	// Stored under a generated name, keeping only the extension.
	assert.True(t, strings.HasSuffix(ref, ".pdf"))
	assert.NotContains(t, ref, "report")

	entries, err := os.ReadDir(filepath.Join(dir, "documents"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	saved, err := os.ReadFile(filepath.Join(dir, "documents", entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "file content", string(saved))
}

func TestSaveFileNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "")
	require.NoError(t, err)

	ref1, err := storage.SaveFile(makeFileHeader(t, "same.png", "one"))
	require.NoError(t, err)
	ref2, err := storage.SaveFile(makeFileHeader(t, "same.png", "two"))
	require.NoError(t, err)

	assert.NotEqual(t, ref1, ref2)
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "")
	require.NoError(t, err)

	ref, err := storage.SaveFileWithPath(makeFileHeader(t, "doc.pdf", "x"), "documents")
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(ref))

	entries, err := os.ReadDir(filepath.Join(dir, "documents"))
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Deleting again is not an error.
	assert.NoError(t, storage.DeleteFile(ref))
}

func TestDeleteFileRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "")
	require.NoError(t, err)

	assert.Error(t, storage.DeleteFile("../outside.txt"))
}

func TestDeleteFileResolvesBaseURL(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	ref, err := storage.SaveFileWithPath(makeFileHeader(t, "pic.jpg", "img"), "profile_pictures")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "http://localhost:8080/uploads/"))

	require.NoError(t, storage.DeleteFile(ref))

	entries, err := os.ReadDir(filepath.Join(dir, "profile_pictures"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
