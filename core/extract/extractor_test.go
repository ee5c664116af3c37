package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestReadFileMissing(t *testing.T) {
	_, err := New().ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestReadFileDirectory(t *testing.T) {
	_, err := New().ReadFile(t.TempDir())
	require.Error(t, err)
}

func TestReadPlainText(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("hello world\n"))
	text, err := New().ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", text)
}

func TestReadPlainTextLegacyEncoding(t *testing.T) {
	// windows-1252 é must decode, not pass through as a broken byte.
	path := writeFile(t, "legacy.txt", []byte{'c', 'a', 'f', 0xE9})
	text, err := New().ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "café", text)
}

func TestReadUnknownExtensionFallsBack(t *testing.T) {
	path := writeFile(t, "data.xyz", []byte("raw content"))
	text, err := New().ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "raw content", text)
}

func TestReadJSON(t *testing.T) {
	path := writeFile(t, "data.json", []byte(`{"b":1,"a":"two"}`))
	text, err := New().ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": \"two\",\n  \"b\": 1\n}", text)
}

func TestReadJSONInvalidFallsBack(t *testing.T) {
	path := writeFile(t, "broken.json", []byte(`{"a": oops`))
	text, err := New().ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a": oops`, text)
}

func TestReadCSV(t *testing.T) {
	path := writeFile(t, "table.csv", []byte("a,b,c\nd,e,f\n"))
	text, err := New().ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\tc\nd\te\tf\n", text)
}

func TestReadTSV(t *testing.T) {
	path := writeFile(t, "table.tsv", []byte("a\tb\nc\td\n"))
	text, err := New().ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\nc\td\n", text)
}

func TestReadDocx(t *testing.T) {
	const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Hello from</w:t></w:r><w:r><w:t xml:space="preserve"> Word</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p>
  </w:body>
</w:document>`

	path := filepath.Join(t.TempDir(), "doc.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	text, err := New().ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Hello from Word")
	assert.Contains(t, text, "Second paragraph")
	// Paragraphs map to separate lines.
	assert.Greater(t, strings.Index(text, "Second"), strings.Index(text, "\n"))
}

func TestReadHTML(t *testing.T) {
	const page = `<html><head><title>t</title></head><body>
<nav>Skip this menu</nav>
<main><h1>Post Title</h1><p>Body text of the post.</p></main>
<footer>Skip this footer</footer>
</body></html>`

	path := writeFile(t, "page.html", []byte(page))
	text, err := New().ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Post Title")
	assert.Contains(t, text, "Body text of the post.")
	assert.NotContains(t, text, "Skip this menu")
	assert.NotContains(t, text, "Skip this footer")
}

func TestExtractHTMLNoMain(t *testing.T) {
	text, err := ExtractHTML("<html><body><p>just a body</p></body></html>")
	require.NoError(t, err)
	assert.Contains(t, text, "just a body")
}
