// Package extract pulls tweetable plain text out of source documents.
// Files are routed to a reader by extension; a reader that cannot
// handle its input declines by falling through to a raw best-effort
// decode, so extraction only ever fails for a missing file or an
// unreadable one.
package extract

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mudler/xlog"

	"github.com/example/tweetpipe/core/textenc"
)

// FileReader implements core.Reader: it routes a file to the reader
// for its extension.
type FileReader struct{}

// New creates a FileReader.
func New() *FileReader {
	return &FileReader{}
}

// ReadFile extracts the text content of the file at path.
func (r *FileReader) ReadFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("file not found: %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".rst", ".log":
		return readPlain(path)
	case ".json":
		if text, err := readJSON(path); err == nil {
			return text, nil
		}
		return readPlain(path)
	case ".csv":
		if text, err := readDelimited(path, ','); err == nil {
			return text, nil
		}
		return readPlain(path)
	case ".tsv":
		if text, err := readDelimited(path, '\t'); err == nil {
			return text, nil
		}
		return readPlain(path)
	case ".pdf":
		if text, err := readPDF(path); err == nil {
			return text, nil
		} else {
			xlog.Warn("PDF extraction failed, falling back to raw decode", "path", path, "error", err)
		}
		return readPlain(path)
	case ".docx":
		if text, err := readDocx(path); err == nil {
			return text, nil
		} else {
			xlog.Warn("DOCX extraction failed, falling back to raw decode", "path", path, "error", err)
		}
		return readPlain(path)
	case ".html", ".htm":
		if text, err := readHTML(path); err == nil {
			return text, nil
		}
		return readPlain(path)
	default:
		return readPlain(path)
	}
}

// readPlain reads the file and decodes it with charset detection.
func readPlain(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return textenc.Decode(raw), nil
}

// readJSON re-indents the document so structure survives segmentation.
func readJSON(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", fmt.Errorf("parsing JSON %s: %w", path, err)
	}
	pretty, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("re-encoding JSON %s: %w", path, err)
	}
	return string(pretty), nil
}

// readDelimited flattens CSV/TSV records into tab-joined lines.
func readDelimited(path string, comma rune) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}

	var b strings.Builder
	for _, record := range records {
		b.WriteString(strings.Join(record, "\t"))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func readHTML(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return ExtractHTML(textenc.Decode(raw))
}
