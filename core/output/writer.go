// Package output handles file naming and writing for saved threads.
// Filenames derive from the source document or URL plus a timestamp,
// so repeated runs never clobber an earlier thread.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Writer writes rendered threads to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WriteThread writes rendered thread data for the given source.
// Filename: <sanitized source>_<timestamp><ext>.
func (w *Writer) WriteThread(source string, data []byte, ext string) (string, error) {
	name := fmt.Sprintf("%s_%s", nameFromSource(source), time.Now().Format("20060102_150405"))
	path := filepath.Join(w.OutputDir, name+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// nameFromSource converts a file path or URL into a flat filename stem.
// Example: https://example.com/docs/intro → example_com_docs_intro;
// /home/me/notes.txt → notes.
func nameFromSource(source string) string {
	if parsed, err := url.Parse(source); err == nil && parsed.Host != "" {
		parts := []string{sanitize(parsed.Host)}
		for _, seg := range strings.Split(strings.Trim(parsed.Path, "/"), "/") {
			if seg != "" {
				parts = append(parts, sanitize(seg))
			}
		}
		return strings.Join(parts, "_")
	}

	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if name := sanitize(base); name != "" && name != "_" {
		return name
	}
	return "thread"
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
