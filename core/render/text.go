// Package render converts a composed thread into final output formats.
package render

import (
	"strings"

	"github.com/example/tweetpipe/core"
)

// TextRenderer writes the thread as plain text, one tweet per block.
type TextRenderer struct{}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render joins the tweets with blank lines, preserving thread order.
func (r *TextRenderer) Render(t core.Thread) ([]byte, error) {
	return []byte(strings.Join(t.Tweets, "\n\n") + "\n"), nil
}

// Extension returns the file extension for text output.
func (r *TextRenderer) Extension() string {
	return ".txt"
}
