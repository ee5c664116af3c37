// Package render — JSON renderer.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/example/tweetpipe/core"
)

// JSONRenderer produces a structured JSON document for the thread.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the thread with its source and sizing metadata.
func (r *JSONRenderer) Render(t core.Thread) ([]byte, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
