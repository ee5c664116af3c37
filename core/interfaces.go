// Package core defines the pipeline interfaces for tweetpipe.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// FetchResult holds the decoded body and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Thread is a composed tweet thread, ready for preview, saving, or posting.
// Every tweet already carries its " i/N" positional suffix.
type Thread struct {
	Source string   `json:"source"`
	MaxLen int      `json:"max_len"`
	Count  int      `json:"count"`
	Tweets []string `json:"tweets"`
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Reader extracts tweetable text from a file on disk.
type Reader interface {
	ReadFile(path string) (string, error)
}

// Poster publishes a thread, linking each tweet to the previous one as
// a reply. Implementations must preserve the thread's order exactly,
// stop at the first failure (returning the IDs posted so far), and
// never alter tweet text before transmission.
type Poster interface {
	PostThread(ctx context.Context, tweets []string) ([]string, error)
}

// Renderer converts a composed thread into a final output format.
type Renderer interface {
	Render(t Thread) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".txt").
	Extension() string
}
