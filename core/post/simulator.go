package post

import (
	"context"
	"fmt"

	"github.com/mudler/xlog"
)

// Simulator implements the Poster contract without a network: it logs
// each tweet that would be posted and fabricates sequential IDs.
type Simulator struct{}

// NewSimulator creates a Simulator.
func NewSimulator() *Simulator {
	return &Simulator{}
}

// PostThread logs the thread in order and never fails.
func (s *Simulator) PostThread(_ context.Context, tweets []string) ([]string, error) {
	ids := make([]string, len(tweets))
	for i, text := range tweets {
		xlog.Info("Simulated tweet", "position", fmt.Sprintf("%d/%d", i+1, len(tweets)), "text", text)
		ids[i] = fmt.Sprintf("simulated-%d", i+1)
	}
	return ids, nil
}
