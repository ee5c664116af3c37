// Package thread implements the thread segmentation engine: it turns an
// arbitrary body of text into an ordered sequence of length-bounded
// tweets, each carrying an " i/N" positional suffix.
//
// The suffix width depends on the digit count of the total tweet count
// N, and N in turn depends on how much room is left for bodies after
// reserving the suffix. Split resolves the circular sizing with a
// bounded fixed-point iteration on the count.
//
// Split is a pure function: no I/O, no shared state, safe to call
// concurrently.
package thread

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// DefaultMaxLen is the standard tweet length limit.
const DefaultMaxLen = 280

// maxSizingRounds bounds the fixed-point loop. Digit-width changes are
// rare and only grow the reserve, so the count stabilizes in two or
// three rounds in practice.
const maxSizingRounds = 10

// ErrMaxLenTooSmall is returned when maxLen leaves no room for a tweet
// body after reserving the worst-case positional suffix.
var ErrMaxLenTooSmall = errors.New("thread: max tweet length too small to accommodate suffix")

// Normalize canonicalizes line endings to \n and trims outer whitespace.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSpace(text)
}

func digits(n int) int {
	if n < 0 {
		n = -n
	}
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// suffixLength is the worst-case width of " i/n" for a thread of n
// tweets. i never exceeds n, so both numbers budget digits(n).
func suffixLength(n int) int {
	d := digits(n)
	return 1 + d + 1 + d
}

// splitWithinLimit greedily cuts text into chunks of at most limit
// runes, preferring to break before the last whitespace inside the
// window so each chunk stays as full as possible. Emitted chunks carry
// no leading or trailing whitespace.
func splitWithinLimit(text string, limit int) []string {
	runes := []rune(text)
	n := len(runes)
	var chunks []string
	i := 0
	for i < n {
		start := i
		end := i + limit
		if end > n {
			end = n
		}
		if end < n {
			// Break before the last whitespace in the window, if one
			// exists past the window start.
			lastWS := -1
			for j := i; j < end; j++ {
				if unicode.IsSpace(runes[j]) {
					lastWS = j
				}
			}
			if lastWS > i {
				end = lastWS
			}
		}
		chunk := strings.TrimSpace(string(runes[i:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		i = end
		for i < n && unicode.IsSpace(runes[i]) {
			i++
		}
		// Guard against a collapsed window stalling the loop.
		if i <= start {
			i = start + limit
		}
	}
	return chunks
}

// hardSplit slices a chunk that has no usable whitespace into
// consecutive pieces of exactly limit runes, the last holding the
// remainder. No trimming: the input contains no whitespace.
func hardSplit(chunk string, limit int) []string {
	runes := []rune(chunk)
	out := make([]string, 0, (len(runes)+limit-1)/limit)
	for start := 0; start < len(runes); start += limit {
		end := start + limit
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
	}
	return out
}

// segment runs the whitespace-preferring pass, then hard-splits any
// chunk still over the limit (a single unbroken run of non-whitespace
// longer than the limit, e.g. a long URL).
func segment(text string, limit int) []string {
	var bodies []string
	for _, c := range splitWithinLimit(text, limit) {
		if len([]rune(c)) <= limit {
			bodies = append(bodies, c)
		} else {
			bodies = append(bodies, hardSplit(c, limit)...)
		}
	}
	return bodies
}

// Split converts text into an ordered thread of tweets, each at most
// maxLen runes including its " i/N" suffix. Empty or all-whitespace
// input yields an empty thread, not an error; the only failure is
// ErrMaxLenTooSmall.
//
// The body budget starts from a single-digit count estimate and the
// text is re-segmented until the resulting count stops changing (at
// most maxSizingRounds times — a count crossing a digit boundary, e.g.
// 9 to 10, shrinks the budget and triggers one more pass). A final
// segmentation at the last known count is authoritative either way, so
// running out of rounds degrades to the best-known result instead of
// looping forever.
func Split(text string, maxLen int) ([]string, error) {
	text = Normalize(text)
	if text == "" {
		return nil, nil
	}

	nEst := 9 // assume a single-digit count initially
	prevCount := -1
	for range maxSizingRounds {
		bodyLimit := maxLen - suffixLength(nEst)
		if bodyLimit <= 0 {
			return nil, ErrMaxLenTooSmall
		}
		nNew := len(segment(text, bodyLimit))
		if nNew == prevCount {
			break
		}
		prevCount = nNew
		nEst = max(1, nNew)
	}

	nTotal := max(1, prevCount)
	bodyLimit := maxLen - suffixLength(nTotal)
	if bodyLimit <= 0 {
		return nil, ErrMaxLenTooSmall
	}
	bodies := segment(text, bodyLimit)
	nTotal = len(bodies)

	tweets := make([]string, len(bodies))
	for i, body := range bodies {
		tweets[i] = fmt.Sprintf("%s %d/%d", body, i+1, nTotal)
	}
	return tweets, nil
}
