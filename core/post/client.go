// Package post publishes composed threads. TwitterClient talks to the
// X API v2 create-tweet endpoint with OAuth1 user-context signing;
// Simulator logs what would be posted without touching the network.
//
// Both honor the Poster contract: tweets go out in thread order, each
// as a reply to the previous, and the first failure stops the run with
// the already-posted IDs returned.
package post

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/mudler/xlog"
)

const (
	defaultBaseURL = "https://api.twitter.com"
	defaultTimeout = 30 * time.Second
)

// ErrMissingCredentials is returned when any of the four OAuth1 keys
// is absent.
var ErrMissingCredentials = errors.New("post: incomplete twitter credentials")

// Credentials holds the OAuth1 user-context keys.
type Credentials struct {
	APIKey            string
	APISecretKey      string
	AccessToken       string
	AccessTokenSecret string
}

// Complete reports whether all four keys are present.
func (c Credentials) Complete() bool {
	return c.APIKey != "" && c.APISecretKey != "" &&
		c.AccessToken != "" && c.AccessTokenSecret != ""
}

// TwitterClient posts threads through the X API v2.
type TwitterClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewTwitterClient builds a client that signs every request with the
// given credentials. baseURL overrides the API host when non-empty
// (used by tests).
func NewTwitterClient(creds Credentials, baseURL string) (*TwitterClient, error) {
	if !creds.Complete() {
		return nil, ErrMissingCredentials
	}
	cfg := oauth1.NewConfig(creds.APIKey, creds.APISecretKey)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret)
	httpClient := cfg.Client(oauth1.NoContext, token)
	httpClient.Timeout = defaultTimeout

	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &TwitterClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}, nil
}

type tweetRequest struct {
	Text  string      `json:"text"`
	Reply *tweetReply `json:"reply,omitempty"`
}

type tweetReply struct {
	InReplyToTweetID string `json:"in_reply_to_tweet_id"`
}

type tweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// PostThread publishes tweets in order, chaining each one as a reply
// to the previous. On failure it stops and returns the IDs posted so
// far along with the error.
func (c *TwitterClient) PostThread(ctx context.Context, tweets []string) ([]string, error) {
	posted := make([]string, 0, len(tweets))
	lastID := ""
	for i, text := range tweets {
		id, err := c.postTweet(ctx, text, lastID)
		if err != nil {
			return posted, fmt.Errorf("posting tweet %d/%d: %w", i+1, len(tweets), err)
		}
		xlog.Info("Posted tweet", "position", fmt.Sprintf("%d/%d", i+1, len(tweets)), "id", id)
		posted = append(posted, id)
		lastID = id
	}
	return posted, nil
}

func (c *TwitterClient) postTweet(ctx context.Context, text, inReplyTo string) (string, error) {
	body := tweetRequest{Text: text}
	if inReplyTo != "" {
		body.Reply = &tweetReply{InReplyToTweetID: inReplyTo}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/2/tweets", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var tr tweetResponse
	if err := json.Unmarshal(respBody, &tr); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if tr.Data.ID == "" {
		return "", errors.New("response missing tweet id")
	}
	return tr.Data.ID, nil
}
