package post

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{
	APIKey:            "key",
	APISecretKey:      "secret",
	AccessToken:       "token",
	AccessTokenSecret: "token-secret",
}

func TestNewTwitterClientMissingCredentials(t *testing.T) {
	_, err := NewTwitterClient(Credentials{APIKey: "only-this"}, "")
	require.ErrorIs(t, err, ErrMissingCredentials)
}

func TestCredentialsComplete(t *testing.T) {
	assert.True(t, testCreds.Complete())
	assert.False(t, Credentials{}.Complete())
	partial := testCreds
	partial.AccessTokenSecret = ""
	assert.False(t, partial.Complete())
}

func TestPostThreadOrderAndReplyChain(t *testing.T) {
	var got []tweetRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/2/tweets", r.URL.Path)
		assert.Contains(t, r.Header.Get("Authorization"), "OAuth")

		var req tweetRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		got = append(got, req)

		resp := tweetResponse{}
		resp.Data.ID = fmt.Sprintf("id-%d", len(got))
		resp.Data.Text = req.Text
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client, err := NewTwitterClient(testCreds, srv.URL)
	require.NoError(t, err)

	tweets := []string{"first 1/3", "second 2/3", "third 3/3"}
	ids, err := client.PostThread(context.Background(), tweets)
	require.NoError(t, err)
	require.Equal(t, []string{"id-1", "id-2", "id-3"}, ids)

	require.Len(t, got, 3)
	for i, req := range got {
		assert.Equal(t, tweets[i], req.Text, "tweet text must not be altered")
	}
	assert.Nil(t, got[0].Reply)
	require.NotNil(t, got[1].Reply)
	assert.Equal(t, "id-1", got[1].Reply.InReplyToTweetID)
	require.NotNil(t, got[2].Reply)
	assert.Equal(t, "id-2", got[2].Reply.InReplyToTweetID)
}

func TestPostThreadStopsAtFirstFailure(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 3 {
			http.Error(w, `{"detail":"rate limited"}`, http.StatusTooManyRequests)
			return
		}
		resp := tweetResponse{}
		resp.Data.ID = fmt.Sprintf("id-%d", calls)
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client, err := NewTwitterClient(testCreds, srv.URL)
	require.NoError(t, err)

	ids, err := client.PostThread(context.Background(), []string{"a 1/4", "b 2/4", "c 3/4", "d 4/4"})
	require.Error(t, err)
	assert.Equal(t, []string{"id-1", "id-2"}, ids)
	assert.Equal(t, 3, calls, "posting must stop at the first failure")
	assert.Contains(t, err.Error(), "3/4")
}

func TestPostThreadMissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	client, err := NewTwitterClient(testCreds, srv.URL)
	require.NoError(t, err)

	ids, err := client.PostThread(context.Background(), []string{"a 1/1"})
	require.Error(t, err)
	assert.Empty(t, ids)
}

func TestSimulatorPostThread(t *testing.T) {
	ids, err := NewSimulator().PostThread(context.Background(), []string{"a 1/2", "b 2/2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"simulated-1", "simulated-2"}, ids)
}
