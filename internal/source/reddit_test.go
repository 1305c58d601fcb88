package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genesis-labs/signal-radar/internal/model"
)

const listingBody = `{
	"data": {
		"children": [
			{"data": {
				"title": "Validating an idea in fintech",
				"selftext": "Looking for beta testers for our prelaunch tool.",
				"author": "jane_doe",
				"permalink": "/r/startups/comments/abc/validating/",
				"subreddit": "startups",
				"score": 12,
				"num_comments": 3,
				"created_utc": 1739707200
			}},
			{"data": {
				"title": "short",
				"selftext": "",
				"author": "tiny",
				"permalink": "/r/startups/comments/def/short/",
				"subreddit": "startups",
				"score": 1,
				"num_comments": 0,
				"created_utc": 1739707300
			}},
			{"data": {
				"title": "Post by a deleted account, still long enough",
				"selftext": "",
				"author": "[deleted]",
				"permalink": "/r/startups/comments/ghi/deleted/",
				"subreddit": "startups",
				"score": 5,
				"num_comments": 1,
				"created_utc": 1739707400
			}}
		]
	}
}`

func newRedditTestSource(baseURL string, subreddits ...string) *RedditSource {
	return NewReddit(RedditOptions{
		Subreddits:     subreddits,
		Terms:          []string{"market snapshot"},
		Validation:     []string{"prelaunch", "beta users"},
		Limit:          25,
		UserAgent:      "signal-radar-test/1.0",
		BaseURL:        baseURL,
		RequestsPerSec: 1000, // don't throttle tests
	})
}

func TestRedditFetch(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listingBody))
	}))
	defer srv.Close()

	s := newRedditTestSource(srv.URL, "startups")
	posts, err := s.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/r/startups/search.json", gotPath)
	assert.Equal(t, `("market snapshot") ("prelaunch" OR "beta users")`, gotQuery)
	assert.Equal(t, "signal-radar-test/1.0", gotUA)

	// The sub-10-char post is dropped.
	require.Len(t, posts, 2)

	first := posts[0]
	assert.Equal(t, model.PlatformReddit, first.Platform)
	assert.Equal(t, "jane_doe", first.Author)
	assert.Equal(t, "https://www.reddit.com/user/jane_doe", first.AuthorProfileURL)
	assert.Equal(t, "Validating an idea in fintech\nLooking for beta testers for our prelaunch tool.", first.Content)
	assert.Equal(t, "score=12,comments=3", first.Engagement)
	assert.Equal(t, "https://www.reddit.com/r/startups/comments/abc/validating/", first.URL)
	assert.Equal(t, "startups", first.Subreddit)
	assert.NotEmpty(t, first.CreatedAt)

	deleted := posts[1]
	assert.Equal(t, model.AuthorUnknown, deleted.Author)
	assert.Empty(t, deleted.AuthorProfileURL)
}

func TestRedditFetch_FailedSubredditIsSkipped(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/r/broken/search.json" {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(listingBody))
	}))
	defer srv.Close()

	s := newRedditTestSource(srv.URL, "broken", "startups")
	posts, err := s.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 2, "healthy subreddit results survive a failed one")
}

func TestRedditFetch_MalformedJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	s := newRedditTestSource(srv.URL, "startups")
	posts, err := s.Fetch(context.Background())
	require.NoError(t, err, "decode failures degrade to an empty batch")
	assert.Empty(t, posts)
}

func TestQuery(t *testing.T) {
	t.Parallel()

	got := Query([]string{"a", "b"}, []string{"c"})
	assert.Equal(t, `("a" OR "b") ("c")`, got)
}
