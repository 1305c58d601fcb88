package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/genesis-labs/signal-radar/internal/model"
)

const (
	defaultRedditBaseURL = "https://www.reddit.com"
	redditMaxLimit       = 100
	minContentLen        = 10
	searchConcurrency    = 4
)

// RedditOptions configures the Reddit search source. Reddit's public JSON
// search API needs no credentials, only a descriptive User-Agent and polite
// pacing.
type RedditOptions struct {
	Subreddits     []string
	Terms          []string
	Validation     []string
	Limit          int // max posts per subreddit
	UserAgent      string
	BaseURL        string  // override for tests
	RequestsPerSec float64 // 0 means 0.5 req/s
	Timeout        time.Duration
}

// RedditSource searches a set of subreddits via Reddit's public JSON API.
type RedditSource struct {
	client  *http.Client
	limiter *rate.Limiter
	opts    RedditOptions
}

// NewReddit creates a RedditSource.
func NewReddit(opts RedditOptions) *RedditSource {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultRedditBaseURL
	}
	if opts.Limit <= 0 || opts.Limit > redditMaxLimit {
		opts.Limit = 25
	}
	if opts.RequestsPerSec <= 0 {
		opts.RequestsPerSec = 0.5
	}
	if opts.Timeout == 0 {
		opts.Timeout = 15 * time.Second
	}
	return &RedditSource{
		client:  &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSec), 1),
		opts:    opts,
	}
}

func (s *RedditSource) Name() string { return "reddit" }

// Fetch searches every configured subreddit concurrently. A failed
// subreddit is logged and skipped; the remaining results are returned in
// subreddit configuration order so batches stay deterministic.
func (s *RedditSource) Fetch(ctx context.Context) ([]model.Post, error) {
	results := make([][]model.Post, len(s.opts.Subreddits))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(searchConcurrency)

	for i, sub := range s.opts.Subreddits {
		g.Go(func() error {
			posts, err := s.search(gctx, sub)
			if err != nil {
				zap.L().Warn("source: subreddit search failed",
					zap.String("subreddit", sub),
					zap.Error(err),
				)
				return nil
			}
			results[i] = posts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var posts []model.Post
	for _, r := range results {
		posts = append(posts, r...)
	}

	zap.L().Info("source: reddit fetch complete",
		zap.Int("subreddits", len(s.opts.Subreddits)),
		zap.Int("posts", len(posts)),
	)
	return posts, nil
}

// redditListing mirrors the subset of Reddit's search JSON we consume.
type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Author      string  `json:"author"`
	Permalink   string  `json:"permalink"`
	Subreddit   string  `json:"subreddit"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
}

func (s *RedditSource) search(ctx context.Context, subreddit string) ([]model.Post, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "reddit: rate limit wait")
	}

	q := url.Values{}
	q.Set("q", Query(s.opts.Terms, s.opts.Validation))
	q.Set("restrict_sr", "on")
	q.Set("limit", fmt.Sprintf("%d", s.opts.Limit))
	q.Set("sort", "new")

	searchURL := fmt.Sprintf("%s/r/%s/search.json?%s",
		s.opts.BaseURL, url.PathEscape(subreddit), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "reddit: build request")
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "reddit: search r/%s", subreddit)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("reddit: search r/%s: status %d", subreddit, resp.StatusCode)
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, eris.Wrapf(err, "reddit: decode r/%s listing", subreddit)
	}

	posts := make([]model.Post, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		if post, ok := s.toPost(child.Data); ok {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// toPost converts one listing entry, dropping near-empty posts.
func (s *RedditSource) toPost(rp redditPost) (model.Post, bool) {
	content := strings.TrimSpace(strings.TrimSpace(rp.Title) + "\n" + strings.TrimSpace(rp.Selftext))
	if len(content) < minContentLen {
		return model.Post{}, false
	}

	author := rp.Author
	if author == "" || author == "[deleted]" {
		author = model.AuthorUnknown
	}
	profileURL := ""
	if author != model.AuthorUnknown {
		profileURL = "https://www.reddit.com/user/" + author
	}

	postURL := ""
	if rp.Permalink != "" {
		postURL = "https://www.reddit.com" + rp.Permalink
	}

	return model.Post{
		Platform:         model.PlatformReddit,
		Author:           author,
		AuthorProfileURL: profileURL,
		Content:          content,
		Engagement:       fmt.Sprintf("score=%d,comments=%d", rp.Score, rp.NumComments),
		URL:              postURL,
		CreatedAt:        time.Unix(int64(rp.CreatedUTC), 0).UTC().Format(time.RFC3339),
		Subreddit:        rp.Subreddit,
	}, true
}
