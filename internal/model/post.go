// Package model defines the record types flowing through the radar pipeline:
// raw posts in, enriched lead signals and aggregated leads out.
package model

// Platform identifies where a post was collected.
type Platform string

const (
	PlatformReddit Platform = "Reddit"
	PlatformX      Platform = "X"
)

// AuthorUnknown is the sentinel for posts whose author could not be resolved.
const AuthorUnknown = "TBD"

// Post is one raw social post that matched a market-intent search.
// Posts are transient: built by a source, consumed by the pipeline, never
// mutated after creation.
type Post struct {
	Platform         Platform `json:"platform"`
	Author           string   `json:"author"`
	AuthorProfileURL string   `json:"author_profile_url"`
	Content          string   `json:"content"`
	Engagement       string   `json:"engagement"`
	URL              string   `json:"url"`
	CreatedAt        string   `json:"created_at"`
	Subreddit        string   `json:"subreddit,omitempty"`
	KeywordMatched   string   `json:"keyword_matched,omitempty"`
}
