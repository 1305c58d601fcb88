package source

import (
	"context"

	"github.com/genesis-labs/signal-radar/internal/model"
)

// DemoSource yields a fixed batch of seeded posts so the full pipeline can
// be exercised without network access.
type DemoSource struct{}

// NewDemo creates a DemoSource.
func NewDemo() *DemoSource { return &DemoSource{} }

func (s *DemoSource) Name() string { return "demo" }

func (s *DemoSource) Fetch(_ context.Context) ([]model.Post, error) {
	return []model.Post{
		{
			Platform:   model.PlatformReddit,
			Author:     "Jane Doe",
			Content:    "We at BuildRight are pre-launch and validating an idea in construction tech. Looking for beta testers!",
			Engagement: "score=42,comments=11",
			URL:        "https://www.reddit.com/r/startups/comments/demo1",
			CreatedAt:  "2025-02-16T12:00:00Z",
			Subreddit:  "startups",
		},
		{
			Platform:   model.PlatformReddit,
			Author:     model.AuthorUnknown,
			Content:    "Launching soon: FitTrack. Testing product-market fit in health wearables. Finding target customers in EU.",
			Engagement: "score=17,comments=4",
			URL:        "https://www.reddit.com/r/SaaS/comments/demo2",
			CreatedAt:  "2025-02-16T12:00:00Z",
			Subreddit:  "SaaS",
		},
		{
			Platform:   model.PlatformReddit,
			Author:     "Alex Smith",
			Content:    "Exploring new markets and analyzing competitors. Our team at DataFlow is doing market research for launch. Reach me at alex@dataflow.dev",
			Engagement: "score=8,comments=2",
			URL:        "https://www.reddit.com/r/Entrepreneur/comments/demo3",
			CreatedAt:  "2025-02-16T12:00:00Z",
			Subreddit:  "Entrepreneur",
		},
	}, nil
}
