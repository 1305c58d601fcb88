// Package dedupe removes repeated posts from a batch.
package dedupe

import "github.com/genesis-labs/signal-radar/internal/model"

// ByURL keeps only the first post per distinct URL, preserving input order.
// Posts without a URL have no identity and are never treated as duplicates
// of one another.
func ByURL(posts []model.Post) []model.Post {
	seen := make(map[string]struct{}, len(posts))
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if p.URL != "" {
			if _, dup := seen[p.URL]; dup {
				continue
			}
			seen[p.URL] = struct{}{}
		}
		out = append(out, p)
	}
	return out
}
