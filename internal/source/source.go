// Package source fetches raw posts from external platforms. Sources are
// thin adapters: they only materialize posts, all decision logic lives in
// the pipeline.
package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/genesis-labs/signal-radar/internal/model"
)

// Source yields raw posts for one scan.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Fetch returns whatever posts the source could collect. Partial platform
	// failures are logged and swallowed; the pipeline only ever sees the
	// posts that were successfully returned.
	Fetch(ctx context.Context) ([]model.Post, error)
}

// Query builds the platform search query: every market term OR'd together,
// paired with the validation keyword block.
func Query(terms, validation []string) string {
	return fmt.Sprintf("(%s) (%s)", quoteJoin(terms), quoteJoin(validation))
}

func quoteJoin(terms []string) string {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		quoted = append(quoted, `"`+t+`"`)
	}
	return strings.Join(quoted, " OR ")
}
