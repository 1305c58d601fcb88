package source

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/genesis-labs/signal-radar/internal/model"
)

// JSONLSource replays posts from a JSON-lines file written by a previous
// scan, so the pipeline can be re-run without re-fetching.
type JSONLSource struct {
	path string
}

// NewJSONL creates a JSONLSource over path.
func NewJSONL(path string) *JSONLSource {
	return &JSONLSource{path: path}
}

func (s *JSONLSource) Name() string { return "jsonl:" + s.path }

// Fetch reads every post line from the file. Blank lines are skipped;
// a malformed line is a hard error so silent data loss can't hide.
func (s *JSONLSource) Fetch(ctx context.Context) ([]model.Post, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, eris.Wrapf(err, "jsonl: open %s", s.path)
	}
	defer f.Close()

	var posts []model.Post
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if ctx.Err() != nil {
			return nil, eris.Wrap(ctx.Err(), "jsonl: cancelled")
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var post model.Post
		if err := json.Unmarshal([]byte(text), &post); err != nil {
			return nil, eris.Wrapf(err, "jsonl: %s line %d", s.path, line)
		}
		posts = append(posts, post)
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrapf(err, "jsonl: read %s", s.path)
	}

	zap.L().Debug("source: loaded cached posts",
		zap.String("path", s.path),
		zap.Int("posts", len(posts)),
	)
	return posts, nil
}
