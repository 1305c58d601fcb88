// Package export writes pipeline output to local files: JSON-lines for raw
// posts and lead signals, CSV for the spreadsheets sales actually opens.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// AppendJSONL appends one JSON object per record to path, creating parent
// directories as needed. Append-only so repeated scans accumulate history.
func AppendJSONL[T any](path string, records []T) error {
	if len(records) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "export: mkdir for %s", path)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return eris.Wrapf(err, "export: open %s", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return eris.Wrapf(err, "export: encode record to %s", path)
		}
	}

	zap.L().Debug("export: appended jsonl",
		zap.String("path", path),
		zap.Int("records", len(records)),
	)
	return nil
}
