package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/genesis-labs/signal-radar/internal/model"
)

var leadSignalHeader = []string{
	"platform", "author", "author_profile_url", "source_url", "created_at",
	"signal_type", "buying_intent", "urgency", "signal_strength", "icp",
	"outreach_channel", "emails_found", "outreach_hook", "matched_terms",
	"content_excerpt",
}

var hotLeadHeader = []string{
	"company", "author", "signal_type", "weight", "spi", "priority",
	"content", "signal_count",
}

// WriteLeadSignalsCSV appends signals to path, writing the header only when
// the file is new or empty.
func WriteLeadSignalsCSV(path string, signals []model.LeadSignal) error {
	if len(signals) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "export: mkdir for %s", path)
	}

	needHeader := true
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		needHeader = false
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return eris.Wrapf(err, "export: open %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(leadSignalHeader); err != nil {
			return eris.Wrap(err, "export: write header")
		}
	}
	for _, sig := range signals {
		row := []string{
			string(sig.Platform),
			sig.Author,
			sig.AuthorProfileURL,
			sig.SourceURL,
			sig.CreatedAt,
			sig.SignalType,
			strconv.Itoa(sig.BuyingIntent),
			strconv.Itoa(sig.Urgency),
			strconv.Itoa(sig.SignalStrength),
			sig.ICP,
			string(sig.OutreachChannel),
			strings.Join(sig.EmailsFound, ";"),
			sig.OutreachHook,
			strings.Join(sig.MatchedTerms, ";"),
			sig.ContentExcerpt,
		}
		if err := w.Write(row); err != nil {
			return eris.Wrapf(err, "export: write row to %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrapf(err, "export: flush %s", path)
	}

	zap.L().Debug("export: wrote lead signals csv",
		zap.String("path", path),
		zap.Int("rows", len(signals)),
	)
	return nil
}

// WriteHotLeadsCSV overwrites path with the aggregated hot-lead report,
// hottest first. Overwrite, not append: the report is a snapshot, not a log.
func WriteHotLeadsCSV(path string, leads []model.AggregatedLead) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "export: mkdir for %s", path)
	}

	sorted := make([]model.AggregatedLead, len(leads))
	copy(sorted, leads)
	model.SortBySPIDesc(sorted)

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(hotLeadHeader); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	for _, lead := range sorted {
		row := []string{
			lead.Company,
			lead.Author,
			string(lead.SignalType),
			strconv.Itoa(lead.Weight),
			strconv.Itoa(lead.SPI),
			string(lead.Priority),
			lead.Content,
			strconv.Itoa(lead.SignalCount),
		}
		if err := w.Write(row); err != nil {
			return eris.Wrapf(err, "export: write row to %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrapf(err, "export: flush %s", path)
	}

	zap.L().Debug("export: wrote hot leads csv",
		zap.String("path", path),
		zap.Int("rows", len(sorted)),
	)
	return nil
}
