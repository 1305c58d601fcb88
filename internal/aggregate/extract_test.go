package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genesis-labs/signal-radar/internal/model"
	"github.com/genesis-labs/signal-radar/internal/rules"
)

func newTestExtractor() *Extractor {
	return NewExtractor(rules.Default().CompanyBlacklist)
}

func TestCompany(t *testing.T) {
	t.Parallel()

	e := newTestExtractor()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", ""},
		{"no pattern", "Looking for beta testers for my idea", ""},
		{"my startup", "My startup BuildRight is launching next week", "BuildRight"},
		{"pre-launch for", "We are in pre-launch for FitTrack right now", "FitTrack"},
		{"founder of", "Hi, I'm Jane, founder of Acme. We're launching soon: Acme.", "Acme"},
		{"after colon", "Launching soon: FitTrack. Testing product-market fit in health wearables.", "FitTrack"},
		{"we at", "We at DataFlow are doing customer discovery", "DataFlow"},
		{"blacklisted generic word", "We are launching soon", ""},
		{"blacklist is whole-word only", "Launching soon: FitTrack", "FitTrack"},
		{"too short rejected", "founder of Ab", ""},
		{"must start uppercase", "testing product-market fit in berlin", ""},
		{"quoted name", `Our new thing "Night Owl Labs" needs testers`, "Night Owl Labs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, e.Company(tt.content))
		})
	}
}

func TestCompany_PatternPrecedence(t *testing.T) {
	t.Parallel()

	e := newTestExtractor()

	// Both "my startup X" and "at Y" could match; the more specific startup
	// pattern comes first in the list and must win.
	got := e.Company("My startup Nimbus is growing while I work at BigCorp")
	assert.Equal(t, "Nimbus", got)
}

func TestAuthorFromContent(t *testing.T) {
	t.Parallel()

	e := newTestExtractor()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", model.AuthorUnknown},
		{"no intro", "We are validating an idea", model.AuthorUnknown},
		{"i'm name", "Hi, I'm Jane, founder of Acme.", "Jane"},
		{"i am full name", "I am John Smith. Building something new.", "John Smith"},
		{"this is", "This is Maria, reaching out about tooling.", "Maria"},
		{"name comma founder", "Alex Smith, founder of DataFlow here", "Alex Smith"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, e.AuthorFromContent(tt.content))
		})
	}
}

func TestNormalizeAuthor(t *testing.T) {
	t.Parallel()

	e := newTestExtractor()

	assert.Equal(t, "jane_doe", e.NormalizeAuthor("jane_doe", "I'm Bob, hello"))
	assert.Equal(t, "Bob", e.NormalizeAuthor("", "I'm Bob, hello"))
	assert.Equal(t, "Bob", e.NormalizeAuthor("   ", "I'm Bob, hello"))
	assert.Equal(t, model.AuthorUnknown, e.NormalizeAuthor("", "no intro here"))
}
