package aggregate

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/genesis-labs/signal-radar/internal/model"
)

// companyPatterns lists the company/project name patterns in precedence
// order, most specific first. The first accepted candidate wins, so
// reordering this list changes extraction results. Patterns match
// case-insensitively; the capitalization requirement is enforced on the
// candidate afterwards.
var companyPatterns = []*regexp.Regexp{
	// "my startup XYZ is launching"
	regexp.MustCompile(`(?i)(?:my|our)\s+startup\s+([A-Z][A-Za-z0-9&.\-]+(?:\s+[A-Z][A-Za-z0-9&.\-]+){0,1})\s+(?:is|just|we're)`),
	// "pre-launch for ABC"
	regexp.MustCompile(`(?i)pre-launch\s+for\s+([A-Z][A-Za-z0-9&.\-]+)\b`),
	// "testing product-market fit for XYZ"
	regexp.MustCompile(`(?i)testing\s+product(?:-market\s+fit)?\s+(?:for\s+)?([A-Z][A-Za-z0-9&.\-]+)\b`),
	// "our project XYZ"
	regexp.MustCompile(`(?i)(?:my|our)\s+project\s+([A-Z][A-Za-z0-9&.\-]+)\b`),
	// "launching XYZ"
	regexp.MustCompile(`(?i)(?:launching|launched)\s+([A-Z][A-Za-z0-9&.\-]+)\b`),
	// "at CompanyName"
	regexp.MustCompile(`(?i)\bat\s+([A-Z][A-Za-z0-9&.\-]+)\b`),
	// "founder of Company"
	regexp.MustCompile(`(?i)(?:founder|ceo|coo|cto)\s+of\s+([A-Z][A-Za-z0-9&.\-]+(?:\s+[A-Z][A-Za-z0-9&.\-]+){0,2})\b`),
	// "building Company"
	regexp.MustCompile(`(?i)(?:building|launched|starting)\s+([A-Z][A-Za-z0-9&.\-]+(?:\s+[A-Z][A-Za-z0-9&.\-]+){0,2})\b`),
	// "Company is launching/validating/testing"
	regexp.MustCompile(`(?i)(?:^|\.\s)([A-Z][A-Za-z0-9&.\-]+)\s+is\s+(?:launching|validating|testing)`),
	// "we at Company"
	regexp.MustCompile(`(?i)(?:we|our team)\s+at\s+([A-Z][A-Za-z0-9&.\-]+)\b`),
	// after a colon or "soon": "Launching soon: FitTrack"
	regexp.MustCompile(`(?i)(?:soon|:)\s*([A-Z][A-Za-z0-9&.\-]+)\b`),
	// quoted name
	regexp.MustCompile(`"([A-Za-z0-9\s&.\-]{2,40})"`),
}

// authorPatterns detect self-introductions. Case-sensitive: names are
// expected in Title Case.
var authorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:I'm|I am)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s*[,.]`),
	regexp.MustCompile(`(?:This is|Hi,)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s*[,.]`),
	regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+),\s*(?:founder|ceo|co-founder)`),
}

const minCompanyLen = 3

// Extractor pulls company and author names out of post content. The
// blacklist rejects generic words as whole words only, so "FitTrack" is not
// rejected for containing "fit".
type Extractor struct {
	blacklist []*regexp.Regexp
}

// NewExtractor compiles the whole-word blacklist.
func NewExtractor(blacklist []string) *Extractor {
	compiled := make([]*regexp.Regexp, 0, len(blacklist))
	for _, word := range blacklist {
		compiled = append(compiled, regexp.MustCompile(`\b`+regexp.QuoteMeta(strings.ToLower(word))+`\b`))
	}
	return &Extractor{blacklist: compiled}
}

// Company returns the first plausible company name in content, or "".
// A candidate must be at least 3 characters, pass the blacklist, and start
// with an uppercase letter.
func (e *Extractor) Company(content string) string {
	text := strings.TrimSpace(content)
	if text == "" {
		return ""
	}

	for _, pattern := range companyPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			candidate := clipSentence(strings.TrimSpace(m[1]))
			if len([]rune(candidate)) < minCompanyLen {
				continue
			}
			if e.blacklisted(strings.ToLower(candidate)) {
				continue
			}
			if first := []rune(candidate)[0]; unicode.IsUpper(first) {
				return candidate
			}
		}
	}
	return ""
}

// clipSentence cuts a candidate at the first sentence boundary and drops a
// trailing period. The pattern character classes allow dots for names like
// "Acme.io", which lets "founder of Acme. We" capture past the sentence end.
func clipSentence(candidate string) string {
	if idx := strings.Index(candidate, ". "); idx > 0 {
		candidate = candidate[:idx]
	}
	return strings.TrimSuffix(candidate, ".")
}

func (e *Extractor) blacklisted(lower string) bool {
	for _, re := range e.blacklist {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// AuthorFromContent infers the author from a self-introduction in content.
// Returns the TBD sentinel when nothing matches.
func (e *Extractor) AuthorFromContent(content string) string {
	text := strings.TrimSpace(content)
	if text == "" {
		return model.AuthorUnknown
	}

	for _, pattern := range authorPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			name := strings.TrimSpace(m[1])
			if n := len([]rune(name)); n >= 2 && n <= 50 {
				return name
			}
		}
	}
	return model.AuthorUnknown
}

// NormalizeAuthor prefers the supplied author; otherwise falls back to
// content extraction.
func (e *Extractor) NormalizeAuthor(author, content string) string {
	if trimmed := strings.TrimSpace(author); trimmed != "" {
		return trimmed
	}
	return e.AuthorFromContent(content)
}
