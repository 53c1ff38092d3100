package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MinContentForRecommendation is the minimum entry content length (in runes)
// before a saved entry triggers a recommendation.
const MinContentForRecommendation = 40

type JournalEntry struct {
	ID         string
	Title      string
	Content    string
	Mood       string
	Trigger    string
	Tags       []string
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DisplayID returns a short identifier suitable for list output.
func (e *JournalEntry) DisplayID() string {
	if len(e.ID) >= 8 {
		return e.ID[:8]
	}
	return e.ID
}

// DisplayTitle returns the title, falling back to a content preview for
// untitled entries.
func (e *JournalEntry) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Preview(40)
}

// Preview returns the first maxRunes runes of the content on a single line.
func (e *JournalEntry) Preview(maxRunes int) string {
	text := strings.Join(strings.Fields(e.Content), " ")
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}

// HasTag reports whether the entry carries the given tag (case-insensitive).
func (e *JournalEntry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// WantsRecommendation reports whether saving this entry should trigger the
// recommendation pipeline: enough content to match keywords against, or an
// explicit mood label.
func (e *JournalEntry) WantsRecommendation() bool {
	if utf8.RuneCountInString(strings.TrimSpace(e.Content)) >= MinContentForRecommendation {
		return true
	}
	return e.Mood != ""
}
