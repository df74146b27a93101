package extract

import (
	"fmt"
	"strings"
)

// previewLimit caps the summary text preview, before the ellipsis marker.
const previewLimit = 500

// Stats holds basic size statistics of a document's text.
type Stats struct {
	Words int
	Lines int
	Chars int
}

// Summary is the composed extraction result for one document. On an internal
// fault only Source and Error are populated.
type Summary struct {
	Source  string
	Contact *ContactInfo
	Skills  []string
	Stats   Stats
	Preview string
	Error   string
}

// Summarize composes contact extraction, skill keyword matching and text
// statistics into one record. Faults are contained the same way as in
// ExtractContact so directory-wide batches keep going past a bad document.
func Summarize(source, text string) (summary *Summary) {
	defer func() {
		if r := recover(); r != nil {
			summary = &Summary{
				Source: source,
				Error:  fmt.Sprintf("summarizing %s: %v", source, r),
			}
		}
	}()

	return &Summary{
		Source:  source,
		Contact: ExtractContact(source, text),
		Skills:  FindSkills(text, nil),
		Stats: Stats{
			Words: len(strings.Fields(text)),
			Lines: len(strings.Split(text, "\n")),
			Chars: len([]rune(text)),
		},
		Preview: preview(text),
	}
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit]) + "..."
}
