package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// signaturePatterns are tried in priority order: closing salutations are the
// most reliable spot for a sender's name.
var signaturePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)best regards,?\s*(.+)`),
	regexp.MustCompile(`(?im)sincerely,?\s*(.+)`),
	regexp.MustCompile(`(?im)regards,?\s*(.+)`),
	regexp.MustCompile(`(?im)yours,?\s*(.+)`),
	regexp.MustCompile(`(?im)thank you,?\s*(.+)`),
	regexp.MustCompile(`(?im)cheers,?\s*(.+)`),
}

// salutationWords can trail the captured signature text and are not part of
// the name.
var salutationWords = map[string]struct{}{
	"sincerely":  {},
	"regards":    {},
	"best":       {},
	"yours":      {},
	"truly":      {},
	"faithfully": {},
}

// academicTitles are stripped from header lines before accepting them as a
// name.
var academicTitles = map[string]struct{}{
	"master":   {},
	"of":       {},
	"sciences": {},
	"bachelor": {},
	"phd":      {},
	"dr.":      {},
	"prof.":    {},
	"msc":      {},
	"bsc":      {},
	"msc.":     {},
	"bsc.":     {},
}

// headerLineLimit bounds the second name-detection pass to the top of the
// document, where resumes put the applicant's name.
const headerLineLimit = 5

// ExtractName guesses the document author's name with two heuristics:
// signature lines first, then the document header. An empty string means no
// qualifying line was found; that is a miss, not an error.
func ExtractName(text string) string {
	if name := nameFromSignature(text); name != "" {
		return name
	}
	return nameFromHeader(text)
}

func nameFromSignature(text string) string {
	for _, pattern := range signaturePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			words := strings.Fields(strings.TrimSpace(match[1]))
			if len(words) < 2 || len(words) > 4 {
				continue
			}

			filtered := words[:0:0]
			for _, word := range words {
				if _, ok := salutationWords[strings.ToLower(word)]; !ok {
					filtered = append(filtered, word)
				}
			}
			if len(filtered) >= 2 {
				return strings.ToUpper(strings.Join(filtered, " "))
			}
		}
	}
	return ""
}

func nameFromHeader(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > headerLineLimit {
		lines = lines[:headerLineLimit]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		words := strings.Fields(line)
		if len(words) < 2 {
			continue
		}
		if !headerLineQualifies(line, words) {
			continue
		}

		filtered := words[:0:0]
		for _, word := range words {
			if _, ok := academicTitles[strings.ToLower(word)]; !ok {
				filtered = append(filtered, word)
			}
		}
		if len(filtered) >= 2 {
			return strings.Join(filtered, " ")
		}
	}
	return ""
}

func headerLineQualifies(line string, words []string) bool {
	lower := strings.ToLower(line)

	if strings.ContainsAny(line, "@") ||
		strings.Contains(lower, "http") ||
		strings.HasSuffix(lower, "germany") ||
		strings.HasSuffix(lower, "university") {
		return false
	}
	for _, r := range line {
		if unicode.IsDigit(r) {
			return false
		}
	}
	for _, word := range words {
		if len(word) <= 1 {
			return false
		}
	}
	return true
}
