// Package extract recovers structured fields from free-form document text:
// contact data, known skill keywords, platform profile links and whole
// document summaries. All functions are pure over their text input and
// contain failures at their own boundary.
package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// ContactInfo is the result of one contact extraction pass. Misses are empty
// values, never errors; Error is set only when extraction itself faulted.
type ContactInfo struct {
	Name   string
	Emails []string
	Phones []string
	URLs   []string
	Source string
	Error  string
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d{1,3}[-.\s]*\d{2,4}[-.\s]*\d{2,4}[-.\s]*\d{2,4}`)
	// urlPattern captures URLs with or without scheme and www prefix.
	urlPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?[a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9]*\.[a-zA-Z]{2,}(?:/[^\s]*)?`)
	// strictURLPattern is the older scheme-only pattern, kept for the
	// platform classifier's combined pass.
	strictURLPattern = regexp.MustCompile(`http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\\(\\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)

	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// institutionalMarkers flag university and department addresses; such emails
// belong to supervisors or admissions offices, not the applicant.
var institutionalMarkers = []string{"uni-", "university", "edu", "ac.", "informatik", "cs."}

// mobilePrefixes are German mobile network prefixes used to tell a personal
// number from an office line.
var mobilePrefixes = []string{"176", "177", "178", "179", "151", "152", "157", "159"}

// ExtractContact pulls emails, phone numbers, URLs and a best-guess personal
// name out of raw document text. Any internal fault is caught and reported
// through the Error field instead of propagating to the caller, so batch
// runs over many documents survive one bad input.
func ExtractContact(source, text string) (info *ContactInfo) {
	defer func() {
		if r := recover(); r != nil {
			info = &ContactInfo{
				Source: source,
				Error:  fmt.Sprintf("extracting contact info from %s: %v", source, r),
			}
		}
	}()

	return &ContactInfo{
		Name:   ExtractName(text),
		Emails: extractEmails(text),
		Phones: extractPhones(text),
		URLs:   dedupe(urlPattern.FindAllString(text, -1)),
		Source: source,
	}
}

// extractEmails prefers personal addresses over institutional ones. When
// every address looks institutional, only the first raw match is kept, not
// all of them. The asymmetry is deliberate and covered by tests.
func extractEmails(text string) []string {
	all := emailPattern.FindAllString(text, -1)

	var personal []string
	for _, email := range all {
		if !isInstitutional(email) {
			personal = append(personal, email)
		}
	}

	if len(personal) > 0 {
		return dedupe(personal)
	}
	if len(all) > 0 {
		return dedupe(all[:1])
	}
	return nil
}

func isInstitutional(email string) bool {
	email = strings.ToLower(email)
	for _, marker := range institutionalMarkers {
		if strings.Contains(email, marker) {
			return true
		}
	}
	return false
}

// extractPhones normalizes whitespace, drops fragments with fewer than ten
// significant characters and prefers mobile-looking numbers over office
// lines.
func extractPhones(text string) []string {
	var mobile, office []string

	for _, match := range phonePattern.FindAllString(text, -1) {
		cleaned := whitespaceRuns.ReplaceAllString(strings.TrimSpace(match), " ")

		stripped := strings.NewReplacer(" ", "", "-", "", ".", "").Replace(cleaned)
		if len(stripped) < 10 {
			continue
		}

		if isMobile(cleaned) {
			mobile = append(mobile, cleaned)
		} else {
			office = append(office, cleaned)
		}
	}

	if len(mobile) > 0 {
		return dedupe(mobile)
	}
	return dedupe(office)
}

func isMobile(phone string) bool {
	for _, prefix := range mobilePrefixes {
		if strings.Contains(phone, prefix) {
			return true
		}
	}
	return false
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
