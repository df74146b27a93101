package extract

import (
	"reflect"
	"testing"
)

func TestExtractEmailsPrefersPersonal(t *testing.T) {
	t.Parallel()

	// A personal address exists, so the institutional one is dropped
	// entirely, not just deprioritized.
	info := ExtractContact("cv.txt", "Contact: jane.doe@gmail.com or j.doe@university.edu")

	expected := []string{"jane.doe@gmail.com"}
	if !reflect.DeepEqual(info.Emails, expected) {
		t.Fatalf("expected %v, got %v", expected, info.Emails)
	}
}

func TestExtractEmailsInstitutionalFallbackKeepsOnlyFirst(t *testing.T) {
	t.Parallel()

	// With no personal address the extractor falls back to the first raw
	// match only. All-institutional texts yield exactly one address even
	// when several are present; the asymmetry with the personal branch is
	// long-standing behavior downstream consumers rely on.
	info := ExtractContact("cv.txt", "Mail j.doe@uni-bonn.de or office@informatik.tu-berlin.de")

	expected := []string{"j.doe@uni-bonn.de"}
	if !reflect.DeepEqual(info.Emails, expected) {
		t.Fatalf("expected %v, got %v", expected, info.Emails)
	}
}

func TestExtractEmailsNoneFound(t *testing.T) {
	t.Parallel()

	info := ExtractContact("cv.txt", "no contact data here")
	if len(info.Emails) != 0 {
		t.Fatalf("expected no emails, got %v", info.Emails)
	}
	if info.Error != "" {
		t.Fatalf("a miss must not be an error, got %q", info.Error)
	}
}

func TestExtractPhones(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		expect []string
	}{
		{
			name:   "mobile preferred over office",
			text:   "Office: +49 30 9876 5432\nMobile: +49 176 1234 5678",
			expect: []string{"+49 176 1234 5678"},
		},
		{
			name:   "office kept when no mobile present",
			text:   "Reach me at +49 30 9876 5432",
			expect: []string{"+49 30 9876 5432"},
		},
		{
			name:   "short fragments discarded",
			text:   "Ext. 123-4567",
			expect: nil,
		},
		{
			name:   "whitespace runs collapsed",
			text:   "Tel: +49  176   1234  5678",
			expect: []string{"+49 176 1234 5678"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := ExtractContact("cv.txt", tt.text)
			if !reflect.DeepEqual(info.Phones, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, info.Phones)
			}
		})
	}
}

func TestExtractURLsDeduplicated(t *testing.T) {
	t.Parallel()

	info := ExtractContact("cv.txt", "See https://example.com/portfolio and again https://example.com/portfolio")

	if len(info.URLs) != 1 {
		t.Fatalf("expected 1 deduplicated URL, got %v", info.URLs)
	}
	if info.URLs[0] != "https://example.com/portfolio" {
		t.Fatalf("unexpected URL: %q", info.URLs[0])
	}
}

func TestExtractContactSetsSource(t *testing.T) {
	t.Parallel()

	info := ExtractContact("resume_jane.txt", "")
	if info.Source != "resume_jane.txt" {
		t.Fatalf("expected source to round-trip, got %q", info.Source)
	}
}
