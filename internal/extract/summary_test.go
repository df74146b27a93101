package extract

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSummarizeStats(t *testing.T) {
	t.Parallel()

	text := "Jane Doe\nPython developer with Docker experience.\njane.doe@gmail.com"
	summary := Summarize("resume.txt", text)

	if summary.Error != "" {
		t.Fatalf("unexpected error: %q", summary.Error)
	}
	if summary.Source != "resume.txt" {
		t.Fatalf("unexpected source: %q", summary.Source)
	}
	if summary.Stats.Words != 8 {
		t.Fatalf("expected 8 words, got %d", summary.Stats.Words)
	}
	if summary.Stats.Lines != 3 {
		t.Fatalf("expected 3 lines, got %d", summary.Stats.Lines)
	}
	if summary.Stats.Chars != utf8.RuneCountInString(text) {
		t.Fatalf("expected %d chars, got %d", utf8.RuneCountInString(text), summary.Stats.Chars)
	}
	if summary.Preview != text {
		t.Fatalf("short text must be previewed verbatim")
	}
}

func TestSummarizeComposesContactAndSkills(t *testing.T) {
	t.Parallel()

	summary := Summarize("resume.txt", "Jane Doe\nPython and Docker.\njane.doe@gmail.com")

	if summary.Contact == nil {
		t.Fatal("expected contact info")
	}
	if len(summary.Contact.Emails) != 1 || summary.Contact.Emails[0] != "jane.doe@gmail.com" {
		t.Fatalf("unexpected emails: %v", summary.Contact.Emails)
	}
	if len(summary.Skills) != 2 {
		t.Fatalf("expected python and docker, got %v", summary.Skills)
	}
}

func TestSummarizePreviewTruncation(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("ä", 600)
	summary := Summarize("resume.txt", long)

	runes := []rune(summary.Preview)
	if len(runes) != previewLimit+3 {
		t.Fatalf("expected %d runes, got %d", previewLimit+3, len(runes))
	}
	if !strings.HasSuffix(summary.Preview, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", summary.Preview[len(summary.Preview)-10:])
	}
	if string(runes[:previewLimit]) != strings.Repeat("ä", previewLimit) {
		t.Fatal("preview must keep the leading runes intact")
	}
}

func TestSummarizeEmptyText(t *testing.T) {
	t.Parallel()

	summary := Summarize("empty.txt", "")

	if summary.Stats.Words != 0 {
		t.Fatalf("expected 0 words, got %d", summary.Stats.Words)
	}
	if summary.Stats.Lines != 1 {
		t.Fatalf("splitting empty text still yields one line, got %d", summary.Stats.Lines)
	}
	if summary.Preview != "" {
		t.Fatalf("expected empty preview, got %q", summary.Preview)
	}
}
