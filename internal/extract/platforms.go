package extract

import (
	"regexp"
	"strings"
)

// PlatformLinks buckets discovered profile URLs by platform: academic index
// (Google Scholar), code hosting (GitHub) and professional network
// (LinkedIn). Every entry carries an https scheme.
type PlatformLinks struct {
	Scholar  []string
	GitHub   []string
	LinkedIn []string
}

// Compact-form patterns catch scheme-less mentions like "github.com/alice"
// that the general URL pass can miss.
var (
	scholarPattern  = regexp.MustCompile(`(?i)scholar\.google\.com[^\s]*`)
	githubPattern   = regexp.MustCompile(`(?i)(?:github\.com/[^\s]+|[a-zA-Z0-9-]+\.github\.io(?:[^\s]*)?)`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com[^\s]*`)
)

// ClassifyPlatforms partitions profile links found in the text into platform
// buckets. It runs the compact-form patterns over the raw text, then
// reclassifies the general URL matches by substring, prefixes https:// where
// the scheme is missing and deduplicates each bucket.
func ClassifyPlatforms(text string) *PlatformLinks {
	var scholar, github, linkedin []string

	scholar = append(scholar, scholarPattern.FindAllString(text, -1)...)
	github = append(github, githubPattern.FindAllString(text, -1)...)
	linkedin = append(linkedin, linkedinPattern.FindAllString(text, -1)...)

	combined := dedupe(append(
		urlPattern.FindAllString(text, -1),
		strictURLPattern.FindAllString(text, -1)...,
	))

	for _, url := range combined {
		lower := strings.ToLower(url)
		switch {
		case strings.Contains(lower, "scholar") && strings.Contains(lower, "google"):
			scholar = append(scholar, url)
		case strings.Contains(lower, "github.com") || strings.HasSuffix(lower, ".github.io"):
			github = append(github, url)
		case strings.Contains(lower, "linkedin.com"):
			linkedin = append(linkedin, url)
		}
	}

	return &PlatformLinks{
		Scholar:  cleanPlatformURLs(scholar, "scholar.google.com"),
		GitHub:   cleanPlatformURLs(github, "github.com/", ".github.io"),
		LinkedIn: cleanPlatformURLs(linkedin, "linkedin.com"),
	}
}

// cleanPlatformURLs adds a scheme where missing, keeps only entries
// containing one of the platform's defining substrings and deduplicates.
func cleanPlatformURLs(urls []string, markers ...string) []string {
	var cleaned []string

	for _, url := range urls {
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			url = "https://" + url
		}

		lower := strings.ToLower(url)
		for _, marker := range markers {
			if strings.Contains(lower, marker) {
				cleaned = append(cleaned, url)
				break
			}
		}
	}

	return dedupe(cleaned)
}
