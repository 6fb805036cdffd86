// Package analysis holds the pure summarisation and scoring pipeline that
// turns per-page text into a document report. Nothing here performs I/O.
package analysis

import (
	"regexp"
	"strings"

	"pdf-insight/internal/domain"
)

var (
	reApplicationNumber = regexp.MustCompile(`\b\d{10,}\b`)
	reIPAddress         = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)
	reDate              = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b|\b\d{2}-\d{2}-\d{4}\b`)
	reTime              = regexp.MustCompile(`\b\d{2}:\d{2}(?::\d{2})?\b`)
	// \s is ASCII only in RE2; text layers often carry no-break and other
	// Unicode spaces between words.
	reUppercasePhrase = regexp.MustCompile(`\b[A-Z][A-Z\s\p{Z}\x{85}]{4,}\b`)
)

// Extract runs every page-level pattern over text. It never fails; a field
// with no matches is an empty slice.
func Extract(text string) domain.ExtractionResult {
	return domain.ExtractionResult{
		ApplicationNumbers: findAll(reApplicationNumber, text),
		IPAddresses:        findAll(reIPAddress, text),
		Dates:              findAll(reDate, text),
		Times:              findAll(reTime, text),
	}
}

// UppercasePhrases returns runs of capital letters and spaces that look like
// headings or names, trimmed, in first-occurrence order.
func UppercasePhrases(text string) []string {
	matches := reUppercasePhrase.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

func findAll(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
