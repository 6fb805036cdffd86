package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"pdf-insight/internal/domain"
)

const (
	sampleDates     = 3
	sampleTimes     = 3
	sampleUppercase = 4
)

// Narrate renders the summary as a short templated paragraph. Only the page
// count sentence is unconditional; every other category is left out when it
// has no data.
func Narrate(summary domain.DocumentSummary) string {
	sentences := []string{
		fmt.Sprintf("The document contains %d page(s).", summary.PagesScanned),
	}

	if len(summary.TextLayerPages) > 0 {
		sentences = append(sentences, fmt.Sprintf(
			"Text content was detected on pages %s.", joinInts(summary.TextLayerPages)))
	}
	if len(summary.OCRSuccessPages) > 0 {
		sentences = append(sentences, fmt.Sprintf(
			"Optical character recognition (OCR) successfully processed pages %s.", joinInts(summary.OCRSuccessPages)))
	}
	if n := len(summary.UniqueApplicationLikeNumbers); n > 0 {
		sentences = append(sentences, fmt.Sprintf(
			"The document includes %d long numeric identifier(s), suggesting reference or ID-like values.", n))
	}
	if len(summary.UniqueDates) > 0 {
		sentences = append(sentences, fmt.Sprintf(
			"Date values such as %s were detected.", strings.Join(head(summary.UniqueDates, sampleDates), ", ")))
	}
	if len(summary.UniqueTimes) > 0 {
		sentences = append(sentences, fmt.Sprintf(
			"Time values such as %s appear in the document.", strings.Join(head(summary.UniqueTimes, sampleTimes), ", ")))
	}
	if len(summary.UniqueIPAddresses) > 0 {
		sentences = append(sentences,
			"One or more IP address values were detected, indicating system-generated metadata.")
	}
	if len(summary.UniqueUppercasePhrases) > 0 {
		sentences = append(sentences, fmt.Sprintf(
			"Prominent uppercase text blocks were identified, including %s, which may represent headings, organizations, or names.",
			strings.Join(head(summary.UniqueUppercasePhrases, sampleUppercase), ", ")))
	}

	return strings.Join(sentences, " ")
}

func head(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
