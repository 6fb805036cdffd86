package analysis

import "pdf-insight/internal/domain"

// Aggregate merges per-page records into the document summary. Page index
// lists keep the original page order; every unique list is sorted.
func Aggregate(pages []domain.PageRecord) domain.DocumentSummary {
	var (
		numbers   = newStringSet()
		dates     = newStringSet()
		times     = newStringSet()
		ips       = newStringSet()
		uppercase = newStringSet()
	)

	summary := domain.DocumentSummary{
		PagesScanned:    len(pages),
		TextLayerPages:  []int{},
		OCRSuccessPages: []int{},
	}

	for _, page := range pages {
		if page.HasTextLayer {
			summary.TextLayerPages = append(summary.TextLayerPages, page.PageIndex)
		}
		if page.OCRStatus == domain.OCRStatusSuccess {
			summary.OCRSuccessPages = append(summary.OCRSuccessPages, page.PageIndex)
		}

		numbers.Add(page.Extracted.ApplicationNumbers...)
		dates.Add(page.Extracted.Dates...)
		times.Add(page.Extracted.Times...)
		ips.Add(page.Extracted.IPAddresses...)
		uppercase.Add(UppercasePhrases(page.CombinedText)...)
	}

	summary.UniqueApplicationLikeNumbers = numbers.Sorted()
	summary.UniqueDates = dates.Sorted()
	summary.UniqueTimes = times.Sorted()
	summary.UniqueIPAddresses = ips.Sorted()
	summary.UniqueUppercasePhrases = uppercase.Sorted()

	return summary
}
