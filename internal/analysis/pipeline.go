package analysis

import "pdf-insight/internal/domain"

// NewPageRecord builds the immutable record for one ingested page.
func NewPageRecord(raw domain.RawPage) domain.PageRecord {
	status := raw.OCRStatus
	if status == "" {
		status = domain.OCRStatusSkipped
	}
	combined := raw.CombinedText()
	return domain.PageRecord{
		PageIndex:    raw.Number,
		HasTextLayer: raw.HasTextLayer(),
		OCRStatus:    status,
		CombinedText: combined,
		Extracted:    Extract(combined),
	}
}

// NewPageRecords converts ingested pages in order.
func NewPageRecords(raw []domain.RawPage) []domain.PageRecord {
	records := make([]domain.PageRecord, len(raw))
	for i, p := range raw {
		records[i] = NewPageRecord(p)
	}
	return records
}

// Run executes the whole pipeline over already built page records.
func Run(pages []domain.PageRecord) domain.Analysis {
	if pages == nil {
		pages = []domain.PageRecord{}
	}
	summary := Aggregate(pages)
	return domain.Analysis{
		DocumentType: Classify(summary, pages),
		Quality:      Assess(summary, pages),
		Summary:      summary,
		HumanSummary: Narrate(summary),
		Pages:        pages,
	}
}
