package domain

// OCRStatus records what happened when OCR was attempted for a page.
type OCRStatus string

const (
	OCRStatusSkipped OCRStatus = "skipped"
	OCRStatusSuccess OCRStatus = "success"
	OCRStatusFailed  OCRStatus = "failed"
)

// DocumentType is the heuristic category assigned to a document.
type DocumentType string

const (
	DocumentTypeApplicationForm   DocumentType = "application_form"
	DocumentTypeInvoiceOrPayment  DocumentType = "invoice_or_payment"
	DocumentTypeGovernmentNotice  DocumentType = "government_notice"
	DocumentTypeIdentityDocument  DocumentType = "identity_document"
	DocumentTypeEducationalRecord DocumentType = "educational_record"
	DocumentTypeUnknown           DocumentType = "unknown"
)

// RecommendedAction tells downstream consumers how to treat the report.
type RecommendedAction string

const (
	ActionAutoProcess             RecommendedAction = "auto_process"
	ActionManualReviewRecommended RecommendedAction = "manual_review_recommended"
	ActionManualReviewRequired    RecommendedAction = "manual_review_required"
)

// ExtractionResult holds the raw pattern matches found on one page.
// Duplicates are kept, in first-occurrence order.
type ExtractionResult struct {
	ApplicationNumbers []string `json:"application_numbers"`
	IPAddresses        []string `json:"ip_addresses"`
	Dates              []string `json:"dates"`
	Times              []string `json:"times"`
}

// PageRecord is the per-page analysis entry. It is built once during
// ingestion and never modified afterwards.
type PageRecord struct {
	PageIndex    int              `json:"page"`
	HasTextLayer bool             `json:"text_layer_present"`
	OCRStatus    OCRStatus        `json:"ocr_status"`
	CombinedText string           `json:"combined_text"`
	Extracted    ExtractionResult `json:"details"`
}

// DocumentSummary is the document-wide aggregate of all page records.
type DocumentSummary struct {
	PagesScanned                 int      `json:"pages_scanned"`
	TextLayerPages               []int    `json:"text_layer_pages"`
	OCRSuccessPages              []int    `json:"ocr_success_pages"`
	UniqueApplicationLikeNumbers []string `json:"unique_application_like_numbers"`
	UniqueDates                  []string `json:"unique_dates"`
	UniqueTimes                  []string `json:"unique_times"`
	UniqueIPAddresses            []string `json:"unique_ip_addresses"`
	UniqueUppercasePhrases       []string `json:"unique_uppercase_phrases"`
}

// ClassificationResult is the outcome of the document type heuristic.
type ClassificationResult struct {
	DocumentType DocumentType `json:"document_type"`
	Confidence   float64      `json:"confidence"`
	Reasoning    []string     `json:"reasoning"`
}

// QualityAssessment scores how far the extraction can be trusted.
type QualityAssessment struct {
	OverallConfidence float64           `json:"overall_confidence"`
	RecommendedAction RecommendedAction `json:"recommended_action"`
	Reasoning         []string          `json:"reasoning"`

	// Informational only; they do not feed OverallConfidence.
	OCRRatio       float64 `json:"ocr_ratio"`
	OCRQuality     string  `json:"ocr_quality"`
	TextNoise      string  `json:"text_noise"`
	NumericDensity string  `json:"numeric_density"`
}

// Analysis bundles everything the core pipeline derives from the pages.
type Analysis struct {
	DocumentType ClassificationResult `json:"document_type"`
	Quality      QualityAssessment    `json:"quality"`
	Summary      DocumentSummary      `json:"summary"`
	HumanSummary string               `json:"human_summary"`
	Pages        []PageRecord         `json:"analysis"`
}

// Report is the response returned for an uploaded document.
type Report struct {
	DocumentID   string `json:"document_id"`
	Filename     string `json:"filename"`
	TotalPages   int    `json:"total_pages"`
	OCRAvailable bool   `json:"ocr_available"`

	Analysis
}
