package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pdf-insight/internal/domain"
)

func classifyText(texts ...string) domain.ClassificationResult {
	raw := make([]domain.RawPage, len(texts))
	for i, text := range texts {
		raw[i] = domain.RawPage{Number: i + 1, TextLayer: text}
	}
	pages := NewPageRecords(raw)
	return Classify(Aggregate(pages), pages)
}

func TestClassify_InvoiceScenario(t *testing.T) {
	got := classifyText("Tax Invoice issued for the Payment received")

	assert.Equal(t, domain.DocumentTypeInvoiceOrPayment, got.DocumentType)
	assert.Equal(t, 0.6, got.Confidence)
	assert.Equal(t, []string{
		`Keyword "payment" found`,
		`Keyword "invoice" found`,
		`Keyword "tax invoice" found`,
	}, got.Reasoning)
}

func TestClassify_NoSignals(t *testing.T) {
	got := classifyText("hello world", "nothing to see")

	assert.Equal(t, domain.DocumentTypeUnknown, got.DocumentType)
	assert.Equal(t, 0.0, got.Confidence)
	assert.Equal(t, []string{"No strong signals detected"}, got.Reasoning)
}

func TestClassify_NoPages(t *testing.T) {
	got := Classify(Aggregate(nil), nil)

	assert.Equal(t, domain.DocumentTypeUnknown, got.DocumentType)
	assert.Equal(t, 0.0, got.Confidence)
}

func TestClassify_LongNumbersFavourApplicationForm(t *testing.T) {
	got := classifyText("Reference 1234567890", "Applicant name goes here")

	assert.Equal(t, domain.DocumentTypeApplicationForm, got.DocumentType)
	assert.Equal(t, 0.6, got.Confidence)
	assert.Equal(t, []string{
		"Contains long numeric identifiers",
		`Keyword "applicant" found`,
	}, got.Reasoning)
}

// Equal scores are resolved by category table order and the tie is reported.
func TestClassify_TieBreaksByCategoryOrder(t *testing.T) {
	got := classifyText("Reference 1234567890 for invoice and payment")

	assert.Equal(t, domain.DocumentTypeApplicationForm, got.DocumentType)
	assert.Equal(t, 0.4, got.Confidence)
	assert.Equal(t, []string{
		"Contains long numeric identifiers",
		"Score 2 tied with invoice_or_payment; resolved by category priority",
	}, got.Reasoning)
}

func TestClassify_TieBetweenLaterCategories(t *testing.T) {
	got := classifyText("Passport office", "Semester results")

	assert.Equal(t, domain.DocumentTypeIdentityDocument, got.DocumentType)
	assert.Equal(t, 0.2, got.Confidence)
	assert.Contains(t, got.Reasoning, "Score 1 tied with educational_record; resolved by category priority")
}

func TestClassify_KeywordsCountOncePerDocument(t *testing.T) {
	got := classifyText("invoice", "INVOICE", "Invoice")

	assert.Equal(t, domain.DocumentTypeInvoiceOrPayment, got.DocumentType)
	assert.Equal(t, 0.2, got.Confidence)
	assert.Equal(t, []string{`Keyword "invoice" found`}, got.Reasoning)
}

func TestClassify_ConfidenceSaturates(t *testing.T) {
	got := classifyText("Examination marks transcript", "Semester grade sheet")

	assert.Equal(t, domain.DocumentTypeEducationalRecord, got.DocumentType)
	assert.Equal(t, 1.0, got.Confidence)
	assert.Len(t, got.Reasoning, 5)
}

func TestClassify_MatchesAcrossPages(t *testing.T) {
	got := classifyText("Ministry of Home Affairs", "Department of Posts", "For official use only")

	assert.Equal(t, domain.DocumentTypeGovernmentNotice, got.DocumentType)
	assert.Equal(t, 0.6, got.Confidence)
}
