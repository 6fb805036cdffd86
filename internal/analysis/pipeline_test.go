package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-insight/internal/domain"
)

func TestNewPageRecord(t *testing.T) {
	rec := NewPageRecord(domain.RawPage{
		Number:    4,
		TextLayer: "  ",
		OCRText:   " Payment ref 1234567890 ",
	})

	assert.Equal(t, 4, rec.PageIndex)
	assert.False(t, rec.HasTextLayer)
	assert.Equal(t, domain.OCRStatusSkipped, rec.OCRStatus)
	assert.Equal(t, "Payment ref 1234567890", rec.CombinedText)
	assert.Equal(t, []string{"1234567890"}, rec.Extracted.ApplicationNumbers)
}

func TestRun_PagesScannedMatchesInput(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		raw := make([]domain.RawPage, n)
		for i := range raw {
			raw[i] = domain.RawPage{Number: i + 1, TextLayer: "page"}
		}

		got := Run(NewPageRecords(raw))

		assert.Equal(t, n, got.Summary.PagesScanned)
		assert.Len(t, got.Pages, n)
	}
}

func TestRun_Idempotent(t *testing.T) {
	pages := samplePages()

	first := Run(pages)
	second := Run(pages)

	assert.Equal(t, first, second)
}

func TestRun_EndToEnd(t *testing.T) {
	pages := NewPageRecords([]domain.RawPage{
		{Number: 1, TextLayer: "TAX INVOICE\nTotal due 120.00 Payment by 2024-03-01", OCRStatus: domain.OCRStatusSuccess},
		{Number: 2, TextLayer: "Paid at 14:20", OCRStatus: domain.OCRStatusSuccess},
	})

	got := Run(pages)

	assert.Equal(t, domain.DocumentTypeInvoiceOrPayment, got.DocumentType.DocumentType)
	assert.Equal(t, 0.8, got.DocumentType.Confidence)
	assert.Equal(t, 0.8, got.Quality.OverallConfidence)
	assert.Equal(t, domain.ActionAutoProcess, got.Quality.RecommendedAction)
	assert.Equal(t, []string{"TAX INVOICE"}, got.Summary.UniqueUppercasePhrases)
	assert.Contains(t, got.HumanSummary, "Date values such as 2024-03-01 were detected.")
}

func TestRun_EmptyListsEncodeAsArrays(t *testing.T) {
	got := Run(nil)

	b, err := json.Marshal(got)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))

	summary := decoded["summary"].(map[string]any)
	for _, key := range []string{
		"text_layer_pages", "ocr_success_pages", "unique_application_like_numbers",
		"unique_dates", "unique_times", "unique_ip_addresses", "unique_uppercase_phrases",
	} {
		assert.Equal(t, []any{}, summary[key], key)
	}
	assert.Equal(t, []any{}, decoded["analysis"])
	assert.Equal(t, []any{}, decoded["quality"].(map[string]any)["reasoning"])
}
