package analysis

import (
	"fmt"
	"math"
	"strings"

	"pdf-insight/internal/domain"
)

const (
	applicationNumberWeight = 2
	keywordWeight           = 1
	// A score of this value or more maps to full confidence.
	confidenceSaturation = 5.0

	reasonNoSignals   = "No strong signals detected"
	reasonLongNumbers = "Contains long numeric identifiers"
)

// categoryOrder is both the scoring table and the tie-break priority: on
// equal scores the earlier category wins.
var categoryOrder = []domain.DocumentType{
	domain.DocumentTypeApplicationForm,
	domain.DocumentTypeInvoiceOrPayment,
	domain.DocumentTypeGovernmentNotice,
	domain.DocumentTypeIdentityDocument,
	domain.DocumentTypeEducationalRecord,
}

// categoryKeywords are matched as lower-case substrings of the full text.
var categoryKeywords = map[domain.DocumentType][]string{
	domain.DocumentTypeApplicationForm:   {"application", "confirmation", "applicant", "registration number", "acknowledgement"},
	domain.DocumentTypeInvoiceOrPayment:  {"amount", "payment", "invoice", "total due", "tax invoice"},
	domain.DocumentTypeGovernmentNotice:  {"government", "ministry", "official use", "department"},
	domain.DocumentTypeIdentityDocument:  {"aadhaar", "passport", "identity", "dob", "permanent account number"},
	domain.DocumentTypeEducationalRecord: {"marks", "examination", "semester", "grade", "transcript"},
}

// scoreboard accumulates scores and evidence per category.
type scoreboard struct {
	scores   map[domain.DocumentType]int
	evidence map[domain.DocumentType]*stringSet
}

func newScoreboard() *scoreboard {
	b := &scoreboard{
		scores:   make(map[domain.DocumentType]int, len(categoryOrder)),
		evidence: make(map[domain.DocumentType]*stringSet, len(categoryOrder)),
	}
	for _, c := range categoryOrder {
		b.evidence[c] = newStringSet()
	}
	return b
}

func (b *scoreboard) add(category domain.DocumentType, points int, reason string) {
	b.scores[category] += points
	b.evidence[category].Add(reason)
}

// best returns the top category, its score and any categories tied with it.
func (b *scoreboard) best() (domain.DocumentType, int, []domain.DocumentType) {
	winner := categoryOrder[0]
	top := b.scores[winner]
	for _, c := range categoryOrder[1:] {
		if b.scores[c] > top {
			winner, top = c, b.scores[c]
		}
	}
	var tied []domain.DocumentType
	for _, c := range categoryOrder {
		if c != winner && b.scores[c] == top {
			tied = append(tied, c)
		}
	}
	return winner, top, tied
}

// Classify guesses the document type from the summary and the page texts.
func Classify(summary domain.DocumentSummary, pages []domain.PageRecord) domain.ClassificationResult {
	board := newScoreboard()

	if len(summary.UniqueApplicationLikeNumbers) > 0 {
		board.add(domain.DocumentTypeApplicationForm, applicationNumberWeight, reasonLongNumbers)
	}

	text := normalizedText(pages)
	for _, category := range categoryOrder {
		for _, kw := range categoryKeywords[category] {
			if strings.Contains(text, kw) {
				board.add(category, keywordWeight, fmt.Sprintf("Keyword %q found", kw))
			}
		}
	}

	winner, score, tied := board.best()
	if score == 0 {
		return domain.ClassificationResult{
			DocumentType: domain.DocumentTypeUnknown,
			Confidence:   0.0,
			Reasoning:    []string{reasonNoSignals},
		}
	}

	reasons := board.evidence[winner]
	if len(tied) > 0 {
		names := make([]string, len(tied))
		for i, c := range tied {
			names[i] = string(c)
		}
		reasons.Add(fmt.Sprintf("Score %d tied with %s; resolved by category priority", score, strings.Join(names, ", ")))
	}

	return domain.ClassificationResult{
		DocumentType: winner,
		Confidence:   round2(math.Min(1.0, float64(score)/confidenceSaturation)),
		Reasoning:    reasons.Ordered(),
	}
}

func normalizedText(pages []domain.PageRecord) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = p.CombinedText
	}
	return strings.ToLower(strings.Join(parts, "\n"))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
