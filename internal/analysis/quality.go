package analysis

import "pdf-insight/internal/domain"

// Scores are kept in hundredths so threshold comparisons stay exact.
const (
	baselineScore     = 50
	highOCRBonus      = 30
	noisePenalty      = 20
	autoProcessScore  = 75
	reviewAdviseScore = 50

	// ocrRatio must be strictly above this to earn the bonus.
	highOCRRatio = 0.8
	// More unique uppercase phrases than this counts as noise.
	noisyPhraseCount = 30

	highNumericCount   = 6
	mediumNumericCount = 2

	mediumOCRRatio = 0.4

	highNoiseCount   = 40
	mediumNoiseCount = 15

	reasonHighOCR   = "OCR succeeded on most pages"
	reasonHighNoise = "High amount of OCR noise detected"
)

// Assess scores the extraction quality and recommends what to do next.
func Assess(summary domain.DocumentSummary, pages []domain.PageRecord) domain.QualityAssessment {
	reasons := []string{}

	ratio := ocrRatio(summary)
	score := baselineScore
	if ratio > highOCRRatio {
		score += highOCRBonus
		reasons = append(reasons, reasonHighOCR)
	}
	if len(summary.UniqueUppercasePhrases) > noisyPhraseCount {
		score -= noisePenalty
		reasons = append(reasons, reasonHighNoise)
	}
	score = clamp(score, 0, 100)

	return domain.QualityAssessment{
		OverallConfidence: float64(score) / 100,
		RecommendedAction: actionFor(score),
		Reasoning:         reasons,
		OCRRatio:          round2(ratio),
		OCRQuality:        ocrQuality(ratio),
		TextNoise:         textNoise(summary),
		NumericDensity:    numericDensity(summary),
	}
}

func ocrRatio(summary domain.DocumentSummary) float64 {
	if summary.PagesScanned == 0 {
		return 0
	}
	return float64(len(summary.OCRSuccessPages)) / float64(summary.PagesScanned)
}

func actionFor(score int) domain.RecommendedAction {
	switch {
	case score >= autoProcessScore:
		return domain.ActionAutoProcess
	case score >= reviewAdviseScore:
		return domain.ActionManualReviewRecommended
	default:
		return domain.ActionManualReviewRequired
	}
}

func ocrQuality(ratio float64) string {
	switch {
	case ratio > highOCRRatio:
		return "high"
	case ratio > mediumOCRRatio:
		return "medium"
	default:
		return "low"
	}
}

func textNoise(summary domain.DocumentSummary) string {
	n := len(summary.UniqueUppercasePhrases)
	switch {
	case n > highNoiseCount:
		return "high"
	case n > mediumNoiseCount:
		return "medium"
	default:
		return "low"
	}
}

func numericDensity(summary domain.DocumentSummary) string {
	n := len(summary.UniqueApplicationLikeNumbers) + len(summary.UniqueDates)
	switch {
	case n > highNumericCount:
		return "high"
	case n > mediumNumericCount:
		return "medium"
	default:
		return "low"
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
