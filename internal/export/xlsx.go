// Package export renders analysis reports as downloadable files.
package export

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"pdf-insight/internal/domain"
)

const (
	summarySheet = "Summary"
	pagesSheet   = "Pages"
	valuesSheet  = "Values"

	// Excel refuses cells longer than this.
	maxCellLen = 32767
)

// XLSXExporter writes a report as a three sheet workbook.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Export returns the workbook bytes.
func (e *XLSXExporter) Export(report *domain.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	for _, sheet := range []string{pagesSheet, valuesSheet} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}

	if err := writeSummary(f, report); err != nil {
		return nil, fmt.Errorf("xlsx summary sheet: %w", err)
	}
	if err := writePages(f, report.Pages); err != nil {
		return nil, fmt.Errorf("xlsx pages sheet: %w", err)
	}
	if err := writeValues(f, report.Summary); err != nil {
		return nil, fmt.Errorf("xlsx values sheet: %w", err)
	}

	activeIndex, _ := f.GetSheetIndex(summarySheet)
	f.SetActiveSheet(activeIndex)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// writeRow stops at the first cell that cannot be written.
func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

type colWidth struct {
	from, to string
	width    float64
}

func setColWidths(f *excelize.File, sheet string, widths ...colWidth) error {
	for _, w := range widths {
		if err := f.SetColWidth(sheet, w.from, w.to, w.width); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, r *domain.Report) error {
	rows := [][]any{
		{"Field", "Value"},
		{"Document ID", r.DocumentID},
		{"Filename", r.Filename},
		{"Total pages", r.TotalPages},
		{"OCR available", r.OCRAvailable},
		{"Document type", string(r.DocumentType.DocumentType)},
		{"Type confidence", r.DocumentType.Confidence},
		{"Type reasoning", strings.Join(r.DocumentType.Reasoning, "; ")},
		{"Overall confidence", r.Quality.OverallConfidence},
		{"Recommended action", string(r.Quality.RecommendedAction)},
		{"Quality reasoning", strings.Join(r.Quality.Reasoning, "; ")},
		{"OCR ratio", r.Quality.OCRRatio},
		{"OCR quality", r.Quality.OCRQuality},
		{"Text noise", r.Quality.TextNoise},
		{"Numeric density", r.Quality.NumericDensity},
		{"Summary", truncate(r.HumanSummary)},
	}
	for i, row := range rows {
		if err := writeRow(f, summarySheet, i+1, row...); err != nil {
			return err
		}
	}
	return setColWidths(f, summarySheet, colWidth{"A", "A", 22}, colWidth{"B", "B", 80})
}

func writePages(f *excelize.File, pages []domain.PageRecord) error {
	err := writeRow(f, pagesSheet, 1,
		"Page", "Text layer", "OCR status",
		"Application numbers", "Dates", "Times", "IP addresses", "Text")
	if err != nil {
		return err
	}

	for i, p := range pages {
		err := writeRow(f, pagesSheet, i+2,
			p.PageIndex,
			p.HasTextLayer,
			string(p.OCRStatus),
			strings.Join(p.Extracted.ApplicationNumbers, ", "),
			strings.Join(p.Extracted.Dates, ", "),
			strings.Join(p.Extracted.Times, ", "),
			strings.Join(p.Extracted.IPAddresses, ", "),
			truncate(p.CombinedText),
		)
		if err != nil {
			return err
		}
	}
	return setColWidths(f, pagesSheet,
		colWidth{"A", "C", 12}, colWidth{"D", "G", 24}, colWidth{"H", "H", 80})
}

// writeValues lists every unique value with its category, one per row.
func writeValues(f *excelize.File, s domain.DocumentSummary) error {
	if err := writeRow(f, valuesSheet, 1, "Category", "Value"); err != nil {
		return err
	}

	row := 2
	for _, group := range []struct {
		name   string
		values []string
	}{
		{"application_number", s.UniqueApplicationLikeNumbers},
		{"date", s.UniqueDates},
		{"time", s.UniqueTimes},
		{"ip_address", s.UniqueIPAddresses},
		{"uppercase_phrase", s.UniqueUppercasePhrases},
	} {
		for _, v := range group.values {
			if err := writeRow(f, valuesSheet, row, group.name, v); err != nil {
				return err
			}
			row++
		}
	}
	return setColWidths(f, valuesSheet, colWidth{"A", "A", 22}, colWidth{"B", "B", 48})
}

func truncate(s string) string {
	if len(s) <= maxCellLen {
		return s
	}
	cut := maxCellLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
