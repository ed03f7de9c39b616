// Package report writes the batch run's artifacts: a validation report JSON,
// a cleaned-data JSON and an optional XLSX workbook. Artifact writes are the
// one place in the pipeline where an I/O failure is fatal.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/brokeratlas/broker-compare/internal/pkg/model"
)

const (
	validationReportFile = "validation-report.json"
	cleanedDataFile      = "cleaned-brokers.json"
	workbookFile         = "validation-report.xlsx"

	dirPerm  = 0o755
	filePerm = 0o644
)

// summary is the aggregate block shared by both JSON artifacts.
type summary struct {
	Total               int                `json:"total"`
	Valid               int                `json:"valid"`
	Invalid             int                `json:"invalid"`
	AverageQuality      float64            `json:"averageQuality"`
	AverageCompleteness float64            `json:"averageCompleteness"`
	TierCounts          map[model.Tier]int `json:"tierCounts"`
}

type cleanedArtifact struct {
	GeneratedAt time.Time           `json:"generatedAt"`
	Summary     summary             `json:"summary"`
	Brokers     []model.CleanRecord `json:"brokers"`
}

// Writer persists report artifacts under one directory.
type Writer struct {
	dir          string
	withWorkbook bool
	logger       *zap.Logger
}

func NewWriter(dir string, withWorkbook bool, logger *zap.Logger) *Writer {
	return &Writer{dir: dir, withWorkbook: withWorkbook, logger: logger}
}

// WriteAll writes every configured artifact and returns the first failure.
func (w *Writer) WriteAll(batch model.BatchReport, cleaned []model.CleanRecord) error {
	if err := os.MkdirAll(w.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create artifact dir %q: %w", w.dir, err)
	}

	if err := w.writeJSON(validationReportFile, batch); err != nil {
		return err
	}

	artifact := cleanedArtifact{
		GeneratedAt: batch.GeneratedAt,
		Summary: summary{
			Total:               batch.Total,
			Valid:               batch.Valid,
			Invalid:             batch.Invalid,
			AverageQuality:      batch.AverageQuality,
			AverageCompleteness: batch.AverageCompleteness,
			TierCounts:          batch.TierCounts,
		},
		Brokers: cleaned,
	}
	if err := w.writeJSON(cleanedDataFile, artifact); err != nil {
		return err
	}

	if w.withWorkbook {
		if err := w.writeWorkbook(batch); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	w.logger.Info("wrote artifact", zap.String("path", path))
	return nil
}

// writeWorkbook renders the batch as a two-sheet workbook, one summary sheet
// and one row per record.
func (w *Writer) writeWorkbook(batch model.BatchReport) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			w.logger.Warn("failed to close workbook", zap.Error(err))
		}
	}()

	const summarySheet = "Summary"
	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}

	summaryRows := [][]any{
		{"Generated at", batch.GeneratedAt.Format(time.RFC3339)},
		{"Total", batch.Total},
		{"Valid", batch.Valid},
		{"Invalid", batch.Invalid},
		{"Average quality", batch.AverageQuality},
		{"Average completeness", batch.AverageCompleteness},
		{string(model.TierExcellent), batch.TierCounts[model.TierExcellent]},
		{string(model.TierGood), batch.TierCounts[model.TierGood]},
		{string(model.TierAcceptable), batch.TierCounts[model.TierAcceptable]},
		{string(model.TierPoor), batch.TierCounts[model.TierPoor]},
		{string(model.TierVeryPoor), batch.TierCounts[model.TierVeryPoor]},
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address summary row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}

	const recordSheet = "Records"
	if _, err := f.NewSheet(recordSheet); err != nil {
		return fmt.Errorf("failed to create record sheet: %w", err)
	}

	header := []any{"Name", "Source", "Valid", "Quality", "Completeness", "Tier", "Errors", "Warnings"}
	if err := f.SetSheetRow(recordSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write record header: %w", err)
	}

	for i, rec := range batch.Records {
		row := []any{
			rec.Name,
			rec.SourceFile,
			rec.IsValid,
			rec.QualityScore,
			rec.Completeness,
			string(rec.Tier),
			strings.Join(rec.Errors, "; "),
			strings.Join(rec.Warnings, "; "),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address record row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(recordSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write record row %d: %w", i+2, err)
		}
	}

	path := filepath.Join(w.dir, workbookFile)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	w.logger.Info("wrote artifact", zap.String("path", path))
	return nil
}
