package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/brokeratlas/broker-compare/internal/pkg/model"
)

func sampleBatch() model.BatchReport {
	return model.BatchReport{
		GeneratedAt:         time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Total:               2,
		Valid:               2,
		AverageQuality:      87.5,
		AverageCompleteness: 60,
		TierCounts: map[model.Tier]int{
			model.TierExcellent: 1,
			model.TierGood:      1,
		},
		Recommendations: []string{},
		Records: []model.ValidationResult{
			{Name: "Example Broker", IsValid: true, Errors: []string{}, Warnings: []string{}, QualityScore: 95, Completeness: 70, Tier: model.TierExcellent},
			{Name: "Second Broker", IsValid: true, Errors: []string{}, Warnings: []string{"spread 50.00 outside [0, 10]"}, QualityScore: 80, Completeness: 50, Tier: model.TierGood},
		},
	}
}

func sampleCleaned() []model.CleanRecord {
	return []model.CleanRecord{
		{Name: "Example Broker", Platforms: []string{"mt4"}},
		{Name: "Second Broker"},
	}
}

func TestWriter_WriteAll_JSONArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writer := NewWriter(dir, false, zap.NewNop())

	if err := writer.WriteAll(sampleBatch(), sampleCleaned()); err != nil {
		t.Fatalf("WriteAll() error = %v, want nil", err)
	}

	var gotBatch model.BatchReport
	readJSON(t, filepath.Join(dir, validationReportFile), &gotBatch)
	if gotBatch.Total != 2 || gotBatch.Valid != 2 {
		t.Errorf("validation report total/valid = %d/%d, want 2/2", gotBatch.Total, gotBatch.Valid)
	}
	if len(gotBatch.Records) != 2 {
		t.Errorf("validation report records = %d, want 2", len(gotBatch.Records))
	}

	var gotCleaned cleanedArtifact
	readJSON(t, filepath.Join(dir, cleanedDataFile), &gotCleaned)
	if len(gotCleaned.Brokers) != 2 {
		t.Errorf("cleaned artifact brokers = %d, want 2", len(gotCleaned.Brokers))
	}
	if gotCleaned.Summary.AverageQuality != 87.5 {
		t.Errorf("cleaned artifact average quality = %f, want 87.5", gotCleaned.Summary.AverageQuality)
	}
	if gotCleaned.GeneratedAt.IsZero() {
		t.Error("cleaned artifact GeneratedAt is zero, want the batch timestamp")
	}

	// workbook is opt-in and was not requested
	if _, err := os.Stat(filepath.Join(dir, workbookFile)); !os.IsNotExist(err) {
		t.Errorf("workbook stat error = %v, want not-exist", err)
	}
}

func TestWriter_WriteAll_Workbook(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writer := NewWriter(dir, true, zap.NewNop())

	if err := writer.WriteAll(sampleBatch(), sampleCleaned()); err != nil {
		t.Fatalf("WriteAll() error = %v, want nil", err)
	}

	info, err := os.Stat(filepath.Join(dir, workbookFile))
	if err != nil {
		t.Fatalf("workbook stat error = %v, want nil", err)
	}
	if info.Size() == 0 {
		t.Error("workbook is empty, want content")
	}
}

func TestWriter_WriteAll_CreatesArtifactDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "reports")
	writer := NewWriter(dir, false, zap.NewNop())

	if err := writer.WriteAll(sampleBatch(), sampleCleaned()); err != nil {
		t.Fatalf("WriteAll() error = %v, want nil", err)
	}

	if _, err := os.Stat(filepath.Join(dir, validationReportFile)); err != nil {
		t.Errorf("validation report stat error = %v, want nil", err)
	}
}

func TestWriter_WriteAll_UnwritableDirFails(t *testing.T) {
	t.Parallel()

	// a file where the artifact dir should be
	base := t.TempDir()
	blocked := filepath.Join(base, "reports")
	if err := os.WriteFile(blocked, []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("failed to create blocking file: %v", err)
	}

	writer := NewWriter(blocked, false, zap.NewNop())
	if err := writer.WriteAll(sampleBatch(), sampleCleaned()); err == nil {
		t.Error("WriteAll() error = nil, want failure for unwritable dir")
	}
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("failed to unmarshal %s: %v", path, err)
	}
}
