// Package pipeline wires the extraction, cleaning, scoring, reporting and
// loading stages into one batch run over a set of broker review pages.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/brokeratlas/broker-compare/internal/app/pipeline/clean"
	"github.com/brokeratlas/broker-compare/internal/app/pipeline/extract"
	"github.com/brokeratlas/broker-compare/internal/app/pipeline/load"
	"github.com/brokeratlas/broker-compare/internal/app/pipeline/report"
	"github.com/brokeratlas/broker-compare/internal/app/pipeline/score"
	"github.com/brokeratlas/broker-compare/internal/pkg/config"
	pkgerrors "github.com/brokeratlas/broker-compare/internal/pkg/errors"
	"github.com/brokeratlas/broker-compare/internal/pkg/http"
	"github.com/brokeratlas/broker-compare/internal/pkg/model"
	"github.com/brokeratlas/broker-compare/internal/pkg/store"
)

// minValidRate is the success gate for the whole run.
const minValidRate = 0.80

// source is one broker review page, already fetched or read.
type source struct {
	name string
	html string
}

type Service struct {
	cfg        config.Config
	httpClient http.Client
	store      store.Store
	extractor  *extract.Extractor
	logger     *zap.Logger
}

func NewService(cfg config.Config, httpClient http.Client, st store.Store, logger *zap.Logger) *Service {
	return &Service{
		cfg:        cfg,
		httpClient: httpClient,
		store:      st,
		extractor:  extract.New(httpClient, logger.Named("extract")),
		logger:     logger,
	}
}

// Run executes the full pipeline. inputPath, when non-empty, overrides the
// configured input directory with a single file. The returned bool is the
// success gate: true iff the batch's valid rate reached the threshold.
func (s *Service) Run(ctx context.Context, inputPath string) (bool, error) {
	sources, err := s.gatherSources(inputPath)
	if err != nil {
		return false, err
	}
	if len(sources) == 0 {
		return false, pkgerrors.ErrNoRecords
	}

	s.logger.Info("extracting records", zap.Int("sources", len(sources)))

	cleaned := make([]model.CleanRecord, 0, len(sources))
	for _, src := range sources {
		raw := s.extractor.ExtractAll(src.html, src.name)
		cleaned = append(cleaned, clean.Record(raw))
	}

	batch := score.ValidateAll(cleaned)
	s.logSummary(batch)

	writer := report.NewWriter(s.cfg.Artifacts.Dir, s.cfg.Artifacts.XLSX, s.logger.Named("report"))
	if err := writer.WriteAll(batch, cleaned); err != nil {
		return false, err
	}

	if s.cfg.Load.DryRun {
		s.logger.Info("dry run, skipping database load")
		return batch.ValidRate() >= minValidRate, nil
	}

	valid := validRecords(batch, cleaned)
	loader := load.New(s.store, s.cfg.Load, s.logger.Named("load"))
	loadReport, err := loader.Load(ctx, valid)
	if err != nil {
		return false, err
	}

	s.logger.Info("load finished",
		zap.Int("total", loadReport.Total),
		zap.Int("upserted", loadReport.Upserted),
		zap.Int("failed", loadReport.Failed),
	)

	return batch.ValidRate() >= minValidRate, nil
}

// gatherSources reads the local page files and fetches any configured URLs.
// A single unreadable file or failed fetch is logged and skipped; only a
// missing input directory with no other sources is fatal.
func (s *Service) gatherSources(inputPath string) ([]source, error) {
	var sources []source

	switch {
	case inputPath != "":
		html, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file %q: %w", inputPath, err)
		}
		sources = append(sources, source{name: filepath.Base(inputPath), html: string(html)})
	case s.cfg.Input.Dir != "":
		fromDir, err := s.readPageDir(s.cfg.Input.Dir)
		if err != nil {
			if len(s.cfg.Input.URLs) == 0 {
				return nil, err
			}
			s.logger.Warn("failed to read input dir, continuing with URLs only",
				zap.String("dir", s.cfg.Input.Dir), zap.Error(err))
		}
		sources = append(sources, fromDir...)
	}

	for _, url := range s.cfg.Input.URLs {
		html, err := s.httpClient.Fetch(url, nil)
		if err != nil {
			s.logger.Warn("failed to fetch review page", zap.String("url", url), zap.Error(err))
			continue
		}
		sources = append(sources, source{name: url, html: html})
	}

	return sources, nil
}

func (s *Service) readPageDir(dir string) ([]source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input dir %q: %w", dir, err)
	}

	var sources []source
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".html" && ext != ".htm" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		html, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("failed to read review page", zap.String("path", path), zap.Error(err))
			continue
		}
		sources = append(sources, source{name: entry.Name(), html: string(html)})
	}

	return sources, nil
}

// validRecords filters the cleaned records down to those the batch marked
// valid. Report order is the record order, so the two slices line up.
func validRecords(batch model.BatchReport, cleaned []model.CleanRecord) []model.CleanRecord {
	valid := make([]model.CleanRecord, 0, batch.Valid)
	for i, result := range batch.Records {
		if result.IsValid {
			valid = append(valid, cleaned[i])
		}
	}
	return valid
}

func (s *Service) logSummary(batch model.BatchReport) {
	s.logger.Info("validation results",
		zap.Int("total", batch.Total),
		zap.Int("valid", batch.Valid),
		zap.Int("invalid", batch.Invalid),
		zap.Float64("averageQuality", batch.AverageQuality),
		zap.Float64("averageCompleteness", batch.AverageCompleteness),
	)

	for _, tier := range []model.Tier{
		model.TierExcellent, model.TierGood, model.TierAcceptable, model.TierPoor, model.TierVeryPoor,
	} {
		s.logger.Info("tier count",
			zap.String("tier", string(tier)),
			zap.Int("count", batch.TierCounts[tier]),
		)
	}

	for _, rec := range batch.Recommendations {
		s.logger.Warn("recommendation", zap.String("hint", rec))
	}
}
