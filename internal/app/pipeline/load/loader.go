// Package load maps cleaned broker records onto the destination schema and
// upserts them in throttled batches. Nothing here is transactional across
// records: every record ends as upserted or failed on its own.
package load

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/brokeratlas/broker-compare/internal/pkg/config"
	"github.com/brokeratlas/broker-compare/internal/pkg/model"
	"github.com/brokeratlas/broker-compare/internal/pkg/store"
)

// Destination defaults for fields the record cannot supply. Fixed literals,
// not derived.
const (
	defaultTrustScore  = 75
	defaultIsActive    = true
	defaultFeatured    = false
	defaultDemoAccount = true
)

// Loader writes cleaned records to the store, batch by batch, with a fixed
// pause between batches.
type Loader struct {
	store   store.Store
	cfg     config.LoadConfig
	limiter *rate.Limiter
	logger  *zap.Logger
}

func New(st store.Store, cfg config.LoadConfig, logger *zap.Logger) *Loader {
	return &Loader{
		store:   st,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(cfg.BatchInterval()), 1),
		logger:  logger,
	}
}

// Load upserts every record and reports per-record outcomes. A record failure
// is logged and the loop continues; only context cancellation aborts the run.
func (l *Loader) Load(ctx context.Context, records []model.CleanRecord) (model.LoadReport, error) {
	report := model.LoadReport{
		Total:    len(records),
		Outcomes: make([]model.RecordOutcome, 0, len(records)),
	}

	for start := 0; start < len(records); start += l.cfg.BatchSize {
		if err := l.limiter.Wait(ctx); err != nil {
			return report, err
		}

		end := start + l.cfg.BatchSize
		if end > len(records) {
			end = len(records)
		}

		for _, rec := range records[start:end] {
			outcome := l.loadOne(ctx, rec)
			if outcome.Status == model.StatusUpserted {
				report.Upserted++
			} else {
				report.Failed++
			}
			report.Outcomes = append(report.Outcomes, outcome)
		}
	}

	return report, nil
}

func (l *Loader) loadOne(ctx context.Context, rec model.CleanRecord) model.RecordOutcome {
	entity := ToEntity(rec)
	outcome := model.RecordOutcome{Slug: entity.Slug, Name: entity.Name}

	upsert := l.store.UpsertBroker
	if l.cfg.Key == config.UpsertByName {
		upsert = l.store.UpsertBrokerByName
	}

	brokerID, err := upsert(ctx, entity)
	if err != nil {
		l.logger.Warn("failed to upsert broker",
			zap.String("slug", entity.Slug), zap.String("name", entity.Name), zap.Error(err))
		outcome.Status = model.StatusFailed
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Status = model.StatusUpserted
	outcome.SideErrors = l.insertSideRows(ctx, brokerID, rec)

	return outcome
}

// insertSideRows populates the one-to-many tables after a successful parent
// upsert. Each table fails independently; a failure never rolls back the
// parent or the other tables.
func (l *Loader) insertSideRows(ctx context.Context, brokerID uuid.UUID, rec model.CleanRecord) []string {
	var sideErrors []string

	inserts := []struct {
		table  string
		values []string
		fn     func(context.Context, uuid.UUID, []string) error
	}{
		{"regulations", rec.RegulatoryBodies, l.store.InsertRegulations},
		{"instruments", rec.InstrumentTypes, l.store.InsertInstruments},
		{"account types", rec.AccountTypes, l.store.InsertAccountTypes},
		{"payment methods", rec.DepositMethods, l.store.InsertPaymentMethods},
	}

	for _, ins := range inserts {
		if len(ins.values) == 0 {
			continue
		}
		if err := ins.fn(ctx, brokerID, ins.values); err != nil {
			l.logger.Warn("failed to insert side rows",
				zap.String("table", ins.table), zap.String("broker", rec.Name), zap.Error(err))
			sideErrors = append(sideErrors, ins.table+": "+err.Error())
		}
	}

	return sideErrors
}

// ToEntity maps a cleaned record onto the destination row shape, renaming
// overall_rating to avg_rating and filling destination-required fields with
// their fixed defaults.
func ToEntity(rec model.CleanRecord) model.BrokerEntity {
	now := time.Now().UTC()

	entity := model.BrokerEntity{
		ID:               uuid.New(),
		Slug:             model.Slugify(rec.Name),
		Name:             rec.Name,
		AvgRating:        rec.OverallRating,
		MinDeposit:       rec.MinDeposit,
		MaxLeverage:      rec.MaxLeverage,
		SpreadFrom:       rec.SpreadFrom,
		SpreadType:       rec.SpreadType,
		FoundedYear:      rec.FoundedYear,
		Headquarters:     rec.Headquarters,
		WebsiteURL:       rec.WebsiteURL,
		InstrumentsTotal: rec.InstrumentsTotal,
		Platforms:        rec.Platforms,
		Pros:             rec.Pros,
		Cons:             rec.Cons,

		TrustScore:  defaultTrustScore,
		IsActive:    defaultIsActive,
		Featured:    defaultFeatured,
		DemoAccount: defaultDemoAccount,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if rec.DemoAccount != nil {
		entity.DemoAccount = *rec.DemoAccount
	}
	if rec.CFDsAvailable != nil {
		entity.CFDsAvailable = *rec.CFDsAvailable
	}
	if rec.IslamicAccount != nil {
		entity.IslamicAccount = *rec.IslamicAccount
	}
	if rec.CopyTrading != nil {
		entity.CopyTrading = *rec.CopyTrading
	}

	return entity
}
