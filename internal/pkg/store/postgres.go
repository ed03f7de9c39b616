package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"

	pkgerrors "github.com/brokeratlas/broker-compare/internal/pkg/errors"
	"github.com/brokeratlas/broker-compare/internal/pkg/model"
)

//go:embed schema.sql
var schemaDDL string

var _ Store = &PostgresStore{}

// PostgresStore persists brokers in Postgres via a shared pgx pool. Every
// upsert is its own implicit transaction; there is no cross-record atomicity.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{
		pool:   pool,
		logger: logger,
	}
}

// EnsureSchema creates the brokers table and its side tables when absent.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

const brokerColumns = `id, slug, name, avg_rating, min_deposit, max_leverage, spread_from,
	spread_type, founded_year, headquarters, website_url, instruments_total,
	platforms, pros, cons, trust_score, is_active, featured, demo_account,
	cfds_available, islamic_account, copy_trading, created_at, updated_at`

const brokerUpdateSet = `name = EXCLUDED.name,
	avg_rating = EXCLUDED.avg_rating,
	min_deposit = EXCLUDED.min_deposit,
	max_leverage = EXCLUDED.max_leverage,
	spread_from = EXCLUDED.spread_from,
	spread_type = EXCLUDED.spread_type,
	founded_year = EXCLUDED.founded_year,
	headquarters = EXCLUDED.headquarters,
	website_url = EXCLUDED.website_url,
	instruments_total = EXCLUDED.instruments_total,
	platforms = EXCLUDED.platforms,
	pros = EXCLUDED.pros,
	cons = EXCLUDED.cons,
	trust_score = EXCLUDED.trust_score,
	is_active = EXCLUDED.is_active,
	demo_account = EXCLUDED.demo_account,
	cfds_available = EXCLUDED.cfds_available,
	islamic_account = EXCLUDED.islamic_account,
	copy_trading = EXCLUDED.copy_trading,
	updated_at = EXCLUDED.updated_at`

// UpsertBroker inserts or updates a broker keyed by slug and returns the row id.
func (s *PostgresStore) UpsertBroker(ctx context.Context, entity model.BrokerEntity) (uuid.UUID, error) {
	s.logger.Debug("upserting broker", zap.String("slug", entity.Slug))
	return s.upsert(ctx, entity, "slug")
}

// UpsertBrokerByName is the legacy variant keyed by name.
func (s *PostgresStore) UpsertBrokerByName(ctx context.Context, entity model.BrokerEntity) (uuid.UUID, error) {
	s.logger.Debug("upserting broker by name", zap.String("name", entity.Name))
	return s.upsert(ctx, entity, "name")
}

func (s *PostgresStore) upsert(ctx context.Context, e model.BrokerEntity, conflictKey string) (uuid.UUID, error) {
	// conflictKey is one of two compile-time constants, never user input.
	query := fmt.Sprintf(`
		INSERT INTO brokers (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		ON CONFLICT (%s) DO UPDATE SET %s
		RETURNING id`, brokerColumns, conflictKey, brokerUpdateSet)

	var id uuid.UUID
	err := s.pool.QueryRow(ctx, query,
		e.ID, e.Slug, e.Name, e.AvgRating, e.MinDeposit, e.MaxLeverage, e.SpreadFrom,
		e.SpreadType, e.FoundedYear, e.Headquarters, e.WebsiteURL, e.InstrumentsTotal,
		textArray(e.Platforms), textArray(e.Pros), textArray(e.Cons),
		e.TrustScore, e.IsActive, e.Featured, e.DemoAccount,
		e.CFDsAvailable, e.IslamicAccount, e.CopyTrading,
		e.CreatedAt, e.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert broker %q: %w", e.Slug, err)
	}

	return id, nil
}

// GetBrokerBySlug fetches one broker row.
func (s *PostgresStore) GetBrokerBySlug(ctx context.Context, slug string) (model.BrokerEntity, error) {
	query := fmt.Sprintf(`SELECT %s FROM brokers WHERE slug = $1`, brokerColumns)

	var e model.BrokerEntity
	err := s.pool.QueryRow(ctx, query, slug).Scan(
		&e.ID, &e.Slug, &e.Name, &e.AvgRating, &e.MinDeposit, &e.MaxLeverage, &e.SpreadFrom,
		&e.SpreadType, &e.FoundedYear, &e.Headquarters, &e.WebsiteURL, &e.InstrumentsTotal,
		&e.Platforms, &e.Pros, &e.Cons,
		&e.TrustScore, &e.IsActive, &e.Featured, &e.DemoAccount,
		&e.CFDsAvailable, &e.IslamicAccount, &e.CopyTrading,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.BrokerEntity{}, pkgerrors.ErrBrokerNotFound
	}
	if err != nil {
		return model.BrokerEntity{}, fmt.Errorf("failed to get broker %q: %w", slug, err)
	}

	return e, nil
}

// CountBrokers returns the number of broker rows.
func (s *PostgresStore) CountBrokers(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM brokers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count brokers: %w", err)
	}
	return count, nil
}

// InsertRegulations adds regulator rows for a broker. Existing pairs are left
// untouched so re-running a batch stays idempotent.
func (s *PostgresStore) InsertRegulations(ctx context.Context, brokerID uuid.UUID, bodies []string) error {
	return s.insertSideRows(ctx, "broker_regulations", "body", brokerID, bodies)
}

// InsertInstruments adds instrument-class rows for a broker.
func (s *PostgresStore) InsertInstruments(ctx context.Context, brokerID uuid.UUID, categories []string) error {
	return s.insertSideRows(ctx, "broker_instruments", "category", brokerID, categories)
}

// InsertAccountTypes adds account-type rows for a broker.
func (s *PostgresStore) InsertAccountTypes(ctx context.Context, brokerID uuid.UUID, kinds []string) error {
	return s.insertSideRows(ctx, "broker_account_types", "kind", brokerID, kinds)
}

// InsertPaymentMethods adds payment-method rows for a broker.
func (s *PostgresStore) InsertPaymentMethods(ctx context.Context, brokerID uuid.UUID, methods []string) error {
	return s.insertSideRows(ctx, "broker_payment_methods", "method", brokerID, methods)
}

func (s *PostgresStore) insertSideRows(ctx context.Context, table, column string, brokerID uuid.UUID, values []string) error {
	// table and column are compile-time constants from the callers above.
	query := fmt.Sprintf(`
		INSERT INTO %s (broker_id, %s)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, table, column)

	for _, v := range values {
		if _, err := s.pool.Exec(ctx, query, brokerID, v); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	return nil
}

// textArray keeps empty slices from being stored as NULL.
func textArray(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
