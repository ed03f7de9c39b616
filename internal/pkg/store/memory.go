package store

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	pkgerrors "github.com/brokeratlas/broker-compare/internal/pkg/errors"
	"github.com/brokeratlas/broker-compare/internal/pkg/model"
)

var _ Store = &MemoryStore{}

// MemoryStore keeps everything in maps. Used by tests and dry runs; it
// mirrors the Postgres upsert semantics (one row per slug, insert-only side
// rows with pair dedup).
type MemoryStore struct {
	logger *zap.Logger

	brokers        map[string]model.BrokerEntity // keyed by slug
	regulations    map[uuid.UUID][]string
	instruments    map[uuid.UUID][]string
	accountTypes   map[uuid.UUID][]string
	paymentMethods map[uuid.UUID][]string
}

func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		logger:         logger,
		brokers:        map[string]model.BrokerEntity{},
		regulations:    map[uuid.UUID][]string{},
		instruments:    map[uuid.UUID][]string{},
		accountTypes:   map[uuid.UUID][]string{},
		paymentMethods: map[uuid.UUID][]string{},
	}
}

func (s *MemoryStore) EnsureSchema(_ context.Context) error { return nil }

func (s *MemoryStore) UpsertBroker(_ context.Context, entity model.BrokerEntity) (uuid.UUID, error) {
	s.logger.Debug("upserting broker", zap.String("slug", entity.Slug))

	if existing, ok := s.brokers[entity.Slug]; ok {
		entity.ID = existing.ID
		entity.CreatedAt = existing.CreatedAt
		entity.Featured = existing.Featured
	}
	s.brokers[entity.Slug] = entity

	return entity.ID, nil
}

func (s *MemoryStore) UpsertBrokerByName(ctx context.Context, entity model.BrokerEntity) (uuid.UUID, error) {
	for slug, existing := range s.brokers {
		if existing.Name == entity.Name && slug != entity.Slug {
			// same broker under an older slug; replace the row
			delete(s.brokers, slug)
			entity.ID = existing.ID
			entity.CreatedAt = existing.CreatedAt
			break
		}
	}

	return s.UpsertBroker(ctx, entity)
}

func (s *MemoryStore) GetBrokerBySlug(_ context.Context, slug string) (model.BrokerEntity, error) {
	entity, ok := s.brokers[slug]
	if !ok {
		return model.BrokerEntity{}, pkgerrors.ErrBrokerNotFound
	}
	return entity, nil
}

func (s *MemoryStore) CountBrokers(_ context.Context) (int, error) {
	return len(s.brokers), nil
}

func (s *MemoryStore) InsertRegulations(_ context.Context, brokerID uuid.UUID, bodies []string) error {
	s.regulations[brokerID] = appendMissing(s.regulations[brokerID], bodies)
	return nil
}

func (s *MemoryStore) InsertInstruments(_ context.Context, brokerID uuid.UUID, categories []string) error {
	s.instruments[brokerID] = appendMissing(s.instruments[brokerID], categories)
	return nil
}

func (s *MemoryStore) InsertAccountTypes(_ context.Context, brokerID uuid.UUID, kinds []string) error {
	s.accountTypes[brokerID] = appendMissing(s.accountTypes[brokerID], kinds)
	return nil
}

func (s *MemoryStore) InsertPaymentMethods(_ context.Context, brokerID uuid.UUID, methods []string) error {
	s.paymentMethods[brokerID] = appendMissing(s.paymentMethods[brokerID], methods)
	return nil
}

// Regulations exposes the side rows for assertions in tests.
func (s *MemoryStore) Regulations(brokerID uuid.UUID) []string {
	return s.regulations[brokerID]
}

// Instruments exposes the side rows for assertions in tests.
func (s *MemoryStore) Instruments(brokerID uuid.UUID) []string {
	return s.instruments[brokerID]
}

func appendMissing(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, v := range existing {
		seen[v] = struct{}{}
	}

	for _, v := range incoming {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		existing = append(existing, v)
	}

	return existing
}
