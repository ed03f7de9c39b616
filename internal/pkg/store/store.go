// Package store provides data persistence interfaces and implementations.
//
//go:generate go run -mod=mod github.com/matryer/moq -out storemock/store_mock.go -pkg storemock . Store
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/brokeratlas/broker-compare/internal/pkg/model"
)

// Store defines the interface for persisting broker data. Upserts are keyed
// by a natural key (slug preferred, name for the legacy variant) so re-running
// a batch never produces duplicate rows. Side-table inserts are insert-only
// and keyed by the parent broker's id.
type Store interface {
	EnsureSchema(ctx context.Context) error

	UpsertBroker(ctx context.Context, entity model.BrokerEntity) (uuid.UUID, error)
	UpsertBrokerByName(ctx context.Context, entity model.BrokerEntity) (uuid.UUID, error)
	GetBrokerBySlug(ctx context.Context, slug string) (model.BrokerEntity, error)
	CountBrokers(ctx context.Context) (int, error)

	InsertRegulations(ctx context.Context, brokerID uuid.UUID, bodies []string) error
	InsertInstruments(ctx context.Context, brokerID uuid.UUID, categories []string) error
	InsertAccountTypes(ctx context.Context, brokerID uuid.UUID, kinds []string) error
	InsertPaymentMethods(ctx context.Context, brokerID uuid.UUID, methods []string) error
}
