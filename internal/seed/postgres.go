package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/resty-service/internal/repository"
	"github.com/spec-kit/resty-service/internal/store"
)

// PostgresProvider reads the roster from Postgres and takes insights and
// analytics from a fallback provider.
type PostgresProvider struct {
	roster   repository.RosterRepository
	fallback Provider
	logger   *zap.Logger
}

// NewPostgresProvider wires the roster repository.
func NewPostgresProvider(roster repository.RosterRepository, fallback Provider, logger *zap.Logger) *PostgresProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresProvider{roster: roster, fallback: fallback, logger: logger}
}

func (p *PostgresProvider) Load(ctx context.Context) (store.Seed, error) {
	staff, err := p.roster.List(ctx, repository.RosterFilter{})
	if err != nil {
		return store.Seed{}, fmt.Errorf("load roster: %w", err)
	}

	var payload store.Seed
	if p.fallback != nil {
		if payload, err = p.fallback.Load(ctx); err != nil {
			return store.Seed{}, err
		}
	}
	payload.Staff = staff

	p.logger.Info("roster loaded from postgres", zap.Int("staff", len(staff)))
	return payload, nil
}
