// Package seed produces the payload applied to the store at startup.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/resty-service/internal/config"
	"github.com/spec-kit/resty-service/internal/persistence"
	"github.com/spec-kit/resty-service/internal/repository"
	"github.com/spec-kit/resty-service/internal/store"
)

// Provider loads the startup seed. It is called once before the server starts.
type Provider interface {
	Load(ctx context.Context) (store.Seed, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) (store.Seed, error)

// Load calls f.
func (f ProviderFunc) Load(ctx context.Context) (store.Seed, error) {
	return f(ctx)
}

// NewFromConfig picks the provider named by cfg.Source.
func NewFromConfig(cfg config.SeedConfig, pg *persistence.Postgres, logger *zap.Logger) (Provider, error) {
	demo := NewDemoProvider(nil)
	switch cfg.Source {
	case config.SeedSourceDemo, "":
		return demo, nil
	case config.SeedSourceFile:
		return NewFileProvider(cfg.File), nil
	case config.SeedSourcePostgres:
		if !pg.Configured() {
			return nil, fmt.Errorf("seed source %q requires POSTGRES_DSN", cfg.Source)
		}
		return NewPostgresProvider(repository.NewRosterRepository(pg.PoolHandle()), demo, logger), nil
	default:
		return nil, fmt.Errorf("unknown seed source %q", cfg.Source)
	}
}

// Apply loads the seed from p into s.
func Apply(ctx context.Context, p Provider, s *store.Store) error {
	payload, err := p.Load(ctx)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	s.Seed(payload)
	return nil
}
