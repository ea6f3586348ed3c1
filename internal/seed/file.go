package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spec-kit/resty-service/internal/store"
)

// FileProvider reads the seed from a YAML document.
type FileProvider struct {
	path string
}

// NewFileProvider returns a provider reading path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Load(ctx context.Context) (store.Seed, error) {
	if err := ctx.Err(); err != nil {
		return store.Seed{}, err
	}
	raw, err := os.ReadFile(p.path)
	if err != nil {
		return store.Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	return Decode(raw)
}

// Decode parses a YAML seed document and checks its enumerations.
func Decode(raw []byte) (store.Seed, error) {
	var payload store.Seed
	if err := yaml.Unmarshal(raw, &payload); err != nil {
		return store.Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	if err := validate(payload); err != nil {
		return store.Seed{}, err
	}
	return payload, nil
}

func validate(payload store.Seed) error {
	for i, s := range payload.Staff {
		if s.ID == "" {
			return fmt.Errorf("staff[%d]: missing id", i)
		}
		if !s.Role.Valid() {
			return fmt.Errorf("staff[%d] %s: unknown role %q", i, s.ID, s.Role)
		}
	}
	for i, in := range payload.Insights {
		if in.ID == "" {
			return fmt.Errorf("insights[%d]: missing id", i)
		}
	}
	return nil
}
