// Package credentialstore guarda os registros de credencial como texto opaco,
// separados por dono (usuário do dashboard).
package credentialstore

import (
	"context"

	"github.com/vfg2006/social-insights-api/internal/domain"
)

// Backend é o armazenamento chave/valor compartilhado por todos os donos
type Backend interface {
	Get(ctx context.Context, ownerID, key string) (string, bool, error)
	Put(ctx context.Context, ownerID, key, value string) error
	Remove(ctx context.Context, ownerID, key string) error
	Owners(ctx context.Context) ([]string, error)
}

// KnownKeys é o conjunto fixo de chaves de credencial
func KnownKeys() []string {
	keys := make([]string, 0, len(domain.KnownPlatforms))
	for _, p := range domain.KnownPlatforms {
		keys = append(keys, p.TokenKey())
	}
	return keys
}

// Scoped expõe o Backend restrito a um único dono
type Scoped struct {
	backend Backend
	ownerID string
}

func Scope(backend Backend, ownerID string) *Scoped {
	return &Scoped{backend: backend, ownerID: ownerID}
}

func (s *Scoped) OwnerID() string {
	return s.ownerID
}

func (s *Scoped) Read(ctx context.Context, key string) (string, bool, error) {
	return s.backend.Get(ctx, s.ownerID, key)
}

func (s *Scoped) Write(ctx context.Context, key, value string) error {
	return s.backend.Put(ctx, s.ownerID, key, value)
}

func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.backend.Remove(ctx, s.ownerID, key)
}

func (s *Scoped) ListKnownKeys(_ context.Context) ([]string, error) {
	return KnownKeys(), nil
}
