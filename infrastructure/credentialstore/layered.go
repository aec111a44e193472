package credentialstore

import (
	"context"

	"github.com/vfg2006/social-insights-api/pkg/log"
)

// LayeredBackend lê primeiro do cache local e cai para o remoto em caso de falta.
// Escritas vão para o remoto e depois para o cache.
type LayeredBackend struct {
	cache  Backend
	remote Backend
}

func NewLayeredBackend(cache, remote Backend) *LayeredBackend {
	return &LayeredBackend{cache: cache, remote: remote}
}

func (l *LayeredBackend) Get(ctx context.Context, ownerID, key string) (string, bool, error) {
	value, ok, err := l.cache.Get(ctx, ownerID, key)
	if err == nil && ok {
		return value, true, nil
	}
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("key", key).Warn("credentials: cache read failed, falling back to remote")
	}

	value, ok, err = l.remote.Get(ctx, ownerID, key)
	if err != nil || !ok {
		return value, ok, err
	}

	if err := l.cache.Put(ctx, ownerID, key, value); err != nil {
		log.ForContext(ctx).WithError(err).WithField("key", key).Warn("credentials: failed to warm cache")
	}
	return value, true, nil
}

func (l *LayeredBackend) Put(ctx context.Context, ownerID, key, value string) error {
	if err := l.remote.Put(ctx, ownerID, key, value); err != nil {
		return err
	}
	return l.cache.Put(ctx, ownerID, key, value)
}

// Remove apaga do remoto e sempre tenta apagar do cache, para nunca sobrar credencial velha
func (l *LayeredBackend) Remove(ctx context.Context, ownerID, key string) error {
	remoteErr := l.remote.Remove(ctx, ownerID, key)
	if err := l.cache.Remove(ctx, ownerID, key); err != nil {
		return err
	}
	return remoteErr
}

func (l *LayeredBackend) Owners(ctx context.Context) ([]string, error) {
	return l.remote.Owners(ctx)
}
