package tokening

import (
	"context"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/social-insights-api/infrastructure/credentialstore"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/log"
	"github.com/vfg2006/social-insights-api/pkg/telemetry"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store é o contrato do Credential Store visto pelo gerenciador
type Store interface {
	Read(ctx context.Context, key string) (string, bool, error)
	Write(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	ListKnownKeys(ctx context.Context) ([]string, error)
}

type TokenManager interface {
	IsExpired(record *domain.CredentialRecord) bool
	Get(ctx context.Context, platform domain.PlatformKey) (*domain.CredentialRecord, error)
	Set(ctx context.Context, platform domain.PlatformKey, record *domain.CredentialRecord) error
	Remove(ctx context.Context, platform domain.PlatformKey) error
	IsConnected(ctx context.Context, platform domain.PlatformKey) bool
	ConnectedPlatforms(ctx context.Context) []domain.PlatformKey
	HandleAuthError(ctx context.Context, platform domain.PlatformKey) error
	CleanupExpired(ctx context.Context) (int, error)
	DisconnectAll(ctx context.Context) error
	SelectResource(ctx context.Context, platform domain.PlatformKey, resourceID string) error
	SelectedResource(ctx context.Context, platform domain.PlatformKey) (string, error)
}

// Manager é o Token Lifecycle Manager de um único dono
type Manager struct {
	store   Store
	clock   Clock
	metrics *telemetry.Metrics
	locks   *keyLocks
	scope   string
}

func NewManager(store Store, clock Clock, metrics *telemetry.Metrics) *Manager {
	if clock == nil {
		clock = SystemClock()
	}
	return &Manager{
		store:   store,
		clock:   clock,
		metrics: metrics,
		locks:   newKeyLocks(),
	}
}

// IsExpired só considera expirado o que tem expires_at no passado.
// Registros com apenas expires_in (legado) não são provadamente expirados.
func (m *Manager) IsExpired(record *domain.CredentialRecord) bool {
	if record == nil {
		return true
	}
	if record.ExpiresAt != nil {
		return m.clock.Now().Unix() >= *record.ExpiresAt
	}
	return false
}

// Get nunca devolve credencial corrompida ou expirada: nesses casos a chave é apagada
// e o retorno é nil sem erro.
func (m *Manager) Get(ctx context.Context, platform domain.PlatformKey) (*domain.CredentialRecord, error) {
	key := platform.TokenKey()
	unlock := m.locks.lock(m.scope + key)
	defer unlock()

	raw, ok, err := m.store.Read(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "tokens: failed to read %s", key)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	record, parseErr := decode(raw)
	if parseErr != nil {
		log.Area(ctx, "tokens").WithError(parseErr).WithField("platform", platform).Warn("tokens: corrupt credential, removing")
		return nil, m.removeLocked(ctx, platform, "corrupt")
	}

	if m.IsExpired(record) {
		log.Area(ctx, "tokens").WithField("platform", platform).Info("tokens: credential expired, removing")
		return nil, m.removeLocked(ctx, platform, "expired")
	}

	if slot := platform.SelectionKey(); slot != "" {
		selected, found, err := m.store.Read(ctx, slot)
		if err != nil {
			return nil, errors.Wrapf(err, "tokens: failed to read %s", slot)
		}
		if found {
			record.SelectedResourceID = selected
		}
	}

	return record, nil
}

// Set deriva expires_at a partir de expires_in quando necessário e grava
func (m *Manager) Set(ctx context.Context, platform domain.PlatformKey, record *domain.CredentialRecord) error {
	if !record.Valid() {
		return ErrInvalidRecord
	}

	toStore := record.Clone()
	if toStore.ExpiresIn != nil && toStore.ExpiresAt == nil {
		toStore.ExpiresAt = domain.Int64Ptr(m.clock.Now().Unix() + *toStore.ExpiresIn)
	}

	payload, err := json.MarshalToString(toStore)
	if err != nil {
		return errors.Wrap(err, "tokens: failed to encode credential")
	}

	key := platform.TokenKey()
	unlock := m.locks.lock(m.scope + key)
	defer unlock()

	if err := m.store.Write(ctx, key, payload); err != nil {
		return errors.Wrapf(err, "tokens: failed to write %s", key)
	}

	record.ExpiresAt = toStore.ExpiresAt

	log.Area(ctx, "tokens").WithFields(log.Fields{
		"platform":          platform,
		"has_refresh_token": toStore.RefreshToken != "",
		"expires_at":        toStore.ExpiresAt,
	}).Debug("tokens: credential stored")

	return nil
}

// Remove apaga a credencial e a seleção de sub-recurso da plataforma
func (m *Manager) Remove(ctx context.Context, platform domain.PlatformKey) error {
	unlock := m.locks.lock(m.scope + platform.TokenKey())
	defer unlock()

	return m.removeLocked(ctx, platform, "disconnect")
}

func (m *Manager) removeLocked(ctx context.Context, platform domain.PlatformKey, reason string) error {
	key := platform.TokenKey()
	if err := m.store.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "tokens: failed to delete %s", key)
	}

	if slot := platform.SelectionKey(); slot != "" {
		if err := m.store.Delete(ctx, slot); err != nil {
			return errors.Wrapf(err, "tokens: failed to delete %s", slot)
		}
	}

	m.metrics.RecordCredentialRemoval(platform.String(), reason)
	return nil
}

func (m *Manager) IsConnected(ctx context.Context, platform domain.PlatformKey) bool {
	record, err := m.Get(ctx, platform)
	if err != nil {
		log.Area(ctx, "tokens").WithError(err).WithField("platform", platform).Warn("tokens: connection check failed")
		return false
	}
	return record != nil
}

func (m *Manager) ConnectedPlatforms(ctx context.Context) []domain.PlatformKey {
	connected := make([]domain.PlatformKey, 0, len(domain.KnownPlatforms))
	for _, platform := range domain.KnownPlatforms {
		if m.IsConnected(ctx, platform) {
			connected = append(connected, platform)
		}
	}
	return connected
}

// HandleAuthError é o único ponto que transforma um 401 da plataforma em desconexão
func (m *Manager) HandleAuthError(ctx context.Context, platform domain.PlatformKey) error {
	log.Area(ctx, "tokens").WithField("platform", platform).Warn("tokens: platform rejected credential, removing")

	unlock := m.locks.lock(m.scope + platform.TokenKey())
	defer unlock()

	return m.removeLocked(ctx, platform, "auth_error")
}

// CleanupExpired percorre as chaves conhecidas e remove expiradas ou corrompidas
func (m *Manager) CleanupExpired(ctx context.Context) (int, error) {
	keys, err := m.store.ListKnownKeys(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "tokens: failed to list keys")
	}

	removed := 0
	for _, key := range keys {
		platform, ok := domain.PlatformFromTokenKey(key)
		if !ok {
			continue
		}

		wasRemoved, err := m.cleanupKey(ctx, platform)
		if err != nil {
			return removed, err
		}
		if wasRemoved {
			removed++
		}
	}

	return removed, nil
}

func (m *Manager) cleanupKey(ctx context.Context, platform domain.PlatformKey) (bool, error) {
	key := platform.TokenKey()
	unlock := m.locks.lock(m.scope + key)
	defer unlock()

	raw, ok, err := m.store.Read(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "tokens: failed to read %s", key)
	}
	if !ok {
		return false, nil
	}

	record, parseErr := decode(raw)
	switch {
	case parseErr != nil:
		return true, m.removeLocked(ctx, platform, "corrupt")
	case m.IsExpired(record):
		log.Area(ctx, "tokens").WithField("platform", platform).Info("tokens: removing expired credential")
		return true, m.removeLocked(ctx, platform, "expired")
	default:
		return false, nil
	}
}

// DisconnectAll remove todas as chaves conhecidas (logout)
func (m *Manager) DisconnectAll(ctx context.Context) error {
	keys, err := m.store.ListKnownKeys(ctx)
	if err != nil {
		return errors.Wrap(err, "tokens: failed to list keys")
	}

	for _, key := range keys {
		platform, ok := domain.PlatformFromTokenKey(key)
		if !ok {
			continue
		}
		if err := m.Remove(ctx, platform); err != nil {
			return err
		}
	}
	return nil
}

// SelectResource guarda a página/propriedade escolhida como estado secundário
func (m *Manager) SelectResource(ctx context.Context, platform domain.PlatformKey, resourceID string) error {
	slot := platform.SelectionKey()
	if slot == "" {
		return ErrNoSelectionSlot
	}

	unlock := m.locks.lock(m.scope + platform.TokenKey())
	defer unlock()

	if err := m.store.Write(ctx, slot, resourceID); err != nil {
		return errors.Wrapf(err, "tokens: failed to write %s", slot)
	}
	return nil
}

func (m *Manager) SelectedResource(ctx context.Context, platform domain.PlatformKey) (string, error) {
	slot := platform.SelectionKey()
	if slot == "" {
		return "", nil
	}

	value, _, err := m.store.Read(ctx, slot)
	if err != nil {
		return "", errors.Wrapf(err, "tokens: failed to read %s", slot)
	}
	return value, nil
}

func decode(raw string) (*domain.CredentialRecord, error) {
	var record domain.CredentialRecord
	if err := json.UnmarshalFromString(raw, &record); err != nil {
		return nil, err
	}
	if !record.Valid() {
		return nil, ErrInvalidRecord
	}
	return &record, nil
}

// keyLocks serializa leitura-modificação-escrita por chave dentro do processo
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[string]*sync.Mutex)}
}

func (k *keyLocks) lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// ManagerProvider resolve o gerenciador de tokens de cada usuário do dashboard
type ManagerProvider interface {
	ForOwner(ownerID string) TokenManager
	Owners(ctx context.Context) ([]string, error)
}

// Provider entrega um TokenManager por dono, compartilhando backend, relógio e travas
type Provider struct {
	backend credentialstore.Backend
	clock   Clock
	metrics *telemetry.Metrics
	locks   *keyLocks
}

func NewProvider(backend credentialstore.Backend, clock Clock, metrics *telemetry.Metrics) *Provider {
	if clock == nil {
		clock = SystemClock()
	}
	return &Provider{
		backend: backend,
		clock:   clock,
		metrics: metrics,
		locks:   newKeyLocks(),
	}
}

func (p *Provider) ForOwner(ownerID string) TokenManager {
	return &Manager{
		store:   credentialstore.Scope(p.backend, ownerID),
		clock:   p.clock,
		metrics: p.metrics,
		locks:   p.locks,
		scope:   ownerID + "/",
	}
}

// Owners lista os donos com alguma credencial gravada
func (p *Provider) Owners(ctx context.Context) ([]string, error) {
	return p.backend.Owners(ctx)
}
