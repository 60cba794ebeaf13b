package server

import (
	"fmt"
	"sort"
	"sync"
)

// ProviderFactory is implemented by every store factory
type ProviderFactory interface {
	// SupportedProvider returns the provider name this factory supports
	SupportedProvider() string
}

// ProviderRegistry manages registered factories of one kind of store
type ProviderRegistry[F ProviderFactory] struct {
	mu        sync.RWMutex
	kind      string
	factories map[string]F
}

// NewProviderRegistry creates an empty registry. kind names the store in errors.
func NewProviderRegistry[F ProviderFactory](kind string) *ProviderRegistry[F] {
	return &ProviderRegistry[F]{
		kind:      kind,
		factories: make(map[string]F),
	}
}

// Register registers a factory for a provider
func (r *ProviderRegistry[F]) Register(provider string, factory F) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if factory.SupportedProvider() != provider {
		panic(fmt.Sprintf("factory provider mismatch: expected %s, got %s", provider, factory.SupportedProvider()))
	}

	r.factories[provider] = factory
}

// GetFactory retrieves a factory for a provider
func (r *ProviderRegistry[F]) GetFactory(provider string) (F, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[provider]
	if !exists {
		var zero F
		return zero, fmt.Errorf("unsupported %s provider: %s (supported: %v)", r.kind, provider, r.getProviderNames())
	}

	return factory, nil
}

// GetProviders returns the registered provider names in sorted order
func (r *ProviderRegistry[F]) GetProviders() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getProviderNames()
}

// getProviderNames returns provider names (must be called with read lock held)
func (r *ProviderRegistry[F]) getProviderNames() []string {
	providers := make([]string, 0, len(r.factories))
	for provider := range r.factories {
		providers = append(providers, provider)
	}
	sort.Strings(providers)
	return providers
}
