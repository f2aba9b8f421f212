package services

import (
	"sort"
	"sync"

	"github.com/shuldan/appcore/pkg/contracts"
)

type registry struct {
	mu       sync.RWMutex
	services map[string]any
}

// NewRegistry returns an empty named service registry. The application
// context holds it opaquely; registration happens during bootstrap.
func NewRegistry() contracts.ServiceRegistry {
	return &registry{
		services: make(map[string]any),
	}
}

func (r *registry) Register(name string, service any) error {
	if service == nil {
		return ErrNilService.WithDetail("name", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.services[name]; exists {
		return ErrDuplicateService.WithDetail("name", name)
	}
	r.services[name] = service
	return nil
}

func (r *registry) Get(name string) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, exists := r.services[name]
	if !exists {
		return nil, ErrServiceNotFound.WithDetail("name", name)
	}
	return service, nil
}

func (r *registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.services[name]
	return exists
}

func (r *registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
