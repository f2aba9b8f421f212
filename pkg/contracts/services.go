package contracts

// ServiceRegistry is the named service registry facility. The application
// context only holds and returns it; registration and lookup belong to
// bootstrap code and the services themselves.
type ServiceRegistry interface {
	Register(name string, service any) error
	Get(name string) (any, error)
	Has(name string) bool
	Names() []string
}
