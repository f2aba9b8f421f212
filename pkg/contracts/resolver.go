package contracts

// URLResolver derives the application base URL from configuration or from
// previously observed request state. Resolvers report ok=false when they
// cannot produce a URL so the registry can try the next one.
type URLResolver interface {
	ResolveURL(cfg Config) (string, bool)
}
