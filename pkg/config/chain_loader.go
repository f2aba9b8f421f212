package config

// chainLoader merges layers from several loaders; later loaders win on
// conflicts, nested maps merge recursively. Loaders that fail to produce a
// layer are skipped, but at least one must succeed.
type chainLoader struct {
	loaders []Loader
}

func (c *chainLoader) Load() (map[string]any, error) {
	final := make(map[string]any)
	loaded := false
	var lastErr error

	for _, loader := range c.loaders {
		values, err := loader.Load()
		if err != nil {
			lastErr = err
			continue
		}
		loaded = true
		mergeMaps(final, values)
	}

	if !loaded {
		return nil, ErrNoConfigSource.WithCause(lastErr)
	}

	return final, nil
}

func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		if srcMap, ok := v.(map[string]any); ok {
			if dstMap, ok := dst[k].(map[string]any); ok {
				mergeMaps(dstMap, srcMap)
				continue
			}
		}
		dst[k] = v
	}
}
