package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// envLoader reads prefixed environment variables into nested config values.
// "APP_DATABASE__DSN=..." with prefix "APP_" becomes "database.dsn".
// A .env file, when present, is loaded into the environment first.
type envLoader struct {
	prefix   string
	envFiles []string
}

func (l *envLoader) Load() (map[string]any, error) {
	// Missing .env files are not an error: the environment itself may be
	// fully populated by the host.
	if len(l.envFiles) > 0 {
		_ = godotenv.Load(l.envFiles...)
	} else {
		_ = godotenv.Load()
	}

	values := make(map[string]any)
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}

		parts := strings.SplitN(env, "=", 2)
		key := strings.ToLower(strings.TrimPrefix(parts[0], l.prefix))
		key = strings.ReplaceAll(key, "__", ".")

		setNested(values, key, coerce(parts[1]))
	}

	return values, nil
}

func coerce(value string) any {
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

func setNested(m map[string]any, key string, value any) {
	keys := strings.Split(key, ".")
	last := len(keys) - 1

	current := m
	for i, k := range keys {
		if i == last {
			current[k] = value
			continue
		}
		next, ok := current[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[k] = next
		}
		current = next
	}
}
