package app

import "strings"

// Version is the current application core version. IsConfigured compares its
// 3-component form against the persisted configuration status.
const Version = "1.4.2"

// shortVersion truncates a version string to its first three dot-separated
// components ("1.4.2.17" becomes "1.4.2").
func shortVersion(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return strings.Join(parts, ".")
}
