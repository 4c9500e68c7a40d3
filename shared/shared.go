package shared

import (
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins prefix and the non-empty parts into a single cache key.
func BuildCacheKey(prefix string, parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, prefix)

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		segments = append(segments, part)
	}

	return strings.Join(segments, cacheKeySeparator)
}
