package cache

import "strings"

const (
	GlobalKeyPrefix = "vocabdrills"
)

// GenerateCacheKey builds a colon separated key under GlobalKeyPrefix.
// Extra params are joined by "_" into a trailing segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// QuestionBankKey is the key a parsed question bank is cached under.
// limit is part of the key so banks parsed with different caps never mix.
func QuestionBankKey(sourceName string, limit string) string {
	return GenerateCacheKey("drills", "bank", sanitize(sourceName), "limit", limit)
}

// sanitize keeps source names (paths, URLs) from adding key separators.
func sanitize(s string) string {
	return strings.NewReplacer(":", "_", " ", "_").Replace(s)
}
