package cache

import "strings"

const keyPrefix = "careerfit"

// GenerateCacheKey joins key parts under the application prefix.
func GenerateCacheKey(parts ...string) string {
	return keyPrefix + ":" + strings.Join(parts, ":")
}

// QuestionKey is the cache key for a single question by ID.
func QuestionKey(questionID string) string {
	return GenerateCacheKey("question", questionID)
}
