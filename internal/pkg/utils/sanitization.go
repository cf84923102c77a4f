package utils

import "strings"

// CleanWhiteSpaceFromEachStringOfAnArray trims every entry and drops the ones
// left empty.
func CleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		if v = strings.TrimSpace(v); v != "" {
			sanitizedArray = append(sanitizedArray, v)
		}
	}
	return sanitizedArray
}

// SanitizeStringMap trims keys and values; entries with an empty key or
// value are dropped.
func SanitizeStringMap(input map[string]string) map[string]string {
	sanitized := make(map[string]string, len(input))
	for k, v := range input {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		sanitized[k] = v
	}
	return sanitized
}
