package validate

import "strings"

// ParseTags splits a comma-separated admin-form string into an ordered
// list of trimmed, non-empty tags. "a, b ,c" becomes ["a" "b" "c"].
func ParseTags(input string) []string {
	tags := []string{}
	for _, part := range strings.Split(input, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// NormalizeTags reconciles the two ways tags arrive from clients: the
// comma-separated tagsInput form field wins when present, otherwise the
// tags array is trimmed and cleaned. The result is never nil so that
// list reads serialize an empty array rather than null.
func NormalizeTags(tags []string, tagsInput string) []string {
	if strings.TrimSpace(tagsInput) != "" {
		return ParseTags(tagsInput)
	}
	out := []string{}
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
