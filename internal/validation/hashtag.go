package validation

import (
	"regexp"
	"strings"
)

var hashtagRegex = regexp.MustCompile(`#([A-Za-z0-9_]+)`)

// ExtractHashtags returns the hashtag names in content, lowercased and
// de-duplicated, in order of first appearance. The leading '#' is stripped.
func ExtractHashtags(content string) []string {
	matches := hashtagRegex.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tag := strings.ToLower(m[1])
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
