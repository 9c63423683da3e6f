package blog

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
	slugTrim     = regexp.MustCompile(`^-+|-+$`)
	leadingInt   = regexp.MustCompile(`^\d+`)
)

// ReadTime estimates a reading time label from post content.
func ReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// Slugify derives a URL-safe slug from a title.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return slugTrim.ReplaceAllString(s, "")
}

// ExtractTags returns all unique tags across previews, sorted ascending.
func ExtractTags(previews []Preview) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range previews {
		for _, t := range p.Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// readMinutes parses the leading integer of a read time label, so
// "8 min read" compares as 8. Labels with no leading digits parse as 0.
func readMinutes(label string) int {
	m := leadingInt.FindString(strings.TrimSpace(label))
	if m == "" {
		return 0
	}
	n := 0
	for _, c := range m {
		n = n*10 + int(c-'0')
	}
	return n
}
