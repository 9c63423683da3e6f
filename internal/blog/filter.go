package blog

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// titleCollator orders titles with locale-aware comparison. Collators are
// not safe for concurrent use, so each sort builds its own.
func titleCollator() *collate.Collator {
	return collate.New(language.English)
}

// ApplyFilters is the pure filter/sort engine: it narrows previews by
// search text, tag set and author, then orders them. Active filters
// combine with AND; absent fields impose no constraint. Input order is
// preserved when SortBy is unset. Pagination is separate, see Paginate.
func ApplyFilters(previews []Preview, f *Filters) []Preview {
	out := make([]Preview, 0, len(previews))
	out = append(out, previews...)
	if f == nil {
		return out
	}

	if f.Search != "" {
		query := strings.ToLower(f.Search)
		out = keep(out, func(p Preview) bool { return matchesQuery(p, query) })
	}

	if len(f.Tags) > 0 {
		out = keep(out, func(p Preview) bool { return hasAnyTag(p, f.Tags) })
	}

	if f.Author != "" {
		out = keep(out, func(p Preview) bool { return p.Author == f.Author })
	}

	if f.SortBy != "" {
		sortPreviews(out, f.SortBy, f.SortOrder)
	}

	return out
}

// matchesQuery reports whether the lowercase query is a substring of the
// title, the excerpt, or any tag.
func matchesQuery(p Preview, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Excerpt), query) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

// hasAnyTag implements OR semantics: the preview survives if it carries at
// least one of the requested tags.
func hasAnyTag(p Preview, tags []string) bool {
	for _, want := range tags {
		for _, have := range p.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

func keep(previews []Preview, pred func(Preview) bool) []Preview {
	out := previews[:0]
	for _, p := range previews {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// sortPreviews orders previews in place. Direction defaults to descending
// when unset, matching the listing's newest-first default.
func sortPreviews(previews []Preview, sortBy, sortOrder string) {
	var cmp func(a, b Preview) int
	switch sortBy {
	case SortByDate:
		cmp = func(a, b Preview) int {
			at, bt := parseDate(a.Date), parseDate(b.Date)
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			}
			return 0
		}
	case SortByTitle:
		coll := titleCollator()
		cmp = func(a, b Preview) int {
			return coll.CompareString(a.Title, b.Title)
		}
	case SortByReadTime:
		cmp = func(a, b Preview) int {
			return readMinutes(a.ReadTime) - readMinutes(b.ReadTime)
		}
	default:
		return
	}

	sign := -1
	if sortOrder == SortAsc {
		sign = 1
	}
	sort.SliceStable(previews, func(i, j int) bool {
		return sign*cmp(previews[i], previews[j]) < 0
	})
}

func parseDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Paginate slices one page out of previews. Page is 1-based; zero values
// take the defaults. Out-of-range pages return an empty slice, not an error.
func Paginate(previews []Preview, page, limit int) ([]Preview, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = PostsPerPage
	}

	total := len(previews)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return previews[start:end], Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}
