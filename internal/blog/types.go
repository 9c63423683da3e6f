// Package blog holds the blog content domain: post documents, list
// previews, and the filter/sort/paginate contract shared by the mock and
// remote content services.
package blog

import "time"

const (
	// PostsPerPage is the default page size.
	PostsPerPage = 10
	// MaxExcerptLength caps excerpt length on a post document.
	MaxExcerptLength = 500
	// WordsPerMinute is the reading speed used for read time estimates.
	WordsPerMinute = 200
)

// Post is a full blog post document. Owned by the backing store; the
// service layer only ever holds transient copies.
type Post struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	AuthorBio string    `json:"authorBio"`
	Date      string    `json:"date"`
	ReadTime  string    `json:"readTime"`
	Tags      []string  `json:"tags"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Preview is the list projection of a post: everything needed to render a
// blog index row, nothing from the full body.
type Preview struct {
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Date      string   `json:"date"`
	ReadTime  string   `json:"readTime"`
	Tags      []string `json:"tags"`
	Author    string   `json:"author"`
	Thumbnail string   `json:"thumbnail,omitempty"`
}

// Preview projects the post to its list shape.
func (p *Post) Preview() Preview {
	return Preview{
		Slug:      p.Slug,
		Title:     p.Title,
		Excerpt:   p.Excerpt,
		Date:      p.Date,
		ReadTime:  p.ReadTime,
		Tags:      p.Tags,
		Author:    p.Author,
		Thumbnail: p.Thumbnail,
	}
}

// Sort keys accepted in Filters.SortBy.
const (
	SortByDate     = "date"
	SortByTitle    = "title"
	SortByReadTime = "readTime"
)

// Sort directions accepted in Filters.SortOrder.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Filters narrows, orders and pages a post listing. Every field is
// optional; a zero field means "no constraint", never "match nothing".
type Filters struct {
	Search    string   `json:"search,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Author    string   `json:"author,omitempty"`
	SortBy    string   `json:"sortBy,omitempty"`
	SortOrder string   `json:"sortOrder,omitempty"`
	Page      int      `json:"page,omitempty"`
	Limit     int      `json:"limit,omitempty"`
}

// Pagination describes the page returned by a listing call.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// PaginatedPreviews is one page of previews plus pagination metadata.
type PaginatedPreviews struct {
	Data       []Preview  `json:"data"`
	Pagination Pagination `json:"pagination"`
}
