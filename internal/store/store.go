// Package store is the sqlite document store behind the content and
// contact APIs, plus the visitor metrics the admin dashboard reads.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/shubhgupta/shubh-dev/internal/blog"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps the sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at path and applies
// the schema. Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		slug TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		excerpt TEXT NOT NULL,
		content TEXT NOT NULL,
		author TEXT NOT NULL,
		author_bio TEXT NOT NULL,
		date TEXT NOT NULL,
		read_time TEXT NOT NULL,
		tags TEXT NOT NULL DEFAULT '[]',
		thumbnail TEXT,
		published INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_posts_published_date ON posts(published, date DESC);

	CREATE TABLE IF NOT EXISTS contacts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_contacts_status ON contacts(status, created_at DESC);

	CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

// --- posts ---

// CreatePost inserts a post. A missing ID, slug or read time is derived.
func (s *Store) CreatePost(p *blog.Post) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Slug == "" {
		p.Slug = blog.Slugify(p.Title)
	}
	if p.ReadTime == "" {
		p.ReadTime = blog.ReadTime(p.Content)
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return fmt.Errorf("encoding tags: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO posts (id, slug, title, excerpt, content, author, author_bio,
			date, read_time, tags, thumbnail, published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Slug, p.Title, p.Excerpt, p.Content, p.Author, p.AuthorBio,
		p.Date, p.ReadTime, string(tags), p.Thumbnail, boolInt(p.Published),
		p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting post %q: %w", p.Slug, err)
	}
	return nil
}

// GetPostBySlug returns a published post, or ErrNotFound.
func (s *Store) GetPostBySlug(slug string) (*blog.Post, error) {
	row := s.db.QueryRow(`
		SELECT id, slug, title, excerpt, content, author, author_bio,
			date, read_time, tags, COALESCE(thumbnail, ''), published,
			created_at, updated_at
		FROM posts WHERE slug = ? AND published = 1
	`, slug)
	return scanPost(row)
}

// ListPosts returns previews of every published post, newest first.
func (s *Store) ListPosts() ([]blog.Preview, error) {
	rows, err := s.db.Query(`
		SELECT id, slug, title, excerpt, content, author, author_bio,
			date, read_time, tags, COALESCE(thumbnail, ''), published,
			created_at, updated_at
		FROM posts WHERE published = 1
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	defer rows.Close()

	var previews []blog.Preview
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		previews = append(previews, p.Preview())
	}
	return previews, rows.Err()
}

// CountPosts counts all posts, published or not.
func (s *Store) CountPosts() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting posts: %w", err)
	}
	return n, nil
}

// SeedPosts inserts posts only when the table is empty.
func (s *Store) SeedPosts(posts []blog.Post) error {
	n, err := s.CountPosts()
	if err != nil || n > 0 {
		return err
	}
	for i := range posts {
		if err := s.CreatePost(&posts[i]); err != nil {
			return err
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (*blog.Post, error) {
	var p blog.Post
	var tags string
	var published int
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content,
		&p.Author, &p.AuthorBio, &p.Date, &p.ReadTime, &tags, &p.Thumbnail,
		&published, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning post: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
		return nil, fmt.Errorf("decoding tags: %w", err)
	}
	p.Published = published != 0
	return &p, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
