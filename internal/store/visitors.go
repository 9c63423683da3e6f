package store

import (
	"fmt"
	"time"
)

// VisitorMetric is one tracked page view. IPs are stored hashed.
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// VisitorStats summarizes traffic for the admin dashboard.
type VisitorStats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

// RecordVisitor inserts one page view.
func (s *Store) RecordVisitor(hashedIP, userAgent, path string) error {
	_, err := s.db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("recording visitor: %w", err)
	}
	return nil
}

// GetVisitorStats aggregates visitor metrics.
func (s *Store) GetVisitorStats() (*VisitorStats, error) {
	stats := &VisitorStats{}

	queries := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, &stats.TotalVisitors},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM visitors WHERE DATE(timestamp) = DATE('now')`, &stats.VisitorsToday},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= datetime('now', '-7 days')`, &stats.VisitorsThisWeek},
	}
	for _, q := range queries {
		if err := s.db.QueryRow(q.query).Scan(q.dest); err != nil {
			return nil, fmt.Errorf("visitor stats: %w", err)
		}
	}

	rows, err := s.db.Query(`
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors ORDER BY timestamp DESC LIMIT 50
	`)
	if err != nil {
		return nil, fmt.Errorf("recent visitors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v VisitorMetric
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			continue
		}
		stats.RecentVisitors = append(stats.RecentVisitors, v)
	}
	return stats, rows.Err()
}

// CleanupVisitors removes records older than 12 months.
func (s *Store) CleanupVisitors() (int64, error) {
	res, err := s.db.Exec(`
		DELETE FROM visitors WHERE timestamp < datetime('now', '-12 months')
	`)
	if err != nil {
		return 0, fmt.Errorf("visitor cleanup: %w", err)
	}
	return res.RowsAffected()
}
