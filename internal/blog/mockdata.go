package blog

import "time"

// mockPosts is the development content set served until the backend is
// connected.
var mockPosts = []Post{
	{
		ID:        "1",
		Slug:      "design-patterns-software-engineering",
		Title:     "Design Patterns in Software Engineering",
		Excerpt:   "A comprehensive guide to essential design patterns, their use cases, and practical implementations in modern software development.",
		Content:   "# Design Patterns in Software Engineering\n\nContent coming soon...",
		Author:    "Shubh Gupta",
		AuthorBio: "Graduate SDE at Fynd, building scalable systems",
		Date:      "2025-11-10",
		ReadTime:  "12 min read",
		Tags:      []string{"Design Patterns", "Software Engineering", "Architecture"},
		Published: true,
		CreatedAt: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:        "2",
		Slug:      "building-scalable-data-pipelines-with-kafka",
		Title:     "Building Scalable Data Pipelines with Kafka",
		Excerpt:   "Lessons from running sales automation on Kafka: partitioning strategy, consumer group rebalancing, and keeping throughput predictable.",
		Content:   "# Building Scalable Data Pipelines with Kafka\n\nContent coming soon...",
		Author:    "Shubh Gupta",
		AuthorBio: "Graduate SDE at Fynd, building scalable systems",
		Date:      "2025-10-28",
		ReadTime:  "9 min read",
		Tags:      []string{"Kafka", "Backend"},
		Published: true,
		CreatedAt: time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:        "3",
		Slug:      "observability-beyond-dashboards",
		Title:     "Observability Beyond Dashboards",
		Excerpt:   "Monitoring tells you something broke; observability tells you why. Structured logs, traces, and the questions they let you ask.",
		Content:   "# Observability Beyond Dashboards\n\nContent coming soon...",
		Author:    "Shubh Gupta",
		AuthorBio: "Graduate SDE at Fynd, building scalable systems",
		Date:      "2025-09-15",
		ReadTime:  "7 min read",
		Tags:      []string{"Observability", "Monitoring", "DevOps"},
		Published: true,
		CreatedAt: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:        "4",
		Slug:      "multi-tenancy-design-tradeoffs",
		Title:     "Multi-Tenancy Design Tradeoffs",
		Excerpt:   "Shared schema, schema-per-tenant, or database-per-tenant? Picking an isolation model before the first customer forces your hand.",
		Content:   "# Multi-Tenancy Design Tradeoffs\n\nContent coming soon...",
		Author:    "Shubh Gupta",
		AuthorBio: "Graduate SDE at Fynd, building scalable systems",
		Date:      "2025-08-02",
		ReadTime:  "11 min read",
		Tags:      []string{"Multi-Tenancy", "System Design", "Backend"},
		Published: true,
		CreatedAt: time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:        "5",
		Slug:      "git-workflows-that-scale",
		Title:     "Git Workflows That Scale",
		Excerpt:   "Trunk-based development, feature flags, and why long-lived branches quietly tax every team that keeps them.",
		Content:   "# Git Workflows That Scale\n\nContent coming soon...",
		Author:    "Shubh Gupta",
		AuthorBio: "Graduate SDE at Fynd, building scalable systems",
		Date:      "2025-06-20",
		ReadTime:  "5 min read",
		Tags:      []string{"Git", "Version Control", "SDLC"},
		Published: true,
		CreatedAt: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
	},
}

// MockPosts returns a copy of the built-in post set, for seeding the store.
func MockPosts() []Post {
	posts := make([]Post, len(mockPosts))
	copy(posts, mockPosts)
	return posts
}
