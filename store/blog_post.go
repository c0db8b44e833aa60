package store

import "time"

// BlogPostReference points at a published blog article. The engine only uses
// Tags for matching and Slug for URL construction; everything else is
// display-only.
type BlogPostReference struct {
	ID          string    `yaml:"id" json:"id"`
	Title       string    `yaml:"title" json:"title"`
	Slug        string    `yaml:"slug" json:"slug"`
	Tags        []string  `yaml:"tags" json:"tags"`
	Excerpt     string    `yaml:"excerpt" json:"excerpt"`
	PublishedAt time.Time `yaml:"publishedAt" json:"publishedAt"`
	ReadTime    int       `yaml:"readTime" json:"readTime"`
}
