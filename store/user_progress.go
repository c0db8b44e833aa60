package store

// UserProgress is the slice of a user's persisted progress that the
// recommendation engine consumes. BookmarkedTheories is accepted for callers
// that display it; it never affects scoring or filtering.
type UserProgress struct {
	ReadTheories       []string `yaml:"readTheories" json:"readTheories"`
	BookmarkedTheories []string `yaml:"bookmarkedTheories" json:"bookmarkedTheories"`
}
