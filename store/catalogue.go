package store

import "sync"

// Catalogue holds the in-memory content collections the recommendation
// engine works over. Each collection is only ever replaced wholesale: a
// replacement swaps the slice reference, so a query that already took its
// snapshot keeps reading the old collection undisturbed.
type Catalogue struct {
	mu        sync.RWMutex
	theories  []*Theory
	blogPosts []*BlogPostReference
	projects  []*ProjectReference
}

// NewCatalogue creates a catalogue seeded with the given collections.
// blogPosts and projects may be nil. Input slices are copied so callers
// cannot mutate the catalogue's internal state afterwards.
func NewCatalogue(theories []*Theory, blogPosts []*BlogPostReference, projects []*ProjectReference) *Catalogue {
	c := &Catalogue{}
	c.ReplaceTheories(theories)
	c.ReplaceBlogPosts(blogPosts)
	c.ReplaceProjects(projects)
	return c
}

// ReplaceTheories swaps the theory collection wholesale. No merging or
// diffing: after the swap, queries see the new collection only.
func (c *Catalogue) ReplaceTheories(theories []*Theory) {
	copied := make([]*Theory, len(theories))
	copy(copied, theories)
	c.mu.Lock()
	c.theories = copied
	c.mu.Unlock()
}

// ReplaceBlogPosts swaps the blog post collection wholesale.
func (c *Catalogue) ReplaceBlogPosts(blogPosts []*BlogPostReference) {
	copied := make([]*BlogPostReference, len(blogPosts))
	copy(copied, blogPosts)
	c.mu.Lock()
	c.blogPosts = copied
	c.mu.Unlock()
}

// ReplaceProjects swaps the project collection wholesale.
func (c *Catalogue) ReplaceProjects(projects []*ProjectReference) {
	copied := make([]*ProjectReference, len(projects))
	copy(copied, projects)
	c.mu.Lock()
	c.projects = copied
	c.mu.Unlock()
}

// Theories returns a snapshot of the theory collection. The returned slice
// is the caller's to keep; later replacements do not change it.
func (c *Catalogue) Theories() []*Theory {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Theory, len(c.theories))
	copy(out, c.theories)
	return out
}

// BlogPosts returns a snapshot of the blog post collection.
func (c *Catalogue) BlogPosts() []*BlogPostReference {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*BlogPostReference, len(c.blogPosts))
	copy(out, c.blogPosts)
	return out
}

// Projects returns a snapshot of the project collection.
func (c *Catalogue) Projects() []*ProjectReference {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*ProjectReference, len(c.projects))
	copy(out, c.projects)
	return out
}

// GetTheory returns the theory with the given id, or nil if the current
// collection has no such theory.
func (c *Catalogue) GetTheory(id string) *Theory {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, theory := range c.theories {
		if theory.ID == id {
			return theory
		}
	}
	return nil
}
