package recommend

import (
	"log/slog"
	"sort"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"

	"github.com/launchpath/launchpath/store"
)

// ContentKind discriminates the payload of a RecommendationItem or CrossLink.
type ContentKind string

const (
	KindTheory   ContentKind = "theory"
	KindBlogPost ContentKind = "blog-post"
	KindProject  ContentKind = "project"
)

// RecommendationItem is one ranked entry of a mixed recommendation. Exactly
// one payload field, the one matching Kind, is set. Score orders results
// within a single call; its magnitude is not a stable contract.
type RecommendationItem struct {
	Kind     ContentKind
	Theory   *store.Theory
	BlogPost *store.BlogPostReference
	Project  *store.ProjectReference
	Score    float64
}

// ContentURL returns the navigation target for the item's payload.
func (item RecommendationItem) ContentURL() string {
	switch item.Kind {
	case KindTheory:
		return theoryURLPrefix + item.Theory.ID
	case KindBlogPost:
		return blogURLPrefix + item.BlogPost.Slug
	case KindProject:
		return projectsURL
	}
	return ""
}

// ContentTitle returns the display title for the item's payload.
func (item RecommendationItem) ContentTitle() string {
	switch item.Kind {
	case KindTheory:
		return item.Theory.Title
	case KindBlogPost:
		return item.BlogPost.Title
	case KindProject:
		return item.Project.Title
	}
	return ""
}

// URL templates consumed by the routing layer. Changing them breaks
// navigation for every caller that stored a link.
const (
	theoryURLPrefix = "/dashboard/knowledge-hub/theory/"
	blogURLPrefix   = "/blog/"
	projectsURL     = "/projects"
)

// Engine ranks catalogue content against a reading context: the theory the
// user is viewing, or the categories they are browsing. All queries operate
// on in-memory snapshots and never touch a store.
type Engine struct {
	catalogue *store.Catalogue
	logger    *slog.Logger
}

// NewEngine creates an engine seeded with the given collections. blogPosts
// and projects may be nil; every query then degrades to theory-only results.
func NewEngine(theories []*store.Theory, blogPosts []*store.BlogPostReference, projects []*store.ProjectReference) *Engine {
	return &Engine{
		catalogue: store.NewCatalogue(theories, blogPosts, projects),
		logger:    slog.Default(),
	}
}

// WithLogger replaces the engine's logger and returns the engine.
func (e *Engine) WithLogger(logger *slog.Logger) *Engine {
	if logger != nil {
		e.logger = logger
	}
	return e
}

// Catalogue exposes the engine's catalogue for listing and lookup.
func (e *Engine) Catalogue() *store.Catalogue {
	return e.catalogue
}

// UpdateTheories replaces the theory catalogue wholesale.
func (e *Engine) UpdateTheories(theories []*store.Theory) {
	e.catalogue.ReplaceTheories(theories)
}

// UpdateBlogPosts replaces the blog post catalogue wholesale.
func (e *Engine) UpdateBlogPosts(blogPosts []*store.BlogPostReference) {
	e.catalogue.ReplaceBlogPosts(blogPosts)
}

// UpdateProjects replaces the project catalogue wholesale.
func (e *Engine) UpdateProjects(projects []*store.ProjectReference) {
	e.catalogue.ReplaceProjects(projects)
}

// RelatedTheories returns up to limit theories ranked by relevance to
// source. The source itself is excluded, as is every theory the supplied
// progress marks read. Equal scores keep catalogue order, so output is
// deterministic for a fixed catalogue.
func (e *Engine) RelatedTheories(source *store.Theory, progress *store.UserProgress, limit int) ([]*store.Theory, error) {
	if source == nil {
		return nil, errors.New("source theory is required")
	}
	if limit < 0 {
		return nil, errors.Errorf("limit must be non-negative, got %d", limit)
	}
	if limit == 0 {
		return []*store.Theory{}, nil
	}

	read := readSet(progress)

	type scoredTheory struct {
		theory *store.Theory
		score  float64
	}
	var candidates []scoredTheory
	for _, candidate := range e.catalogue.Theories() {
		if candidate.ID == source.ID {
			continue
		}
		if _, ok := read[candidate.ID]; ok {
			continue
		}
		candidates = append(candidates, scoredTheory{candidate, scoreTheories(source, candidate)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]*store.Theory, len(candidates))
	for i, candidate := range candidates {
		out[i] = candidate.theory
	}
	e.logger.Debug("related theories ranked",
		"request_id", shortuuid.New(),
		"source", source.ID,
		"returned", len(out))
	return out, nil
}

// ContentRecommendations returns up to limit mixed recommendations for a
// user browsing the given categories. Theories come from the requested
// categories minus read ones; blog posts qualify by sharing a tag with any
// theory in those categories; projects qualify through the category keyword
// mapping. When any unread theory is available, at least one theory item
// survives truncation.
func (e *Engine) ContentRecommendations(categories []store.Category, progress *store.UserProgress, limit int) ([]RecommendationItem, error) {
	if limit < 0 {
		return nil, errors.Errorf("limit must be non-negative, got %d", limit)
	}
	if limit == 0 || len(categories) == 0 {
		return []RecommendationItem{}, nil
	}

	read := readSet(progress)
	wanted := make(map[store.Category]struct{}, len(categories))
	for _, category := range categories {
		wanted[category] = struct{}{}
	}

	theories := e.catalogue.Theories()

	// How many requested-category theories carry each tag. Used both for
	// blog qualification and for ranking theories by affinity with the
	// rest of the requested categories.
	tagCounts := make(map[string]int)
	for _, theory := range theories {
		if _, ok := wanted[theory.Category]; !ok {
			continue
		}
		for _, tag := range uniqueTags(theory.Metadata.Tags) {
			tagCounts[tag]++
		}
	}

	var items []RecommendationItem
	var topTheory *RecommendationItem
	for _, theory := range theories {
		if _, ok := wanted[theory.Category]; !ok {
			continue
		}
		if _, ok := read[theory.ID]; ok {
			continue
		}
		shared := 0
		for _, tag := range uniqueTags(theory.Metadata.Tags) {
			if tagCounts[tag] >= 2 { // some other requested-category theory has it too
				shared++
			}
		}
		item := RecommendationItem{
			Kind:   KindTheory,
			Theory: theory,
			Score:  scoreCategoryMatch + scoreTagOverlap*float64(shared),
		}
		items = append(items, item)
		if topTheory == nil || item.Score > topTheory.Score {
			copied := item
			topTheory = &copied
		}
	}

	for _, post := range e.catalogue.BlogPosts() {
		shared := 0
		for _, tag := range uniqueTags(post.Tags) {
			if tagCounts[tag] > 0 {
				shared++
			}
		}
		if shared == 0 {
			continue
		}
		items = append(items, RecommendationItem{
			Kind:     KindBlogPost,
			BlogPost: post,
			Score:    scoreTagOverlap * float64(shared),
		})
	}

	for _, project := range e.catalogue.Projects() {
		matches := projectMatchCount(project, categories)
		if matches == 0 {
			continue
		}
		items = append(items, RecommendationItem{
			Kind:    KindProject,
			Project: project,
			Score:   float64(matches),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	if len(items) > limit {
		items = items[:limit]
	}

	// Secondary content must never fully crowd out available theories.
	if topTheory != nil && !containsKind(items, KindTheory) {
		items[len(items)-1] = *topTheory
	}

	e.logger.Debug("content recommendations composed",
		"request_id", shortuuid.New(),
		"categories", len(categories),
		"returned", len(items))
	return items, nil
}

func containsKind(items []RecommendationItem, kind ContentKind) bool {
	for _, item := range items {
		if item.Kind == kind {
			return true
		}
	}
	return false
}
