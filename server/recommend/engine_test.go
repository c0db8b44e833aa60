package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchpath/launchpath/store"
)

func theoryAnchoring() *store.Theory {
	return &store.Theory{
		ID:       "anchoring-bias",
		Title:    "Anchoring Bias",
		Category: store.CategoryCognitiveBiases,
		Metadata: store.TheoryMetadata{Tags: []string{"pricing", "decision-making", "first-impression"}},
	}
}

func theoryScarcity() *store.Theory {
	return &store.Theory{
		ID:       "scarcity-principle",
		Title:    "Scarcity Principle",
		Category: store.CategoryPersuasion,
		Metadata: store.TheoryMetadata{Tags: []string{"scarcity", "urgency", "conversion"}},
	}
}

func theoryLossAversion() *store.Theory {
	return &store.Theory{
		ID:       "loss-aversion",
		Title:    "Loss Aversion",
		Category: store.CategoryBehavioralEconomics,
		Metadata: store.TheoryMetadata{Tags: []string{"loss", "risk", "decision-making"}},
	}
}

func theoryTestimonials() *store.Theory {
	return &store.Theory{
		ID:       "social-proof",
		Title:    "Social Proof",
		Category: store.CategoryPersuasion,
		Metadata: store.TheoryMetadata{Tags: []string{"testimonials", "credibility", "influence"}},
	}
}

func testEngine() *Engine {
	return NewEngine(
		[]*store.Theory{theoryAnchoring(), theoryScarcity(), theoryLossAversion()},
		[]*store.BlogPostReference{
			{ID: "post-pricing", Title: "Pricing Anchors", Slug: "pricing-anchors", Tags: []string{"pricing", "conversion"}},
			{ID: "post-offtopic", Title: "Hiring Your First Engineer", Slug: "hiring-first-engineer", Tags: []string{"hiring"}},
		},
		[]*store.ProjectReference{
			{ID: "proj-marketing", Title: "Campaign Revamp", Category: "marketing"},
			{ID: "proj-legal", Title: "Compliance Audit", Category: "legal"},
		},
	)
}

func relatedIDs(t *testing.T, engine *Engine, source *store.Theory, progress *store.UserProgress, limit int) []string {
	t.Helper()
	related, err := engine.RelatedTheories(source, progress, limit)
	require.NoError(t, err)
	ids := make([]string, 0, len(related))
	for _, theory := range related {
		ids = append(ids, theory.ID)
	}
	return ids
}

func TestRelatedTheoriesExcludesSource(t *testing.T) {
	engine := testEngine()
	ids := relatedIDs(t, engine, theoryAnchoring(), nil, 10)

	assert.NotContains(t, ids, "anchoring-bias")
	assert.Len(t, ids, 2)
}

func TestRelatedTheoriesExcludesRead(t *testing.T) {
	engine := testEngine()
	progress := &store.UserProgress{ReadTheories: []string{"anchoring-bias"}}

	// The concrete contract scenario: only two other theories exist and one
	// of them is read, so exactly loss-aversion comes back.
	ids := relatedIDs(t, engine, theoryScarcity(), progress, 2)
	assert.Equal(t, []string{"loss-aversion"}, ids)
}

func TestRelatedTheoriesBookmarksDoNotFilter(t *testing.T) {
	engine := testEngine()
	progress := &store.UserProgress{BookmarkedTheories: []string{"loss-aversion"}}

	ids := relatedIDs(t, engine, theoryScarcity(), progress, 10)
	assert.Contains(t, ids, "loss-aversion")
}

func TestRelatedTheoriesTagOverlapRanks(t *testing.T) {
	engine := NewEngine([]*store.Theory{
		theoryAnchoring(),
		theoryTestimonials(), // no shared tags with anchoring
		theoryLossAversion(), // shares decision-making
	}, nil, nil)

	ids := relatedIDs(t, engine, theoryAnchoring(), nil, 2)
	assert.Equal(t, []string{"loss-aversion", "social-proof"}, ids,
		"a shared tag must outrank no overlap")
}

func TestRelatedTheoriesCategoryBeatsEqualOverlap(t *testing.T) {
	sameCategory := &store.Theory{ID: "framing-effect", Category: store.CategoryCognitiveBiases}
	engine := NewEngine([]*store.Theory{
		theoryAnchoring(),
		theoryTestimonials(), // different category, zero overlap
		sameCategory,         // same category, zero overlap
	}, nil, nil)

	ids := relatedIDs(t, engine, theoryAnchoring(), nil, 2)
	assert.Equal(t, []string{"framing-effect", "social-proof"}, ids)
}

func TestRelatedTheoriesStableTieOrder(t *testing.T) {
	// Three candidates with identical zero scores keep catalogue order.
	a := &store.Theory{ID: "a", Category: store.CategoryUXPsychology}
	b := &store.Theory{ID: "b", Category: store.CategoryUXPsychology}
	c := &store.Theory{ID: "c", Category: store.CategoryUXPsychology}
	engine := NewEngine([]*store.Theory{theoryAnchoring(), a, b, c}, nil, nil)

	ids := relatedIDs(t, engine, theoryAnchoring(), nil, 3)
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestRelatedTheoriesLimit(t *testing.T) {
	engine := testEngine()

	assert.Len(t, relatedIDs(t, engine, theoryAnchoring(), nil, 1), 1)
	assert.Len(t, relatedIDs(t, engine, theoryAnchoring(), nil, 50), 2, "short catalogues return what exists")
	assert.Empty(t, relatedIDs(t, engine, theoryAnchoring(), nil, 0))
}

func TestRelatedTheoriesNegativeLimit(t *testing.T) {
	engine := testEngine()
	_, err := engine.RelatedTheories(theoryAnchoring(), nil, -1)
	assert.Error(t, err)
}

func TestRelatedTheoriesEmptyCatalogue(t *testing.T) {
	engine := NewEngine([]*store.Theory{theoryAnchoring()}, nil, nil)
	assert.Empty(t, relatedIDs(t, engine, theoryAnchoring(), nil, 5))
}

func TestContentRecommendations(t *testing.T) {
	engine := testEngine()

	items, err := engine.ContentRecommendations(
		[]store.Category{store.CategoryCognitiveBiases, store.CategoryPersuasion}, nil, 10)
	require.NoError(t, err)

	var theoryIDs, blogIDs, projectIDs []string
	for _, item := range items {
		switch item.Kind {
		case KindTheory:
			theoryIDs = append(theoryIDs, item.Theory.ID)
		case KindBlogPost:
			blogIDs = append(blogIDs, item.BlogPost.ID)
		case KindProject:
			projectIDs = append(projectIDs, item.Project.ID)
		}
	}

	assert.ElementsMatch(t, []string{"anchoring-bias", "scarcity-principle"}, theoryIDs)
	assert.Equal(t, []string{"post-pricing"}, blogIDs, "blog posts qualify by shared tag only")
	assert.Equal(t, []string{"proj-marketing"}, projectIDs, "projects qualify through the keyword mapping")
	assert.NotContains(t, theoryIDs, "loss-aversion", "categories outside the request contribute nothing")
}

func TestContentRecommendationsExcludesRead(t *testing.T) {
	engine := testEngine()
	progress := &store.UserProgress{ReadTheories: []string{"anchoring-bias"}}

	items, err := engine.ContentRecommendations([]store.Category{store.CategoryCognitiveBiases}, progress, 10)
	require.NoError(t, err)
	for _, item := range items {
		if item.Kind == KindTheory {
			assert.NotEqual(t, "anchoring-bias", item.Theory.ID)
		}
	}
}

func TestContentRecommendationsTheoryNeverCrowdedOut(t *testing.T) {
	// Blog posts that share every tag of the only unread theory outscore
	// it, yet with limit 1 the theory must still survive.
	tags := []string{"pricing", "decision-making", "first-impression", "negotiation", "framing", "discounts"}
	theory := theoryAnchoring()
	theory.Metadata.Tags = tags
	posts := []*store.BlogPostReference{}
	for _, id := range []string{"b1", "b2", "b3"} {
		posts = append(posts, &store.BlogPostReference{ID: id, Slug: id, Tags: tags})
	}
	engine := NewEngine([]*store.Theory{theory}, posts, nil)

	items, err := engine.ContentRecommendations([]store.Category{store.CategoryCognitiveBiases}, nil, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, KindTheory, items[0].Kind)
}

func TestContentRecommendationsLimits(t *testing.T) {
	engine := testEngine()

	items, err := engine.ContentRecommendations([]store.Category{store.CategoryCognitiveBiases}, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = engine.ContentRecommendations([]store.Category{store.CategoryCognitiveBiases}, nil, -3)
	assert.Error(t, err)

	items, err = engine.ContentRecommendations(nil, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, items, "no categories means no candidates")
}

func TestContentRecommendationsEmptySecondaryCatalogues(t *testing.T) {
	engine := NewEngine([]*store.Theory{theoryAnchoring()}, nil, nil)

	items, err := engine.ContentRecommendations([]store.Category{store.CategoryCognitiveBiases}, nil, 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, KindTheory, items[0].Kind)
}

func TestContentURLTemplates(t *testing.T) {
	theoryItem := RecommendationItem{Kind: KindTheory, Theory: theoryAnchoring()}
	blogItem := RecommendationItem{Kind: KindBlogPost, BlogPost: &store.BlogPostReference{Slug: "pricing-anchors"}}
	projectItem := RecommendationItem{Kind: KindProject, Project: &store.ProjectReference{ID: "p"}}

	assert.Equal(t, "/dashboard/knowledge-hub/theory/anchoring-bias", theoryItem.ContentURL())
	assert.Equal(t, "/blog/pricing-anchors", blogItem.ContentURL())
	assert.Equal(t, "/projects", projectItem.ContentURL())
}

func TestUpdateTheoriesReplacesWholesale(t *testing.T) {
	engine := testEngine()
	engine.UpdateTheories([]*store.Theory{theoryScarcity(), theoryTestimonials()})

	ids := relatedIDs(t, engine, theoryScarcity(), nil, 10)
	assert.Equal(t, []string{"social-proof"}, ids)
	assert.NotContains(t, ids, "anchoring-bias", "removed theories must never resurface")
}

func TestUpdateBlogPostsAndProjects(t *testing.T) {
	engine := testEngine()
	engine.UpdateBlogPosts(nil)
	engine.UpdateProjects(nil)

	items, err := engine.ContentRecommendations([]store.Category{store.CategoryCognitiveBiases}, nil, 10)
	require.NoError(t, err)
	for _, item := range items {
		assert.Equal(t, KindTheory, item.Kind)
	}
}
