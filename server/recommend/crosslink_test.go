package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchpath/launchpath/store"
)

func TestCrossLinks(t *testing.T) {
	engine := testEngine()

	links, err := engine.CrossLinks(theoryAnchoring())
	require.NoError(t, err)
	require.NotEmpty(t, links)

	for _, link := range links {
		assert.NotEmpty(t, link.URL)
		switch link.Kind {
		case KindTheory:
			assert.True(t, strings.HasPrefix(link.URL, "/dashboard/knowledge-hub/theory/"), link.URL)
		case KindBlogPost:
			assert.True(t, strings.HasPrefix(link.URL, "/blog/"), link.URL)
		case KindProject:
			assert.Equal(t, "/projects", link.URL)
		default:
			t.Fatalf("unexpected kind %q", link.Kind)
		}
	}

	var titles []string
	for _, link := range links {
		titles = append(titles, link.Title)
	}
	assert.Contains(t, titles, "Pricing Anchors", "blog posts sharing a tag are cross-linked")
	assert.NotContains(t, titles, "Hiring Your First Engineer")
}

func TestCrossLinksNotPersonalized(t *testing.T) {
	// Cross-links ignore read progress entirely: the related portion for
	// scarcity includes both other theories regardless of any progress.
	engine := testEngine()

	links, err := engine.CrossLinks(theoryScarcity())
	require.NoError(t, err)

	var theoryURLs []string
	for _, link := range links {
		if link.Kind == KindTheory {
			theoryURLs = append(theoryURLs, link.URL)
		}
	}
	assert.Contains(t, theoryURLs, "/dashboard/knowledge-hub/theory/anchoring-bias")
	assert.Contains(t, theoryURLs, "/dashboard/knowledge-hub/theory/loss-aversion")
}

func TestCrossLinksBareTheory(t *testing.T) {
	// A theory with no tags and an unmapped category still yields related
	// theories, never an error.
	bare := &store.Theory{ID: "bare", Title: "Bare", Category: "uncategorized"}
	engine := NewEngine([]*store.Theory{bare, theoryAnchoring()},
		[]*store.BlogPostReference{{ID: "post", Slug: "post", Tags: []string{"pricing"}}},
		[]*store.ProjectReference{{ID: "proj", Category: "marketing"}})

	links, err := engine.CrossLinks(bare)
	require.NoError(t, err)
	for _, link := range links {
		assert.Equal(t, KindTheory, link.Kind)
	}
}

func TestCrossLinksRelatedPortionCapped(t *testing.T) {
	theories := []*store.Theory{theoryAnchoring()}
	for _, id := range []string{"t1", "t2", "t3", "t4", "t5"} {
		theories = append(theories, &store.Theory{ID: id, Title: id, Category: store.CategoryCognitiveBiases})
	}
	engine := NewEngine(theories, nil, nil)

	links, err := engine.CrossLinks(theoryAnchoring())
	require.NoError(t, err)
	assert.Len(t, links, crossLinkRelatedLimit)
}
