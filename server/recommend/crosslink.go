package recommend

import (
	"github.com/pkg/errors"

	"github.com/launchpath/launchpath/store"
)

// CrossLink is a navigable "see also" reference from one theory to related
// content of any kind. Derived per call, never stored.
type CrossLink struct {
	Kind  ContentKind
	Title string
	URL   string
}

// CrossLinks returns the related theories plus the blog posts and projects
// that reference the given theory. Cross-links are not personalized, so no
// progress filtering applies.
func (e *Engine) CrossLinks(theory *store.Theory) ([]CrossLink, error) {
	if theory == nil {
		return nil, errors.New("theory is required")
	}

	related, err := e.RelatedTheories(theory, nil, crossLinkRelatedLimit)
	if err != nil {
		return nil, err
	}

	links := make([]CrossLink, 0, len(related))
	for _, relatedTheory := range related {
		links = append(links, CrossLink{
			Kind:  KindTheory,
			Title: relatedTheory.Title,
			URL:   theoryURLPrefix + relatedTheory.ID,
		})
	}

	for _, post := range e.catalogue.BlogPosts() {
		if tagOverlap(theory.Metadata.Tags, post.Tags) == 0 {
			continue
		}
		links = append(links, CrossLink{
			Kind:  KindBlogPost,
			Title: post.Title,
			URL:   blogURLPrefix + post.Slug,
		})
	}

	for _, project := range e.catalogue.Projects() {
		if projectMatchCount(project, []store.Category{theory.Category}) == 0 {
			continue
		}
		links = append(links, CrossLink{
			Kind:  KindProject,
			Title: project.Title,
			// Projects have no detail route; they link to the listing.
			URL: projectsURL,
		})
	}

	return links, nil
}
