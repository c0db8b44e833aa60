// Package feed builds syndication feeds from the content catalogue.
package feed

import (
	"bytes"
	"time"

	"github.com/gorilla/feeds"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"

	"github.com/launchpath/launchpath/server/recommend"
	"github.com/launchpath/launchpath/store"
)

// Options describe the feed envelope.
type Options struct {
	Title       string
	SiteURL     string
	Description string
}

// BlogFeed renders the blog post catalogue as RSS. Excerpts are authored in
// markdown and converted to HTML for feed readers.
func BlogFeed(posts []*store.BlogPostReference, opts Options) (string, error) {
	f := &feeds.Feed{
		Title:       opts.Title,
		Link:        &feeds.Link{Href: opts.SiteURL + "/blog"},
		Description: opts.Description,
		Created:     time.Now(),
	}

	markdown := goldmark.New()
	for _, post := range posts {
		var excerpt bytes.Buffer
		if err := markdown.Convert([]byte(post.Excerpt), &excerpt); err != nil {
			return "", errors.Wrapf(err, "render excerpt of %q", post.ID)
		}
		f.Items = append(f.Items, &feeds.Item{
			Id:          post.ID,
			Title:       post.Title,
			Link:        &feeds.Link{Href: opts.SiteURL + "/blog/" + post.Slug},
			Description: excerpt.String(),
			Created:     post.PublishedAt,
		})
	}

	rss, err := f.ToRss()
	if err != nil {
		return "", errors.Wrap(err, "encode rss")
	}
	return rss, nil
}

// RelatedContentFeed renders a theory's cross-links as RSS, one item per
// link, so readers can follow a theory's surrounding content.
func RelatedContentFeed(engine *recommend.Engine, theory *store.Theory, opts Options) (string, error) {
	links, err := engine.CrossLinks(theory)
	if err != nil {
		return "", err
	}

	f := &feeds.Feed{
		Title:       opts.Title + ": " + theory.Title,
		Link:        &feeds.Link{Href: opts.SiteURL},
		Description: theory.Summary,
		Created:     time.Now(),
	}
	for _, link := range links {
		f.Items = append(f.Items, &feeds.Item{
			Id:          string(link.Kind) + ":" + link.URL,
			Title:       link.Title,
			Link:        &feeds.Link{Href: opts.SiteURL + link.URL},
			Description: string(link.Kind),
		})
	}

	rss, err := f.ToRss()
	if err != nil {
		return "", errors.Wrap(err, "encode rss")
	}
	return rss, nil
}
