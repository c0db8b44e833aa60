package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Catalogue file names inside the data directory.
const (
	theoriesFile  = "theories.yaml"
	blogPostsFile = "blog_posts.yaml"
	projectsFile  = "projects.yaml"
)

// LoadCatalogue reads the catalogue collections from dir. theories.yaml is
// required; blog_posts.yaml and projects.yaml are optional and default to
// empty collections when absent. The three files are read concurrently.
func LoadCatalogue(dir string) (*Catalogue, error) {
	var (
		theories  []*Theory
		blogPosts []*BlogPostReference
		projects  []*ProjectReference
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		if err := decodeYAMLFile(filepath.Join(dir, theoriesFile), &theories); err != nil {
			return err
		}
		return validateTheories(theories)
	})
	g.Go(func() error {
		return decodeOptionalYAMLFile(filepath.Join(dir, blogPostsFile), &blogPosts)
	})
	g.Go(func() error {
		return decodeOptionalYAMLFile(filepath.Join(dir, projectsFile), &projects)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewCatalogue(theories, blogPosts, projects), nil
}

func decodeYAMLFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}
	return nil
}

func decodeOptionalYAMLFile(path string, out any) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return decodeYAMLFile(path, out)
}

func validateTheories(theories []*Theory) error {
	seen := make(map[string]struct{}, len(theories))
	for i, theory := range theories {
		if theory.ID == "" {
			return errors.Errorf("theory at index %d has no id", i)
		}
		if _, ok := seen[theory.ID]; ok {
			return errors.Errorf("duplicate theory id %q", theory.ID)
		}
		seen[theory.ID] = struct{}{}
	}
	return nil
}
