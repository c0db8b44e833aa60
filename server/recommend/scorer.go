package recommend

import (
	"strings"

	"github.com/launchpath/launchpath/store"
)

// Scoring weights. A category match must strictly outweigh a single shared
// tag so that category agreement wins ties among weak tag overlaps.
const (
	scoreCategoryMatch = 10.0
	scoreTagOverlap    = 2.0
)

// crossLinkRelatedLimit caps the related-theories portion of cross-links.
const crossLinkRelatedLimit = 3

// projectKeywords maps a theory category to the free-text project categories
// that should surface alongside it. Matching is case-insensitive equality on
// the project's category field.
var projectKeywords = map[store.Category][]string{
	store.CategoryCognitiveBiases:     {"research", "analytics"},
	store.CategoryPersuasion:          {"marketing", "sales"},
	store.CategoryBehavioralEconomics: {"analytics", "product"},
	store.CategoryUXPsychology:        {"design", "ux"},
	store.CategoryEmotionalTriggers:   {"marketing", "branding"},
}

// scoreTheories computes how relevant candidate is to a reader of source.
// Category agreement dominates; each shared tag adds a smaller fixed amount.
// A zero score keeps the candidate eligible, just ranked last.
func scoreTheories(source, candidate *store.Theory) float64 {
	var score float64
	if candidate.Category == source.Category {
		score += scoreCategoryMatch
	}
	score += scoreTagOverlap * float64(tagOverlap(source.Metadata.Tags, candidate.Metadata.Tags))
	return score
}

// tagOverlap counts the tags present in both sets. Matching is exact and
// case-sensitive; duplicates within one set count once.
func tagOverlap(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, tag := range a {
		set[tag] = struct{}{}
	}
	n := 0
	for _, tag := range uniqueTags(b) {
		if _, ok := set[tag]; ok {
			n++
		}
	}
	return n
}

func uniqueTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// projectMatchCount reports how many of the given theory categories claim
// the project through the keyword mapping.
func projectMatchCount(project *store.ProjectReference, categories []store.Category) int {
	projectCategory := strings.ToLower(strings.TrimSpace(project.Category))
	if projectCategory == "" {
		return 0
	}
	n := 0
	for _, category := range categories {
		for _, keyword := range projectKeywords[category] {
			if projectCategory == keyword {
				n++
				break
			}
		}
	}
	return n
}

func readSet(progress *store.UserProgress) map[string]struct{} {
	if progress == nil {
		return nil
	}
	set := make(map[string]struct{}, len(progress.ReadTheories))
	for _, id := range progress.ReadTheories {
		set[id] = struct{}{}
	}
	return set
}
