package domain

import (
	"fmt"
	"strings"
)

// IDPrefix is prepended to the sequence number of every generated idea ID
const IDPrefix = "idea_"

// Idea is a single published record with free-form tags
type Idea struct {
	ID     string   `json:"ideaId"`
	Title  string   `json:"title"`
	Tags   []string `json:"tags"`
	Author string   `json:"author,omitempty"`
}

// HasTag reports whether any of the idea's tags equals tag, ignoring case
func (i Idea) HasTag(tag string) bool {
	want := NormalizeTag(tag)
	for _, t := range i.Tags {
		if NormalizeTag(t) == want {
			return true
		}
	}
	return false
}

// NormalizeTag case-folds a tag to the form used as an index key.
// Whitespace is kept; trimming only happens when parsing user input.
func NormalizeTag(tag string) string {
	return strings.ToLower(tag)
}

// ParseTags splits a comma-separated tag list, trimming and lowercasing each
// element. Empty elements are kept so that "a,,b" yields three tags.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, NormalizeTag(strings.TrimSpace(p)))
	}
	return tags
}

// NextIdeaID returns the ID for a record appended to a set of count ideas.
// IDs are derived from the count, so they repeat if records are ever removed.
func NextIdeaID(count int) string {
	return fmt.Sprintf("%s%d", IDPrefix, count+1)
}

// FindIdea returns the first idea with the given ID
func FindIdea(ideas []Idea, id string) (Idea, bool) {
	for _, idea := range ideas {
		if idea.ID == id {
			return idea, true
		}
	}
	return Idea{}, false
}
