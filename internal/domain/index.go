package domain

import "sort"

// IndexEntry is the projection of an idea stored in a tag bucket
type IndexEntry struct {
	IdeaID string `json:"ideaId"`
	Title  string `json:"title"`
}

// IndexTable maps a normalized tag to the ideas carrying it, in record order.
// It is a derived view of the idea set, never a source of truth.
type IndexTable map[string][]IndexEntry

// BuildIndex produces a fresh table from the full idea set.
// Buckets keep record iteration order; nothing is sorted or deduplicated,
// so an idea listing the same tag twice appears twice in that bucket.
func BuildIndex(ideas []Idea) IndexTable {
	table := make(IndexTable)
	for _, idea := range ideas {
		table.add(idea)
	}
	return table
}

// Lookup resolves the whole query, lowercased, as a single key.
// Only an exact case-insensitive tag match returns entries.
func (t IndexTable) Lookup(query string) []IndexEntry {
	bucket := t[NormalizeTag(query)]
	out := make([]IndexEntry, len(bucket))
	copy(out, bucket)
	return out
}

// Extend returns a copy of the table with idea appended to each of its tag
// buckets. The receiver is not modified.
func (t IndexTable) Extend(idea Idea) IndexTable {
	next := t.Clone()
	next.add(idea)
	return next
}

// Clone returns a deep copy of the table
func (t IndexTable) Clone() IndexTable {
	out := make(IndexTable, len(t))
	for tag, bucket := range t {
		cp := make([]IndexEntry, len(bucket))
		copy(cp, bucket)
		out[tag] = cp
	}
	return out
}

// Tags returns the indexed tags in lexical order
func (t IndexTable) Tags() []string {
	tags := make([]string, 0, len(t))
	for tag := range t {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// EntryCount returns the total number of entries across all buckets
func (t IndexTable) EntryCount() int {
	n := 0
	for _, bucket := range t {
		n += len(bucket)
	}
	return n
}

func (t IndexTable) add(idea Idea) {
	entry := IndexEntry{IdeaID: idea.ID, Title: idea.Title}
	for _, tag := range idea.Tags {
		key := NormalizeTag(tag)
		t[key] = append(t[key], entry)
	}
}
