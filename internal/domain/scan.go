package domain

import "strings"

// LinearScan returns every idea with a tag containing query as a substring,
// ignoring case, in original record order. It visits every tag of every
// record and exists as the slow path the index is measured against.
func LinearScan(ideas []Idea, query string) []Idea {
	q := strings.ToLower(query)
	var out []Idea
	for _, idea := range ideas {
		for _, tag := range idea.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				out = append(out, idea)
				break
			}
		}
	}
	return out
}
