package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestBuildIndex_Completeness(t *testing.T) {
	ideas := SeedIdeas()
	table := BuildIndex(ideas)

	for _, idea := range ideas {
		for _, tag := range idea.Tags {
			bucket := table[NormalizeTag(tag)]
			found := false
			for _, e := range bucket {
				if e.IdeaID == idea.ID && e.Title == idea.Title {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("bucket %q missing %s %q", NormalizeTag(tag), idea.ID, idea.Title)
			}
		}
	}
}

func TestBuildIndex_EveryEntryBacksToARecord(t *testing.T) {
	ideas := SeedIdeas()
	table := BuildIndex(ideas)

	for tag, bucket := range table {
		for _, e := range bucket {
			ok := false
			for _, idea := range ideas {
				if idea.ID == e.IdeaID && idea.Title == e.Title && idea.HasTag(tag) {
					ok = true
					break
				}
			}
			if !ok {
				t.Errorf("entry %v under %q has no backing record", e, tag)
			}
		}
	}
}

func TestBuildIndex_OrderAndDuplicates(t *testing.T) {
	ideas := []Idea{
		{ID: "a", Title: "First", Tags: []string{"Go", "go"}},
		{ID: "b", Title: "Second", Tags: []string{"GO"}},
		{ID: "c", Title: "No tags"},
	}

	table := BuildIndex(ideas)

	want := []IndexEntry{
		{IdeaID: "a", Title: "First"},
		{IdeaID: "a", Title: "First"},
		{IdeaID: "b", Title: "Second"},
	}
	if got := table["go"]; !reflect.DeepEqual(got, want) {
		t.Errorf("bucket go = %v, want %v", got, want)
	}
	if len(table) != 1 {
		t.Errorf("expected 1 tag, got %d (%v)", len(table), table.Tags())
	}
}

func TestBuildIndex_Empty(t *testing.T) {
	table := BuildIndex(nil)
	if len(table) != 0 {
		t.Errorf("expected empty table, got %v", table)
	}
	if got := table.Lookup("anything"); len(got) != 0 {
		t.Errorf("expected no entries, got %v", got)
	}
}

func TestBuildIndex_Idempotent(t *testing.T) {
	ideas := SeedIdeas()

	first, err := json.Marshal(BuildIndex(ideas))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(BuildIndex(ideas))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if string(first) != string(second) {
		t.Errorf("rebuild produced different bytes:\n%s\n%s", first, second)
	}
}

func TestIndexTable_Lookup(t *testing.T) {
	table := BuildIndex(SeedIdeas())

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{name: "exact lowercase", query: "ia", wantCount: 9},
		{name: "exact uppercase", query: "IA", wantCount: 9},
		{name: "accented tag", query: "educación", wantCount: 7},
		{name: "prefix does not match", query: "intelig", wantCount: 0},
		{name: "substring does not match", query: "io", wantCount: 0},
		{name: "multi tag query is one key", query: "ia iot", wantCount: 0},
		{name: "empty query", query: "", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Lookup(tt.query)
			if len(got) != tt.wantCount {
				t.Errorf("Lookup(%q) returned %d entries, want %d", tt.query, len(got), tt.wantCount)
			}
		})
	}
}

func TestIndexTable_LookupReturnsCopy(t *testing.T) {
	table := BuildIndex([]Idea{{ID: "a", Title: "A", Tags: []string{"x"}}})

	got := table.Lookup("x")
	got[0].Title = "mutated"

	if table["x"][0].Title != "A" {
		t.Error("Lookup result aliases the table bucket")
	}
}

func TestIndexTable_Extend(t *testing.T) {
	base := BuildIndex([]Idea{{ID: "a", Title: "A", Tags: []string{"x"}}})

	next := base.Extend(Idea{ID: "b", Title: "B", Tags: []string{"x", "zeta"}})

	if len(base["x"]) != 1 {
		t.Errorf("Extend modified the receiver: %v", base["x"])
	}
	if _, ok := base["zeta"]; ok {
		t.Error("Extend added a bucket to the receiver")
	}

	want := []IndexEntry{{IdeaID: "a", Title: "A"}, {IdeaID: "b", Title: "B"}}
	if !reflect.DeepEqual(next["x"], want) {
		t.Errorf("bucket x = %v, want %v", next["x"], want)
	}
	if got := next.Lookup("Zeta"); len(got) != 1 || got[0].IdeaID != "b" {
		t.Errorf("Lookup(Zeta) = %v", got)
	}
}

func TestIndexTable_Stats(t *testing.T) {
	table := BuildIndex([]Idea{
		{ID: "a", Title: "A", Tags: []string{"b", "a"}},
		{ID: "b", Title: "B", Tags: []string{"a"}},
	})

	if got := table.Tags(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Tags() = %v", got)
	}
	if got := table.EntryCount(); got != 3 {
		t.Errorf("EntryCount() = %d, want 3", got)
	}
}

func TestIndexTable_JSONShape(t *testing.T) {
	table := BuildIndex([]Idea{{ID: "idea_1", Title: "T", Tags: []string{"X"}}})

	data, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"x":[{"ideaId":"idea_1","title":"T"}]}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func BenchmarkLinearScan(b *testing.B) {
	ideas := SeedIdeas()
	for b.Loop() {
		LinearScan(ideas, "iot")
	}
}

func BenchmarkIndexLookup(b *testing.B) {
	table := BuildIndex(SeedIdeas())
	for b.Loop() {
		table.Lookup("iot")
	}
}

func BenchmarkBuildIndex(b *testing.B) {
	ideas := SeedIdeas()
	for b.Loop() {
		BuildIndex(ideas)
	}
}
