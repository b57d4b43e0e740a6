package search

import (
	"strings"
	"testing"
)

func TestCitationNumbersFirstCitationOrder(t *testing.T) {
	numbers := CitationNumbers([]string{"a.pdf", "b.pdf", "c.pdf"})
	if numbers["a.pdf"] != 1 || numbers["b.pdf"] != 2 || numbers["c.pdf"] != 3 {
		t.Fatalf("unexpected numbering: %v", numbers)
	}
}

func TestSpliceCitationsDescendingOrder(t *testing.T) {
	// a.pdf appears first in the annotation list, so it gets citation
	// number 1 even though its offset is larger.
	answer := "Deep Research is a tool of OpenAI."
	anns := []Annotation{
		{Index: 24, Filename: "a.pdf"},
		{Index: 10, Filename: "b.pdf"},
	}
	numbers := CitationNumbers([]string{"a.pdf", "b.pdf"})

	got := SpliceCitations(answer, anns, numbers)
	want := "Deep Resea" + Marker(2) + "rch is a tool " + Marker(1) + "of OpenAI."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSpliceCitationsMarkersStayAdjacent(t *testing.T) {
	answer := "abcdefghijklmnopqrstuvwxyz"
	anns := []Annotation{
		{Index: 5, Filename: "one.txt"},
		{Index: 10, Filename: "two.txt"},
		{Index: 20, Filename: "three.txt"},
	}
	numbers := CitationNumbers([]string{"one.txt", "two.txt", "three.txt"})

	got := SpliceCitations(answer, anns, numbers)

	// Each marker sits directly before the character originally at its
	// offset, regardless of how many insertions happened to its right.
	for i, ann := range anns {
		want := Marker(i+1) + string(answer[ann.Index])
		if !strings.Contains(got, want) {
			t.Errorf("marker %d not adjacent to original character: %q missing in %q", i+1, want, got)
		}
	}

	wantLen := len(answer) + len(Marker(1)) + len(Marker(2)) + len(Marker(3))
	if len(got) != wantLen {
		t.Errorf("expected spliced length %d, got %d", wantLen, len(got))
	}
}

func TestSpliceCitationsDropsZeroOffset(t *testing.T) {
	// Offset 0 is dropped today; preserved upstream behavior pending a
	// product decision.
	answer := "cited from the very start"
	anns := []Annotation{{Index: 0, Filename: "a.pdf"}}
	got := SpliceCitations(answer, anns, CitationNumbers([]string{"a.pdf"}))
	if got != answer {
		t.Fatalf("expected offset-0 annotation to be dropped, got %q", got)
	}
}

func TestSpliceCitationsDropsOutOfRangeOffset(t *testing.T) {
	answer := "short answer"
	anns := []Annotation{
		{Index: len(answer), Filename: "a.pdf"},
		{Index: len(answer) + 100, Filename: "a.pdf"},
	}
	got := SpliceCitations(answer, anns, CitationNumbers([]string{"a.pdf"}))
	if got != answer {
		t.Fatalf("expected out-of-range annotations to be dropped, got %q", got)
	}
}

func TestSpliceCitationsUnknownFilename(t *testing.T) {
	answer := "some generated answer"
	anns := []Annotation{{Index: 4, Filename: "mystery.pdf"}}
	got := SpliceCitations(answer, anns, map[string]int{})
	if !strings.Contains(got, "[?]") {
		t.Fatalf("expected [?] marker for unknown filename, got %q", got)
	}
}

func TestSpliceCitationsNoAnnotations(t *testing.T) {
	answer := "plain answer"
	if got := SpliceCitations(answer, nil, nil); got != answer {
		t.Fatalf("expected answer unchanged, got %q", got)
	}
}

func TestSpliceCitationsDoesNotMutateInput(t *testing.T) {
	anns := []Annotation{
		{Index: 3, Filename: "a.pdf"},
		{Index: 8, Filename: "b.pdf"},
	}
	SpliceCitations("some longer answer", anns, CitationNumbers([]string{"a.pdf", "b.pdf"}))
	if anns[0].Index != 3 || anns[1].Index != 8 {
		t.Fatal("annotation slice was reordered by splice")
	}
}

func TestGroupSourcesNoHits(t *testing.T) {
	citations := GroupSources([]string{"a.pdf", "b.pdf"}, nil)
	if len(citations) != 2 {
		t.Fatalf("expected 2 citations, got %d", len(citations))
	}
	for _, c := range citations {
		if len(c.Snippets) != 0 {
			t.Errorf("expected empty snippets for %s, got %v", c.Filename, c.Snippets)
		}
		if c.Score != nil {
			t.Errorf("expected nil score for %s, got %v", c.Filename, *c.Score)
		}
	}
}

func TestGroupSourcesSnippetCaps(t *testing.T) {
	hits := []Hit{
		{Filename: "a.pdf", Score: 0.9, Content: []string{"one", "two", "three"}},
		{Filename: "a.pdf", Score: 0.8, Content: []string{"four", "five"}},
	}
	citations := GroupSources([]string{"a.pdf"}, hits)
	if len(citations) != 1 {
		t.Fatalf("expected 1 citation, got %d", len(citations))
	}

	// Two fragments from the first hit, one from the second: capped at
	// three total, and the third fragment of the first hit never shows.
	want := []string{"one", "two", "four"}
	got := citations[0].Snippets
	if len(got) != len(want) {
		t.Fatalf("expected %d snippets, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("snippet %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGroupSourcesLastHitScoreWins(t *testing.T) {
	hits := []Hit{
		{Filename: "a.pdf", Score: 0.9},
		{Filename: "a.pdf", Score: 0.4},
	}
	citations := GroupSources([]string{"a.pdf"}, hits)
	if citations[0].Score == nil {
		t.Fatal("expected a score")
	}
	if *citations[0].Score != 0.4 {
		t.Fatalf("expected last matching hit's score 0.4, got %v", *citations[0].Score)
	}
}

func TestGroupSourcesNoMatchingHit(t *testing.T) {
	hits := []Hit{{Filename: "other.pdf", Score: 0.7, Content: []string{"x"}}}
	citations := GroupSources([]string{"a.pdf"}, hits)
	if len(citations[0].Snippets) != 0 {
		t.Errorf("expected no snippets, got %v", citations[0].Snippets)
	}
	if citations[0].Score != nil {
		t.Errorf("expected nil score, got %v", *citations[0].Score)
	}
}
