package search

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// Snippet caps for the source list: each hit contributes at most
	// fragmentsPerHit content fragments, each source shows at most
	// snippetsPerSource snippets.
	fragmentsPerHit   = 2
	snippetsPerSource = 3
)

// scorePolicyLastHitWins: when several hits share a filename, the score
// shown for that source is taken from the last matching hit in the hit
// list, not an aggregate. Intent of the upstream behavior is unclear;
// kept as a named policy rather than guessed at.
const scorePolicyLastHitWins = true

// Marker renders the inline citation reference for citation number n.
func Marker(n int) string {
	return fmt.Sprintf("<sup class=\"citation-badge\">[%d]</sup>", n)
}

func unknownMarker() string {
	return "<sup class=\"citation-badge\">[?]</sup>"
}

// CitationNumbers assigns 1-based citation numbers to filenames in
// first-citation order.
func CitationNumbers(filesUsed []string) map[string]int {
	numbers := make(map[string]int, len(filesUsed))
	for i, filename := range filesUsed {
		numbers[filename] = i + 1
	}
	return numbers
}

// SpliceCitations inserts a citation marker at each annotation's offset
// in the answer text. Annotations are processed in descending offset
// order so an insertion never displaces an offset that has not been
// spliced yet; inserting left to right would corrupt every offset after
// the first.
//
// Offsets at or past the end of the answer are skipped. Offsets of zero
// are also skipped, matching the upstream condition (`index and index <
// len`); whether a citation at the very start of the text should render
// is an open product question, so the behavior is preserved as is.
func SpliceCitations(answer string, anns []Annotation, numbers map[string]int) string {
	if len(anns) == 0 {
		return answer
	}

	sorted := make([]Annotation, len(anns))
	copy(sorted, anns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Index > sorted[j].Index
	})

	for _, ann := range sorted {
		if ann.Index <= 0 || ann.Index >= len(answer) {
			continue
		}
		marker := unknownMarker()
		if n, ok := numbers[ann.Filename]; ok {
			marker = Marker(n)
		}
		answer = answer[:ann.Index] + marker + answer[ann.Index:]
	}
	return answer
}

// GroupSources builds the per-source citation list shown beneath the
// answer: for each cited file, up to snippetsPerSource text snippets
// drawn from the raw hits and the file's relevance score. With no raw
// hits available every source gets an empty snippet list and a nil
// score.
func GroupSources(filesUsed []string, hits []Hit) []SourceCitation {
	citations := make([]SourceCitation, 0, len(filesUsed))

	if len(hits) == 0 {
		for _, filename := range filesUsed {
			citations = append(citations, SourceCitation{Filename: filename, Snippets: []string{}})
		}
		return citations
	}

	for _, filename := range filesUsed {
		var snippets []string
		var score *float64
		for _, hit := range hits {
			if hit.Filename != filename {
				continue
			}
			for _, fragment := range firstN(hit.Content, fragmentsPerHit) {
				if strings.TrimSpace(fragment) == "" {
					continue
				}
				snippets = append(snippets, fragment)
			}
			s := hit.Score
			score = &s
		}
		if len(snippets) > snippetsPerSource {
			snippets = snippets[:snippetsPerSource]
		}
		if snippets == nil {
			snippets = []string{}
		}
		citations = append(citations, SourceCitation{
			Filename: filename,
			Snippets: snippets,
			Score:    score,
		})
	}
	return citations
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
