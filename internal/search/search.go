package search

import "context"

// NoAnswer is returned as the answer text when the API produced no
// message output for a query.
const NoAnswer = "No answer found."

// Query describes one search request. Built once per search and not
// mutated afterwards.
type Query struct {
	Text                 string
	Model                string
	MaxResults           int
	IncludeSearchResults bool
}

// Annotation links a character offset in the answer text to the source
// file it cites.
type Annotation struct {
	Index    int    `json:"index"`
	FileID   string `json:"file_id"`
	Filename string `json:"filename"`
}

// Hit is a single matched passage returned alongside the answer.
type Hit struct {
	Filename string   `json:"filename"`
	FileID   string   `json:"file_id"`
	Score    float64  `json:"score"`
	Content  []string `json:"content"`
}

// SearchCall carries metadata about the file search invocation the API
// performed while generating the answer.
type SearchCall struct {
	ID      string   `json:"id"`
	Status  string   `json:"status"`
	Queries []string `json:"queries"`
}

// Result is the normalized shape of one API response. Exactly one is
// produced per query; it lives for a single display cycle.
type Result struct {
	Error       bool         `json:"error"`
	Message     string       `json:"message,omitempty"`
	Answer      string       `json:"answer"`
	FilesUsed   []string     `json:"files_used"`
	Annotations []Annotation `json:"annotations"`
	Call        *SearchCall  `json:"file_search_call,omitempty"`
	Hits        []Hit        `json:"search_results,omitempty"`
}

// SourceCitation is one entry in the rendered source list: a cited file
// with its snippets and relevance score. Score is nil when no raw hit
// carried one.
type SourceCitation struct {
	Filename string   `json:"filename"`
	Snippets []string `json:"snippets"`
	Score    *float64 `json:"score"`
}

// Segment is one typed element of the API's output list. The two kinds
// the service consumes are the generated message and the file search
// call record; anything else is ignored at the adapter boundary.
type Segment interface {
	segment()
}

// MessageSegment holds the generated answer text and its file citation
// annotations.
type MessageSegment struct {
	Text        string
	Annotations []Annotation
}

// SearchCallSegment holds the file search invocation record and, when
// requested, the raw hits it matched.
type SearchCallSegment struct {
	Call SearchCall
	Hits []Hit
}

func (MessageSegment) segment()    {}
func (SearchCallSegment) segment() {}

// Searcher answers a query against a hosted document collection. Faults
// are folded into the Result rather than returned; callers only ever
// see a Result.
type Searcher interface {
	Search(ctx context.Context, q Query) Result
}
