package search

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

// OpenAIClient answers queries via the OpenAI Responses API with the
// file_search tool pointed at a hosted vector store.
type OpenAIClient struct {
	vectorStoreID string
	defaultModel  string
	client        *openai.Client
}

const defaultSearchTimeout = 60 * time.Second

// NewOpenAIClient builds a client against api.openai.com for the given
// vector store.
func NewOpenAIClient(apiKey, vectorStoreID, defaultModel string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if vectorStoreID == "" {
		return nil, fmt.Errorf("vector store id required")
	}
	cli := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		vectorStoreID: vectorStoreID,
		defaultModel:  defaultModel,
		client:        &cli,
	}, nil
}

// Search issues one synchronous Responses API call and normalizes the
// output. Any fault from the SDK is folded into the returned Result;
// Search never panics or returns an error out of band.
func (c *OpenAIClient) Search(ctx context.Context, q Query) Result {
	if c == nil || c.client == nil {
		return ErrorResult(fmt.Errorf("nil openai client"))
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultSearchTimeout)
	defer cancel()

	model := q.Model
	if model == "" {
		model = c.defaultModel
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(q.Text),
		},
		Tools: []responses.ToolUnionParam{{
			OfFileSearch: &responses.FileSearchToolParam{
				VectorStoreIDs: []string{c.vectorStoreID},
				MaxNumResults:  openai.Int(int64(q.MaxResults)),
			},
		}},
	}
	if q.IncludeSearchResults {
		params.Include = []responses.ResponseIncludable{
			responses.ResponseIncludableFileSearchCallResults,
		}
	}

	resp, err := c.client.Responses.New(reqCtx, params)
	if err != nil {
		return ErrorResult(err)
	}
	return Normalize(convertOutput(resp.Output))
}

// convertOutput maps the SDK's output item unions onto typed segments.
// Output kinds other than the generated message and the file search
// call record are not consumed and are dropped here.
func convertOutput(items []responses.ResponseOutputItemUnion) []Segment {
	var segments []Segment
	for _, item := range items {
		switch item.Type {
		case "message":
			msg := item.AsMessage()
			for _, content := range msg.Content {
				if content.Type != "output_text" {
					continue
				}
				text := content.AsOutputText()
				seg := MessageSegment{Text: text.Text}
				for _, ann := range text.Annotations {
					if ann.Type != "file_citation" {
						continue
					}
					seg.Annotations = append(seg.Annotations, Annotation{
						Index:    int(ann.Index),
						FileID:   ann.FileID,
						Filename: ann.Filename,
					})
				}
				segments = append(segments, seg)
			}
		case "file_search_call":
			call := item.AsFileSearchCall()
			seg := SearchCallSegment{
				Call: SearchCall{
					ID:      call.ID,
					Status:  string(call.Status),
					Queries: call.Queries,
				},
			}
			for _, r := range call.Results {
				hit := Hit{
					Filename: r.Filename,
					FileID:   r.FileID,
					Score:    r.Score,
				}
				if r.Text != "" {
					hit.Content = []string{r.Text}
				}
				seg.Hits = append(seg.Hits, hit)
			}
			segments = append(segments, seg)
		}
	}
	return segments
}
