package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"

	"rag-search/internal/app"
	"rag-search/internal/cache"
	"rag-search/internal/httputil"
	"rag-search/internal/search"
)

//go:embed web
var webFS embed.FS

var indexTmpl = template.Must(template.ParseFS(webFS, "web/index.html"))

type searchRequest struct {
	Query                string `json:"query" validate:"required,min=2,max=500"`
	Model                string `json:"model" validate:"omitempty,oneof=gpt-4o gpt-4o-mini gpt-3.5-turbo"`
	MaxResults           int    `json:"max_results" validate:"omitempty,min=1,max=10"`
	IncludeSearchResults *bool  `json:"include_search_results"`
}

// searchResponse is the normalized result plus the presentation fields
// derived from it: the answer with citation markers spliced in and the
// grouped per-source snippet list.
type searchResponse struct {
	search.Result
	AnswerHTML string                  `json:"answer_html"`
	Citations  []search.SourceCitation `json:"citations"`
	Cached     bool                    `json:"cached"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := deps.Cache.Close(); err != nil {
			deps.Log.Warn("cache close failed", "err", err)
		}
	}()

	r := httputil.NewRouter(deps.Log)

	r.Get("/", indexHandler(deps))
	r.Get("/static/styles.css", stylesHandler(deps))
	r.Post("/api/search", searchHandler(deps))
	r.Get("/api/history", historyHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps))

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	deps.Log.Info("rag-search listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		deps.Log.Error("server error", "err", err)
	}
}

func searchHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}

		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		if req.Model == "" {
			req.Model = deps.Config.SearchModel
		}
		if req.MaxResults == 0 {
			req.MaxResults = deps.Config.SearchMaxResults
		}
		include := true
		if req.IncludeSearchResults != nil {
			include = *req.IncludeSearchResults
		}

		q := search.Query{
			Text:                 req.Query,
			Model:                req.Model,
			MaxResults:           req.MaxResults,
			IncludeSearchResults: include,
		}
		ctx := r.Context()

		key := cache.Key(q)
		if cached, err := deps.Cache.GetResult(ctx, key); err == nil && cached != nil {
			deps.Log.Info("cache hit", "query", q.Text)
			deps.History.Append(q.Text, q.Model)
			httputil.WriteJSON(w, http.StatusOK, render(*cached, true))
			return
		} else if err != nil {
			deps.Log.Warn("cache lookup failed", "err", err)
		}

		result := deps.Searcher.Search(ctx, q)
		deps.History.Append(q.Text, q.Model)

		if !result.Error {
			ttl := time.Duration(deps.Config.CacheTTL) * time.Second
			if err := deps.Cache.SetResult(ctx, key, &result, ttl); err != nil {
				// Cache write failure must not fail the request
				deps.Log.Warn("failed to cache result", "err", err)
			}
		} else {
			deps.Log.Warn("search failed", "query", q.Text, "message", result.Message)
		}

		httputil.WriteJSON(w, http.StatusOK, render(result, false))
	}
}

// render derives the presentation fields from a normalized result.
// Error results carry only the flag and message.
func render(res search.Result, cached bool) searchResponse {
	resp := searchResponse{Result: res, Cached: cached}
	if res.Error {
		return resp
	}
	numbers := search.CitationNumbers(res.FilesUsed)
	resp.AnswerHTML = search.SpliceCitations(res.Answer, res.Annotations, numbers)
	resp.Citations = search.GroupSources(res.FilesUsed, res.Hits)
	return resp
}

func historyHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"history": deps.History.Entries(),
		})
	}
}

func indexHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := map[string]any{
			"DefaultModel":      deps.Config.SearchModel,
			"DefaultMaxResults": deps.Config.SearchMaxResults,
			"Models":            []string{"gpt-4o", "gpt-4o-mini", "gpt-3.5-turbo"},
		}
		if err := indexTmpl.Execute(w, data); err != nil {
			deps.Log.Error("index render failed", "err", err)
		}
	}
}

func stylesHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		css, err := webFS.ReadFile("web/styles.css")
		if err != nil {
			httputil.Fail(deps.Log, w, "stylesheet unavailable", err, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		if _, err := w.Write(css); err != nil {
			deps.Log.Warn("styles write failed", "err", err)
		}
	}
}
