package api

import (
	"encoding/json"
	"html"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/telcoin-wiki/sitesearch/internal/engine"
	"github.com/telcoin-wiki/sitesearch/internal/search"
)

// maxPerGroup caps how many hits each display group carries in a
// response. Presentation policy only; ranking is unaffected.
const maxPerGroup = 5

type Server struct {
	Engine *engine.Engine
	Logger *logrus.Entry
	Router *http.ServeMux
}

func NewServer(eng *engine.Engine, logger *logrus.Entry) *Server {
	s := &Server{
		Engine: eng,
		Logger: logger,
		Router: http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.HandleFunc("/api/v1/search", s.handleSearch)
	s.Router.HandleFunc("/api/v1/reload", s.handleReload)
	s.Router.HandleFunc("/api/v1/status", s.handleStatus)
}

func (s *Server) Start(addr string) error {
	s.Logger.Infof("Starting API Server on %s", addr)
	return http.ListenAndServe(addr, s.Router)
}

// Responses
type ErrorResponse struct {
	Error string `json:"error"`
}

type SearchResponse struct {
	Query  string      `json:"query"`
	Groups []GroupView `json:"groups"`
}

type GroupView struct {
	Label   string       `json:"label"`
	Results []ResultView `json:"results"`
}

type ResultView struct {
	Ref     string  `json:"ref"`
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score"`
}

type StatusResponse struct {
	Running      bool   `json:"running"`
	DocsIndexed  int    `json:"docs_indexed"`
	Rebuilds     int64  `json:"rebuilds"`
	LastRebuild  string `json:"last_rebuild,omitempty"`
	LastFetchErr string `json:"last_fetch_error,omitempty"`
	Uptime       string `json:"uptime"`
}

// Handlers

// handleSearch runs the query and renders the grouped hits. An empty or
// unmatched query is a normal 200 with empty groups, never an error.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	svc := s.Engine.Search

	hits := svc.Search(query)
	groups := svc.Group(hits)

	response := SearchResponse{
		Query:  query,
		Groups: make([]GroupView, 0, len(groups)),
	}

	for _, group := range groups {
		view := GroupView{
			Label:   group.Label,
			Results: make([]ResultView, 0, maxPerGroup),
		}
		for _, hit := range group.Items {
			if len(view.Results) == maxPerGroup {
				break
			}
			doc, ok := svc.Document(hit.Ref)
			if !ok {
				continue
			}
			view.Results = append(view.Results, ResultView{
				Ref:     hit.Ref,
				Title:   html.EscapeString(doc.Title),
				URL:     doc.URL,
				Snippet: search.BuildSnippet(doc, query),
				Score:   hit.Score,
			})
		}
		response.Groups = append(response.Groups, view)
	}

	jsonResponse(w, http.StatusOK, response)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.Engine.Reload(r.Context())

	jsonResponse(w, http.StatusOK, map[string]any{
		"status":    "reloaded",
		"documents": s.Engine.Search.Size(),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats := s.Engine.StatsSnapshot()

	resp := StatusResponse{
		Running:      s.Engine.IsRunning(),
		DocsIndexed:  s.Engine.Search.Size(),
		Rebuilds:     stats.Rebuilds,
		LastFetchErr: stats.LastFetchErr,
		Uptime:       time.Since(stats.StartTime).String(),
	}
	if !stats.LastRebuild.IsZero() {
		resp.LastRebuild = stats.LastRebuild.Format(time.RFC3339)
	}

	jsonResponse(w, http.StatusOK, resp)
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
