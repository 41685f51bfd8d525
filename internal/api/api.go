// Package api exposes recorded search runs over a read-only HTTP API.
package api

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"brocard-search/internal/store"
)

// Server serves recorded search runs from a SQLite database.
type Server struct {
	db *sql.DB
}

// NewServer creates a server backed by the given database connection.
func NewServer(db *sql.DB) *Server {
	return &Server{db: db}
}

// Routes mounts the read-only API onto a new chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/health", s.handleHealth)
	r.Get("/runs", s.handleListRuns)
	r.Get("/runs/{id}/solutions", s.handleRunSolutions)
	return r
}

type runResponse struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	Limit         int       `json:"limit"`
	Workers       int       `json:"workers"`
	ChunkSize     int       `json:"chunkSize"`
	DurationMs    int64     `json:"durationMs"`
	SolutionCount int       `json:"solutionCount"`
}

type solutionResponse struct {
	N int    `json:"n"`
	X string `json:"x"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := store.GetRuns(s.db)
	if err != nil {
		log.Printf("Failed to list runs: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	resp := make([]runResponse, 0, len(runs))
	for _, run := range runs {
		resp = append(resp, runResponse{
			ID:            run.ID,
			CreatedAt:     run.CreatedAt,
			Limit:         run.Limit,
			Workers:       run.Workers,
			ChunkSize:     run.ChunkSize,
			DurationMs:    run.Duration.Milliseconds(),
			SolutionCount: run.Solutions,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRunSolutions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := store.GetRun(s.db, id)
	if err != nil {
		log.Printf("Failed to fetch run %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}
	if run == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "run not found"})
		return
	}

	solutions, err := store.GetSolutions(s.db, id)
	if err != nil {
		log.Printf("Failed to fetch solutions for run %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	resp := make([]solutionResponse, 0, len(solutions))
	for _, sol := range solutions {
		resp = append(resp, solutionResponse{N: sol.N, X: sol.X})
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
