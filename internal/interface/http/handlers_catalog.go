package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Bitshifter-9/cp-tracker/internal/application/command"
	"github.com/Bitshifter-9/cp-tracker/internal/application/query"
)

// handleListProblems returns one sheet's problems sorted by rating then
// manual order. ?search= filters by name substring.
func (s *Server) handleListProblems(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	res, err := s.deps.Problems.List(r.Context(), query.ListProblemsQuery{
		TeamID: id.TeamID,
		Sheet:  chi.URLParam(r, "sheetID"),
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleSearchProblems searches across all sheets. ?q= is the query.
func (s *Server) handleSearchProblems(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	res, err := s.deps.Problems.Search(r.Context(), query.SearchProblemsQuery{
		TeamID: id.TeamID,
		Query:  r.URL.Query().Get("q"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleAddProblem appends a problem to the end of its (sheet, rating)
// group.
func (s *Server) handleAddProblem(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	var body struct {
		Name     string `json:"name"`
		Link     string `json:"link"`
		Rating   string `json:"rating"`
		Platform string `json:"platform"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	p, err := s.deps.AddProblem.Handle(r.Context(), command.AddProblemCommand{
		TeamID:    id.TeamID,
		CreatedBy: id.Username,
		Name:      body.Name,
		Link:      body.Link,
		Rating:    body.Rating,
		Platform:  body.Platform,
		Sheet:     chi.URLParam(r, "sheetID"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, query.ToProblemDTO(p))
}

// handleReorderProblem moves a problem one position up or down within
// its (sheet, rating) group. Boundary moves succeed without changes.
func (s *Server) handleReorderProblem(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	var body struct {
		Direction string `json:"direction"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	res, err := s.deps.ReorderProblem.Handle(r.Context(), command.ReorderProblemCommand{
		TeamID:    id.TeamID,
		ProblemID: chi.URLParam(r, "problemID"),
		Direction: body.Direction,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"moved": res.Moved})
}

// handleUpdateProgress sets the caller's status for one problem.
func (s *Server) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	var body struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	rec, err := s.deps.UpdateProgress.Handle(r.Context(), command.UpdateProgressCommand{
		TeamID:    id.TeamID,
		Username:  id.Username,
		ProblemID: chi.URLParam(r, "problemID"),
		Status:    body.Status,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, query.ToProgressDTO(rec))
}

// handleUpdateNotes replaces the caller's notes for one problem.
func (s *Server) handleUpdateNotes(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	var body struct {
		Notes string `json:"notes"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	rec, err := s.deps.UpdateNotes.Handle(r.Context(), command.UpdateNotesCommand{
		TeamID:    id.TeamID,
		Username:  id.Username,
		ProblemID: chi.URLParam(r, "problemID"),
		Notes:     body.Notes,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, query.ToProgressDTO(rec))
}
