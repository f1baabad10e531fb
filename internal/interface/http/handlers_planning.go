package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Bitshifter-9/cp-tracker/internal/application/command"
	"github.com/Bitshifter-9/cp-tracker/internal/application/query"
)

// handleListSheets returns the team's custom sheets.
func (s *Server) handleListSheets(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	sheets, err := s.deps.Collections.Sheets(r.Context(), query.ListSheetsQuery{TeamID: id.TeamID})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"sheets": sheets})
}

// handleCreateSheet creates a custom sheet.
func (s *Server) handleCreateSheet(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	var body struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	sh, err := s.deps.Sheets.Create(r.Context(), command.CreateSheetCommand{
		TeamID:    id.TeamID,
		CreatedBy: id.Username,
		Name:      body.Name,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, query.SheetDTO{
		ID:        sh.ID,
		Name:      sh.Name,
		CreatedBy: sh.CreatedBy.String(),
		CreatedAt: sh.CreatedAt,
	})
}

// handleRenameSheet renames a custom sheet.
func (s *Server) handleRenameSheet(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	var body struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	sh, err := s.deps.Sheets.Rename(r.Context(), command.RenameSheetCommand{
		TeamID:  id.TeamID,
		SheetID: chi.URLParam(r, "sheetID"),
		Name:    body.Name,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, query.SheetDTO{
		ID:        sh.ID,
		Name:      sh.Name,
		CreatedBy: sh.CreatedBy.String(),
		CreatedAt: sh.CreatedAt,
	})
}

// handleDeleteSheet removes a custom sheet and the problems filed under
// it.
func (s *Server) handleDeleteSheet(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	err := s.deps.Sheets.Delete(r.Context(), command.DeleteSheetCommand{
		TeamID:  id.TeamID,
		SheetID: chi.URLParam(r, "sheetID"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// handleListContests returns the team's planned contests in date order.
func (s *Server) handleListContests(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	contests, err := s.deps.Collections.Contests(r.Context(), query.ListContestsQuery{TeamID: id.TeamID})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"contests": contests})
}

// handleAddContest schedules a contest.
func (s *Server) handleAddContest(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	var body struct {
		Name     string    `json:"name"`
		Platform string    `json:"platform"`
		Date     time.Time `json:"date"`
		Link     string    `json:"link"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	c, err := s.deps.Contests.Add(r.Context(), command.AddContestCommand{
		TeamID:    id.TeamID,
		CreatedBy: id.Username,
		Name:      body.Name,
		Platform:  body.Platform,
		Date:      body.Date,
		Link:      body.Link,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, query.ContestDTO{
		ID:        c.ID,
		Name:      c.Name,
		Platform:  string(c.Platform),
		Date:      c.Date,
		Link:      c.Link,
		CreatedBy: c.CreatedBy.String(),
		CreatedAt: c.CreatedAt,
	})
}

// handleDeleteContest removes a scheduled contest.
func (s *Server) handleDeleteContest(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	err := s.deps.Contests.Delete(r.Context(), command.DeleteContestCommand{
		TeamID:    id.TeamID,
		ContestID: chi.URLParam(r, "contestID"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// handleListTopics returns the caller's to-learn topics.
func (s *Server) handleListTopics(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	topics, err := s.deps.Collections.Topics(r.Context(), query.ListTopicsQuery{
		TeamID:   id.TeamID,
		Username: id.Username,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"topics": topics})
}

// handleCreateTopic adds a topic to the caller's list.
func (s *Server) handleCreateTopic(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	var body struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Priority    string   `json:"priority"`
		Resources   []string `json:"resources"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	t, err := s.deps.Topics.Create(r.Context(), command.CreateTopicCommand{
		TeamID:      id.TeamID,
		Username:    id.Username,
		Name:        body.Name,
		Description: body.Description,
		Priority:    body.Priority,
		Resources:   body.Resources,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, query.ToTopicDTO(t))
}

// handleUpdateTopic applies a partial edit to a topic. Absent fields are
// left untouched.
func (s *Server) handleUpdateTopic(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	var body struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Priority    *string  `json:"priority"`
		Resources   []string `json:"resources"`
		Status      *string  `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	t, err := s.deps.Topics.Update(r.Context(), command.UpdateTopicCommand{
		TeamID:      id.TeamID,
		Username:    id.Username,
		TopicID:     chi.URLParam(r, "topicID"),
		Name:        body.Name,
		Description: body.Description,
		Priority:    body.Priority,
		Resources:   body.Resources,
		Status:      body.Status,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, query.ToTopicDTO(t))
}

// handleSetTopicStatus transitions a topic's status.
func (s *Server) handleSetTopicStatus(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	var body struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	t, err := s.deps.Topics.SetStatus(r.Context(), command.SetTopicStatusCommand{
		TeamID:   id.TeamID,
		Username: id.Username,
		TopicID:  chi.URLParam(r, "topicID"),
		Status:   body.Status,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, query.ToTopicDTO(t))
}

// handleDeleteTopic removes a topic from the caller's list.
func (s *Server) handleDeleteTopic(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	err := s.deps.Topics.Delete(r.Context(), command.DeleteTopicCommand{
		TeamID:   id.TeamID,
		Username: id.Username,
		TopicID:  chi.URLParam(r, "topicID"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
