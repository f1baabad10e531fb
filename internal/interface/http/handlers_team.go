package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Bitshifter-9/cp-tracker/internal/application/command"
	"github.com/Bitshifter-9/cp-tracker/internal/application/query"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// handleGetTeam returns the caller's team with the member roster.
func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	dto, err := s.deps.Team.Handle(r.Context(), query.GetTeamQuery{TeamID: id.TeamID})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// handleRenameTeam changes the team display name.
func (s *Server) handleRenameTeam(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	var body struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	t, err := s.deps.RenameTeam.Handle(r.Context(), command.RenameTeamCommand{
		TeamID: id.TeamID,
		Name:   body.Name,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": t.ID.String(), "name": t.Name})
}

// handleLeaderboard returns the team ranking, computed fresh on every
// request.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	res, err := s.deps.Leaderboard.Handle(r.Context(), query.GetLeaderboardQuery{TeamID: id.TeamID})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleTeamProgress returns the whole team's progress log.
func (s *Server) handleTeamProgress(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	res, err := s.deps.Progress.Team(r.Context(), query.GetTeamProgressQuery{TeamID: id.TeamID})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleUserProgress returns one member's progress log.
func (s *Server) handleUserProgress(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())
	username := shared.Username(chi.URLParam(r, "username"))

	res, err := s.deps.Progress.User(r.Context(), query.GetUserProgressQuery{
		TeamID:   id.TeamID,
		Username: username,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleStreak returns a member's consecutive-day solve streak.
func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())
	username := shared.Username(chi.URLParam(r, "username"))

	res, err := s.deps.Streak.Handle(r.Context(), query.GetStreakQuery{
		TeamID:   id.TeamID,
		Username: username,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
