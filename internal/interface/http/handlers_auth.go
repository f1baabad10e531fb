package http

import (
	"net/http"

	"github.com/Bitshifter-9/cp-tracker/internal/application/command"
)

type accessResponse struct {
	Token    string `json:"token"`
	TeamID   string `json:"teamId"`
	Username string `json:"username"`
}

func toAccessResponse(res *command.AccessResult) accessResponse {
	return accessResponse{
		Token:    res.Token,
		TeamID:   res.TeamID.String(),
		Username: res.Username.String(),
	}
}

// handleCreateTeam creates a team, seeds its starter sheets, and logs
// the founder in.
func (s *Server) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	res, err := s.deps.CreateTeam.Handle(r.Context(), command.CreateTeamCommand{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccessResponse(res))
}

// handleJoinTeam adds a member to an existing team.
func (s *Server) handleJoinTeam(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TeamID   string `json:"teamId"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	res, err := s.deps.JoinTeam.Handle(r.Context(), command.JoinTeamCommand{
		TeamID:   body.TeamID,
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccessResponse(res))
}

// handleLogin authenticates an existing member.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TeamID   string `json:"teamId"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	res, err := s.deps.Login.Handle(r.Context(), command.LoginCommand{
		TeamID:   body.TeamID,
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccessResponse(res))
}

// handleUpdateProfile changes the caller's username and/or password and
// returns a fresh token.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	res, err := s.deps.UpdateProfile.Handle(r.Context(), command.UpdateProfileCommand{
		TeamID:      id.TeamID,
		Username:    id.Username,
		NewUsername: body.Username,
		NewPassword: body.Password,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccessResponse(res))
}
