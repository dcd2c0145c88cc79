package api

import (
	"net/http"

	"github.com/housemate-app/housemate/internal/fault"
)

type createHouseholdRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleCreateHousehold(w http.ResponseWriter, r *http.Request) {
	var req createHouseholdRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user := currentUser(r.Context())
	h, err := s.households.CreateHousehold(r.Context(), user.ID, req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, viewHousehold(h))
}

func (s *Server) handleMyHousehold(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if user.HouseholdID == "" {
		writeError(w, fault.New(fault.NotFound, "user belongs to no household"))
		return
	}

	h, err := s.households.GetHousehold(r.Context(), user.ID, user.HouseholdID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, viewHousehold(h))
}

func (s *Server) handleJoinHousehold(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	h, err := s.households.JoinHousehold(r.Context(), user.ID, r.PathValue("code"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, viewHousehold(h))
}

func (s *Server) handleLeaveHousehold(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if err := s.households.LeaveHousehold(r.Context(), user.ID, r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
