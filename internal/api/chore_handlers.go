package api

import (
	"net/http"
	"time"

	"github.com/housemate-app/housemate/internal/chores"
	"github.com/housemate-app/housemate/internal/fault"
	"github.com/housemate-app/housemate/internal/models"
)

type createChoreRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssignedTo  string     `json:"assignedTo"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	Recurring   string     `json:"recurring"`
	Notes       string     `json:"notes"`
}

func (s *Server) handleCreateChore(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if user.HouseholdID == "" {
		writeError(w, fault.New(fault.Forbidden, "join a household to create chores"))
		return
	}

	var req createChoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	in := chores.CreateChoreInput{
		Title:        req.Title,
		Description:  req.Description,
		AssignedToID: req.AssignedTo,
		Priority:     models.ChorePriority(req.Priority),
		Category:     models.ChoreCategory(req.Category),
		Recurring:    models.Frequency(req.Recurring),
		Notes:        req.Notes,
	}
	if req.DueDate != nil {
		in.DueDate = *req.DueDate
	}

	c, err := s.chores.CreateChore(r.Context(), user.HouseholdID, user.ID, in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, s.viewChore(c))
}

func (s *Server) handleListChores(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if user.HouseholdID == "" {
		writeError(w, fault.New(fault.Forbidden, "join a household to list chores"))
		return
	}

	list, err := s.chores.ListChores(r.Context(), user.HouseholdID, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]choreView, len(list))
	for i, c := range list {
		views[i] = s.viewChore(c)
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleToggleChore(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	c, err := s.chores.ToggleCompletion(r.Context(), r.PathValue("id"), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.viewChore(c))
}

func (s *Server) handleDeleteChore(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if err := s.chores.DeleteChore(r.Context(), r.PathValue("id"), user.ID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHouseholdStats(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if user.HouseholdID == "" {
		writeError(w, fault.New(fault.Forbidden, "join a household to view stats"))
		return
	}

	stats, err := s.chores.HouseholdStats(r.Context(), user.HouseholdID, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, viewHouseholdStats(stats))
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	stats, err := s.chores.UserStats(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, viewUserStats(stats))
}
