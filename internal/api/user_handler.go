package api

import (
	"net/http"

	"github.com/nautiquiz/backend/internal/domain/questionbank"
)

type UserListResponse struct {
	Users []string `json:"users"`
}

// listUsers lists the users with a recorded history.
// @Summary      List users
// @Tags         Users
// @Produce      json
// @Success      200  {object}  UserListResponse
// @Router       /users [get]
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, UserListResponse{Users: h.progress.Users(r.Context())})
}

// getHistory returns the normalized answer history of a user.
// @Summary      Get a user's history
// @Tags         Users
// @Produce      json
// @Param        userID  path      string  true  "User"
// @Success      200     {object}  map[string]history.Entry
// @Router       /users/{userID}/history [get]
func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.progress.History(r.Context(), r.PathValue("userID")))
}

// getStats returns per-topic progress and the rank of a user.
// @Summary      Get a user's stats
// @Tags         Users
// @Produce      json
// @Param        userID   path      string  true   "User"
// @Param        license  query     string  false  "base or sail"  default(base)
// @Success      200      {object}  service.StatsView
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string  "no data available"
// @Router       /users/{userID}/stats [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	license, err := questionbank.ParseLicense(r.URL.Query().Get("license"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	stats, err := h.progress.Stats(r.Context(), r.PathValue("userID"), license)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
