package api

import (
	"net/http"

	"github.com/nautiquiz/backend/internal/domain/history"
	"github.com/nautiquiz/backend/internal/domain/questionbank"
)

// getQuestionImage serves the picture attached to a question.
// @Summary      Get a question image
// @Tags         Questions
// @Produce      image/png
// @Produce      image/jpeg
// @Param        license     path  string  true  "base or sail"
// @Param        questionID  path  string  true  "Question ID"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /licenses/{license}/questions/{questionID}/image [get]
func (h *Handler) getQuestionImage(w http.ResponseWriter, r *http.Request) {
	license, err := questionbank.ParseLicense(r.PathValue("license"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	bank, err := h.catalog.Bank(license)
	if h.handleError(w, err) {
		return
	}
	qid := history.NormalizeID(r.PathValue("questionID"))
	if !bank.Contains(qid) {
		respondError(w, http.StatusNotFound, "question not found")
		return
	}
	path, ok := h.catalog.Image(qid)
	if !ok {
		respondError(w, http.StatusNotFound, "image not found")
		return
	}
	http.ServeFile(w, r, path)
}
