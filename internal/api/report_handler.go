package api

import "net/http"

type CreateReportRequest struct {
	User       string `json:"user" validate:"required,max=64" example:"marco"`
	QuestionID string `json:"question_id" validate:"required" example:"125"`
	Message    string `json:"message" validate:"required,max=2000" example:"answer B is also correct"`
}

// createReport files a note about a faulty question.
// @Summary      Report a question
// @Tags         Reports
// @Accept       json
// @Produce      json
// @Param        body  body      CreateReportRequest  true  "Report"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /reports [post]
func (h *Handler) createReport(w http.ResponseWriter, r *http.Request) {
	var req CreateReportRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	err := h.progress.Report(r.Context(), req.User, req.QuestionID, req.Message)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"status": "received"})
}
