package api

import (
	"net/http"

	practicesession "github.com/nautiquiz/backend/internal/domain/practice_session"
	"github.com/nautiquiz/backend/internal/domain/questionbank"
	"github.com/nautiquiz/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	User    string `json:"user" validate:"required,max=64" example:"marco"`
	License string `json:"license" validate:"omitempty,oneof=base sail vela" example:"base"`
	Mode    string `json:"mode" validate:"omitempty,oneof=training review exam" example:"training"`
	Count   int    `json:"count,omitempty" validate:"omitempty,min=1,max=200" example:"20"`
}

type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required" example:"125"`
	Option     string `json:"option" validate:"required,max=8" example:"B"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a training, review or exam session.
// @Summary      Start a session
// @Description  Builds a question batch for the user. A review with nothing due answers 200 with status "nothing_to_review" and no session.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Session to start"
// @Success      201   {object}  service.SessionView
// @Success      200   {object}  service.SessionView  "nothing to review"
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "no data available"
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	license, err := questionbank.ParseLicense(req.License)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.sessions.Start(r.Context(), service.StartRequest{
		User:    req.User,
		License: license,
		Mode:    practicesession.Kind(req.Mode),
		Count:   req.Count,
	})
	if h.handleError(w, err) {
		return
	}

	if view.Status == practicesession.StatusNothingToReview {
		respondJSON(w, http.StatusOK, view)
		return
	}
	respondJSON(w, http.StatusCreated, view)
}

// getSession returns the state of a session.
// @Summary      Get a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  service.SessionView
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.Get(r.PathValue("sessionID"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// submitAnswer grades the answer to the current question.
// @Summary      Answer the current question
// @Description  Grades the option, updates the user's history and moves to the next question. The history write happens in the background.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SubmitAnswerRequest  true  "Answer"
// @Success      200        {object}  service.AnswerResult
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "finished session or not the current question"
// @Router       /sessions/{sessionID}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	res, err := h.sessions.Answer(r.PathValue("sessionID"), req.QuestionID, req.Option)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// skipQuestion moves the current question to the end of the session.
// @Summary      Skip the current question
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  service.SessionView
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "last question or finished session"
// @Router       /sessions/{sessionID}/skip [post]
func (h *Handler) skipQuestion(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.Skip(r.PathValue("sessionID"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// completeSession closes a session; exams get their verdict.
// @Summary      Complete a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  service.SessionView
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/complete [post]
func (h *Handler) completeSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.Complete(r.PathValue("sessionID"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, view)
}
