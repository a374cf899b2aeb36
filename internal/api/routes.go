// internal/api/routes.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Users
	mux.HandleFunc("GET /users", h.listUsers)
	mux.HandleFunc("GET /users/{userID}/history", h.getHistory)
	mux.HandleFunc("GET /users/{userID}/stats", h.getStats)

	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.submitAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/skip", h.skipQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/complete", h.completeSession)

	// Reports
	mux.HandleFunc("POST /reports", h.createReport)

	// Images
	mux.HandleFunc("GET /licenses/{license}/questions/{questionID}/image", h.getQuestionImage)
}
