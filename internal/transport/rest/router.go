package rest

import "net/http"

// Handlers aggregates everything the router mounts.
type Handlers struct {
	Requests      *RequestHandler
	Conversations *ConversationHandler
	Tutors        *TutorHandler
	Health        *HealthHandler
}

// NewRouter mounts all REST routes on a ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/requests", h.Requests.Create)
	mux.HandleFunc("GET /api/requests", h.Requests.List)
	mux.HandleFunc("POST /api/requests/{id}", h.Requests.Act)

	mux.HandleFunc("GET /api/conversations", h.Conversations.List)
	mux.HandleFunc("GET /api/conversations/{id}/messages", h.Conversations.Thread)
	mux.HandleFunc("POST /api/conversations/{id}/messages", h.Conversations.Append)

	mux.HandleFunc("GET /api/tutors", h.Tutors.List)

	mux.HandleFunc("GET /healthz", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	return mux
}
