package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/zututors/zututors-backend/internal/domain"
	"github.com/zututors/zututors-backend/internal/service/lifecycle"
	"github.com/zututors/zututors-backend/pkg/ctxutil"
)

// lifecycleService defines the minimal interface needed by RequestHandler.
type lifecycleService interface {
	CreateRequest(ctx context.Context, input lifecycle.CreateRequestInput) (*domain.Board, error)
	AcceptRequest(ctx context.Context, input lifecycle.AcceptRequestInput) (domain.TransitionOutcome, error)
	DeclineRequest(ctx context.Context, requestID int64) (domain.TransitionOutcome, error)
	ListRequests(ctx context.Context, input lifecycle.ListRequestsInput) ([]*domain.PendingRequest, error)
}

// RequestHandler serves help-request REST endpoints.
type RequestHandler struct {
	svc lifecycleService
	log *slog.Logger
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(svc lifecycleService, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{svc: svc, log: logger.With("handler", "requests")}
}

type createRequestRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

type requestResponse struct {
	ID          int64     `json:"id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	StudentID   int64     `json:"studentId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type pendingRequestResponse struct {
	ID          int64     `json:"id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	StudentID   int64     `json:"studentId"`
	StudentName string    `json:"studentName"`
	CreatedAt   time.Time `json:"createdAt"`
}

type actionRequest struct {
	Action string `json:"action"`
}

type outcomeResponse struct {
	Outcome string `json:"outcome"`
}

// Create handles POST /api/requests.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateRequest(r.Context(), lifecycle.CreateRequestInput{
		Subject:     req.Subject,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, requestResponse{
		ID:          created.ID,
		Subject:     created.Title,
		Description: created.Content,
		StudentID:   created.AuthorID,
		CreatedAt:   created.CreatedAt,
	})
}

// List handles GET /api/requests.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	input := lifecycle.ListRequestsInput{}

	q := r.URL.Query()
	if v := q.Get("student_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid student_id")
			return
		}
		input.StudentID = &id
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		input.Offset = n
	}

	requests, err := h.svc.ListRequests(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]pendingRequestResponse, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, pendingRequestResponse{
			ID:          req.ID,
			Subject:     req.Subject,
			Description: req.Description,
			StudentID:   req.StudentID,
			StudentName: req.StudentName,
			CreatedAt:   req.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Act handles POST /api/requests/{id}: a tutor accepts or declines an open
// request. Both actions are idempotent; a request already handled by anyone
// reports "already_processed" with a 200, not an error.
func (h *RequestHandler) Act(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	caller, ok := ctxutil.CallerFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if caller.Kind != domain.KindTutor {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var outcome domain.TransitionOutcome
	switch req.Action {
	case "accept":
		outcome, err = h.svc.AcceptRequest(r.Context(), lifecycle.AcceptRequestInput{
			RequestID: id,
			TutorID:   caller.ID,
		})
	case "decline":
		outcome, err = h.svc.DeclineRequest(r.Context(), id)
	default:
		writeError(w, http.StatusUnprocessableEntity, `action must be "accept" or "decline"`)
		return
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, outcomeResponse{Outcome: outcome.String()})
}
