package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/zututors/zututors-backend/internal/domain"
	"github.com/zututors/zututors-backend/internal/service/thread"
)

// threadService defines the minimal interface needed by ConversationHandler.
type threadService interface {
	ListConversations(ctx context.Context) ([]*domain.ConversationSummary, error)
	LoadThread(ctx context.Context, conversationID int64) ([]*domain.ThreadEntry, error)
	AppendMessage(ctx context.Context, input thread.AppendMessageInput) (*domain.Board, error)
}

// ConversationHandler serves conversation REST endpoints.
type ConversationHandler struct {
	svc threadService
	log *slog.Logger
}

// NewConversationHandler creates a ConversationHandler.
func NewConversationHandler(svc threadService, logger *slog.Logger) *ConversationHandler {
	return &ConversationHandler{svc: svc, log: logger.With("handler", "conversations")}
}

type conversationResponse struct {
	ID          int64     `json:"id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Counterpart string    `json:"counterpart"`
	CreatedAt   time.Time `json:"createdAt"`
}

type threadEntryResponse struct {
	ID         int64     `json:"id"`
	AuthorID   int64     `json:"authorId"`
	AuthorKind string    `json:"authorKind"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	Starter    bool      `json:"starter"`
	CreatedAt  time.Time `json:"createdAt"`
}

type appendMessageRequest struct {
	Text string `json:"text"`
}

type messageResponse struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversationId"`
	AuthorID       int64     `json:"authorId"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"createdAt"`
}

// List handles GET /api/conversations.
func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListConversations(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]conversationResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, conversationResponse{
			ID:          s.ID,
			Subject:     s.Title,
			Description: s.Content,
			Counterpart: s.Counterpart,
			CreatedAt:   s.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Thread handles GET /api/conversations/{id}/messages. An id that matches no
// conversation returns an empty list, mirroring the service's soft miss.
func (h *ConversationHandler) Thread(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid conversation id")
		return
	}

	entries, err := h.svc.LoadThread(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]threadEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, threadEntryResponse{
			ID:         e.BoardID,
			AuthorID:   e.Author.ID,
			AuthorKind: e.Author.Kind.String(),
			AuthorName: e.Author.Name,
			Text:       e.Content,
			Starter:    e.Starter,
			CreatedAt:  e.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Append handles POST /api/conversations/{id}/messages.
func (h *ConversationHandler) Append(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid conversation id")
		return
	}

	var req appendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.AppendMessage(r.Context(), thread.AppendMessageInput{
		ConversationID: id,
		Text:           req.Text,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{
		ID:             created.ID,
		ConversationID: id,
		AuthorID:       created.AuthorID,
		Text:           created.Content,
		CreatedAt:      created.CreatedAt,
	})
}
