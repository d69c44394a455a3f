package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/zututors/zututors-backend/internal/domain"
)

// identityService defines the minimal interface needed by TutorHandler.
type identityService interface {
	ListTutors(ctx context.Context) ([]*domain.Tutor, error)
}

// TutorHandler serves the tutor directory endpoint.
type TutorHandler struct {
	svc identityService
	log *slog.Logger
}

// NewTutorHandler creates a TutorHandler.
func NewTutorHandler(svc identityService, logger *slog.Logger) *TutorHandler {
	return &TutorHandler{svc: svc, log: logger.With("handler", "tutors")}
}

type tutorResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Subjects  []string  `json:"subjects"`
	Bio       *string   `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// List handles GET /api/tutors.
func (h *TutorHandler) List(w http.ResponseWriter, r *http.Request) {
	tutors, err := h.svc.ListTutors(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]tutorResponse, 0, len(tutors))
	for _, t := range tutors {
		resp = append(resp, tutorResponse{
			ID:        t.ID,
			Name:      t.Name,
			Subjects:  t.SubjectList(),
			Bio:       t.Bio,
			CreatedAt: t.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
