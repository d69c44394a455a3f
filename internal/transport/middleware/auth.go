package middleware

import (
	"net/http"
	"strings"

	"github.com/zututors/zututors-backend/internal/domain"
	"github.com/zututors/zututors-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (domain.ParticipantKind, int64, error)
}

// Auth returns middleware that resolves a Bearer token into the calling
// participant. Requests without a token pass through anonymously; services
// reject the operations that need an identity. An invalid token is always
// a hard 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			kind, id, err := validator.ValidateAccessToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithCaller(r.Context(), ctxutil.Caller{Kind: kind, ID: id})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
