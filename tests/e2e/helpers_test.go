//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	boardrepo "github.com/zututors/zututors-backend/internal/adapter/postgres/board"
	studentrepo "github.com/zututors/zututors-backend/internal/adapter/postgres/student"
	"github.com/zututors/zututors-backend/internal/adapter/postgres/testhelper"
	tutorrepo "github.com/zututors/zututors-backend/internal/adapter/postgres/tutor"
	authpkg "github.com/zututors/zututors-backend/internal/auth"
	"github.com/zututors/zututors-backend/internal/config"
	"github.com/zututors/zututors-backend/internal/domain"
	"github.com/zututors/zututors-backend/internal/service/identity"
	"github.com/zututors/zututors-backend/internal/service/lifecycle"
	"github.com/zututors/zututors-backend/internal/service/thread"
	"github.com/zututors/zututors-backend/internal/transport/middleware"
	"github.com/zututors/zututors-backend/internal/transport/rest"
)

const testJWTSecret = "e2e-secret-key-that-is-32-chars-ok!"

// testServer bundles a running HTTP server over a real database.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	JWT    *authpkg.JWTManager
}

// setupTestServer wires the full stack (repos, services, handlers, the
// middleware chain) over the shared test container and serves it via
// httptest.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.Default()

	boards := boardrepo.New(pool)
	students := studentrepo.New(pool)
	tutors := tutorrepo.New(pool)

	jwtManager := authpkg.NewJWTManager(testJWTSecret, "zututors", time.Hour)

	identities := identity.NewResolver(logger, students, tutors)
	lifecycleSvc := lifecycle.NewService(logger, boards)
	threadSvc := thread.NewService(logger, boards, identities)

	mux := rest.NewRouter(rest.Handlers{
		Requests:      rest.NewRequestHandler(lifecycleSvc, logger),
		Conversations: rest.NewConversationHandler(threadSvc, logger),
		Tutors:        rest.NewTutorHandler(identities, logger),
		Health:        rest.NewHealthHandler(pool, "e2e"),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		}),
		middleware.Auth(jwtManager),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		JWT:    jwtManager,
	}
}

func (ts *testServer) studentToken(t *testing.T, id int64) string {
	t.Helper()
	token, err := ts.JWT.GenerateAccessToken(domain.KindStudent, id)
	require.NoError(t, err)
	return token
}

func (ts *testServer) tutorToken(t *testing.T, id int64) string {
	t.Helper()
	token, err := ts.JWT.GenerateAccessToken(domain.KindTutor, id)
	require.NoError(t, err)
	return token
}

// do issues a JSON request with an optional bearer token and decodes the
// response body into out (when out is non-nil).
func (ts *testServer) do(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}
