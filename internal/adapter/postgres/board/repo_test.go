package board_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zututors/zututors-backend/internal/adapter/postgres/board"
	"github.com/zututors/zututors-backend/internal/adapter/postgres/testhelper"
	"github.com/zututors/zututors-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*board.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return board.New(pool), pool
}

// ---------------------------------------------------------------------------
// CreateRequest tests
// ---------------------------------------------------------------------------

func TestRepo_CreateRequest_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	student := testhelper.SeedStudent(t, pool)

	input, err := domain.NewHelpRequest(student.ID, "Algebra", "Need help with factoring")
	if err != nil {
		t.Fatalf("NewHelpRequest: %v", err)
	}

	got, err := repo.CreateRequest(ctx, input)
	if err != nil {
		t.Fatalf("CreateRequest: unexpected error: %v", err)
	}

	if got.ID == 0 {
		t.Error("ID should be assigned")
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should not be zero")
	}
	if got.Role != domain.RoleRequest {
		t.Errorf("Role mismatch: got %q, want %q", got.Role, domain.RoleRequest)
	}
}

// ---------------------------------------------------------------------------
// Transition tests
// ---------------------------------------------------------------------------

func TestRepo_Transition_AcceptsOpenRequest(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	student := testhelper.SeedStudent(t, pool)
	tutor := testhelper.SeedTutor(t, pool)
	req := testhelper.SeedRequest(t, pool, student.ID, "Algebra", "Need help with factoring")

	ok, err := repo.Transition(ctx, req.ID, domain.RoleRequest, domain.RoleConversation, tutor.ID)
	if err != nil {
		t.Fatalf("Transition: unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("Transition on an open request should report true")
	}

	conv, err := repo.GetConversation(ctx, req.ID)
	if err != nil {
		t.Fatalf("GetConversation: %v", err)
	}
	if conv == nil {
		t.Fatal("accepted request should now be a conversation")
	}
	if conv.TutorID == nil || *conv.TutorID != tutor.ID {
		t.Errorf("TutorID mismatch: got %v, want %d", conv.TutorID, tutor.ID)
	}
	if conv.AuthorID != student.ID {
		t.Errorf("AuthorID mismatch: got %d, want %d", conv.AuthorID, student.ID)
	}
}

func TestRepo_Transition_SecondCallReportsFalse(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	student := testhelper.SeedStudent(t, pool)
	t1 := testhelper.SeedTutor(t, pool)
	t2 := testhelper.SeedTutor(t, pool)
	req := testhelper.SeedRequest(t, pool, student.ID, "Physics", "Projectile motion")

	ok, err := repo.Transition(ctx, req.ID, domain.RoleRequest, domain.RoleConversation, t1.ID)
	if err != nil || !ok {
		t.Fatalf("first Transition: ok=%v err=%v", ok, err)
	}

	ok, err = repo.Transition(ctx, req.ID, domain.RoleRequest, domain.RoleConversation, t2.ID)
	if err != nil {
		t.Fatalf("second Transition: unexpected error: %v", err)
	}
	if ok {
		t.Fatal("second Transition must report false")
	}

	// The winner's tutor id must be untouched by the losing call.
	conv, err := repo.GetConversation(ctx, req.ID)
	if err != nil || conv == nil {
		t.Fatalf("GetConversation: conv=%v err=%v", conv, err)
	}
	if *conv.TutorID != t1.ID {
		t.Errorf("tutor overwritten by lost race: got %d, want %d", *conv.TutorID, t1.ID)
	}
}

func TestRepo_Transition_MissingID(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	ok, err := repo.Transition(context.Background(), 999999999, domain.RoleRequest, domain.RoleConversation, 1)
	if err != nil {
		t.Fatalf("Transition: unexpected error: %v", err)
	}
	if ok {
		t.Error("Transition on a missing id must report false, not error")
	}
}

// TestRepo_Transition_ConcurrentAccept races N tutors on one request.
// Exactly one caller may win; the stored tutor must be the winner's id.
func TestRepo_Transition_ConcurrentAccept(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	student := testhelper.SeedStudent(t, pool)

	const racers = 8
	tutorIDs := make([]int64, racers)
	for i := range tutorIDs {
		tutorIDs[i] = testhelper.SeedTutor(t, pool).ID
	}
	req := testhelper.SeedRequest(t, pool, student.ID, "Chemistry", "Stoichiometry drills")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []int64
	)
	start := make(chan struct{})

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(tutorID int64) {
			defer wg.Done()
			<-start
			ok, err := repo.Transition(ctx, req.ID, domain.RoleRequest, domain.RoleConversation, tutorID)
			if err != nil {
				t.Errorf("Transition(tutor %d): %v", tutorID, err)
				return
			}
			if ok {
				mu.Lock()
				winners = append(winners, tutorID)
				mu.Unlock()
			}
		}(tutorIDs[i])
	}

	close(start)
	wg.Wait()

	if len(winners) != 1 {
		t.Fatalf("want exactly 1 winner, got %d (%v)", len(winners), winners)
	}

	conv, err := repo.GetConversation(ctx, req.ID)
	if err != nil || conv == nil {
		t.Fatalf("GetConversation: conv=%v err=%v", conv, err)
	}
	if *conv.TutorID != winners[0] {
		t.Errorf("stored tutor %d is not the winner %d", *conv.TutorID, winners[0])
	}
}

// ---------------------------------------------------------------------------
// DeleteIfRole tests
// ---------------------------------------------------------------------------

func TestRepo_DeleteIfRole_RemovesOpenRequest(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	student := testhelper.SeedStudent(t, pool)
	req := testhelper.SeedRequest(t, pool, student.ID, "Biology", "Cell division")

	ok, err := repo.DeleteIfRole(ctx, req.ID, domain.RoleRequest)
	if err != nil {
		t.Fatalf("DeleteIfRole: unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("DeleteIfRole on an open request should report true")
	}

	// Second decline: the row is gone, so false without error.
	ok, err = repo.DeleteIfRole(ctx, req.ID, domain.RoleRequest)
	if err != nil {
		t.Fatalf("second DeleteIfRole: unexpected error: %v", err)
	}
	if ok {
		t.Error("second DeleteIfRole must report false")
	}
}

func TestRepo_DeleteIfRole_LeavesConversationsAlone(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	student := testhelper.SeedStudent(t, pool)
	tutor := testhelper.SeedTutor(t, pool)
	conv := testhelper.SeedConversation(t, pool, student.ID, tutor.ID, "Algebra", "Factoring")

	ok, err := repo.DeleteIfRole(ctx, conv.ID, domain.RoleRequest)
	if err != nil {
		t.Fatalf("DeleteIfRole: unexpected error: %v", err)
	}
	if ok {
		t.Fatal("a conversation must not be deletable via the request predicate")
	}

	got, err := repo.GetConversation(ctx, conv.ID)
	if err != nil || got == nil {
		t.Fatalf("conversation should be untouched: conv=%v err=%v", got, err)
	}
}

// ---------------------------------------------------------------------------
// CreateMessage tests
// ---------------------------------------------------------------------------

func TestRepo_CreateMessage_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	student := testhelper.SeedStudent(t, pool)
	tutor := testhelper.SeedTutor(t, pool)
	conv := testhelper.SeedConversation(t, pool, student.ID, tutor.ID, "Algebra", "Factoring")

	msg, err := domain.NewMessage(conv.ID, student.ID, "when are you free?")
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}

	got, err := repo.CreateMessage(ctx, msg)
	if err != nil {
		t.Fatalf("CreateMessage: unexpected error: %v", err)
	}
	if got.ID == 0 || got.CreatedAt.IsZero() {
		t.Errorf("id/created_at not assigned: %+v", got)
	}
}

func TestRepo_CreateMessage_ParentMustBeConversation(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	student := testhelper.SeedStudent(t, pool)
	req := testhelper.SeedRequest(t, pool, student.ID, "Algebra", "Factoring")

	// A request cannot parent messages.
	msg, err := domain.NewMessage(req.ID, student.ID, "hello?")
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	if _, err := repo.CreateMessage(ctx, msg); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("append to request: want ErrNotFound, got %v", err)
	}

	// Neither can a missing id.
	msg, err = domain.NewMessage(999999999, student.ID, "hello?")
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	if _, err := repo.CreateMessage(ctx, msg); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("append to missing conversation: want ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Read path tests
// ---------------------------------------------------------------------------

func TestRepo_GetConversation_SoftMiss(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	got, err := repo.GetConversation(context.Background(), 999999999)
	if err != nil {
		t.Fatalf("GetConversation: unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("missing conversation should be a soft nil, got %+v", got)
	}
}

func TestRepo_ListMessages_ThreadOrder(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	student := testhelper.SeedStudent(t, pool)
	tutor := testhelper.SeedTutor(t, pool)
	conv := testhelper.SeedConversation(t, pool, student.ID, tutor.ID, "Algebra", "Factoring")

	first := testhelper.SeedMessage(t, pool, conv.ID, student.ID, "hi")
	second := testhelper.SeedMessage(t, pool, conv.ID, tutor.ID, "hello")
	third := testhelper.SeedMessage(t, pool, conv.ID, student.ID, "can we meet tomorrow?")

	got, err := repo.ListMessages(ctx, conv.ID)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3 messages, got %d", len(got))
	}

	wantOrder := []int64{first.ID, second.ID, third.ID}
	for i, msg := range got {
		if msg.ID != wantOrder[i] {
			t.Errorf("position %d: got id %d, want %d", i, msg.ID, wantOrder[i])
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.Before(got[i-1].CreatedAt) {
			t.Errorf("created_at not non-decreasing at position %d", i)
		}
	}
}

func TestRepo_ListConversations_BothSides(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	student := testhelper.SeedStudent(t, pool)
	tutor := testhelper.SeedTutor(t, pool)
	conv := testhelper.SeedConversation(t, pool, student.ID, tutor.ID, "Algebra", "Factoring")

	forStudent, err := repo.ListConversationsByStudent(ctx, student.ID)
	if err != nil {
		t.Fatalf("ListConversationsByStudent: %v", err)
	}
	if len(forStudent) != 1 || forStudent[0].ID != conv.ID {
		t.Fatalf("student listing: got %+v", forStudent)
	}
	if forStudent[0].Counterpart != tutor.Name {
		t.Errorf("student sees counterpart %q, want %q", forStudent[0].Counterpart, tutor.Name)
	}

	forTutor, err := repo.ListConversationsByTutor(ctx, tutor.ID)
	if err != nil {
		t.Fatalf("ListConversationsByTutor: %v", err)
	}
	if len(forTutor) != 1 || forTutor[0].ID != conv.ID {
		t.Fatalf("tutor listing: got %+v", forTutor)
	}
	if forTutor[0].Counterpart != student.Name {
		t.Errorf("tutor sees counterpart %q, want %q", forTutor[0].Counterpart, student.Name)
	}
}

func TestRepo_ListPendingRequests(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	student := testhelper.SeedStudent(t, pool)
	req := testhelper.SeedRequest(t, pool, student.ID, "Geometry", "Proofs")

	got, err := repo.ListPendingRequests(ctx, board.RequestFilter{StudentID: &student.ID})
	if err != nil {
		t.Fatalf("ListPendingRequests: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 request, got %d", len(got))
	}
	if got[0].ID != req.ID || got[0].StudentName != student.Name || got[0].Subject != "Geometry" {
		t.Errorf("unexpected row: %+v", got[0])
	}
}
