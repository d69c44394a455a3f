package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zututors/zututors-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedStudent inserts a student with generated email and name.
func SeedStudent(t *testing.T, pool *pgxpool.Pool) domain.Student {
	t.Helper()

	suffix := uniqueSuffix()
	s := domain.Student{
		Email: "student-" + suffix + "@example.com",
		Name:  "Student " + suffix,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO students (email, name) VALUES ($1, $2) RETURNING id, created_at`,
		s.Email, s.Name,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedStudent: %v", err)
	}

	return s
}

// SeedTutor inserts a tutor with generated email, name, and subjects.
func SeedTutor(t *testing.T, pool *pgxpool.Pool) domain.Tutor {
	t.Helper()

	suffix := uniqueSuffix()
	tu := domain.Tutor{
		Email:    "tutor-" + suffix + "@example.com",
		Name:     "Tutor " + suffix,
		Subjects: "Mathematics, Calculus",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO tutors (email, name, subjects) VALUES ($1, $2, $3) RETURNING id, created_at`,
		tu.Email, tu.Name, tu.Subjects,
	).Scan(&tu.ID, &tu.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTutor: %v", err)
	}

	return tu
}

// SeedRequest inserts a request-role board authored by the given student.
func SeedRequest(t *testing.T, pool *pgxpool.Pool, studentID int64, subject, description string) domain.Board {
	t.Helper()

	b := domain.Board{
		Title:    subject,
		Content:  description,
		AuthorID: studentID,
		Role:     domain.RoleRequest,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO boards (title, content, author_id, role)
		 VALUES ($1, $2, $3, 'request') RETURNING id, created_at`,
		b.Title, b.Content, b.AuthorID,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest: %v", err)
	}

	return b
}

// SeedConversation inserts a conversation-role board directly, as if a
// request by the student had already been accepted by the tutor.
func SeedConversation(t *testing.T, pool *pgxpool.Pool, studentID, tutorID int64, subject, description string) domain.Board {
	t.Helper()

	b := domain.Board{
		Title:    subject,
		Content:  description,
		AuthorID: studentID,
		TutorID:  &tutorID,
		Role:     domain.RoleConversation,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO boards (title, content, author_id, tutor_id, role)
		 VALUES ($1, $2, $3, $4, 'conversation') RETURNING id, created_at`,
		b.Title, b.Content, b.AuthorID, tutorID,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedConversation: %v", err)
	}

	return b
}

// SeedMessage inserts a message-role board into a conversation.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, conversationID, authorID int64, text string) domain.Board {
	t.Helper()

	b := domain.Board{
		Title:    "message",
		Content:  text,
		AuthorID: authorID,
		ParentID: &conversationID,
		Role:     domain.RoleMessage,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO boards (title, content, author_id, role, parent_id)
		 VALUES ($1, $2, $3, 'message', $4) RETURNING id, created_at`,
		b.Title, b.Content, b.AuthorID, conversationID,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage: %v", err)
	}

	return b
}
