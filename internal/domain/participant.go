package domain

import (
	"strings"
	"time"
)

// Student is a participant in the student identity space.
type Student struct {
	ID        int64
	Email     string
	Name      string
	CreatedAt time.Time
}

// Tutor is a participant in the tutor identity space. Student and tutor ids
// overlap freely; the same number can denote two unrelated people.
type Tutor struct {
	ID        int64
	Email     string
	Name      string
	Subjects  string
	Bio       *string
	CreatedAt time.Time
}

// SubjectList splits the comma-separated subjects column into trimmed tags.
func (t *Tutor) SubjectList() []string {
	if strings.TrimSpace(t.Subjects) == "" {
		return nil
	}
	parts := strings.Split(t.Subjects, ",")
	subjects := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			subjects = append(subjects, s)
		}
	}
	return subjects
}

// Identity is a resolved (kind, display name) pair for a participant id.
type Identity struct {
	Kind ParticipantKind
	ID   int64
	Name string
}

// UnknownIdentity is the placeholder returned when an author id matches
// neither identity space. Thread reads degrade to it instead of failing.
func UnknownIdentity(id int64) Identity {
	return Identity{Kind: KindUnknown, ID: id, Name: "Unknown"}
}
