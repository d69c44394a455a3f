package domain

// ParticipantKind identifies which identity space a numeric id belongs to.
// Student and tutor ids are independent key spaces, so a bare id is
// ambiguous without a kind.
type ParticipantKind string

const (
	KindStudent ParticipantKind = "student"
	KindTutor   ParticipantKind = "tutor"
	// KindUnknown is used when an author id matches neither identity space.
	KindUnknown ParticipantKind = "unknown"
)

func (k ParticipantKind) String() string { return string(k) }

func (k ParticipantKind) IsValid() bool {
	switch k {
	case KindStudent, KindTutor:
		return true
	}
	return false
}

// BoardRole is the tag that disambiguates the three shapes a board entry
// can take over its lifecycle.
type BoardRole string

const (
	RoleRequest      BoardRole = "request"
	RoleConversation BoardRole = "conversation"
	RoleMessage      BoardRole = "message"
)

func (r BoardRole) String() string { return string(r) }

func (r BoardRole) IsValid() bool {
	switch r {
	case RoleRequest, RoleConversation, RoleMessage:
		return true
	}
	return false
}

// TransitionOutcome is the result of an accept or decline call.
// AlreadyProcessed is a normal terminal outcome, not an error: the request
// was accepted or declined by an earlier (possibly concurrent) call.
type TransitionOutcome string

const (
	OutcomeAccepted         TransitionOutcome = "accepted"
	OutcomeDeclined         TransitionOutcome = "declined"
	OutcomeAlreadyProcessed TransitionOutcome = "already_processed"
)

func (o TransitionOutcome) String() string { return string(o) }
