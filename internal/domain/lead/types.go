package lead

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusViewed    Status = "viewed"
	StatusWon       Status = "won"
	StatusLost      Status = "lost"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusViewed, StatusWon, StatusLost:
		return true
	default:
		return false
	}
}

// IsArchived reports whether the status counts as archived for filtering.
// Active leads are new or contacted.
func (s Status) IsArchived() bool {
	switch s {
	case StatusViewed, StatusWon, StatusLost:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// CanTransition returns whether a status transition is legal.
// Allowed: new→contacted, new→viewed, contacted→viewed, *→won, *→lost.
// won and lost are terminal.
func CanTransition(from, to Status) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	if from == to {
		return false
	}

	switch to {
	case StatusWon, StatusLost:
		return from != StatusWon && from != StatusLost
	case StatusContacted:
		return from == StatusNew
	case StatusViewed:
		return from == StatusNew || from == StatusContacted
	default:
		return false
	}
}

// ValidateTransition returns ErrInvalidTransition for illegal transitions.
func ValidateTransition(from, to Status) error {
	if !CanTransition(from, to) {
		return ErrInvalidTransition
	}
	return nil
}
