package exam

// Status represents a challenge's position in the progression lifecycle.
type Status string

const (
	StatusLocked     Status = "locked"
	StatusAvailable  Status = "available"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusMastered   Status = "mastered"
)

// Icon returns the display icon for a status.
func (s Status) Icon() string {
	switch s {
	case StatusLocked:
		return "🔒"
	case StatusAvailable:
		return "🔓"
	case StatusInProgress:
		return "⏳"
	case StatusCompleted:
		return "✅"
	case StatusMastered:
		return "🏆"
	default:
		return "?"
	}
}

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusLocked:
		return "Locked"
	case StatusAvailable:
		return "Available"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusMastered:
		return "Mastered"
	default:
		return "Unknown"
	}
}

// Resolved returns true for the two terminal, point-scoring statuses.
func (s Status) Resolved() bool {
	return s == StatusCompleted || s == StatusMastered
}

// Transition records a status change for display and event logging.
type Transition struct {
	ChallengeID string
	From        Status
	To          Status
	Trigger     string // "select", "resume", "completed", "mastered", "timeout", "suspend"
	Unlocked    string // ID of the challenge made available by this transition, if any
}

// ChallengeState pairs a catalog entry with its runtime status for
// presentation-layer snapshots.
type ChallengeState struct {
	Challenge Challenge
	Status    Status
}
