package arena

// Badge classifies an attempt's outcome for display. Exactly one badge
// applies to every attempt.
type Badge string

const (
	// BadgeInProgress marks an attempt that has not been scored yet.
	BadgeInProgress Badge = "in progress"
	// BadgeWinner marks a scored attempt that won a share of the pot.
	BadgeWinner Badge = "winner"
	// BadgeNotWinner marks a scored attempt that did not win.
	BadgeNotWinner Badge = "not a winner"
)

// CanForceScore reports whether forced scoring may be offered for an
// attempt: it must be unscored with no turns remaining. An attempt with
// turns left is still in progress, and a scored attempt is never re-scored.
func CanForceScore(a Attempt) bool {
	return !a.Scored() && a.Remaining == 0
}

// CanEndSession reports whether the end-session action may be offered.
func CanEndSession(s SessionSummary) bool {
	return s.Status == StatusActive
}

// ResultBadge returns the display badge for an attempt.
func ResultBadge(a Attempt) Badge {
	switch {
	case !a.Scored():
		return BadgeInProgress
	case a.IsWinner:
		return BadgeWinner
	default:
		return BadgeNotWinner
	}
}
