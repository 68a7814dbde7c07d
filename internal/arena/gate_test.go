package arena

import "testing"

func floatPtr(v float64) *float64 {
	return &v
}

func TestCanForceScoreTruthTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		score     *float64
		remaining int
		want      bool
	}{
		{name: "unscored no turns left", score: nil, remaining: 0, want: true},
		{name: "unscored turns left", score: nil, remaining: 2, want: false},
		{name: "scored no turns left", score: floatPtr(8.5), remaining: 0, want: false},
		{name: "scored turns left", score: floatPtr(8.5), remaining: 2, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			attempt := Attempt{Score: tc.score, Remaining: tc.remaining}
			if got := CanForceScore(attempt); got != tc.want {
				t.Fatalf("CanForceScore = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanEndSession(t *testing.T) {
	t.Parallel()

	if !CanEndSession(SessionSummary{Status: StatusActive}) {
		t.Fatal("expected end-session to be allowed for an active session")
	}
	if CanEndSession(SessionSummary{Status: StatusCompleted}) {
		t.Fatal("expected end-session to be disallowed for a completed session")
	}
}

func TestResultBadge(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		attempt Attempt
		want    Badge
	}{
		{name: "unscored", attempt: Attempt{}, want: BadgeInProgress},
		{name: "unscored with turns left", attempt: Attempt{Remaining: 3}, want: BadgeInProgress},
		{name: "scored winner", attempt: Attempt{Score: floatPtr(9.1), IsWinner: true}, want: BadgeWinner},
		{name: "scored loser", attempt: Attempt{Score: floatPtr(4.2)}, want: BadgeNotWinner},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ResultBadge(tc.attempt); got != tc.want {
				t.Fatalf("ResultBadge = %q, want %q", got, tc.want)
			}
		})
	}
}

// Attempts on a completed session are never "in progress": the badge is
// decided entirely by the scored/winner fields, so a completed session whose
// attempts all carry scores can only show winner or not-a-winner.
func TestResultBadgeCompletedSessionTotality(t *testing.T) {
	t.Parallel()

	attempts := []Attempt{
		{Score: floatPtr(7.5), IsWinner: true},
		{Score: floatPtr(6.9)},
		{Score: floatPtr(0)},
	}
	for i, attempt := range attempts {
		badge := ResultBadge(attempt)
		if badge == BadgeInProgress {
			t.Fatalf("attempt %d: badge = %q, want winner or not-a-winner", i, badge)
		}
	}
}
