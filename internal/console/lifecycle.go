package console

import (
	"context"
	"fmt"
	"sync"

	"github.com/arenaworks/console/internal/arena"
	"github.com/arenaworks/console/internal/arena/client"
)

// ActionPhase tracks where a mutating action is in its lifecycle.
type ActionPhase string

const (
	PhaseIdle      ActionPhase = "idle"
	PhasePending   ActionPhase = "pending"
	PhaseSucceeded ActionPhase = "succeeded"
	PhaseFailed    ActionPhase = "failed"
)

// ActionStatus is a snapshot of the runner's last action.
type ActionStatus struct {
	Phase ActionPhase
	// Err holds the failure of the last action, verbatim from the backend.
	Err error
	// EndResult is set after a successful end-session action.
	EndResult *arena.DistributionResult
	// ScoreResult is set after a successful force-score action.
	ScoreResult *arena.ForceScoreResult
}

// ActionRunner serializes mutating actions against the backend. Preconditions
// are checked locally before any request goes out, and only one action may be
// in flight at a time.
type ActionRunner struct {
	api API

	mu     sync.Mutex
	status ActionStatus
}

// NewActionRunner builds a runner over the backend API.
func NewActionRunner(api API) *ActionRunner {
	return &ActionRunner{api: api, status: ActionStatus{Phase: PhaseIdle}}
}

// Status returns the current lifecycle snapshot.
func (r *ActionRunner) Status() ActionStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Reset clears a finished action back to idle. A pending action cannot be
// reset.
func (r *ActionRunner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status.Phase == PhasePending {
		return
	}
	r.status = ActionStatus{Phase: PhaseIdle}
}

// EndSession ends an active session. Non-active sessions are rejected before
// any request is issued.
func (r *ActionRunner) EndSession(ctx context.Context, session arena.SessionSummary) (arena.DistributionResult, error) {
	const op = "end session"

	if !arena.CanEndSession(session) {
		err := client.New(client.CodeInvalidState, op, session.ID,
			fmt.Sprintf("session is %s, only active sessions can be ended", session.Status))
		r.fail(err)
		return arena.DistributionResult{}, err
	}
	if err := r.begin(op); err != nil {
		return arena.DistributionResult{}, err
	}

	result, err := r.api.EndSession(ctx, session.ID)
	if err != nil {
		r.fail(err)
		return arena.DistributionResult{}, err
	}
	r.succeed(ActionStatus{EndResult: &result})
	return result, nil
}

// ForceScore finalizes a stuck attempt. Attempts that are already scored or
// still have messages remaining are rejected before any request is issued.
func (r *ActionRunner) ForceScore(ctx context.Context, attempt arena.Attempt) (arena.ForceScoreResult, error) {
	const op = "force score"

	if !arena.CanForceScore(attempt) {
		err := client.New(client.CodeInvalidState, op, attempt.ID,
			"attempt is already scored or still has messages remaining")
		r.fail(err)
		return arena.ForceScoreResult{}, err
	}
	if err := r.begin(op); err != nil {
		return arena.ForceScoreResult{}, err
	}

	result, err := r.api.ForceScore(ctx, attempt.ID)
	if err != nil {
		r.fail(err)
		return arena.ForceScoreResult{}, err
	}
	r.succeed(ActionStatus{ScoreResult: &result})
	return result, nil
}

func (r *ActionRunner) begin(op string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status.Phase == PhasePending {
		return client.New(client.CodeInvalidState, op, "", "another action is still in progress")
	}
	r.status = ActionStatus{Phase: PhasePending}
	return nil
}

func (r *ActionRunner) succeed(status ActionStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	status.Phase = PhaseSucceeded
	r.status = status
}

func (r *ActionRunner) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = ActionStatus{Phase: PhaseFailed, Err: err}
}
