package console

import (
	"context"
	"errors"
	"sync"

	"github.com/arenaworks/console/internal/arena"
	"github.com/arenaworks/console/internal/arena/client"
)

// API is the backend surface the console consumes.
type API interface {
	ListSessions(ctx context.Context) ([]arena.SessionSummary, error)
	GetSessionDetail(ctx context.Context, sessionID string) (arena.SessionDetail, error)
	CreateSession(ctx context.Context, entryFee float64, durationHours int) (arena.SessionSummary, error)
	EndSession(ctx context.Context, sessionID string) (arena.DistributionResult, error)
	ForceScore(ctx context.Context, attemptID string) (arena.ForceScoreResult, error)
}

// SessionRecord pairs a listing summary with the detail fetched for it.
// Err is set when the detail fetch failed; the summary is still usable.
type SessionRecord struct {
	Summary       arena.SessionSummary
	Detail        arena.SessionDetail
	Err           error
	CountMismatch bool
}

// Refresh lists all sessions and fetches each detail concurrently. Records
// come back in the backend's listing order regardless of fetch completion
// order.
//
// When one or more detail fetches fail, Refresh still returns all records
// (failed ones carry their error) together with a CodePartialFetch error
// wrapping the individual failures.
func Refresh(ctx context.Context, api API) ([]SessionRecord, error) {
	summaries, err := api.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]SessionRecord, len(summaries))
	var wg sync.WaitGroup
	for i, summary := range summaries {
		records[i].Summary = summary
		wg.Add(1)
		go func(i int, sessionID string) {
			defer wg.Done()
			detail, err := api.GetSessionDetail(ctx, sessionID)
			if err != nil {
				records[i].Err = err
				return
			}
			records[i].Detail = detail
			records[i].CountMismatch = arena.AttemptCountMismatch(records[i].Summary, detail)
		}(i, summary.ID)
	}
	wg.Wait()

	var failures []error
	for _, record := range records {
		if record.Err != nil {
			failures = append(failures, record.Err)
		}
	}
	if len(failures) > 0 {
		return records, client.Wrap(client.CodePartialFetch, "refresh sessions", "", errors.Join(failures...))
	}
	return records, nil
}
