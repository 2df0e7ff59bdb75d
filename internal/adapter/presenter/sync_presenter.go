package presenter

import (
	"time"

	syncdto "github.com/fisherypulse/councilpulse/internal/adapter/dto/sync"
	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/usecase/sync"
)

// ToSyncResult converts a finished SyncRun to the trigger response shape
func ToSyncResult(run *entities.SyncRun) syncdto.Result {
	if run == nil {
		return syncdto.Result{}
	}
	result := syncdto.Result{
		Success:      run.Status == entities.SyncStatusSucceeded || run.Status == entities.SyncStatusPartial,
		Source:       run.Source,
		Status:       string(run.Status),
		ItemsFound:   run.ItemsFound,
		ItemsNew:     run.ItemsNew,
		ItemsUpdated: run.ItemsUpdated,
		ItemsFailed:  run.ItemsFailed,
		DurationMs:   run.Duration().Milliseconds(),
	}
	if run.Error != nil {
		result.Error = *run.Error
	}
	return result
}

// ToRunAllResponse converts per-source results into the full-sync response
func ToRunAllResponse(results []sync.RunResult) syncdto.RunAllResponse {
	resp := syncdto.RunAllResponse{
		Results: make([]syncdto.Result, 0, len(results)),
	}
	for _, r := range results {
		resp.Totals.Sources++

		var result syncdto.Result
		if r.Run != nil {
			result = ToSyncResult(r.Run)
		} else {
			result = syncdto.Result{Source: r.Source, Status: string(entities.SyncStatusFailed)}
		}
		if r.Err != nil {
			result.Success = false
			if result.Error == "" {
				result.Error = r.Err.Error()
			}
		}

		if result.Success {
			resp.Totals.Succeeded++
			resp.Totals.ItemsFound += result.ItemsFound
			resp.Totals.ItemsNew += result.ItemsNew
			resp.Totals.ItemsUpdated += result.ItemsUpdated
		} else {
			resp.Totals.Failed++
		}
		resp.Results = append(resp.Results, result)
	}
	return resp
}

// ToRunResponse converts a SyncRun to the history row shape
func ToRunResponse(run *entities.SyncRun) syncdto.RunResponse {
	resp := syncdto.RunResponse{
		ID:            run.ID.String(),
		Source:        run.Source,
		Kind:          string(run.Kind),
		Status:        string(run.Status),
		ItemsFound:    run.ItemsFound,
		ItemsNew:      run.ItemsNew,
		ItemsUpdated:  run.ItemsUpdated,
		ItemsFailed:   run.ItemsFailed,
		Error:         run.Error,
		ArchiveObject: run.ArchiveObject,
		StartedAt:     run.StartedAt.UTC().Format(time.RFC3339),
		DurationMs:    run.Duration().Milliseconds(),
	}
	if run.FinishedAt != nil {
		finished := run.FinishedAt.UTC().Format(time.RFC3339)
		resp.FinishedAt = &finished
	}
	return resp
}

// ToRunResponses converts a slice of runs
func ToRunResponses(runs []*entities.SyncRun) []syncdto.RunResponse {
	out := make([]syncdto.RunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, ToRunResponse(run))
	}
	return out
}
