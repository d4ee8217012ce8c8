package analysis

import (
	"context"
	"sync"

	"github.com/jonathan/talentscout/internal/types"
)

// outcome captures the per-interview result of a batch analysis, positioned
// by input index so batch order is preserved regardless of completion order.
type outcome struct {
	analysis *types.CandidateAnalysis
	err      error
}

// analyzeAll runs AnalyzeInterview over every interview. With concurrency 1
// (the default) interviews are processed one at a time. Higher concurrency
// uses a bounded worker pool with per-task result capture; failure isolation
// between candidates is identical in both modes.
func (a *Analyzer) analyzeAll(ctx context.Context, interviews []types.InterviewRecord, icp *types.ICPProfile) []outcome {
	if a.concurrency <= 1 {
		return a.analyzeSequential(ctx, interviews, icp)
	}
	return a.analyzePooled(ctx, interviews, icp)
}

func (a *Analyzer) analyzeSequential(ctx context.Context, interviews []types.InterviewRecord, icp *types.ICPProfile) []outcome {
	outcomes := make([]outcome, len(interviews))
	for i := range interviews {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(interviews); j++ {
				outcomes[j] = outcome{err: err}
			}
			return outcomes
		}
		analysis, err := a.AnalyzeInterview(ctx, &interviews[i], icp)
		outcomes[i] = outcome{analysis: analysis, err: err}
	}
	return outcomes
}

// analyzePooled fans interview indices out to a fixed set of workers. Each
// index is written by exactly one worker into its own slot, so results are
// merged only after all workers join.
func (a *Analyzer) analyzePooled(ctx context.Context, interviews []types.InterviewRecord, icp *types.ICPProfile) []outcome {
	outcomes := make([]outcome, len(interviews))

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := a.concurrency
	if workers > len(interviews) {
		workers = len(interviews)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					outcomes[idx] = outcome{err: err}
					continue
				}
				analysis, err := a.AnalyzeInterview(ctx, &interviews[idx], icp)
				outcomes[idx] = outcome{analysis: analysis, err: err}
			}
		}()
	}

	for i := range interviews {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return outcomes
}
