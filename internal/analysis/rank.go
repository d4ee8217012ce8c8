package analysis

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/talentscout/internal/types"
)

// BatchFailure identifies one interview that could not be analyzed.
type BatchFailure struct {
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	Reason        string `json:"reason"`
}

// BatchReport is the outcome of ranking a campaign's interviews. Partial
// failure is an expected steady-state outcome, so failures are reported
// alongside the ranked successes rather than failing the batch.
type BatchReport struct {
	Ranked   []types.RankedCandidateAnalysis `json:"ranked"`
	Failures []BatchFailure                  `json:"failures"`
}

// Successes returns the number of candidates that were analyzed and ranked.
func (r *BatchReport) Successes() int {
	return len(r.Ranked)
}

// RankCampaignInterviews analyzes every completed interview for a campaign,
// tolerating per-interview failures, and ranks the successful analyses.
//
// Each interview's failure is logged and recorded but does not abort the
// batch; this is the opposite policy from AnalyzeInterview, which fails
// fast within a single candidate's three-way judgment. Ranking sorts
// descending by final score with ties kept in input order, assigns 1-based
// ranks, and maps each rank to a percentile tier computed over the count of
// successfully analyzed candidates only.
func (a *Analyzer) RankCampaignInterviews(ctx context.Context, interviews []types.InterviewRecord, icp *types.ICPProfile) *BatchReport {
	outcomes := a.analyzeAll(ctx, interviews, icp)

	report := &BatchReport{
		Ranked:   make([]types.RankedCandidateAnalysis, 0, len(interviews)),
		Failures: make([]BatchFailure, 0),
	}

	analyses := make([]types.CandidateAnalysis, 0, len(interviews))
	for i, out := range outcomes {
		if out.err != nil {
			a.logger.Warn("interview analysis failed, skipping candidate",
				zap.String("candidate_id", interviews[i].CandidateID),
				zap.String("candidate_name", interviews[i].CandidateName),
				zap.Error(out.err))
			report.Failures = append(report.Failures, BatchFailure{
				CandidateID:   interviews[i].CandidateID,
				CandidateName: interviews[i].CandidateName,
				Reason:        out.err.Error(),
			})
			continue
		}
		analyses = append(analyses, *out.analysis)
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		return analyses[i].FinalRanking > analyses[j].FinalRanking
	})

	total := len(analyses)
	for i, analysis := range analyses {
		rank := i + 1
		report.Ranked = append(report.Ranked, types.RankedCandidateAnalysis{
			CandidateAnalysis: analysis,
			Rank:              rank,
			Tier:              tierForRank(rank, total),
		})
	}

	return report
}

// Percentile tier boundaries, inclusive on the upper bound of each band.
const (
	exceptionalCutoff = 0.10
	excellentCutoff   = 0.25
	goodCutoff        = 0.50
	fairCutoff        = 0.75
)

// tierForRank maps a 1-based rank within total successfully analyzed
// candidates to its percentile tier.
func tierForRank(rank, total int) types.Tier {
	percentile := float64(rank-1) / float64(total)
	switch {
	case percentile <= exceptionalCutoff:
		return types.TierExceptional
	case percentile <= excellentCutoff:
		return types.TierExcellent
	case percentile <= goodCutoff:
		return types.TierGood
	case percentile <= fairCutoff:
		return types.TierFair
	default:
		return types.TierNeedsImprovement
	}
}
