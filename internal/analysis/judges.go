// Package analysis implements the interview judgment pipeline: three
// independent AI judgment calls per candidate combined into a final ranking
// score, and campaign-wide batch ranking with percentile tiers.
package analysis

import (
	"context"

	"github.com/jonathan/talentscout/internal/types"
)

// JudgmentResult is the structured output of a single judgment call.
// Score is in [0,1]; the string lists are free-text rationale.
type JudgmentResult struct {
	Score     float64  `json:"score"`
	Insights  []string `json:"insights"`
	Strengths []string `json:"strengths"`
	Concerns  []string `json:"concerns"`
}

// ICPSubScores are the per-dimension alignment scores returned by the ICP
// judgment call.
type ICPSubScores struct {
	Technical      float64 `json:"technical"`
	Communication  float64 `json:"communication"`
	ProblemSolving float64 `json:"problem_solving"`
	Growth         float64 `json:"growth"`
}

// ICPJudgmentResult is a JudgmentResult extended with the ICP dimension
// breakdown.
type ICPJudgmentResult struct {
	JudgmentResult
	SubScores ICPSubScores `json:"sub_scores"`
}

// Judge is the boundary to the external judgment service: three opaque
// evaluations with no data dependency among them. Implementations must
// return an explicit error for empty or unparseable responses rather than
// defaulting a score.
type Judge interface {
	JudgeTechnical(ctx context.Context, exchanges []types.InterviewExchange, icp *types.ICPProfile) (*JudgmentResult, error)
	JudgeCommunication(ctx context.Context, exchanges []types.InterviewExchange, icp *types.ICPProfile) (*JudgmentResult, error)
	JudgeICPAlignment(ctx context.Context, exchanges []types.InterviewExchange, icp *types.ICPProfile) (*ICPJudgmentResult, error)
}
