package analysis

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talentscout/internal/types"
)

// Final ranking weights. Fixed design constants; technical ability is
// weighted highest.
const (
	technicalWeight     = 0.4
	communicationWeight = 0.25
	icpWeight           = 0.35

	// Exceptional-performance bonus: only the single largest qualifying
	// bonus is applied, never the sum.
	excellenceThreshold = 0.8
	technicalBonus      = 0.05
	communicationBonus  = 0.03
	icpBonus            = 0.04
)

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithConcurrency sets the number of interviews analyzed in parallel during
// batch ranking. The default of 1 processes interviews sequentially to
// bound concurrent load on the judgment service.
func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// Analyzer runs interview judgment calls and combines their scores.
type Analyzer struct {
	judge       Judge
	logger      *zap.Logger
	concurrency int
}

// NewAnalyzer creates an Analyzer over the given judgment boundary.
func NewAnalyzer(judge Judge, logger *zap.Logger, opts ...Option) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Analyzer{
		judge:       judge,
		logger:      logger,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeInterview runs the three judgment calls for one completed
// interview concurrently and combines them into a CandidateAnalysis.
// All three calls must succeed; any failure fails the whole candidate with
// the candidate's name in the error. Partial results are never synthesized.
func (a *Analyzer) AnalyzeInterview(ctx context.Context, interview *types.InterviewRecord, icp *types.ICPProfile) (*types.CandidateAnalysis, error) {
	if icp == nil {
		icp = types.DefaultICPProfile()
	}

	answered := interview.Answered()
	if len(answered) == 0 {
		return nil, fmt.Errorf("analysis failed for candidate %s: interview has no answered questions", interview.CandidateName)
	}

	var (
		technical     *JudgmentResult
		communication *JudgmentResult
		icpResult     *ICPJudgmentResult
	)

	// The three judgments are independent AI evaluations with no data
	// dependency among them, so they run concurrently and are awaited
	// together.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		technical, err = a.judge.JudgeTechnical(gctx, answered, icp)
		return err
	})
	g.Go(func() error {
		var err error
		communication, err = a.judge.JudgeCommunication(gctx, answered, icp)
		return err
	})
	g.Go(func() error {
		var err error
		icpResult, err = a.judge.JudgeICPAlignment(gctx, answered, icp)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis failed for candidate %s: %w", interview.CandidateName, err)
	}

	return &types.CandidateAnalysis{
		CandidateID:        interview.CandidateID,
		CandidateName:      interview.CandidateName,
		TechnicalScore:     technical.Score,
		CommunicationScore: communication.Score,
		ICPAlignment:       icpResult.Score,
		FinalRanking:       combineScores(technical.Score, communication.Score, icpResult.Score),
		Insights:           concatLists(technical.Insights, communication.Insights, icpResult.Insights),
		Strengths:          concatLists(technical.Strengths, communication.Strengths, icpResult.Strengths),
		Concerns:           concatLists(technical.Concerns, communication.Concerns, icpResult.Concerns),
	}, nil
}

// combineScores applies the fixed weights plus the capped exceptional
// performance bonus and clamps the result into [0,1].
func combineScores(technical, communication, icpAlignment float64) float64 {
	base := technical*technicalWeight +
		communication*communicationWeight +
		icpAlignment*icpWeight

	bonus := 0.0
	if technical > excellenceThreshold {
		bonus = technicalBonus
	}
	if icpAlignment > excellenceThreshold && icpBonus > bonus {
		bonus = icpBonus
	}
	if communication > excellenceThreshold && communicationBonus > bonus {
		bonus = communicationBonus
	}

	return clamp01(base + bonus)
}

// concatLists concatenates the rationale lists preserving source order:
// technical, then communication, then ICP.
func concatLists(technical, communication, icp []string) []string {
	out := make([]string, 0, len(technical)+len(communication)+len(icp))
	out = append(out, technical...)
	out = append(out, communication...)
	out = append(out, icp...)
	return out
}

// clamp01 clamps a fraction into [0,1].
func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
