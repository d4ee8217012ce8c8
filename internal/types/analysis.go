package types

// Tier is the categorical label derived from a candidate's percentile rank
// within a campaign's successfully analyzed candidates.
type Tier string

// Tier labels, best to worst.
const (
	TierExceptional      Tier = "exceptional"
	TierExcellent        Tier = "excellent"
	TierGood             Tier = "good"
	TierFair             Tier = "fair"
	TierNeedsImprovement Tier = "needs_improvement"
)

// CandidateAnalysis is the combined judgment result for one interview.
// TechnicalScore, CommunicationScore and ICPAlignment are the opaque outputs
// of three independent judgment calls; FinalRanking is always in [0,1].
type CandidateAnalysis struct {
	CandidateID        string   `json:"candidate_id"`
	CandidateName      string   `json:"candidate_name"`
	TechnicalScore     float64  `json:"technicalScore"`
	CommunicationScore float64  `json:"communicationScore"`
	ICPAlignment       float64  `json:"icpAlignment"`
	FinalRanking       float64  `json:"finalRanking"`
	Insights           []string `json:"insights"`
	Strengths          []string `json:"strengths"`
	Concerns           []string `json:"concerns"`
}

// RankedCandidateAnalysis is a CandidateAnalysis with its 1-based position
// and percentile tier after a campaign-wide sort.
type RankedCandidateAnalysis struct {
	CandidateAnalysis

	Rank int  `json:"rank"`
	Tier Tier `json:"tier"`
}
