package scoring

import (
	"math"
	"sort"

	"github.com/jonathan/talentscout/internal/skills"
	"github.com/jonathan/talentscout/internal/types"
)

// Overall score weights. Fixed design constants: retrieval confidence is
// weighted above the heuristic signals.
const (
	semanticWeight  = 0.4
	qualityWeight   = 0.3
	relevanceWeight = 0.2
	skillsWeight    = 0.1
)

// ScoreCandidate computes the derived scoring fields for one raw retrieval
// record. It is a pure function of its inputs: same record, skills, query
// and range always produce the same ScoredCandidate.
func ScoreCandidate(rec types.CandidateRecord, requiredSkills []string, queryText string, expRange types.ExperienceRange) types.ScoredCandidate {
	rec = normalizeRecord(rec)

	quality := projectQualityScore(&rec)
	relevance := experienceRelevanceScore(&rec, queryText)
	matchPct := skills.MatchPercentage(rec.Skills, requiredSkills)
	semantic := rec.SemanticScore()

	overall := clampScore(int(math.Round(
		semantic*semanticWeight +
			float64(quality)*qualityWeight +
			float64(relevance)*relevanceWeight +
			float64(matchPct)*skillsWeight)))

	indicator := types.ExperienceCaution
	if expRange.Contains(rec.ExperienceYears) {
		indicator = types.ExperienceMatch
	}

	return types.ScoredCandidate{
		CandidateRecord:          rec,
		ProjectQualityScore:      quality,
		ExperienceRelevanceScore: relevance,
		SkillMatchPercentage:     matchPct,
		OverallScore:             overall,
		MatchingSkills:           skills.MatchingSkills(rec.Skills, requiredSkills),
		MissingSkills:            skills.MissingSkills(rec.Skills, requiredSkills),
		ExperienceIndicator:      indicator,
	}
}

// ScoreAndRank maps ScoreCandidate over a batch of retrieval records and
// sorts the result descending by overall score. The sort is stable so ties
// keep their original retrieval order; no secondary key is applied.
func ScoreAndRank(recs []types.CandidateRecord, requiredSkills []string, queryText string, expRange types.ExperienceRange) *types.RankedSearchResult {
	scored := make([]types.ScoredCandidate, 0, len(recs))
	for _, rec := range recs {
		scored = append(scored, ScoreCandidate(rec, requiredSkills, queryText, expRange))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].OverallScore > scored[j].OverallScore
	})

	return &types.RankedSearchResult{Candidates: scored}
}

// AverageScores returns the rounded arithmetic mean of each score component
// across a ranked result. An empty result yields the zero struct rather
// than a division error.
func AverageScores(result *types.RankedSearchResult) types.AverageScores {
	if result == nil || len(result.Candidates) == 0 {
		return types.AverageScores{}
	}

	var semantic, quality, relevance, skillsSum, overall float64
	for i := range result.Candidates {
		c := &result.Candidates[i]
		semantic += c.SemanticScore()
		quality += float64(c.ProjectQualityScore)
		relevance += float64(c.ExperienceRelevanceScore)
		skillsSum += float64(c.SkillMatchPercentage)
		overall += float64(c.OverallScore)
	}

	n := float64(len(result.Candidates))
	return types.AverageScores{
		Semantic:            int(math.Round(semantic / n)),
		ProjectQuality:      int(math.Round(quality / n)),
		ExperienceRelevance: int(math.Round(relevance / n)),
		SkillsAlignment:     int(math.Round(skillsSum / n)),
		Overall:             int(math.Round(overall / n)),
	}
}
