package db

import "github.com/google/uuid"

// SearchRankingRow is one persisted search ranking record.
type SearchRankingRow struct {
	RecruiterQueryID         uuid.UUID `json:"recruiter_query_id"`
	CandidateID              string    `json:"candidate_id"`
	Rank                     int       `json:"rank"`
	CandidateName            string    `json:"candidate_name"`
	SemanticScore            int       `json:"semantic_score"`
	ProjectQualityScore      int       `json:"project_quality_score"`
	ExperienceRelevanceScore int       `json:"experience_relevance_score"`
	SkillMatchPercentage     int       `json:"skill_match_percentage"`
	OverallScore             int       `json:"overall_score"`
	ExperienceMatch          string    `json:"experience_match"`
	MatchingSkills           []string  `json:"matching_skills"`
	MissingSkills            []string  `json:"missing_skills"`
}

// skillPayload is the jsonb shape of the skills column.
type skillPayload struct {
	Matching []string `json:"matching"`
	Missing  []string `json:"missing"`
}

// notesPayload is the jsonb shape of the campaign ranking notes column.
type notesPayload struct {
	Insights  []string `json:"insights"`
	Strengths []string `json:"strengths"`
	Concerns  []string `json:"concerns"`
}

// clampScore100 clamps an integer score into [0,100].
func clampScore100(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// clampUnit clamps a float score into [0,1].
func clampUnit(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
