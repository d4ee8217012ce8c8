// Package types defines the shared data structures for candidate scoring and ranking.
package types

// Project represents a single project listed on a candidate profile.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	GithubURL    string   `json:"github_url,omitempty"`
	LiveURL      string   `json:"live_url,omitempty"`
}

// CandidateRecord is one raw semantic-search hit as returned by the retrieval
// layer. All fields may be missing or empty; the scoring layer defaults them
// rather than failing, since upstream data is external and not guaranteed
// complete.
type CandidateRecord struct {
	CandidateID     string    `json:"candidate_id"`
	Name            string    `json:"name,omitempty"`
	Skills          []string  `json:"skills,omitempty"`
	About           string    `json:"about,omitempty"`
	Experience      string    `json:"experience,omitempty"`
	ExperienceYears float64   `json:"experience_years,omitempty"`
	GithubURL       string    `json:"github_url,omitempty"`
	PortfolioURL    string    `json:"portfolio_url,omitempty"`
	BlogURL         string    `json:"blog_url,omitempty"`
	Projects        []Project `json:"projects,omitempty"`

	// SemanticMatchScore is the embedding similarity computed upstream,
	// normally in [0,100]. A nil value must score as zero, never propagate
	// as null downstream.
	SemanticMatchScore *float64 `json:"semantic_match_score"`
}

// SemanticScore returns the semantic match score with a nil value treated as
// zero and the result clamped into [0,100].
func (r *CandidateRecord) SemanticScore() float64 {
	if r.SemanticMatchScore == nil {
		return 0
	}
	s := *r.SemanticMatchScore
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// Experience-range indicators for a scored candidate. Informational only;
// they do not contribute to the overall score.
const (
	ExperienceMatch   = "match"
	ExperienceCaution = "caution"
)

// ExperienceRange is the inclusive years-of-experience band requested by a
// recruiter query.
type ExperienceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether years falls inside the inclusive range.
func (r ExperienceRange) Contains(years float64) bool {
	return years >= r.Min && years <= r.Max
}

// ScoredCandidate is a CandidateRecord annotated with the derived scoring
// fields. All four numeric fields are integers clamped into [0,100], and
// OverallScore is a pure function of the other three plus the semantic score.
type ScoredCandidate struct {
	CandidateRecord

	ProjectQualityScore      int      `json:"project_quality_score"`
	ExperienceRelevanceScore int      `json:"experience_relevance_score"`
	SkillMatchPercentage     int      `json:"skill_match_percentage"`
	OverallScore             int      `json:"overall_score"`
	MatchingSkills           []string `json:"matching_skills"`
	MissingSkills            []string `json:"missing_skills"`
	ExperienceIndicator      string   `json:"experience_match"`
}

// RankedSearchResult is an ordered set of scored candidates, sorted
// descending by overall score with ties broken by retrieval order.
type RankedSearchResult struct {
	Candidates []ScoredCandidate `json:"candidates"`
}

// AverageScores summarizes a ranked result with the rounded arithmetic mean
// of each score component.
type AverageScores struct {
	Semantic            int `json:"semantic"`
	ProjectQuality      int `json:"project_quality"`
	ExperienceRelevance int `json:"experience_relevance"`
	SkillsAlignment     int `json:"skills_alignment"`
	Overall             int `json:"overall"`
}
