package types

// TechnicalExpectations describes the technical-skill bar for a role.
type TechnicalExpectations struct {
	MustHave       []string `json:"mustHave" validate:"required,min=1"`
	MinimumLevel   string   `json:"minimumLevel" validate:"oneof=junior mid senior staff"`
	PreferredDepth []string `json:"preferredDepth,omitempty"`
}

// CommunicationExpectations describes the communication style a hiring team
// wants to see.
type CommunicationExpectations struct {
	Preferred       string `json:"preferred" validate:"oneof=concise detailed collaborative"`
	ClientFacing    bool   `json:"clientFacing"`
	TeachingAbility string `json:"teachingAbility" validate:"oneof=not_required preferred required"`
}

// ProblemSolvingExpectations describes how candidates are expected to
// approach problems.
type ProblemSolvingExpectations struct {
	Preferred          string  `json:"preferred" validate:"oneof=pragmatic methodical creative"`
	InnovationBalance  float64 `json:"innovationBalance" validate:"gte=0,lte=1"`
	EdgeCaseImportance string  `json:"edgeCaseImportance" validate:"oneof=low medium high"`
}

// GrowthExpectations describes seniority and growth attributes for a role.
type GrowthExpectations struct {
	CurrentLevel        string `json:"currentLevel" validate:"oneof=junior mid senior staff"`
	LearningAgility     string `json:"learningAgility" validate:"oneof=low medium high"`
	LeadershipPotential string `json:"leadershipPotential" validate:"oneof=not_required preferred required"`
}

// ICPProfile is the Ideal Candidate Profile: the rubric used by the
// judgment layer when scoring interviews. Campaigns without a configured
// profile fall back to DefaultICPProfile.
type ICPProfile struct {
	TechnicalSkills TechnicalExpectations      `json:"technicalSkills"`
	Communication   CommunicationExpectations  `json:"communication"`
	ProblemSolving  ProblemSolvingExpectations `json:"problemSolving"`
	Growth          GrowthExpectations         `json:"growth"`
}

// DefaultICPProfile returns the hardcoded fallback profile used when a
// campaign has no ICP configured.
func DefaultICPProfile() *ICPProfile {
	return &ICPProfile{
		TechnicalSkills: TechnicalExpectations{
			MustHave:       []string{"problem solving", "software fundamentals"},
			MinimumLevel:   "mid",
			PreferredDepth: []string{"system design"},
		},
		Communication: CommunicationExpectations{
			Preferred:       "collaborative",
			ClientFacing:    false,
			TeachingAbility: "preferred",
		},
		ProblemSolving: ProblemSolvingExpectations{
			Preferred:          "pragmatic",
			InnovationBalance:  0.5,
			EdgeCaseImportance: "medium",
		},
		Growth: GrowthExpectations{
			CurrentLevel:        "mid",
			LearningAgility:     "high",
			LeadershipPotential: "preferred",
		},
	}
}
