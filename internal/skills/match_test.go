package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchingSkills_BidirectionalContainment(t *testing.T) {
	candidate := []string{"React.js", "PostgreSQL", "Haskell"}
	required := []string{"react", "postgres", "go"}

	matched := MatchingSkills(candidate, required)

	assert.Equal(t, []string{"React.js", "PostgreSQL"}, matched)
}

func TestMatchingSkills_CaseInsensitive(t *testing.T) {
	matched := MatchingSkills([]string{"GOLANG"}, []string{"golang"})
	assert.Equal(t, []string{"GOLANG"}, matched)
}

func TestMatchingSkills_NoMatches(t *testing.T) {
	matched := MatchingSkills([]string{"Ruby"}, []string{"Go", "Rust"})
	assert.Empty(t, matched)
}

func TestMissingSkills_ReturnsUncoveredRequirements(t *testing.T) {
	candidate := []string{"TypeScript", "Docker"}
	required := []string{"typescript", "kubernetes", "docker", "terraform"}

	missing := MissingSkills(candidate, required)

	assert.Equal(t, []string{"kubernetes", "terraform"}, missing)
}

func TestMissingSkills_EmptyRequired(t *testing.T) {
	assert.Empty(t, MissingSkills([]string{"Go"}, nil))
}

func TestMatchPercentage_VacuousFullMatch(t *testing.T) {
	// Empty required list is an explicit 100% policy, not an omission.
	assert.Equal(t, 100, MatchPercentage([]string{"anything"}, nil))
	assert.Equal(t, 100, MatchPercentage(nil, []string{}))
}

func TestMatchPercentage_Rounding(t *testing.T) {
	// 2 of 3 covered -> 66.67 -> 67
	pct := MatchPercentage([]string{"go", "rust"}, []string{"go", "rust", "zig"})
	assert.Equal(t, 67, pct)

	// 1 of 3 covered -> 33.33 -> 33
	pct = MatchPercentage([]string{"go"}, []string{"go", "rust", "zig"})
	assert.Equal(t, 33, pct)
}

func TestMatchPercentage_NoCandidateSkills(t *testing.T) {
	assert.Equal(t, 0, MatchPercentage(nil, []string{"go"}))
}

func TestMatchPercentage_Deterministic(t *testing.T) {
	candidate := []string{"React", "Node.js", "AWS"}
	required := []string{"react", "aws", "sql"}

	first := MatchPercentage(candidate, required)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, MatchPercentage(candidate, required))
	}
}
