package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talentscout/internal/types"
)

func TestExperienceRelevanceScore_EmptyTextReturnsBase(t *testing.T) {
	rec := types.CandidateRecord{About: "  ", Experience: ""}
	assert.Equal(t, 50, experienceRelevanceScore(&rec, "backend engineer golang"))
}

func TestExperienceRelevanceScore_QueryTokenMatches(t *testing.T) {
	rec := types.CandidateRecord{
		About: "Backend engineer working on payment systems",
	}
	// "backend" and "payment" match (+10 each); "go" is too short to count.
	assert.Equal(t, 70, experienceRelevanceScore(&rec, "backend payment go"))
}

func TestExperienceRelevanceScore_TokenBonusCappedAt30(t *testing.T) {
	rec := types.CandidateRecord{
		About: "alpha beta gamma delta epsilon",
	}
	// Five matching tokens would be 50; the cap holds it at 30.
	assert.Equal(t, 80, experienceRelevanceScore(&rec, "alpha beta gamma delta epsilon"))
}

func TestExperienceRelevanceScore_LeadershipKeywords(t *testing.T) {
	rec := types.CandidateRecord{
		Experience: "Senior engineer, led the platform team as architect",
	}
	// senior, led (also matched inside "led"), lead? "lead" not in text;
	// matches: led, senior, architect -> +15. No query tokens.
	score := experienceRelevanceScore(&rec, "")
	assert.Equal(t, 65, score)
}

func TestExperienceRelevanceScore_CaseInsensitiveBothSides(t *testing.T) {
	rec := types.CandidateRecord{About: "KUBERNETES OPERATOR DEVELOPMENT"}
	upper := experienceRelevanceScore(&rec, "Kubernetes Operator")
	lower := experienceRelevanceScore(&rec, "kubernetes operator")
	assert.Equal(t, upper, lower)
	assert.Equal(t, 70, lower)
}

func TestExperienceRelevanceScore_ClampedAt100(t *testing.T) {
	rec := types.CandidateRecord{
		Experience: "lead led senior principal staff architect mentor managed head of platform",
	}
	// 9 leadership matches (+45) plus token bonus would exceed 100.
	score := experienceRelevanceScore(&rec, "lead senior principal staff architect mentor managed platform head")
	assert.Equal(t, 100, score)
}
