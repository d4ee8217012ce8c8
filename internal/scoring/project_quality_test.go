package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talentscout/internal/types"
)

func TestProjectQualityScore_BaseScore(t *testing.T) {
	rec := types.CandidateRecord{}
	assert.Equal(t, 30, projectQualityScore(&rec))
}

func TestProjectQualityScore_LinkBonuses(t *testing.T) {
	rec := types.CandidateRecord{
		GithubURL:    "https://github.com/x",
		PortfolioURL: "https://x.dev",
		BlogURL:      "https://blog.x.dev",
	}
	// 30 + 10 + 8 + 7
	assert.Equal(t, 55, projectQualityScore(&rec))
}

func TestProjectQualityScore_ProjectSignals(t *testing.T) {
	rec := types.CandidateRecord{
		Projects: []types.Project{
			{
				Name:         "svc",
				GithubURL:    "https://github.com/x/svc",
				LiveURL:      "https://svc.x.dev",
				Technologies: []string{"Go", "Redis"},
			},
		},
	}
	// 30 base + 3 github + 5 live + 4 tech overlap + 8 project count
	assert.Equal(t, 50, projectQualityScore(&rec))
}

func TestProjectQualityScore_TechOverlapCapped(t *testing.T) {
	rec := types.CandidateRecord{
		Projects: []types.Project{
			{Technologies: []string{"go", "react", "redis", "kafka", "docker", "kubernetes", "aws"}},
		},
	}
	// 7 matches would be 14, capped at 10; plus 30 base and 8 count
	assert.Equal(t, 48, projectQualityScore(&rec))
}

func TestProjectQualityScore_DescriptionLengthTiers(t *testing.T) {
	short := types.CandidateRecord{Projects: []types.Project{{Description: strings.Repeat("a", 101)}}}
	long := types.CandidateRecord{Projects: []types.Project{{Description: strings.Repeat("a", 201)}}}

	// 30 + 3 + 8 count
	assert.Equal(t, 41, projectQualityScore(&short))
	// 30 + 3 + 2 + 8 count
	assert.Equal(t, 43, projectQualityScore(&long))
}

func TestProjectQualityScore_PerformanceKeywords(t *testing.T) {
	rec := types.CandidateRecord{
		Projects: []types.Project{
			{Description: "Optimized cache latency under load"},
		},
	}
	// 30 base + 8 count + 2*3 keywords (optimiz, latency, cache)
	assert.Equal(t, 44, projectQualityScore(&rec))
}

func TestProjectQualityScore_ProjectCountCapped(t *testing.T) {
	rec := types.CandidateRecord{
		Projects: make([]types.Project, 6),
	}
	// 30 base + min(48, 25) count bonus
	assert.Equal(t, 55, projectQualityScore(&rec))
}

func TestProjectQualityScore_AboutBonuses(t *testing.T) {
	rec := types.CandidateRecord{
		About: strings.Repeat("x", 210) + " built and launched a prototype",
	}
	// 30 base + 5 length + 2*3 innovation keywords (built, launched, prototype)
	assert.Equal(t, 41, projectQualityScore(&rec))
}

func TestProjectQualityScore_ClampedAt100(t *testing.T) {
	projects := make([]types.Project, 10)
	for i := range projects {
		projects[i] = types.Project{
			Description:  strings.Repeat("optimized cache latency throughput benchmark profiling ", 8),
			Technologies: []string{"go", "react", "redis", "kafka", "docker", "kubernetes"},
			GithubURL:    "https://github.com/x/p",
			LiveURL:      "https://p.x.dev",
		}
	}
	rec := types.CandidateRecord{
		GithubURL:    "https://github.com/x",
		PortfolioURL: "https://x.dev",
		BlogURL:      "https://blog.x.dev",
		About:        strings.Repeat("built created launched designed ", 20),
		Projects:     projects,
	}
	assert.Equal(t, 100, projectQualityScore(&rec))
}
