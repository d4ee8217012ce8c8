package scoring

import (
	"strings"

	"github.com/jonathan/talentscout/internal/types"
)

// Project quality scoring constants.
const (
	projectQualityBase = 30

	githubLinkBonus    = 10
	portfolioLinkBonus = 8
	blogLinkBonus      = 7

	projectGithubBonus   = 3
	projectLiveBonus     = 5
	techOverlapPerMatch  = 2
	techOverlapCap       = 10
	descriptionBonus     = 3 // description > 100 chars
	longDescriptionBonus = 2 // additional, description > 200 chars
	perfKeywordBonus     = 2

	projectCountPerProject = 8
	projectCountCap        = 25

	aboutLengthBonus     = 5 // about > 200 chars
	innovationBonusEach  = 2
	aboutLengthThreshold = 200
)

// projectQualityScore computes the 0-100 project quality sub-score from link
// presence, per-project signals, project count and the about section.
func projectQualityScore(rec *types.CandidateRecord) int {
	score := projectQualityBase

	if rec.GithubURL != "" {
		score += githubLinkBonus
	}
	if rec.PortfolioURL != "" {
		score += portfolioLinkBonus
	}
	if rec.BlogURL != "" {
		score += blogLinkBonus
	}

	for i := range rec.Projects {
		score += singleProjectScore(&rec.Projects[i])
	}

	countBonus := projectCountPerProject * len(rec.Projects)
	if countBonus > projectCountCap {
		countBonus = projectCountCap
	}
	score += countBonus

	if len(rec.About) > aboutLengthThreshold {
		score += aboutLengthBonus
	}
	score += innovationBonusEach * countKeywordMatches(strings.ToLower(rec.About), innovationKeywords)

	return clampScore(score)
}

// singleProjectScore computes the contribution of one project: hosting
// links, modern-stack overlap, description depth and performance keywords.
func singleProjectScore(p *types.Project) int {
	score := 0

	if p.GithubURL != "" {
		score += projectGithubBonus
	}
	if strings.TrimSpace(p.LiveURL) != "" {
		score += projectLiveBonus
	}

	overlap := 0
	for _, tech := range p.Technologies {
		if isModernTech(tech) {
			overlap += techOverlapPerMatch
		}
	}
	if overlap > techOverlapCap {
		overlap = techOverlapCap
	}
	score += overlap

	if len(p.Description) > 100 {
		score += descriptionBonus
	}
	if len(p.Description) > 200 {
		score += longDescriptionBonus
	}
	score += perfKeywordBonus * countKeywordMatches(strings.ToLower(p.Description), performanceKeywords)

	return score
}
