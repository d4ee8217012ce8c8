package scoring

import (
	"strings"

	"github.com/jonathan/talentscout/internal/types"
)

// Experience relevance scoring constants.
const (
	experienceRelevanceBase = 50

	queryTokenBonus    = 10
	queryTokenCap      = 30
	queryTokenMinLen   = 3 // tokens shorter than this are noise
	leadershipPerMatch = 5
)

// experienceRelevanceScore computes the 0-100 experience relevance
// sub-score by matching search query tokens and seniority keywords against
// the candidate's free-form profile text. Both sides of every comparison
// are lowercased, so matching is fully case-insensitive.
func experienceRelevanceScore(rec *types.CandidateRecord, queryText string) int {
	if strings.TrimSpace(rec.About) == "" && strings.TrimSpace(rec.Experience) == "" {
		return experienceRelevanceBase
	}

	text := strings.ToLower(rec.About + " " + rec.Experience)

	tokenBonus := 0
	for _, token := range strings.Fields(strings.ToLower(queryText)) {
		if len(token) < queryTokenMinLen {
			continue
		}
		if strings.Contains(text, token) {
			tokenBonus += queryTokenBonus
		}
	}
	if tokenBonus > queryTokenCap {
		tokenBonus = queryTokenCap
	}

	score := experienceRelevanceBase + tokenBonus
	score += leadershipPerMatch * countKeywordMatches(text, leadershipKeywords)

	return clampScore(score)
}
