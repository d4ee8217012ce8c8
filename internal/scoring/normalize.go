// Package scoring implements the deterministic retrieval scoring pipeline:
// per-candidate heuristic sub-scores combined with the upstream semantic
// match score into a weighted overall score, plus batch ranking over raw
// retrieval results.
package scoring

import (
	"math"

	"github.com/jonathan/talentscout/internal/types"
)

// normalizeRecord applies input defaults once at the scorer boundary so the
// formula sites below never have to null-check. Missing fields become zero
// values rather than errors: retrieval data is external and incomplete
// records are expected, not exceptional.
func normalizeRecord(rec types.CandidateRecord) types.CandidateRecord {
	if rec.Skills == nil {
		rec.Skills = []string{}
	}
	if rec.Projects == nil {
		rec.Projects = []types.Project{}
	}
	for i := range rec.Projects {
		if rec.Projects[i].Technologies == nil {
			rec.Projects[i].Technologies = []string{}
		}
	}
	if rec.ExperienceYears < 0 || math.IsNaN(rec.ExperienceYears) {
		rec.ExperienceYears = 0
	}
	if rec.SemanticMatchScore != nil && math.IsNaN(*rec.SemanticMatchScore) {
		rec.SemanticMatchScore = nil
	}
	return rec
}

// clampScore clamps an accumulated sub-score into the [0,100] integer range.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
