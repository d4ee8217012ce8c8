// Package skills provides fuzzy skill matching between candidate profiles
// and recruiter-required skill lists.
package skills

import (
	"math"
	"strings"
)

// skillsMatch reports whether two skill names refer to the same skill.
// Matching is case-insensitive and uses bidirectional substring containment,
// so "React" matches "react.js" and "postgres" matches "PostgreSQL".
func skillsMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return true
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// MatchingSkills returns the subset of candidateSkills that match at least
// one required skill, preserving candidate order.
func MatchingSkills(candidateSkills, requiredSkills []string) []string {
	matched := make([]string, 0, len(candidateSkills))
	for _, cs := range candidateSkills {
		for _, rs := range requiredSkills {
			if skillsMatch(cs, rs) {
				matched = append(matched, cs)
				break
			}
		}
	}
	return matched
}

// MissingSkills returns the subset of requiredSkills that match no candidate
// skill, preserving required order.
func MissingSkills(candidateSkills, requiredSkills []string) []string {
	missing := make([]string, 0, len(requiredSkills))
	for _, rs := range requiredSkills {
		covered := false
		for _, cs := range candidateSkills {
			if skillsMatch(cs, rs) {
				covered = true
				break
			}
		}
		if !covered {
			missing = append(missing, rs)
		}
	}
	return missing
}

// MatchPercentage returns the rounded percentage of required skills covered
// by at least one candidate skill. An empty required list is a vacuous full
// match and returns 100.
func MatchPercentage(candidateSkills, requiredSkills []string) int {
	if len(requiredSkills) == 0 {
		return 100
	}
	covered := len(requiredSkills) - len(MissingSkills(candidateSkills, requiredSkills))
	return int(math.Round(100 * float64(covered) / float64(len(requiredSkills))))
}
