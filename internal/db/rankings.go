package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talentscout/internal/types"
)

// UpsertSearchRankings persists one ranked search result set for a recruiter
// query. Rows are keyed (recruiter_query_id, candidate_id, rank) so replaying
// the same result set is idempotent. Scores are clamped immediately before
// write; the database never sees out-of-range values.
func (db *DB) UpsertSearchRankings(ctx context.Context, queryID uuid.UUID, candidates []types.ScoredCandidate) error {
	for i, c := range candidates {
		skillsJSON, err := json.Marshal(skillPayload{
			Matching: c.MatchingSkills,
			Missing:  c.MissingSkills,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal skills for %s: %w", c.CandidateID, err)
		}

		_, err = db.pool.Exec(ctx,
			`INSERT INTO search_rankings
				(recruiter_query_id, candidate_id, rank, candidate_name,
				 semantic_score, project_quality_score, experience_relevance_score,
				 skill_match_percentage, overall_score, experience_match, skills)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			 ON CONFLICT (recruiter_query_id, candidate_id, rank) DO UPDATE SET
				candidate_name = $4,
				semantic_score = $5,
				project_quality_score = $6,
				experience_relevance_score = $7,
				skill_match_percentage = $8,
				overall_score = $9,
				experience_match = $10,
				skills = $11,
				updated_at = NOW()`,
			queryID, c.CandidateID, i+1, c.Name,
			clampScore100(int(c.SemanticScore())),
			clampScore100(c.ProjectQualityScore),
			clampScore100(c.ExperienceRelevanceScore),
			clampScore100(c.SkillMatchPercentage),
			clampScore100(c.OverallScore),
			c.ExperienceIndicator, skillsJSON,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert search ranking for %s: %w", c.CandidateID, err)
		}
	}
	return nil
}

// UpsertCampaignRankings persists the analyzed rankings of one interview
// campaign, keyed (campaign_id, candidate_id). Re-running a campaign analysis
// overwrites each candidate's previous row.
func (db *DB) UpsertCampaignRankings(ctx context.Context, campaignID uuid.UUID, ranked []types.RankedCandidateAnalysis) error {
	for _, r := range ranked {
		notesJSON, err := json.Marshal(notesPayload{
			Insights:  r.Insights,
			Strengths: r.Strengths,
			Concerns:  r.Concerns,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal notes for %s: %w", r.CandidateID, err)
		}

		_, err = db.pool.Exec(ctx,
			`INSERT INTO campaign_rankings
				(campaign_id, candidate_id, candidate_name, rank, tier,
				 technical_score, communication_score, icp_alignment, final_ranking, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (campaign_id, candidate_id) DO UPDATE SET
				candidate_name = $3,
				rank = $4,
				tier = $5,
				technical_score = $6,
				communication_score = $7,
				icp_alignment = $8,
				final_ranking = $9,
				notes = $10,
				updated_at = NOW()`,
			campaignID, r.CandidateID, r.CandidateName, r.Rank, string(r.Tier),
			clampUnit(r.TechnicalScore),
			clampUnit(r.CommunicationScore),
			clampUnit(r.ICPAlignment),
			clampUnit(r.FinalRanking),
			notesJSON,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert campaign ranking for %s: %w", r.CandidateID, err)
		}
	}
	return nil
}

// GetCampaignRankings retrieves a campaign's stored rankings ordered by rank.
// Returns an empty slice when the campaign has no stored rows.
func (db *DB) GetCampaignRankings(ctx context.Context, campaignID uuid.UUID) ([]types.RankedCandidateAnalysis, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT candidate_id, candidate_name, rank, tier,
			technical_score, communication_score, icp_alignment, final_ranking, notes
		 FROM campaign_rankings WHERE campaign_id = $1 ORDER BY rank ASC`,
		campaignID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign rankings: %w", err)
	}
	defer rows.Close()

	ranked := []types.RankedCandidateAnalysis{}
	for rows.Next() {
		var r types.RankedCandidateAnalysis
		var tier string
		var notesJSON []byte
		if err := rows.Scan(&r.CandidateID, &r.CandidateName, &r.Rank, &tier,
			&r.TechnicalScore, &r.CommunicationScore, &r.ICPAlignment, &r.FinalRanking, &notesJSON); err != nil {
			return nil, fmt.Errorf("failed to scan campaign ranking: %w", err)
		}
		r.Tier = types.Tier(tier)
		if len(notesJSON) > 0 {
			var notes notesPayload
			if err := json.Unmarshal(notesJSON, &notes); err == nil {
				r.Insights = notes.Insights
				r.Strengths = notes.Strengths
				r.Concerns = notes.Concerns
			}
		}
		ranked = append(ranked, r)
	}
	return ranked, nil
}

// GetSearchRanking retrieves one stored search ranking row by query and
// candidate. Returns nil when no row exists.
func (db *DB) GetSearchRanking(ctx context.Context, queryID uuid.UUID, candidateID string) (*SearchRankingRow, error) {
	var row SearchRankingRow
	var skillsJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT recruiter_query_id, candidate_id, rank, candidate_name,
			semantic_score, project_quality_score, experience_relevance_score,
			skill_match_percentage, overall_score, experience_match, skills
		 FROM search_rankings WHERE recruiter_query_id = $1 AND candidate_id = $2
		 ORDER BY rank ASC LIMIT 1`,
		queryID, candidateID,
	).Scan(&row.RecruiterQueryID, &row.CandidateID, &row.Rank, &row.CandidateName,
		&row.SemanticScore, &row.ProjectQualityScore, &row.ExperienceRelevanceScore,
		&row.SkillMatchPercentage, &row.OverallScore, &row.ExperienceMatch, &skillsJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get search ranking: %w", err)
	}

	if len(skillsJSON) > 0 {
		var skills skillPayload
		if err := json.Unmarshal(skillsJSON, &skills); err == nil {
			row.MatchingSkills = skills.Matching
			row.MissingSkills = skills.Missing
		}
	}
	return &row, nil
}
