package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talentscout/internal/analysis"
	"github.com/jonathan/talentscout/internal/scoring"
	"github.com/jonathan/talentscout/internal/types"
)

// ScoreSearchRequest is the request body for POST /search/score
type ScoreSearchRequest struct {
	RecruiterQueryID string                  `json:"recruiter_query_id,omitempty" validate:"omitempty,uuid"`
	QueryText        string                  `json:"query_text"`
	RequiredSkills   []string                `json:"required_skills"`
	ExperienceRange  types.ExperienceRange   `json:"experience_range"`
	Candidates       []types.CandidateRecord `json:"candidates" validate:"required,min=1,dive"`
	Persist          bool                    `json:"persist,omitempty"`
}

// ScoreSearchResponse is the response body for POST /search/score
type ScoreSearchResponse struct {
	Candidates []types.ScoredCandidate `json:"candidates"`
	Averages   types.AverageScores     `json:"averages"`
}

// AnalyzeCampaignRequest is the request body for POST /campaigns/{id}/analyze
type AnalyzeCampaignRequest struct {
	Interviews []types.InterviewRecord `json:"interviews" validate:"required,min=1,dive"`
	ICPProfile *types.ICPProfile       `json:"icp_profile,omitempty"`
	Persist    bool                    `json:"persist,omitempty"`
}

// AnalyzeCampaignResponse is the response body for POST /campaigns/{id}/analyze
type AnalyzeCampaignResponse struct {
	CampaignID string                          `json:"campaign_id"`
	Ranked     []types.RankedCandidateAnalysis `json:"ranked"`
	Failures   []analysis.BatchFailure         `json:"failures"`
	Successes  int                             `json:"successes"`
}

// RankingsResponse is the response body for GET /campaigns/{id}/rankings
type RankingsResponse struct {
	CampaignID string                          `json:"campaign_id"`
	Ranked     []types.RankedCandidateAnalysis `json:"ranked"`
}

// handleScoreSearch scores and ranks a batch of retrieval hits
func (s *Server) handleScoreSearch(w http.ResponseWriter, r *http.Request) {
	var req ScoreSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, HTTPStatus(&ErrValidation{Message: err.Error()}), err.Error())
		return
	}
	if req.Persist && req.RecruiterQueryID == "" {
		s.errorResponse(w, http.StatusBadRequest, "recruiter_query_id is required when persist is set")
		return
	}

	result := scoring.ScoreAndRank(req.Candidates, req.RequiredSkills, req.QueryText, req.ExperienceRange)

	if req.Persist {
		queryID, err := uuid.Parse(req.RecruiterQueryID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid recruiter_query_id format")
			return
		}
		if err := s.db.UpsertSearchRankings(r.Context(), queryID, result.Candidates); err != nil {
			s.logger.Error("failed to persist search rankings", zap.Error(err))
			s.errorResponse(w, http.StatusInternalServerError, "Failed to persist rankings")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, ScoreSearchResponse{
		Candidates: result.Candidates,
		Averages:   scoring.AverageScores(result),
	})
}

// handleAnalyzeCampaign analyzes and ranks a campaign's interviews
func (s *Server) handleAnalyzeCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid campaign ID format")
		return
	}

	var req AnalyzeCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ICPProfile != nil {
		if err := s.validate.Struct(req.ICPProfile); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid ICP profile: "+err.Error())
			return
		}
	}

	report := s.analyzer.RankCampaignInterviews(r.Context(), req.Interviews, req.ICPProfile)

	if req.Persist && len(report.Ranked) > 0 {
		if err := s.db.UpsertCampaignRankings(r.Context(), campaignID, report.Ranked); err != nil {
			s.logger.Error("failed to persist campaign rankings", zap.Error(err))
			s.errorResponse(w, http.StatusInternalServerError, "Failed to persist rankings")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeCampaignResponse{
		CampaignID: campaignID.String(),
		Ranked:     report.Ranked,
		Failures:   report.Failures,
		Successes:  report.Successes(),
	})
}

// handleGetRankings returns a campaign's stored rankings
func (s *Server) handleGetRankings(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid campaign ID format")
		return
	}

	ranked, err := s.db.GetCampaignRankings(r.Context(), campaignID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if len(ranked) == 0 {
		notFound := &ErrCampaignNotFound{CampaignID: campaignID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, RankingsResponse{
		CampaignID: campaignID.String(),
		Ranked:     ranked,
	})
}
