package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/talentscout/internal/analysis"
	"github.com/jonathan/talentscout/internal/types"
)

// fixedJudge returns the same judgment scores for every candidate.
type fixedJudge struct {
	score float64
	err   error
}

func (j *fixedJudge) JudgeTechnical(context.Context, []types.InterviewExchange, *types.ICPProfile) (*analysis.JudgmentResult, error) {
	if j.err != nil {
		return nil, j.err
	}
	return &analysis.JudgmentResult{Score: j.score}, nil
}

func (j *fixedJudge) JudgeCommunication(context.Context, []types.InterviewExchange, *types.ICPProfile) (*analysis.JudgmentResult, error) {
	if j.err != nil {
		return nil, j.err
	}
	return &analysis.JudgmentResult{Score: j.score}, nil
}

func (j *fixedJudge) JudgeICPAlignment(context.Context, []types.InterviewExchange, *types.ICPProfile) (*analysis.ICPJudgmentResult, error) {
	if j.err != nil {
		return nil, j.err
	}
	return &analysis.ICPJudgmentResult{JudgmentResult: analysis.JudgmentResult{Score: j.score}}, nil
}

// newTestServer builds a Server wired for handler tests. Persistence paths
// are exercised separately by integration tests.
func newTestServer(judge analysis.Judge) *Server {
	return &Server{
		validate: validator.New(),
		logger:   zap.NewNop(),
		analyzer: analysis.NewAnalyzer(judge, nil),
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleScoreSearch(t *testing.T) {
	s := newTestServer(&fixedJudge{})
	semantic := 80.0

	rec := postJSON(t, s.handleScoreSearch, "/search/score", ScoreSearchRequest{
		QueryText:      "backend engineer",
		RequiredSkills: []string{"go"},
		Candidates: []types.CandidateRecord{
			{CandidateID: "c1", Name: "Ada", Skills: []string{"Go", "Rust"}, SemanticMatchScore: &semantic},
			{CandidateID: "c2", Name: "Bob", Skills: []string{"Java"}},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScoreSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Candidates, 2)

	// The candidate with a semantic score and a matching skill ranks first
	assert.Equal(t, "c1", resp.Candidates[0].CandidateID)
	assert.Equal(t, 100, resp.Candidates[0].SkillMatchPercentage)
	assert.Equal(t, 0, resp.Candidates[1].SkillMatchPercentage)
	assert.Greater(t, resp.Averages.Overall, 0)
}

func TestHandleScoreSearch_InvalidBody(t *testing.T) {
	s := newTestServer(&fixedJudge{})

	req := httptest.NewRequest(http.MethodPost, "/search/score", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.handleScoreSearch(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScoreSearch_NoCandidates(t *testing.T) {
	s := newTestServer(&fixedJudge{})

	rec := postJSON(t, s.handleScoreSearch, "/search/score", ScoreSearchRequest{
		QueryText: "backend engineer",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScoreSearch_PersistRequiresQueryID(t *testing.T) {
	s := newTestServer(&fixedJudge{})

	rec := postJSON(t, s.handleScoreSearch, "/search/score", ScoreSearchRequest{
		Candidates: []types.CandidateRecord{{CandidateID: "c1"}},
		Persist:    true,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "recruiter_query_id")
}

func analyzeTarget(campaignID string) string {
	return fmt.Sprintf("/campaigns/%s/analyze", campaignID)
}

func campaignRequest(t *testing.T, s *Server, campaignID string, body AnalyzeCampaignRequest) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, analyzeTarget(campaignID), bytes.NewReader(data))
	req.SetPathValue("id", campaignID)
	rec := httptest.NewRecorder()
	s.handleAnalyzeCampaign(rec, req)
	return rec
}

func TestHandleAnalyzeCampaign(t *testing.T) {
	s := newTestServer(&fixedJudge{score: 0.7})
	campaignID := "1b671a64-40d5-491e-99b0-da01ff1f3341"

	rec := campaignRequest(t, s, campaignID, AnalyzeCampaignRequest{
		Interviews: []types.InterviewRecord{
			{
				CandidateID:   "c1",
				CandidateName: "Ada",
				Exchanges:     []types.InterviewExchange{{Question: "q", Answer: "a"}},
			},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeCampaignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, campaignID, resp.CampaignID)
	require.Len(t, resp.Ranked, 1)
	assert.Equal(t, 1, resp.Ranked[0].Rank)
	assert.Equal(t, 1, resp.Successes)
	assert.Empty(t, resp.Failures)
}

func TestHandleAnalyzeCampaign_JudgeFailuresReported(t *testing.T) {
	s := newTestServer(&fixedJudge{err: fmt.Errorf("model unavailable")})
	campaignID := "1b671a64-40d5-491e-99b0-da01ff1f3341"

	rec := campaignRequest(t, s, campaignID, AnalyzeCampaignRequest{
		Interviews: []types.InterviewRecord{
			{
				CandidateID:   "c1",
				CandidateName: "Ada",
				Exchanges:     []types.InterviewExchange{{Question: "q", Answer: "a"}},
			},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeCampaignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Ranked)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, "c1", resp.Failures[0].CandidateID)
	assert.Equal(t, 0, resp.Successes)
}

func TestHandleAnalyzeCampaign_InvalidCampaignID(t *testing.T) {
	s := newTestServer(&fixedJudge{})

	req := httptest.NewRequest(http.MethodPost, "/campaigns/not-a-uuid/analyze", strings.NewReader("{}"))
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()
	s.handleAnalyzeCampaign(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeCampaign_InvalidICPProfile(t *testing.T) {
	s := newTestServer(&fixedJudge{score: 0.7})
	campaignID := "1b671a64-40d5-491e-99b0-da01ff1f3341"

	rec := campaignRequest(t, s, campaignID, AnalyzeCampaignRequest{
		Interviews: []types.InterviewRecord{
			{CandidateID: "c1", Exchanges: []types.InterviewExchange{{Question: "q", Answer: "a"}}},
		},
		ICPProfile: &types.ICPProfile{
			TechnicalSkills: types.TechnicalExpectations{
				MustHave:     []string{"go"},
				MinimumLevel: "wizard", // not a valid level
			},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ICP profile")
}

func TestHandleGetRankings_InvalidCampaignID(t *testing.T) {
	s := newTestServer(&fixedJudge{})

	req := httptest.NewRequest(http.MethodGet, "/campaigns/nope/rankings", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()
	s.handleGetRankings(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(&fixedJudge{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
